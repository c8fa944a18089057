// Package release resolves published platform versions and fetches their
// artifacts. It queries the GitHub Releases API (or a configured mirror) for
// the latest or a pinned tag, selects the binary archive matching the host
// platform and the platform-independent core modules archive, downloads with
// progress and sha256 verification, and extracts archives into a target
// directory. Every network call is attempted exactly once; failures abort the
// install run.
package release
