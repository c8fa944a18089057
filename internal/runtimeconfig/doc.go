// Package runtimeconfig emits and validates the platform's runtime
// config.yaml. The installer writes a fixed-structure document with only the
// installed version and home-relative paths substituted, unconditionally
// overwriting any prior file. Validation against the embedded JSON schema
// backs the doctor command.
package runtimeconfig
