// Package registry places downloaded morph files into the version-keyed local
// registry. A registrar classifies each file in a source tree by its
// <name>-<major>.<minor>.<patch> filename, then copies it to
// <root>/<version>/<name> under the namespace root. Files that do not parse
// are reported as skipped, never misfiled. Lookup helpers enumerate registered
// morphs and maintain the "latest" alias per namespace.
package registry
