// Package layout manages the ~/.hayride directory structure: the bin/
// directory for the platform binary, the version-keyed registry namespaces
// (core morphs, hayride morphs, compositions), the model store, and the
// runtime config path. It handles path resolution with HAYRIDE_HOME override
// and idempotent initialization of the tree.
package layout
