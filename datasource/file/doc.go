// Package file reads and writes tables as files on a local filesystem.
// The DataSource loads every file matching a glob, in parallel, into one
// Table; the Writer materializes partition groups as GeoJSONL files,
// optionally lz4-compressed. Files whose names end in .lz4 are
// transparently decompressed on load.
package file
