package tess

import "io"

// DataSource is a source of tabular geometry data which can be loaded into
// a Table. It represents information about where the data lives and how it
// is divided into files, while a DataSourceParser knows how to decode the
// bytes of each division.
type DataSource interface {
	ToString() string                              // for logging
	Load(parser DataSourceParser) (OperableTable, error) // Load reads all data from this source into a single Table
}

// DataSourceParser parses raw data from a single stream, appending rows to
// a target Table according to the target's Schema
type DataSourceParser interface {
	Parse(r io.Reader, target BuildableTable) error
}

// TableWriter materializes rows of a Table to a storage target. Writers are
// the boundary to the external storage engine: a target path may be a local
// filesystem path or an opaque remote URL, and the writer owns its meaning.
type TableWriter interface {
	Exists(path string) (bool, error)                   // Exists returns true iff the given target already holds output
	Remove(path string) error                           // Remove deletes previously-written output at the given target
	Write(t Table, rowIndices []int, path string) error // Write materializes the given rows (in order) as one output unit
}
