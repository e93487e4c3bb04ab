package tess

// A Table is an in-memory batch of columnar data: multiple Rows sharing one
// Schema, plus an opaque coordinate-reference-system label which every
// operation preserves. Tables are handles - spatial operations take a Table
// and return a transformed Table or a result summary, never mutating shared
// state. A Table and any values derived from it (samples, partition
// schemes) are exclusively owned by one logical operation at a time; Tess
// performs no internal locking.
type Table interface {
	ID() string            // ID retrieves the unique ID of this Table
	Schema() Schema        // Schema returns a read-only copy of the Schema of this Table
	CRS() string           // CRS returns the coordinate reference system label of this Table, or "" if unknown
	NumRows() int          // NumRows retrieves the number of rows in this Table
	GetRow(rowNum int) Row // GetRow retrieves a specific row from this Table
	ForEachRow(fn MapOperation) error
}

// A BuildableTable can have rows appended to it. Used in the implementation
// of DataSources and Parsers
type BuildableTable interface {
	Table
	AppendRow(values []interface{}) error // AppendRow adds a row of column values (nil for null) to the end of this Table
	SetCRS(crs string)                    // SetCRS records the coordinate reference system label of this Table
}

// An OperableTable supports the transformations used by spatial operations.
// All transformations produce a new Table, leaving the receiver untouched.
type OperableTable interface {
	BuildableTable
	Clone() OperableTable                                                   // Clone returns a deep copy of this Table
	WithColumn(colName string, colType ColumnType) (OperableTable, error)   // WithColumn returns a copy of this Table with a new (all-null) column appended to its Schema
	WithoutColumn(colName string) (OperableTable, error)                    // WithoutColumn returns a copy of this Table with the named column removed
	Reorder(perm []int) (OperableTable, error)                              // Reorder returns a copy of this Table with rows arranged so that row i of the result is row perm[i] of the receiver
	Select(rowIndices []int) (OperableTable, error)                         // Select returns a copy of this Table containing only the given rows, in the given order
}
