package tess

// Schema is an ordered mapping from column names to ColumnTypes.
// It allows one to look up columns by name, define new columns,
// remove columns, etc. Schemas are immutable - mutating methods
// return a new Schema.
type Schema interface {
	Equals(otherSchema Schema) bool
	Clone() Schema
	NumColumns() int
	HasColumn(colName string) bool
	ColumnNames() []string
	ColumnIndex(colName string) (index int, err error)
	ColumnType(colName string) (colType ColumnType, err error)
	CreateColumn(colName string, columnType ColumnType) (newSchema Schema, err error)
	RenameColumn(oldName string, newName string) (newSchema Schema, err error)
	RemoveColumn(colName string) (newSchema Schema, wasRemoved bool)
	ForEachColumn(fn func(name string, index int, colType ColumnType) error) error
}
