package table

import (
	"log"

	"github.com/go-tess/tess"
	"github.com/go-tess/tess/errors"
	uuid "github.com/gofrs/uuid"
)

// tableImpl is Tess' internal implementation of Table. Data is stored
// column-wise: one value slice and one null mask per column.
type tableImpl struct {
	id      string
	schema  tess.Schema
	crs     string
	cols    [][]interface{}
	nils    [][]bool
	numRows int
}

// CreateTable creates a new, empty Table with the given Schema
func CreateTable(schema tess.Schema) tess.OperableTable {
	return createTableImpl(schema)
}

func createTableImpl(schema tess.Schema) *tableImpl {
	id, err := uuid.NewV4()
	if err != nil {
		log.Fatalf("failed to generate UUID for Table: %v", err)
	}
	numCols := schema.NumColumns()
	return &tableImpl{
		id:     id.String(),
		schema: schema.Clone(),
		cols:   make([][]interface{}, numCols),
		nils:   make([][]bool, numCols),
	}
}

// ID retrieves the unique ID of this Table
func (t *tableImpl) ID() string {
	return t.id
}

// Schema returns a read-only copy of the Schema of this Table
func (t *tableImpl) Schema() tess.Schema {
	return t.schema.Clone()
}

// CRS returns the coordinate reference system label of this Table
func (t *tableImpl) CRS() string {
	return t.crs
}

// SetCRS records the coordinate reference system label of this Table
func (t *tableImpl) SetCRS(crs string) {
	t.crs = crs
}

// NumRows retrieves the number of rows in this Table
func (t *tableImpl) NumRows() int {
	return t.numRows
}

// GetRow retrieves a specific row from this Table
func (t *tableImpl) GetRow(rowNum int) tess.Row {
	return &rowImpl{table: t, rowNum: rowNum}
}

// ForEachRow iterates over the Rows in this Table, stopping at the first error
func (t *tableImpl) ForEachRow(fn tess.MapOperation) error {
	row := &rowImpl{table: t}
	for i := 0; i < t.numRows; i++ {
		row.rowNum = i
		if err := fn(row); err != nil {
			return err
		}
	}
	return nil
}

// AppendRow adds a row of column values (nil for null) to the end of this Table
func (t *tableImpl) AppendRow(values []interface{}) error {
	if len(values) != t.schema.NumColumns() {
		return errors.IncompatibleRowError{}
	}
	err := t.schema.ForEachColumn(func(name string, index int, colType tess.ColumnType) error {
		if values[index] == nil {
			return nil
		}
		return colType.Validate(values[index])
	})
	if err != nil {
		return err
	}
	for i, v := range values {
		t.cols[i] = append(t.cols[i], v)
		t.nils[i] = append(t.nils[i], v == nil)
	}
	t.numRows++
	return nil
}

// Clone returns a deep copy of this Table
func (t *tableImpl) Clone() tess.OperableTable {
	result := createTableImpl(t.schema)
	result.crs = t.crs
	result.numRows = t.numRows
	for i := range t.cols {
		result.cols[i] = append([]interface{}(nil), t.cols[i]...)
		result.nils[i] = append([]bool(nil), t.nils[i]...)
	}
	return result
}

// WithColumn returns a copy of this Table with a new (all-null) column
// appended to its Schema
func (t *tableImpl) WithColumn(colName string, colType tess.ColumnType) (tess.OperableTable, error) {
	newSchema, err := t.schema.CreateColumn(colName, colType)
	if err != nil {
		return nil, err
	}
	result := createTableImpl(newSchema)
	result.crs = t.crs
	result.numRows = t.numRows
	for i := range t.cols {
		result.cols[i] = append([]interface{}(nil), t.cols[i]...)
		result.nils[i] = append([]bool(nil), t.nils[i]...)
	}
	newIdx := newSchema.NumColumns() - 1
	result.cols[newIdx] = make([]interface{}, t.numRows)
	result.nils[newIdx] = make([]bool, t.numRows)
	for i := range result.nils[newIdx] {
		result.nils[newIdx][i] = true
	}
	return result, nil
}

// WithoutColumn returns a copy of this Table with the named column removed
func (t *tableImpl) WithoutColumn(colName string) (tess.OperableTable, error) {
	oldIdx, err := t.schema.ColumnIndex(colName)
	if err != nil {
		return nil, err
	}
	newSchema, _ := t.schema.RemoveColumn(colName)
	result := createTableImpl(newSchema)
	result.crs = t.crs
	result.numRows = t.numRows
	dst := 0
	for i := range t.cols {
		if i == oldIdx {
			continue
		}
		result.cols[dst] = append([]interface{}(nil), t.cols[i]...)
		result.nils[dst] = append([]bool(nil), t.nils[i]...)
		dst++
	}
	return result, nil
}

// Reorder returns a copy of this Table with rows arranged so that row i of
// the result is row perm[i] of the receiver
func (t *tableImpl) Reorder(perm []int) (tess.OperableTable, error) {
	if len(perm) != t.numRows {
		return nil, errors.IncompatibleRowError{}
	}
	return t.Select(perm)
}

// Select returns a copy of this Table containing only the given rows, in
// the given order
func (t *tableImpl) Select(rowIndices []int) (tess.OperableTable, error) {
	for _, idx := range rowIndices {
		if idx < 0 || idx >= t.numRows {
			return nil, errors.IncompatibleRowError{}
		}
	}
	result := createTableImpl(t.schema)
	result.crs = t.crs
	result.numRows = len(rowIndices)
	for i := range t.cols {
		result.cols[i] = make([]interface{}, len(rowIndices))
		result.nils[i] = make([]bool, len(rowIndices))
		for j, idx := range rowIndices {
			result.cols[i][j] = t.cols[i][idx]
			result.nils[i][j] = t.nils[i][idx]
		}
	}
	return result, nil
}
