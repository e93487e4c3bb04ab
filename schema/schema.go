package schema

import (
	"github.com/go-tess/tess"
	"github.com/go-tess/tess/errors"
)

type namedColumn struct {
	name    string
	colType tess.ColumnType
}

// schemaImpl is Tess' internal implementation of Schema
type schemaImpl struct {
	columns []namedColumn
	byName  map[string]int
}

// CreateSchema creates a new Schema with no columns
func CreateSchema() tess.Schema {
	return &schemaImpl{
		columns: make([]namedColumn, 0),
		byName:  make(map[string]int),
	}
}

// Equals returns true iff this and another Schema have identical column names and types, in the same order
func (s *schemaImpl) Equals(otherSchema tess.Schema) bool {
	if s.NumColumns() != otherSchema.NumColumns() {
		return false
	}
	equal := true
	err := otherSchema.ForEachColumn(func(name string, index int, colType tess.ColumnType) error {
		if index >= len(s.columns) {
			equal = false
			return nil
		}
		col := s.columns[index]
		if col.name != name {
			equal = false
		}
		if !sameColumnType(col.colType, colType) {
			equal = false
		}
		return nil
	})
	if err != nil {
		return false
	}
	return equal
}

func sameColumnType(a tess.ColumnType, b tess.ColumnType) bool {
	switch a.(type) {
	case *tess.BoolColumnType:
		_, ok := b.(*tess.BoolColumnType)
		return ok
	case *tess.Int64ColumnType:
		_, ok := b.(*tess.Int64ColumnType)
		return ok
	case *tess.Uint64ColumnType:
		_, ok := b.(*tess.Uint64ColumnType)
		return ok
	case *tess.Float64ColumnType:
		_, ok := b.(*tess.Float64ColumnType)
		return ok
	case *tess.StringColumnType:
		_, ok := b.(*tess.StringColumnType)
		return ok
	case *tess.GeometryColumnType:
		_, ok := b.(*tess.GeometryColumnType)
		return ok
	case *tess.BoundsColumnType:
		_, ok := b.(*tess.BoundsColumnType)
		return ok
	default:
		return false
	}
}

// Clone returns a copy of this Schema
func (s *schemaImpl) Clone() tess.Schema {
	columns := make([]namedColumn, len(s.columns))
	copy(columns, s.columns)
	byName := make(map[string]int, len(s.byName))
	for k, v := range s.byName {
		byName[k] = v
	}
	return &schemaImpl{columns: columns, byName: byName}
}

// NumColumns returns the number of columns in this Schema
func (s *schemaImpl) NumColumns() int {
	return len(s.columns)
}

// HasColumn returns true iff this Schema contains a column with the given name
func (s *schemaImpl) HasColumn(colName string) bool {
	_, ok := s.byName[colName]
	return ok
}

// ColumnNames returns the names of the columns in this Schema, in order
func (s *schemaImpl) ColumnNames() []string {
	names := make([]string, len(s.columns))
	for i, col := range s.columns {
		names[i] = col.name
	}
	return names
}

// ColumnIndex returns the position of the column with the given name
func (s *schemaImpl) ColumnIndex(colName string) (int, error) {
	idx, ok := s.byName[colName]
	if !ok {
		return -1, errors.MissingColumnError{Name: colName}
	}
	return idx, nil
}

// ColumnType returns the type of the column with the given name
func (s *schemaImpl) ColumnType(colName string) (tess.ColumnType, error) {
	idx, ok := s.byName[colName]
	if !ok {
		return nil, errors.MissingColumnError{Name: colName}
	}
	return s.columns[idx].colType, nil
}

// CreateColumn returns a new Schema with an additional column appended
func (s *schemaImpl) CreateColumn(colName string, columnType tess.ColumnType) (tess.Schema, error) {
	if s.HasColumn(colName) {
		return nil, errors.ColumnExistsError{Name: colName}
	}
	newSchema := s.Clone().(*schemaImpl)
	newSchema.byName[colName] = len(newSchema.columns)
	newSchema.columns = append(newSchema.columns, namedColumn{name: colName, colType: columnType})
	return newSchema, nil
}

// RenameColumn returns a new Schema with the given column renamed
func (s *schemaImpl) RenameColumn(oldName string, newName string) (tess.Schema, error) {
	idx, ok := s.byName[oldName]
	if !ok {
		return nil, errors.MissingColumnError{Name: oldName}
	}
	if s.HasColumn(newName) {
		return nil, errors.ColumnExistsError{Name: newName}
	}
	newSchema := s.Clone().(*schemaImpl)
	newSchema.columns[idx].name = newName
	delete(newSchema.byName, oldName)
	newSchema.byName[newName] = idx
	return newSchema, nil
}

// RemoveColumn returns a new Schema without the given column, plus a flag
// indicating whether the column was present in the first place
func (s *schemaImpl) RemoveColumn(colName string) (tess.Schema, bool) {
	idx, ok := s.byName[colName]
	if !ok {
		return s, false
	}
	newSchema := &schemaImpl{
		columns: make([]namedColumn, 0, len(s.columns)-1),
		byName:  make(map[string]int),
	}
	for i, col := range s.columns {
		if i == idx {
			continue
		}
		newSchema.byName[col.name] = len(newSchema.columns)
		newSchema.columns = append(newSchema.columns, col)
	}
	return newSchema, true
}

// ForEachColumn runs a function for each column in this Schema, in order
func (s *schemaImpl) ForEachColumn(fn func(name string, index int, colType tess.ColumnType) error) error {
	for i, col := range s.columns {
		if err := fn(col.name, i, col.colType); err != nil {
			return err
		}
	}
	return nil
}
