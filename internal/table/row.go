package table

import (
	"strings"

	"github.com/go-tess/tess"
	"github.com/go-tess/tess/errors"
	"github.com/paulmach/orb"
)

// rowImpl is Tess' internal implementation of Row: a view onto one row of a
// tableImpl. rowImpls are reused during iteration, so they must not be
// retained across ForEachRow callbacks.
type rowImpl struct {
	table  *tableImpl
	rowNum int
}

// Schema returns a read-only copy of the schema for this row
func (r *rowImpl) Schema() tess.Schema {
	return r.table.schema.Clone()
}

// ToString returns a string representation of this row
func (r *rowImpl) ToString() string {
	var sb strings.Builder
	sb.WriteString("{")
	first := true
	_ = r.table.schema.ForEachColumn(func(name string, index int, colType tess.ColumnType) error {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(name)
		sb.WriteString(": ")
		if r.table.nils[index][r.rowNum] {
			sb.WriteString("nil")
		} else {
			sb.WriteString(colType.ToString(r.table.cols[index][r.rowNum]))
		}
		return nil
	})
	sb.WriteString("}")
	return sb.String()
}

// IsNil returns true iff the given column value is nil in this row
func (r *rowImpl) IsNil(colName string) bool {
	idx, err := r.table.schema.ColumnIndex(colName)
	if err != nil {
		return false
	}
	return r.table.nils[idx][r.rowNum]
}

// SetNil sets the given column value to nil within this row
func (r *rowImpl) SetNil(colName string) error {
	idx, err := r.table.schema.ColumnIndex(colName)
	if err != nil {
		return err
	}
	r.table.cols[idx][r.rowNum] = nil
	r.table.nils[idx][r.rowNum] = true
	return nil
}

// Get returns the value of any column as an interface{}, if it exists
func (r *rowImpl) Get(colName string) (interface{}, error) {
	idx, err := r.table.schema.ColumnIndex(colName)
	if err != nil {
		return nil, err
	}
	return r.table.cols[idx][r.rowNum], nil
}

func (r *rowImpl) set(colName string, value interface{}) error {
	idx, err := r.table.schema.ColumnIndex(colName)
	if err != nil {
		return err
	}
	colType, err := r.table.schema.ColumnType(colName)
	if err != nil {
		return err
	}
	if err := colType.Validate(value); err != nil {
		return err
	}
	r.table.cols[idx][r.rowNum] = value
	r.table.nils[idx][r.rowNum] = false
	return nil
}

// GetBool retrieves a single bool from the column with the given name
func (r *rowImpl) GetBool(colName string) (bool, error) {
	v, err := r.Get(colName)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, errors.IncompatibleColumnTypeError{Name: colName, Expected: "bool"}
	}
	return b, nil
}

// GetInt64 retrieves a single int64 from the column with the given name
func (r *rowImpl) GetInt64(colName string) (int64, error) {
	v, err := r.Get(colName)
	if err != nil {
		return 0, err
	}
	i, ok := v.(int64)
	if !ok {
		return 0, errors.IncompatibleColumnTypeError{Name: colName, Expected: "int64"}
	}
	return i, nil
}

// GetUint64 retrieves a single uint64 from the column with the given name
func (r *rowImpl) GetUint64(colName string) (uint64, error) {
	v, err := r.Get(colName)
	if err != nil {
		return 0, err
	}
	u, ok := v.(uint64)
	if !ok {
		return 0, errors.IncompatibleColumnTypeError{Name: colName, Expected: "uint64"}
	}
	return u, nil
}

// GetFloat64 retrieves a single float64 from the column with the given name
func (r *rowImpl) GetFloat64(colName string) (float64, error) {
	v, err := r.Get(colName)
	if err != nil {
		return 0, err
	}
	f, ok := v.(float64)
	if !ok {
		return 0, errors.IncompatibleColumnTypeError{Name: colName, Expected: "float64"}
	}
	return f, nil
}

// GetString retrieves a single string from the column with the given name
func (r *rowImpl) GetString(colName string) (string, error) {
	v, err := r.Get(colName)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.IncompatibleColumnTypeError{Name: colName, Expected: "string"}
	}
	return s, nil
}

// GetGeometry retrieves a single geometry value from the column with the given name
func (r *rowImpl) GetGeometry(colName string) (orb.Geometry, error) {
	v, err := r.Get(colName)
	if err != nil {
		return nil, err
	}
	g, ok := v.(orb.Geometry)
	if !ok {
		return nil, errors.IncompatibleColumnTypeError{Name: colName, Expected: "geometry"}
	}
	return g, nil
}

// GetBounds retrieves a single bounding rectangle from the column with the given name
func (r *rowImpl) GetBounds(colName string) (tess.Bounds, error) {
	v, err := r.Get(colName)
	if err != nil {
		return tess.Bounds{}, err
	}
	b, ok := v.(tess.Bounds)
	if !ok {
		return tess.Bounds{}, errors.IncompatibleColumnTypeError{Name: colName, Expected: "bounds"}
	}
	return b, nil
}

// SetBool modifies a single bool from the column with the given name
func (r *rowImpl) SetBool(colName string, value bool) error {
	return r.set(colName, value)
}

// SetInt64 modifies a single int64 from the column with the given name
func (r *rowImpl) SetInt64(colName string, value int64) error {
	return r.set(colName, value)
}

// SetUint64 modifies a single uint64 from the column with the given name
func (r *rowImpl) SetUint64(colName string, value uint64) error {
	return r.set(colName, value)
}

// SetFloat64 modifies a single float64 from the column with the given name
func (r *rowImpl) SetFloat64(colName string, value float64) error {
	return r.set(colName, value)
}

// SetString modifies a single string from the column with the given name
func (r *rowImpl) SetString(colName string, value string) error {
	return r.set(colName, value)
}

// SetGeometry modifies a single geometry value from the column with the given name
func (r *rowImpl) SetGeometry(colName string, value orb.Geometry) error {
	return r.set(colName, value)
}

// SetBounds modifies a single bounding rectangle from the column with the given name
func (r *rowImpl) SetBounds(colName string, value tess.Bounds) error {
	return r.set(colName, value)
}
