package tess

import (
	"fmt"

	"github.com/paulmach/orb"
)

// ColumnType describes the type of data stored in a Table column
type ColumnType interface {
	ToString(v interface{}) string // ToString produces a string representation of a value of this type
	Validate(v interface{}) error  // Validate returns an error iff the given value cannot be stored in a column of this type
}

// BoolColumnType is a column type which stores a boolean value
type BoolColumnType struct{}

// ToString produces a string representation of a BoolColumnType value
func (b *BoolColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%t", v.(bool))
}

// Validate returns an error iff the given value is not a bool
func (b *BoolColumnType) Validate(v interface{}) error {
	if _, ok := v.(bool); !ok {
		return fmt.Errorf("value %#v is not a bool", v)
	}
	return nil
}

// Int64ColumnType is a column type which stores a signed 64-bit integer
type Int64ColumnType struct{}

// ToString produces a string representation of an Int64ColumnType value
func (b *Int64ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(int64))
}

// Validate returns an error iff the given value is not an int64
func (b *Int64ColumnType) Validate(v interface{}) error {
	if _, ok := v.(int64); !ok {
		return fmt.Errorf("value %#v is not an int64", v)
	}
	return nil
}

// Uint64ColumnType is a column type which stores an unsigned 64-bit integer
type Uint64ColumnType struct{}

// ToString produces a string representation of a Uint64ColumnType value
func (b *Uint64ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(uint64))
}

// Validate returns an error iff the given value is not a uint64
func (b *Uint64ColumnType) Validate(v interface{}) error {
	if _, ok := v.(uint64); !ok {
		return fmt.Errorf("value %#v is not a uint64", v)
	}
	return nil
}

// Float64ColumnType is a column type which stores a 64-bit float
type Float64ColumnType struct{}

// ToString produces a string representation of a Float64ColumnType value
func (b *Float64ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%f", v.(float64))
}

// Validate returns an error iff the given value is not a float64
func (b *Float64ColumnType) Validate(v interface{}) error {
	if _, ok := v.(float64); !ok {
		return fmt.Errorf("value %#v is not a float64", v)
	}
	return nil
}

// StringColumnType is a column type which stores a string value
type StringColumnType struct{}

// ToString produces a string representation of a StringColumnType value
func (b *StringColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("\"%s\"", v.(string))
}

// Validate returns an error iff the given value is not a string
func (b *StringColumnType) Validate(v interface{}) error {
	if _, ok := v.(string); !ok {
		return fmt.Errorf("value %#v is not a string", v)
	}
	return nil
}

// GeometryColumnType is a column type which stores a geometry value from
// the underlying geometry engine
type GeometryColumnType struct{}

// ToString produces a string representation of a GeometryColumnType value
func (b *GeometryColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%s", v.(orb.Geometry).GeoJSONType())
}

// Validate returns an error iff the given value is not a geometry
func (b *GeometryColumnType) Validate(v interface{}) error {
	if _, ok := v.(orb.Geometry); !ok {
		return fmt.Errorf("value %#v is not a geometry", v)
	}
	return nil
}

// BoundsColumnType is a column type which stores a bounding rectangle
type BoundsColumnType struct{}

// ToString produces a string representation of a BoundsColumnType value
func (b *BoundsColumnType) ToString(v interface{}) string {
	return v.(Bounds).ToString()
}

// Validate returns an error iff the given value is not a Bounds
func (b *BoundsColumnType) Validate(v interface{}) error {
	if _, ok := v.(Bounds); !ok {
		return fmt.Errorf("value %#v is not a Bounds", v)
	}
	return nil
}
