package tess

import "github.com/paulmach/orb"

// Row is a representation of a single row of columnar data, along with a
// reference to the Schema for that row. In practice, users of Row call its
// getter and setter methods to retrieve, manipulate and store data
type Row interface {
	Schema() Schema                                            // Schema returns a read-only copy of the schema for a row
	ToString() string                                          // ToString returns a string representation of this row
	IsNil(colName string) bool                                 // IsNil returns true iff the given column value is nil in this row. If an error occurs, this function will return false.
	SetNil(colName string) error                               // SetNil sets the given column value to nil within this row
	Get(colName string) (col interface{}, err error)           // Get returns the value of any column as an interface{}, if it exists
	GetBool(colName string) (col bool, err error)              // GetBool retrieves a single bool from the column with the given name
	GetInt64(colName string) (col int64, err error)            // GetInt64 retrieves a single int64 from the column with the given name
	GetUint64(colName string) (col uint64, err error)          // GetUint64 retrieves a single uint64 from the column with the given name
	GetFloat64(colName string) (col float64, err error)        // GetFloat64 retrieves a single float64 from the column with the given name
	GetString(colName string) (col string, err error)          // GetString retrieves a single string from the column with the given name
	GetGeometry(colName string) (col orb.Geometry, err error)  // GetGeometry retrieves a single geometry value from the column with the given name
	GetBounds(colName string) (col Bounds, err error)          // GetBounds retrieves a single bounding rectangle from the column with the given name
	SetBool(colName string, value bool) (err error)            // SetBool modifies a single bool from the column with the given name
	SetInt64(colName string, value int64) (err error)          // SetInt64 modifies a single int64 from the column with the given name
	SetUint64(colName string, value uint64) (err error)        // SetUint64 modifies a single uint64 from the column with the given name
	SetFloat64(colName string, value float64) (err error)      // SetFloat64 modifies a single float64 from the column with the given name
	SetString(colName string, value string) (err error)        // SetString modifies a single string from the column with the given name
	SetGeometry(colName string, value orb.Geometry) (err error) // SetGeometry modifies a single geometry value from the column with the given name
	SetBounds(colName string, value Bounds) (err error)        // SetBounds modifies a single bounding rectangle from the column with the given name
}
