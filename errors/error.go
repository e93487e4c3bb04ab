package errors

import (
	"fmt"
)

// MissingColumnError occurs when a named column does not exist in a Schema
type MissingColumnError struct{ Name string }

// Error returns a textual representation of this MissingColumnError
func (e MissingColumnError) Error() string {
	return fmt.Sprintf("Column %s does not exist in schema", e.Name)
}

// ColumnExistsError occurs when a column is created with a name which is already taken
type ColumnExistsError struct{ Name string }

// Error returns a textual representation of this ColumnExistsError
func (e ColumnExistsError) Error() string {
	return fmt.Sprintf("Column %s already exists in schema", e.Name)
}

// IncompatibleColumnTypeError occurs when a column holds a different type than an operation expects
type IncompatibleColumnTypeError struct {
	Name     string
	Expected string
}

// Error returns a textual representation of this IncompatibleColumnTypeError
func (e IncompatibleColumnTypeError) Error() string {
	return fmt.Sprintf("Column %s is not of type %s", e.Name, e.Expected)
}

// IncompatibleRowError occurs when a row's width does not match an expected Schema
type IncompatibleRowError struct{}

// Error returns a textual representation of this IncompatibleRowError
func (e IncompatibleRowError) Error() string {
	return "Row width is not compatible with Schema"
}

// InvalidGeometryRateError occurs when too many rows hold null or invalid
// geometries to trust a spatial key or partition scheme derived from them
type InvalidGeometryRateError struct {
	NumInvalid int
	NumRows    int
	Threshold  float64
}

// Error returns a textual representation of this InvalidGeometryRateError
func (e InvalidGeometryRateError) Error() string {
	rate := 0.0
	if e.NumRows > 0 {
		rate = float64(e.NumInvalid) / float64(e.NumRows)
	}
	return fmt.Sprintf("%d of %d rows have null or invalid geometry (rate %.4f exceeds threshold %.4f)", e.NumInvalid, e.NumRows, rate, e.Threshold)
}

// PartitionFanoutTooLargeError occurs when a requested iteration count or
// key resolution exceeds its safety cap
type PartitionFanoutTooLargeError struct {
	Requested int
	Max       int
}

// Error returns a textual representation of this PartitionFanoutTooLargeError
func (e PartitionFanoutTooLargeError) Error() string {
	return fmt.Sprintf("Requested partition fanout %d exceeds the maximum of %d", e.Requested, e.Max)
}

// EmptySampleError occurs when a sample draws zero valid points, making it
// impossible to build a partition scheme
type EmptySampleError struct{}

// Error returns a textual representation of this EmptySampleError
func (e EmptySampleError) Error() string {
	return "Sample contains no valid points"
}

// UnsupportedKeyKindError occurs when a requested spatial key encoder is not recognized
type UnsupportedKeyKindError struct{ Kind string }

// Error returns a textual representation of this UnsupportedKeyKindError
func (e UnsupportedKeyKindError) Error() string {
	return fmt.Sprintf("Spatial key kind %s is not supported", e.Kind)
}

// AlreadyExistsError occurs when an output target already holds data and
// overwriting was not requested
type AlreadyExistsError struct{ Target string }

// Error returns a textual representation of this AlreadyExistsError
func (e AlreadyExistsError) Error() string {
	return fmt.Sprintf("Output target %s already exists - enable overwriting to replace it", e.Target)
}

// PartitionWriteError occurs when materializing a single partition group
// fails. The write operation continues with remaining partitions and
// aggregates these per-partition failures.
type PartitionWriteError struct {
	Value string
	Cause error
}

// Error returns a textual representation of this PartitionWriteError
func (e PartitionWriteError) Error() string {
	return fmt.Sprintf("Failed to write partition %s: %v", e.Value, e.Cause)
}

// Unwrap returns the underlying write failure
func (e PartitionWriteError) Unwrap() error {
	return e.Cause
}

// NoDataSourceError occurs when a DataSource matches no input data
type NoDataSourceError struct{ Source string }

// Error returns a textual representation of this NoDataSourceError
func (e NoDataSourceError) Error() string {
	return fmt.Sprintf("Data source %s matched no input data", e.Source)
}
