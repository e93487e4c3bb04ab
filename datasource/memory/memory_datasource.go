// Package memory reads tables from in-memory buffers, primarily for tests
// and for embedding callers which already hold their rows
package memory

import (
	"bytes"

	"github.com/go-tess/tess"
	"github.com/go-tess/tess/internal/table"
)

// DataSource is a set of in-memory buffers containing rows to load into a
// single Table
type DataSource struct {
	data   [][]byte
	schema tess.Schema
}

// CreateDataSource is a factory for memory DataSources
func CreateDataSource(data [][]byte, schema tess.Schema) tess.DataSource {
	return &DataSource{data: data, schema: schema}
}

// ToString returns a string representation of this DataSource
func (ms *DataSource) ToString() string {
	return "memory"
}

// Load parses every buffer into one Table, in buffer order
func (ms *DataSource) Load(parser tess.DataSourceParser) (tess.OperableTable, error) {
	result := table.CreateTable(ms.schema)
	for _, buf := range ms.data {
		if err := parser.Parse(bytes.NewReader(buf), result); err != nil {
			return nil, err
		}
	}
	return result, nil
}
