package schema

import (
	"testing"

	"github.com/go-tess/tess"
	"github.com/go-tess/tess/errors"
	"github.com/stretchr/testify/require"
)

func TestSchemaEqualityBasic(t *testing.T) {
	schema1 := CreateSchema()
	schema1, err := schema1.CreateColumn("geometry", &tess.GeometryColumnType{})
	require.Nil(t, err)
	schema1, err = schema1.CreateColumn("name", &tess.StringColumnType{})
	require.Nil(t, err)

	schema2 := CreateSchema()
	schema2, err = schema2.CreateColumn("geometry", &tess.GeometryColumnType{})
	require.Nil(t, err)
	schema2, err = schema2.CreateColumn("name", &tess.StringColumnType{})
	require.Nil(t, err)

	require.True(t, schema1.Equals(schema2))
}

func TestSchemaEqualityOrder(t *testing.T) {
	schema1 := CreateSchema()
	schema1, err := schema1.CreateColumn("geometry", &tess.GeometryColumnType{})
	require.Nil(t, err)
	schema1, err = schema1.CreateColumn("name", &tess.StringColumnType{})
	require.Nil(t, err)

	schema2 := CreateSchema()
	schema2, err = schema2.CreateColumn("name", &tess.StringColumnType{})
	require.Nil(t, err)
	schema2, err = schema2.CreateColumn("geometry", &tess.GeometryColumnType{})
	require.Nil(t, err)

	require.False(t, schema1.Equals(schema2))
}

func TestSchemaEqualityTypes(t *testing.T) {
	schema1 := CreateSchema()
	schema1, err := schema1.CreateColumn("hilbert", &tess.Uint64ColumnType{})
	require.Nil(t, err)

	schema2 := CreateSchema()
	schema2, err = schema2.CreateColumn("hilbert", &tess.Int64ColumnType{})
	require.Nil(t, err)

	require.False(t, schema1.Equals(schema2))
}

func TestSchemaCreateColumn(t *testing.T) {
	s := CreateSchema()
	s, err := s.CreateColumn("geometry", &tess.GeometryColumnType{})
	require.Nil(t, err)
	require.True(t, s.HasColumn("geometry"))
	require.Equal(t, 1, s.NumColumns())

	idx, err := s.ColumnIndex("geometry")
	require.Nil(t, err)
	require.Equal(t, 0, idx)

	_, err = s.CreateColumn("geometry", &tess.GeometryColumnType{})
	require.IsType(t, errors.ColumnExistsError{}, err)
}

func TestSchemaRenameColumn(t *testing.T) {
	s := CreateSchema()
	s, err := s.CreateColumn("quadkey", &tess.StringColumnType{})
	require.Nil(t, err)
	s, err = s.RenameColumn("quadkey", "qk")
	require.Nil(t, err)
	require.False(t, s.HasColumn("quadkey"))
	require.True(t, s.HasColumn("qk"))

	_, err = s.RenameColumn("missing", "other")
	require.IsType(t, errors.MissingColumnError{}, err)
}

func TestSchemaRemoveColumn(t *testing.T) {
	s := CreateSchema()
	s, err := s.CreateColumn("geometry", &tess.GeometryColumnType{})
	require.Nil(t, err)
	s, err = s.CreateColumn("cell", &tess.Int64ColumnType{})
	require.Nil(t, err)

	s, removed := s.RemoveColumn("geometry")
	require.True(t, removed)
	require.False(t, s.HasColumn("geometry"))
	require.True(t, s.HasColumn("cell"))

	// removing reindexes remaining columns
	idx, err := s.ColumnIndex("cell")
	require.Nil(t, err)
	require.Equal(t, 0, idx)

	_, removed = s.RemoveColumn("geometry")
	require.False(t, removed)
}

func TestSchemaImmutability(t *testing.T) {
	s := CreateSchema()
	s1, err := s.CreateColumn("geometry", &tess.GeometryColumnType{})
	require.Nil(t, err)
	require.Equal(t, 0, s.NumColumns())
	require.Equal(t, 1, s1.NumColumns())
}
