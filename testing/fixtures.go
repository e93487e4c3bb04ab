// Package testing houses fixture helpers shared by operation and
// datasource tests
package testing

import (
	"fmt"
	"math/rand"

	"github.com/go-tess/tess"
	"github.com/go-tess/tess/internal/table"
	"github.com/go-tess/tess/schema"
	"github.com/paulmach/orb"
)

// PointSchema returns a schema with a geometry column and a string name
// column
func PointSchema() (tess.Schema, error) {
	s, err := schema.CreateSchema().CreateColumn("geometry", &tess.GeometryColumnType{})
	if err != nil {
		return nil, err
	}
	return s.CreateColumn("name", &tess.StringColumnType{})
}

// PointTable builds a table with a geometry column and a string name column
// from the given points. A nil point yields a null geometry.
func PointTable(points []*orb.Point) (tess.OperableTable, error) {
	s, err := PointSchema()
	if err != nil {
		return nil, err
	}
	t := table.CreateTable(s)
	for i, p := range points {
		name := fmt.Sprintf("p%d", i)
		var g interface{}
		if p != nil {
			g = *p
		}
		if err := t.AppendRow([]interface{}{g, name}); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// RandomPointTable builds a table of n seeded pseudo-random points drawn
// uniformly from the given domain
func RandomPointTable(n int, seed int64, domain tess.Bounds) (tess.OperableTable, error) {
	r := rand.New(rand.NewSource(seed))
	points := make([]*orb.Point, n)
	for i := range points {
		p := orb.Point{
			domain.XMin + r.Float64()*domain.Width(),
			domain.YMin + r.Float64()*domain.Height(),
		}
		points[i] = &p
	}
	return PointTable(points)
}
