package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-tess/tess"
	"github.com/go-tess/tess/datasource/parser/geojsonl"
	"github.com/go-tess/tess/errors"
	tesstest "github.com/go-tess/tess/testing"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWriteThenLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	tbl, err := tesstest.PointTable([]*orb.Point{{1, 2}, {3, 4}, {5, 6}})
	require.Nil(t, err)
	tbl.SetCRS("EPSG:4326")

	w := CreateWriter(nil)
	require.Nil(t, w.Write(tbl, []int{0, 1}, filepath.Join(dir, "a.geojsonl")))
	require.Nil(t, w.Write(tbl, []int{2}, filepath.Join(dir, "b.geojsonl")))

	source := CreateDataSource(filepath.Join(dir, "*.geojsonl"), tbl.Schema())
	loaded, err := source.Load(geojsonl.CreateParser(nil))
	require.Nil(t, err)
	require.Equal(t, 3, loaded.NumRows())
	require.Equal(t, "EPSG:4326", loaded.CRS())

	// concatenation follows sorted path order, not goroutine completion
	expected := []orb.Point{{1, 2}, {3, 4}, {5, 6}}
	for i, p := range expected {
		g, err := loaded.GetRow(i).GetGeometry("geometry")
		require.Nil(t, err)
		require.Equal(t, p, g)
	}
}

func TestWriteThenLoadCompressed(t *testing.T) {
	dir := t.TempDir()
	tbl, err := tesstest.RandomPointTable(100, 8, tess.WorldBounds)
	require.Nil(t, err)

	w := CreateWriter(nil)
	path := filepath.Join(dir, "part-00000.geojsonl.lz4")
	require.Nil(t, w.Write(tbl, allRows(tbl), path))

	// the file on disk is lz4, not plain text
	raw, err := os.ReadFile(path)
	require.Nil(t, err)
	require.NotContains(t, string(raw[:16]), "Feature")

	source := CreateDataSource(filepath.Join(dir, "*.lz4"), tbl.Schema())
	loaded, err := source.Load(geojsonl.CreateParser(nil))
	require.Nil(t, err)
	require.Equal(t, tbl.NumRows(), loaded.NumRows())
}

func TestLoadManyFiles(t *testing.T) {
	dir := t.TempDir()
	tbl, err := tesstest.RandomPointTable(64, 3, tess.WorldBounds)
	require.Nil(t, err)
	w := CreateWriter(nil)
	for i := 0; i < 8; i++ {
		rows := make([]int, 8)
		for j := range rows {
			rows[j] = i*8 + j
		}
		require.Nil(t, w.Write(tbl, rows, filepath.Join(dir, "part-0000"+string(rune('0'+i))+".geojsonl")))
	}

	source := CreateDataSource(filepath.Join(dir, "part-*.geojsonl"), tbl.Schema())
	loaded, err := source.Load(geojsonl.CreateParser(nil))
	require.Nil(t, err)
	require.Equal(t, 64, loaded.NumRows())
	for i := 0; i < 64; i++ {
		want, err := tbl.GetRow(i).GetGeometry("geometry")
		require.Nil(t, err)
		got, err := loaded.GetRow(i).GetGeometry("geometry")
		require.Nil(t, err)
		require.Equal(t, want, got)
	}
}

func TestLoadNoMatches(t *testing.T) {
	source := CreateDataSource(filepath.Join(t.TempDir(), "*.geojsonl"), nil)
	_, err := source.Load(geojsonl.CreateParser(nil))
	require.IsType(t, errors.NoDataSourceError{}, err)
}

func TestWriterExistsAndRemove(t *testing.T) {
	dir := t.TempDir()
	w := CreateWriter(nil)

	// empty directory does not count as existing output
	exists, err := w.Exists(dir)
	require.Nil(t, err)
	require.False(t, exists)
	exists, err = w.Exists(filepath.Join(dir, "missing.geojsonl"))
	require.Nil(t, err)
	require.False(t, exists)

	tbl, err := tesstest.PointTable([]*orb.Point{{1, 1}})
	require.Nil(t, err)
	path := filepath.Join(dir, "part-00000.geojsonl")
	require.Nil(t, w.Write(tbl, []int{0}, path))

	exists, err = w.Exists(path)
	require.Nil(t, err)
	require.True(t, exists)
	exists, err = w.Exists(dir)
	require.Nil(t, err)
	require.True(t, exists)

	require.Nil(t, w.Remove(path))
	exists, err = w.Exists(path)
	require.Nil(t, err)
	require.False(t, exists)
}

func TestWriterBboxAndProperties(t *testing.T) {
	dir := t.TempDir()
	tbl, err := tesstest.PointTable([]*orb.Point{{2, 3}})
	require.Nil(t, err)
	withBbox, err := tbl.WithColumn("bbox", &tess.BoundsColumnType{})
	require.Nil(t, err)
	require.Nil(t, withBbox.GetRow(0).SetBounds("bbox", tess.Bounds{XMin: 2, YMin: 3, XMax: 2, YMax: 3}))

	w := CreateWriter(nil)
	path := filepath.Join(dir, "out.geojsonl")
	require.Nil(t, w.Write(withBbox, []int{0}, path))

	raw, err := os.ReadFile(path)
	require.Nil(t, err)
	line := string(raw)
	require.Contains(t, line, `"bbox":[2,3,2,3]`)
	require.Contains(t, line, `"name":"p0"`)

	source := CreateDataSource(path, withBbox.Schema())
	loaded, err := source.Load(geojsonl.CreateParser(nil))
	require.Nil(t, err)
	b, err := loaded.GetRow(0).GetBounds("bbox")
	require.Nil(t, err)
	require.Equal(t, tess.Bounds{XMin: 2, YMin: 3, XMax: 2, YMax: 3}, b)
}

func allRows(t tess.Table) []int {
	rows := make([]int, t.NumRows())
	for i := range rows {
		rows[i] = i
	}
	return rows
}
