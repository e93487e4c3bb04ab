package file

import (
	"bufio"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-tess/tess"
	"github.com/paulmach/orb/geojson"
	"github.com/pierrec/lz4/v4"
)

// WriterConf configures a file Writer
type WriterConf struct {
	// GeometryColumn names the column written as each feature's geometry.
	// Defaults to "geometry".
	GeometryColumn string
}

// Writer materializes rows as GeoJSONL files on a local filesystem,
// one Feature per line. Paths ending in .lz4 are compressed while
// streaming.
type Writer struct {
	conf *WriterConf
}

// CreateWriter is a factory for file Writers
func CreateWriter(conf *WriterConf) tess.TableWriter {
	if conf == nil {
		conf = &WriterConf{}
	}
	if conf.GeometryColumn == "" {
		conf.GeometryColumn = "geometry"
	}
	return &Writer{conf: conf}
}

// Exists returns true iff the given path is an existing file or a
// directory which already holds entries
func (w *Writer) Exists(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !info.IsDir() {
		return true, nil
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return false, err
	}
	return len(entries) > 0, nil
}

// Remove deletes previously-written output at the given path
func (w *Writer) Remove(path string) error {
	return os.RemoveAll(path)
}

// Write materializes the given rows (in order) as one GeoJSONL file,
// creating parent directories as needed. The table's CRS label, when
// known, is recorded on the file's first feature.
func (w *Writer) Write(t tess.Table, rowIndices []int, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var out io.Writer = f
	var lzw *lz4.Writer
	if strings.HasSuffix(path, ".lz4") {
		lzw = lz4.NewWriter(f)
		out = lzw
	}
	buf := bufio.NewWriter(out)
	for n, i := range rowIndices {
		feature, err := w.featureFor(t, t.GetRow(i), n == 0)
		if err != nil {
			return err
		}
		line, err := json.Marshal(feature)
		if err != nil {
			return err
		}
		if _, err := buf.Write(line); err != nil {
			return err
		}
		if err := buf.WriteByte('\n'); err != nil {
			return err
		}
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	if lzw != nil {
		if err := lzw.Close(); err != nil {
			return err
		}
	}
	return f.Close()
}

// featureFor assembles one row as a GeoJSON Feature object: the geometry
// column becomes the geometry member, a bounding-box column the bbox
// member, and every other non-null column a property
func (w *Writer) featureFor(t tess.Table, row tess.Row, first bool) (map[string]interface{}, error) {
	feature := map[string]interface{}{
		"type":     "Feature",
		"geometry": nil,
	}
	props := map[string]interface{}{}
	err := t.Schema().ForEachColumn(func(name string, index int, colType tess.ColumnType) error {
		if row.IsNil(name) {
			return nil
		}
		if name == w.conf.GeometryColumn {
			g, err := row.GetGeometry(name)
			if err != nil {
				return err
			}
			feature["geometry"] = geojson.NewGeometry(g)
			return nil
		}
		if _, ok := colType.(*tess.BoundsColumnType); ok {
			b, err := row.GetBounds(name)
			if err != nil {
				return err
			}
			feature["bbox"] = []float64{b.XMin, b.YMin, b.XMax, b.YMax}
			return nil
		}
		v, err := row.Get(name)
		if err != nil {
			return err
		}
		props[name] = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	feature["properties"] = props
	if first && t.CRS() != "" {
		feature["crs"] = map[string]interface{}{
			"type":       "name",
			"properties": map[string]interface{}{"name": t.CRS()},
		}
	}
	return feature, nil
}
