package file

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-tess/tess"
	"github.com/go-tess/tess/errors"
	"github.com/go-tess/tess/internal/table"
	"github.com/go-tess/tess/logging"
	"github.com/pierrec/lz4/v4"
	"golang.org/x/sync/errgroup"
)

// DataSource is a set of files, matched by a glob, containing rows to load
// into a single Table
type DataSource struct {
	glob   string
	schema tess.Schema
}

// CreateDataSource is a factory for file DataSources
func CreateDataSource(glob string, schema tess.Schema) tess.DataSource {
	return &DataSource{glob: glob, schema: schema}
}

// ToString returns a string representation of this DataSource
func (fs *DataSource) ToString() string {
	return fs.glob
}

// Load parses every file matching the glob into one Table. Files are
// parsed concurrently, each into its own staging table, then concatenated
// in sorted path order - so the result is deterministic regardless of
// which file finishes first. Files ending in .lz4 are decompressed while
// streaming.
func (fs *DataSource) Load(parser tess.DataSourceParser) (tess.OperableTable, error) {
	matches, err := filepath.Glob(fs.glob)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, errors.NoDataSourceError{Source: fs.glob}
	}
	sort.Strings(matches)

	staged := make([]tess.OperableTable, len(matches))
	var g errgroup.Group
	for i, path := range matches {
		i, path := i, path
		g.Go(func() error {
			t := table.CreateTable(fs.schema)
			if err := fs.parseFile(parser, path, t); err != nil {
				return err
			}
			staged[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := table.CreateTable(fs.schema)
	for _, t := range staged {
		if result.CRS() == "" && t.CRS() != "" {
			result.SetCRS(t.CRS())
		}
		err := t.ForEachRow(func(row tess.Row) error {
			values := make([]interface{}, 0, fs.schema.NumColumns())
			err := fs.schema.ForEachColumn(func(name string, index int, colType tess.ColumnType) error {
				if row.IsNil(name) {
					values = append(values, nil)
					return nil
				}
				v, err := row.Get(name)
				if err != nil {
					return err
				}
				values = append(values, v)
				return nil
			})
			if err != nil {
				return err
			}
			return result.AppendRow(values)
		})
		if err != nil {
			return nil, err
		}
	}
	logging.Logf(logging.InfoLevel, "file: loaded %d rows from %d files matching %s", result.NumRows(), len(matches), fs.glob)
	return result, nil
}

func (fs *DataSource) parseFile(parser tess.DataSourceParser, path string, target tess.BuildableTable) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if strings.HasSuffix(path, ".lz4") {
		return parser.Parse(lz4.NewReader(f), target)
	}
	return parser.Parse(f, target)
}
