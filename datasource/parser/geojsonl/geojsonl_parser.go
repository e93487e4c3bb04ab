package geojsonl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/go-tess/tess"
	"github.com/paulmach/orb/geojson"
	"github.com/tidwall/gjson"
)

// ParserConf configures a GeoJSONL Parser
type ParserConf struct {
	// GeometryColumn names the schema column receiving each feature's
	// geometry. Defaults to "geometry".
	GeometryColumn string
	// MaxBufferSize is the maximum size in bytes of the buffer used to read
	// lines. Defaults to bufio.MaxScanTokenSize.
	MaxBufferSize int
}

// Parser appends rows to a Table from newline-delimited GeoJSON data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new GeoJSONL Parser. Property columns are located
// lazily within each feature using their column name, which should be a
// gjson path relative to the feature's properties object. Properties which
// do not correspond to a schema column are ignored.
func CreateParser(conf *ParserConf) *Parser {
	if conf == nil {
		conf = &ParserConf{}
	}
	if conf.GeometryColumn == "" {
		conf.GeometryColumn = "geometry"
	}
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	return &Parser{conf: conf}
}

// Parse reads features from r, appending one row per line to the target
// Table. Blank lines are skipped. A feature-level crs member (a legacy
// extension still emitted by common geospatial tools) is recorded as the
// target's CRS label if the target does not have one yet.
func (p *Parser) Parse(r io.Reader, target tess.BuildableTable) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), p.conf.MaxBufferSize)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		feature := gjson.Parse(line)
		if target.CRS() == "" {
			if crs := feature.Get("crs.properties.name"); crs.Exists() {
				target.SetCRS(crs.String())
			}
		}
		values, err := p.rowValues(feature, target.Schema())
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
		if err := target.AppendRow(values); err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
	}
	return scanner.Err()
}

func (p *Parser) rowValues(feature gjson.Result, schema tess.Schema) ([]interface{}, error) {
	values := make([]interface{}, schema.NumColumns())
	err := schema.ForEachColumn(func(name string, index int, colType tess.ColumnType) error {
		if name == p.conf.GeometryColumn {
			raw := feature.Get("geometry")
			if !raw.Exists() || raw.Type == gjson.Null {
				return nil
			}
			g, err := geojson.UnmarshalGeometry([]byte(raw.Raw))
			if err != nil {
				return fmt.Errorf("column %s holds invalid geometry: %w", name, err)
			}
			values[index] = g.Geometry()
			return nil
		}
		if _, ok := colType.(*tess.BoundsColumnType); ok {
			return parseBbox(feature.Get("bbox"), name, values, index)
		}
		val := feature.Get("properties." + name)
		if !val.Exists() || val.Type == gjson.Null {
			return nil
		}
		return parseValue(val, name, colType, values, index)
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

func parseBbox(val gjson.Result, name string, values []interface{}, index int) error {
	if !val.Exists() || val.Type == gjson.Null {
		return nil
	}
	coords := val.Array()
	if len(coords) != 4 {
		return fmt.Errorf("column %s: bbox must hold 4 numbers, holds %d", name, len(coords))
	}
	values[index] = tess.Bounds{
		XMin: coords[0].Float(),
		YMin: coords[1].Float(),
		XMax: coords[2].Float(),
		YMax: coords[3].Float(),
	}
	return nil
}

func parseValue(val gjson.Result, name string, colType tess.ColumnType, values []interface{}, index int) error {
	switch colType.(type) {
	case *tess.BoolColumnType:
		if !val.IsBool() {
			return fmt.Errorf("column %s was not a boolean. Was: %s", name, val.Raw)
		}
		values[index] = val.Bool()
	case *tess.Int64ColumnType:
		if val.Type != gjson.Number {
			return fmt.Errorf("column %s was not a number. Was: %s", name, val.Raw)
		}
		values[index] = val.Int()
	case *tess.Uint64ColumnType:
		if val.Type != gjson.Number {
			return fmt.Errorf("column %s was not a number. Was: %s", name, val.Raw)
		}
		values[index] = val.Uint()
	case *tess.Float64ColumnType:
		if val.Type != gjson.Number {
			return fmt.Errorf("column %s was not a number. Was: %s", name, val.Raw)
		}
		values[index] = val.Float()
	case *tess.StringColumnType:
		if val.Type != gjson.String {
			return fmt.Errorf("column %s was not a string. Was: %s", name, val.Raw)
		}
		values[index] = val.String()
	default:
		return fmt.Errorf("GeoJSONL parsing does not support column type %T", colType)
	}
	return nil
}
