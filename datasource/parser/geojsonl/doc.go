// Package geojsonl parses newline-delimited GeoJSON: one Feature object
// per line. The geometry member lands in the schema's geometry column,
// a top-level bbox member in a bounding-box column, and all remaining
// schema columns are read from the feature's properties by name.
package geojsonl
