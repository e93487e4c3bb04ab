// Package tess contains the core components of Tess, an engine for spatially
// indexing and partitioning tabular geometry data. This root package defines
// the types which are employed during the regular use of the engine, as well
// as in the extension of the engine, and is an excellent overview of Tess'
// key concepts: Tables of Rows with geometry columns, SpatialKeys which
// order those rows by 2D locality, and PartitionSchemes which divide them
// into balanced, spatially-coherent groups.
package tess
