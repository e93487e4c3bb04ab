// Package output materializes a table as partitioned files: rows are
// grouped by a key or cell-id column and each group is handed to a
// TableWriter as one file. Grouping is shared between the preview and the
// write path, so a preview always reports the exact files a write would
// produce.
package output
