package output

import (
	"fmt"
	"path"
	"strings"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/go-tess/tess"
)

// formatValue renders a grouping column value as its partition label:
// integers are zero-padded to width so lexicographic file listings match
// numeric order, strings (quadkeys) pass through
func formatValue(v interface{}, colType tess.ColumnType, width int) string {
	switch colType.(type) {
	case *tess.Int64ColumnType:
		return fmt.Sprintf("%0*d", width, v.(int64))
	case *tess.Uint64ColumnType:
		return fmt.Sprintf("%0*d", width, v.(uint64))
	case *tess.StringColumnType:
		return v.(string)
	default:
		return colType.ToString(v)
	}
}

// sanitizeValue makes a partition label safe to embed in a file path.
// Unsafe runes are replaced with underscores; when anything was replaced, a
// short hash of the original label is appended so distinct labels cannot
// collapse into one path.
func sanitizeValue(value string) string {
	var b strings.Builder
	changed := false
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
			changed = true
		}
	}
	if changed {
		return fmt.Sprintf("%s-%x", b.String(), xxhash.Sum64String(value)&0xffffffff)
	}
	return b.String()
}

// partitionPath builds the target path for one partition group. With the
// hive layout the group becomes a key=value directory holding one part
// file; otherwise the label lands in the file name itself.
func partitionPath(target string, column string, value string, opts *WriteOptions) string {
	safe := sanitizeValue(value)
	if opts.HiveLayout {
		return path.Join(target, fmt.Sprintf("%s=%s", column, safe), opts.FilenamePrefix+"0"+opts.Extension)
	}
	return path.Join(target, fmt.Sprintf("%s-%s%s", opts.FilenamePrefix, safe, opts.Extension))
}
