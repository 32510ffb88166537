package schedule

import (
	"strings"
	"unicode"
)

// Row is one data record keyed by the header cell exactly as written, so a
// padded column name such as " stage " does not answer to "stage". Number is
// the record's position in the file with the header counted as row 1.
type Row struct {
	Number int
	Fields map[string]string
}

// NewRow maps record positionally onto header. Cells past the end of the
// header are dropped; a repeated column name keeps its last cell.
func NewRow(number int, header, record []string) Row {
	fields := make(map[string]string, len(header))
	for i, name := range header {
		if i >= len(record) {
			break
		}
		fields[name] = record[i]
	}
	return Row{Number: number, Fields: fields}
}

// Get returns the raw value stored for name.
func (r Row) Get(name string) (string, bool) {
	v, ok := r.Fields[name]
	return v, ok
}

// Value returns the trimmed value for name, or "" when the row lacks it.
func (r Row) Value(name string) string {
	v, ok := r.Get(name)
	if !ok {
		return ""
	}
	return trim(v)
}

func trim(s string) string { return strings.TrimFunc(s, isSpace) }

// isSpace is unicode.IsSpace plus the ASCII separator controls U+001C..U+001F.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
