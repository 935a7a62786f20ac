package builder

import (
	"strconv"
	"strings"
)

// IDFn maps a zero-based vertex index to a string.
type IDFn func(idx int) string

// DefaultIDFn numbers vertices from one: 0 → "1", 1 → "2", ...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx + 1)
}

// DefaultLabelFn labels vertices "V1", "V2", ...
func DefaultLabelFn(idx int) string {
	return "V" + strconv.Itoa(idx+1)
}

// ExcelColumnIDFn yields spreadsheet-style names: A..Z, AA, AB, ...
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		return ""
	}
	var sb strings.Builder
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+i%26))
	}
	for i := len(runes) - 1; i >= 0; i-- {
		sb.WriteRune(runes[i])
	}

	return sb.String()
}
