package mallet

import (
	"strings"
	"unicode"

	"github.com/mohae/deepcopy"
)

// kebabName lowercases a field name, breaking words at case changes
// and turning underscores into hyphens: LineCount and Line_count both
// become "line-count".  Runs of capitals stay together until the run
// ends, so HTTPPort becomes "http-port".
func kebabName(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		switch {
		case r == '_':
			b.WriteByte('-')
		case unicode.IsUpper(r):
			if i > 0 && (!unicode.IsUpper(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func copyTokens(tokens []string) []string {
	if tokens == nil {
		return nil
	}
	return deepcopy.Copy(tokens).([]string)
}
