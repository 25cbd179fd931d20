package match

import (
	"strings"
	"unicode"
)

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// Words splits an identifier at separators and case changes. An acronym
// stays one word unless its last letter starts the next word:
// "PCBPlotParams" is PCB, Plot, Params.
func Words(s string) []string {
	var out []string
	for _, part := range strings.FieldsFunc(s, isSeparator) {
		out = append(out, splitCase([]rune(part))...)
	}

	return out
}

func splitCase(rs []rune) []string {
	var out []string

	start := 0
	for i := 1; i < len(rs); i++ {
		if wordStart(rs, i) {
			out = append(out, string(rs[start:i]))
			start = i
		}
	}

	return append(out, string(rs[start:]))
}

// wordStart reports whether rs[i] begins a new word: lower to upper
// ("libID"), or the last capital of an acronym followed by a lower case
// letter ("XMLParser").
func wordStart(rs []rune, i int) bool {
	if !unicode.IsUpper(rs[i]) {
		return false
	}

	if !unicode.IsUpper(rs[i-1]) {
		return true
	}

	return i+1 < len(rs) && unicode.IsLower(rs[i+1])
}

// SnakeCase converts a Go identifier to the lower_snake_case spelling used
// for s-expression tags: "TitleBlock" -> "title_block", "InBOM" -> "in_bom".
func SnakeCase(s string) string {
	return strings.ToLower(strings.Join(Words(s), "_"))
}

// Fold lowercases s and drops separators, so that TitleBlock, title_block
// and title-block compare equal.
func Fold(s string) string {
	return strings.Map(func(r rune) rune {
		if isSeparator(r) {
			return -1
		}

		return unicode.ToLower(r)
	}, s)
}
