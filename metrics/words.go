package metrics

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// WordsMetric counts and locates words in strings. Words are maximal runs
// of non-space runes.
type WordsMetric struct{}

// Words creates a word metric.
func Words() WordsMetric {
	return WordsMetric{}
}

// Count returns the number of words in s.
func (WordsMetric) Count(s string) int {
	return len(findWordSpans(s))
}

// Locations returns the byte spans of the words in s.
func (WordsMetric) Locations(s string) [][]int {
	return findWordSpans(s)
}

func findWordSpans(s string) [][]int {
	var spans [][]int
	for pos := 0; pos < len(s); {
		r, width := utf8.DecodeRuneInString(s[pos:])
		if unicode.IsSpace(r) {
			pos += width
			continue
		}
		start := pos
		pos += width
		for pos < len(s) {
			r, width = utf8.DecodeRuneInString(s[pos:])
			if unicode.IsSpace(r) {
				break
			}
			pos += width
		}
		spans = append(spans, []int{start, pos})
	}
	return spans
}

// --- Pattern metric --------------------------------------------------------

// PatternMetric counts and locates the matches of a regular expression.
type PatternMetric struct {
	re *regexp.Regexp
}

// Pattern creates a metric for a regular expression. Matches of length 0
// are ignored.
func Pattern(pattern string) (PatternMetric, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return PatternMetric{}, err
	}
	return PatternMetric{re: re}, nil
}

// Count returns the number of matches in s.
func (m PatternMetric) Count(s string) int {
	return len(m.Locations(s))
}

// Locations returns the byte spans of the matches in s.
func (m PatternMetric) Locations(s string) [][]int {
	all := m.re.FindAllStringIndex(s, -1)
	spans := all[:0]
	for _, loc := range all {
		if loc[1] > loc[0] {
			spans = append(spans, loc)
		}
	}
	return spans
}
