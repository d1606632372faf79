package task

import (
	"strings"
	"unicode/utf8"
)

// LineWidth is the maximum number of characters in one display line.
const LineWidth = 44

// Wrap splits text into chunks of exactly width runes. The last chunk holds
// whatever remains. Joining the chunks gives back text byte for byte.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	var lines []string
	for utf8.RuneCountInString(text) > width {
		cut := 0
		for i := 0; i < width; i++ {
			_, size := utf8.DecodeRuneInString(text[cut:])
			cut += size
		}
		lines = append(lines, text[:cut])
		text = text[cut:]
	}
	return append(lines, text)
}

// WrapEntry trims each raw input line, wraps it to LineWidth and concatenates
// the results in order. Blank lines are skipped. An entry with no text
// returns ErrBlankTask.
func WrapEntry(raw []string) ([]string, error) {
	var lines []string
	for _, r := range raw {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		lines = append(lines, Wrap(r, LineWidth)...)
	}
	if len(lines) == 0 {
		return nil, ErrBlankTask
	}
	return lines, nil
}
