package engine

import (
	"strings"
	"unicode"
)

// wrapText greedily fills lines of at most width runes. Runs of whitespace collapse to a
// single space. Hyphenated words may break after a hyphen, and words longer than a line
// are broken into line-sized chunks.
func wrapText(text string, width int) string {
	width = max(width, 1)

	var lines []string
	var current []rune
	flush := func() {
		if len(current) > 0 {
			lines = append(lines, string(current))
			current = current[:0]
		}
	}

	for _, word := range strings.Fields(text) {
		for i, chunk := range hyphenChunks(word) {
			rest := chunk
			for len(rest) > 0 {
				// Chunks after the first continue the word without a space.
				separator := 0
				if len(current) > 0 && i == 0 {
					separator = 1
				}
				if len(current)+separator+len(rest) <= width {
					if separator == 1 {
						current = append(current, ' ')
					}
					current = append(current, rest...)
					break
				}
				if len(rest) <= width {
					flush()
					continue
				}
				space := width - len(current) - separator
				if space < 1 {
					flush()
					continue
				}
				if separator == 1 {
					current = append(current, ' ')
				}
				current = append(current, rest[:space]...)
				rest = rest[space:]
				flush()
			}
		}
	}
	flush()
	return strings.Join(lines, "\n")
}

// hyphenChunks splits word after every hyphen that follows two letters and precedes a letter,
// so "lo-fi" becomes "lo-" and "fi" while "-5" or "a-b" stay whole.
func hyphenChunks(word string) [][]rune {
	runes := []rune(word)
	var chunks [][]rune
	start := 0
	for i := 2; i+1 < len(runes); i++ {
		if runes[i] == '-' && unicode.IsLetter(runes[i-1]) && unicode.IsLetter(runes[i-2]) && unicode.IsLetter(runes[i+1]) {
			chunks = append(chunks, runes[start:i+1])
			start = i + 1
		}
	}
	return append(chunks, runes[start:])
}
