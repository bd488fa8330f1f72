package engine

import "testing"

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"empty", "", 10, ""},
		{"fits on one line", "hello world", 20, "hello world"},
		{"breaks between words", "hello world", 5, "hello\nworld"},
		{"collapses whitespace", "hello \n  world\tagain", 40, "hello world again"},
		{"breaks long word", "abcdefghij", 4, "abcd\nefgh\nij"},
		{"long word fills current line", "ab abcdefgh", 5, "ab ab\ncdefg\nh"},
		{"zero width clamps to one", "ab", 0, "a\nb"},
		{"counts runes", "åäö åäö", 3, "åäö\nåäö"},
		{"breaks after hyphens", "microhouse, ambient-techno, lo-fi", 12, "microhouse,\nambient-\ntechno, lo-\nfi"},
		{"keeps hyphenated word that fits", "lo-fi house", 20, "lo-fi house"},
		{"hyphen chunk opens next line", "post-rock", 6, "post-\nrock"},
		{"short prefix keeps hyphen word whole", "a-bcdef", 4, "a-bc\ndef"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrapText(tt.text, tt.width); got != tt.want {
				t.Errorf("wrapText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}
