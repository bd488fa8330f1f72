// Package parse turns OCR transcriptions of album-of-the-day regions back into fields.
package parse

import (
	"strings"

	"github.com/albumoftheday/aotd/pkg/utils"
)

// Album is the content of a title region.
type Album struct {
	Artists []string
	Title   string
}

// Strip trims text and turns line breaks into spaces.
func Strip(text string) string {
	return strings.TrimSpace(strings.NewReplacer("\r", " ", "\n", " ").Replace(strings.TrimSpace(text)))
}

// Title parses "<artist1 & artist2> - <album>". It reports false when there is no "-".
// The first " - " separates artists from the album; without one, the first "-" does.
func Title(text string) (Album, bool) {
	text = Strip(text)
	artists, title, found := strings.Cut(text, " - ")
	if !found {
		artists, title, found = strings.Cut(text, "-")
	}
	if !found {
		return Album{}, false
	}
	return Album{
		Artists: nonEmpty(strings.Split(artists, "&")),
		Title:   strings.TrimSpace(title),
	}, true
}

// Genres splits a comma-separated genre list.
func Genres(text string) []string {
	return nonEmpty(strings.Split(Strip(text), ","))
}

var unsafeFilenameCharacters = strings.NewReplacer(
	"%", "", "&", "", "{", "", "}", "", "\\", "", "<", "", ">", "", "*", "",
	"?", "", "/", "", "$", "", "!", "", "'", "", "\"", "", ":", "", "@", "",
)

// SafeFilename removes characters that break file moves or object names.
func SafeFilename(name string) string {
	return unsafeFilenameCharacters.Replace(name)
}

func nonEmpty(parts []string) []string {
	return utils.Filter(utils.Map(parts, strings.TrimSpace), func(part string) bool {
		return part != ""
	})
}
