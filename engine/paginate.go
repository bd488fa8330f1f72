package engine

import (
	"image"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/albumoftheday/aotd/engine/layout"
)

// CommentPage is the comment content of one output image.
type CommentPage struct {
	// Wrapped text, lines separated by "\n".
	Text string
	Size int
	// Words of the original comment on this page, in order.
	Words []string
}

type paginatorState int

const (
	accumulating paginatorState = iota
	committing
	done
)

// paginator splits an overflowing comment into consecutive word chunks that each fit.
type paginator struct {
	fit   func(text string) FitResult
	sizes layout.FontSizes

	words []string
	next  int

	buffer  []string
	lastFit FitResult
	// Word that overflowed the buffer and opens the next page.
	carry string

	pages []CommentPage
}

// Paginate splits text into pages whose words each fit rect. Every word lands on exactly
// one page and the order is preserved. A word that does not fit on its own fails with a
// *LayoutError.
func Paginate(sizer Sizer, alphabet string, text string, rect image.Rectangle, sizes layout.FontSizes) ([]CommentPage, error) {
	p := &paginator{
		fit: func(text string) FitResult {
			return FitText(sizer, alphabet, text, rect, sizes.Start, sizes.Floor)
		},
		sizes: sizes,
		words: strings.Fields(text),
	}
	return p.run()
}

func (p *paginator) run() ([]CommentPage, error) {
	state := accumulating
	for state != done {
		switch state {
		case accumulating:
			if p.next == len(p.words) {
				state = committing
				continue
			}
			word := p.words[p.next]
			p.next++

			candidate := append(append([]string{}, p.buffer...), word)
			result := p.fit(strings.Join(candidate, " "))
			if result.Fitted {
				p.buffer, p.lastFit = candidate, result
				continue
			}
			if len(p.buffer) == 0 {
				return nil, p.unfittable(word)
			}
			p.carry = word
			state = committing

		case committing:
			if len(p.buffer) > 0 {
				p.pages = append(p.pages, CommentPage{Text: p.lastFit.Text, Size: p.lastFit.Size, Words: p.buffer})
				logrus.WithFields(logrus.Fields{
					"page":  len(p.pages),
					"words": len(p.buffer),
					"size":  p.lastFit.Size,
				}).Info("Done finding comment text for page")
			}
			p.buffer, p.lastFit = nil, FitResult{}

			if p.carry == "" {
				state = done
				continue
			}
			word := p.carry
			p.carry = ""
			result := p.fit(word)
			if !result.Fitted {
				return nil, p.unfittable(word)
			}
			p.buffer, p.lastFit = []string{word}, result
			state = accumulating
		}
	}
	return p.pages, nil
}

func (p *paginator) unfittable(word string) error {
	return &LayoutError{
		Region:    layout.Comments,
		StartSize: p.sizes.Start,
		FloorSize: p.sizes.Floor,
		Page:      len(p.pages) + 1,
		Word:      word,
	}
}
