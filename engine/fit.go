package engine

import (
	"image"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/albumoftheday/aotd/engine/font"
)

// Metrics is the glyph measurement a font size has to provide for fitting.
type Metrics interface {
	AverageAdvanceWidth(alphabet string) float64
	MeasureWrapped(text string) (width, height float64)
}

// Sizer hands out Metrics for a font at a pixel size.
type Sizer interface {
	At(size int) Metrics
}

// fontSizer caches one face per size for the duration of a single call.
type fontSizer struct {
	font  *font.Font
	faces map[int]*font.Face
}

func newFontSizer(f *font.Font) *fontSizer {
	return &fontSizer{font: f, faces: map[int]*font.Face{}}
}

func (s *fontSizer) At(size int) Metrics {
	return s.face(size)
}

func (s *fontSizer) face(size int) *font.Face {
	face, ok := s.faces[size]
	if !ok {
		face = s.font.Face(size)
		s.faces[size] = face
	}
	return face
}

// FitResult is either a fitted size with its wrapped text, or an overflow.
// On overflow Size and Text hold the last attempt and are only diagnostic.
type FitResult struct {
	Fitted bool
	Size   int
	Text   string
}

// FitText finds the largest size from start downwards whose wrapped rendering fits the
// height of rect. The scan gives up once the next size would reach floor, so floor itself
// is never tried.
//
// Characters per line come from the average advance width over alphabet, and only the
// height of the wrapped block is checked against rect.
func FitText(sizer Sizer, alphabet string, text string, rect image.Rectangle, start int, floor int) FitResult {
	maxWidth := float64(rect.Dx())
	maxHeight := float64(rect.Dy())
	log := logrus.WithFields(logrus.Fields{"rect": rect, "start": start, "floor": floor})

	for size := start; ; size-- {
		metrics := sizer.At(size)
		average := metrics.AverageAdvanceWidth(alphabet)
		lineWidth := 1
		if average > 0 {
			lineWidth = int(math.Floor(maxWidth / average))
		}
		wrapped := wrapText(text, lineWidth)
		_, height := metrics.MeasureWrapped(wrapped)
		log.WithFields(logrus.Fields{
			"size":       size,
			"line_chars": lineWidth,
			"height":     height,
		}).Debug("Measured wrapped text")

		if height <= maxHeight {
			return FitResult{Fitted: true, Size: size, Text: wrapped}
		}
		if size-1 <= floor {
			return FitResult{Size: size, Text: wrapped}
		}
	}
}
