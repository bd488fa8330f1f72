package font

import (
	"errors"
	"fmt"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ErrLoad is returned when a font file is missing or cannot be parsed.
var ErrLoad = errors.New("failed to load font")

// Font is a parsed TrueType font. Faces are created per size on demand.
type Font struct {
	font *truetype.Font
	// Extra pixels between lines of a multi-line block. E.g., 4
	lineGap float64
}

// Load reads and parses a TrueType font file.
func Load(path string) (*Font, error) {
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrLoad, path, err)
	}
	f, err := Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse parses TrueType font bytes.
func Parse(fontBytes []byte) (*Font, error) {
	parsed, err := truetype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	return &Font{font: parsed}, nil
}

// WithLineGap returns a copy of the font whose faces put gap pixels between lines.
func (f *Font) WithLineGap(gap float64) *Font {
	return &Font{font: f.font, lineGap: gap}
}

// Face is a font at one pixel size. Glyph advances are cached, so a Face must not be
// shared between goroutines.
type Face struct {
	size    int
	face    font.Face
	lineGap float64
	// Scratch context used only for measuring.
	measure *gg.Context
}

// Face returns the font at the given pixel size.
func (f *Font) Face(size int) *Face {
	face := &advanceCache{
		Face:     truetype.NewFace(f.font, &truetype.Options{Size: float64(size), DPI: 72}),
		advances: map[rune]glyphAdvance{},
	}
	measure := gg.NewContext(1, 1)
	measure.SetFontFace(face)
	return &Face{size: size, face: face, lineGap: f.lineGap, measure: measure}
}

func (f *Face) Size() int {
	return f.size
}

// FontFace exposes the underlying face for drawing.
func (f *Face) FontFace() font.Face {
	return f.face
}

// Height is the distance between two baselines without the line gap.
func (f *Face) Height() float64 {
	return float64(f.face.Metrics().Height) / 64
}

// Ascent is the distance from the top of a line to its baseline.
func (f *Face) Ascent() float64 {
	return float64(f.face.Metrics().Ascent) / 64
}

// LineSpacing is the baseline-to-baseline multiplier of Height used for multi-line blocks.
func (f *Face) LineSpacing() float64 {
	height := f.Height()
	if height == 0 {
		return 1
	}
	return 1 + f.lineGap/height
}

// AverageAdvanceWidth returns the mean advance width in pixels over the runes of alphabet.
func (f *Face) AverageAdvanceWidth(alphabet string) float64 {
	total, count := 0.0, 0
	for _, r := range alphabet {
		advance, _ := f.face.GlyphAdvance(r)
		total += float64(advance) / 64
		count++
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

// MeasureWrapped returns the bounding box of text laid out line by line exactly as given.
// Lines are separated by "\n"; nothing is re-wrapped.
func (f *Face) MeasureWrapped(text string) (width, height float64) {
	return f.measure.MeasureMultilineString(text, f.LineSpacing())
}

// MeasureLine returns the advance width of a single line.
func (f *Face) MeasureLine(line string) float64 {
	width, _ := f.measure.MeasureString(line)
	return width
}

type glyphAdvance struct {
	width fixed.Int26_6
	ok    bool
}

// advanceCache memoizes GlyphAdvance, which otherwise loads the glyph outline on every call.
type advanceCache struct {
	font.Face
	advances map[rune]glyphAdvance
}

func (c *advanceCache) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	if cached, ok := c.advances[r]; ok {
		return cached.width, cached.ok
	}
	width, ok := c.Face.GlyphAdvance(r)
	c.advances[r] = glyphAdvance{width: width, ok: ok}
	return width, ok
}
