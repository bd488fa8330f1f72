package engine

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/albumoftheday/aotd/engine/font"
	"github.com/albumoftheday/aotd/engine/layout"
)

var white = color.RGBA{255, 255, 255, 255}

func solid(width, height int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func testFont(t *testing.T) *font.Font {
	t.Helper()
	f, err := font.Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("failed to parse test font: %v", err)
	}
	return f
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	return New(testFont(t), layout.Default(), colorful.Color{})
}

// fakeMetrics measures every glyph as half the font size wide and every line as one size tall.
type fakeMetrics struct {
	size int
}

func (m fakeMetrics) AverageAdvanceWidth(string) float64 {
	return float64(m.size) / 2
}

func (m fakeMetrics) MeasureWrapped(text string) (float64, float64) {
	lines := strings.Split(text, "\n")
	longest := 0
	for _, line := range lines {
		longest = max(longest, len([]rune(line)))
	}
	return float64(longest*m.size) / 2, float64(len(lines) * m.size)
}

type fakeSizer struct {
	tried []int
}

func (s *fakeSizer) At(size int) Metrics {
	s.tried = append(s.tried, size)
	return fakeMetrics{size: size}
}

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func nearly(c color.Color, want color.RGBA) bool {
	r, g, b, _ := c.RGBA()
	diff := func(got uint32, want uint8) bool {
		d := int(got>>8) - int(want)
		return d >= -2 && d <= 2
	}
	return diff(r, want.R) && diff(g, want.G) && diff(b, want.B)
}

// words builds n distinct words, so no two comment pages can carry the same text.
func words(n int) string {
	base := []string{"musik", "ljud", "rytm", "melodi", "bas", "trummor", "synth", "ambient", "techno", "house"}
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s%d", base[i%len(base)], i)
	}
	return strings.Join(out, " ")
}
