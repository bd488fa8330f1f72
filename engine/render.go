package engine

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/sirupsen/logrus"

	"github.com/albumoftheday/aotd/engine/font"
	"github.com/albumoftheday/aotd/engine/layout"
)

// Request is the content of one album-of-the-day image. The engine only reads it.
type Request struct {
	// One or more artists, joined with " & " in the title.
	Artists []string
	Album   string
	// Genre names, joined with ", ". May be empty.
	Genres   []string
	Comments string
	// Must be square.
	Cover image.Image
}

// Engine renders and decomposes album-of-the-day images for one font and geometry.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	font     *font.Font
	geometry layout.Geometry
	// E.g., black (0, 0, 0)
	textColor colorful.Color
}

func New(textFont *font.Font, geometry layout.Geometry, textColor colorful.Color) *Engine {
	return &Engine{
		font:      textFont.WithLineGap(geometry.LineGap),
		geometry:  geometry.Clone(),
		textColor: textColor,
	}
}

// Geometry returns a copy of the engine's geometry.
func (e *Engine) Geometry() layout.Geometry {
	return e.geometry.Clone()
}

// Title builds "<artist1 & artist2> - <album>".
func Title(artists []string, album string) string {
	return strings.Join(artists, " & ") + " - " + album
}

// Render draws the request onto a copy of template and returns one image per comment
// page, in order. The template must be exactly the canvas size and the cover square.
func (e *Engine) Render(template image.Image, request Request) ([]*image.RGBA, error) {
	if err := checkDimensions(template, e.geometry.Canvas); err != nil {
		return nil, err
	}
	if len(request.Artists) == 0 {
		return nil, fmt.Errorf("%w: at least one artist is required", ErrIncompleteRequest)
	}
	if request.Cover == nil {
		return nil, fmt.Errorf("%w: album cover is required", ErrIncompleteRequest)
	}
	if size := request.Cover.Bounds().Size(); size.X != size.Y {
		return nil, &CoverArtError{Width: size.X, Height: size.Y}
	}

	sizer := newFontSizer(e.font)
	base := cloneRGBA(template, template.Bounds())
	drawingContext := gg.NewContextForRGBA(base)
	drawingContext.SetColor(e.textColor)

	if err := e.drawFitted(sizer, drawingContext, layout.Title, Title(request.Artists, request.Album), true); err != nil {
		return nil, err
	}
	if err := e.drawFitted(sizer, drawingContext, layout.Genres, strings.Join(request.Genres, ", "), false); err != nil {
		return nil, err
	}

	pages, err := e.commentPages(sizer, request.Comments)
	if err != nil {
		return nil, err
	}
	logrus.WithField("pages", len(pages)).Info("Done laying out image text")

	slot := Composite(base, request.Cover, e.geometry)
	logrus.WithField("slot", slot).Debug("Pasted album cover")

	images := make([]*image.RGBA, 0, len(pages))
	for i, page := range pages {
		logrus.Debugf("Generating image %d/%d", i+1, len(pages))
		pageImage := cloneRGBA(base, base.Bounds())
		pageContext := gg.NewContextForRGBA(pageImage)
		pageContext.SetColor(e.textColor)
		drawBlock(pageContext, sizer.face(page.Size), page.Text, e.geometry.Rect(layout.Comments), true)
		images = append(images, pageImage)
	}
	return images, nil
}

func (e *Engine) fit(sizer *fontSizer, region layout.Region, text string) FitResult {
	sizes := e.geometry.FontSizes(region)
	return FitText(sizer, e.geometry.Alphabet, text, e.geometry.Rect(region), sizes.Start, sizes.Floor)
}

func (e *Engine) drawFitted(sizer *fontSizer, drawingContext *gg.Context, region layout.Region, text string, centerVertically bool) error {
	result := e.fit(sizer, region, text)
	if !result.Fitted {
		sizes := e.geometry.FontSizes(region)
		return &LayoutError{Region: region, StartSize: sizes.Start, FloorSize: sizes.Floor}
	}
	logrus.WithFields(logrus.Fields{"region": region, "size": result.Size}).Debug("Font size calculated")
	drawBlock(drawingContext, sizer.face(result.Size), result.Text, e.geometry.Rect(region), centerVertically)
	return nil
}

// commentPages fits the comment directly, or paginates it when even the smallest size overflows.
func (e *Engine) commentPages(sizer *fontSizer, comments string) ([]CommentPage, error) {
	result := e.fit(sizer, layout.Comments, comments)
	if result.Fitted {
		return []CommentPage{{Text: result.Text, Size: result.Size, Words: strings.Fields(comments)}}, nil
	}
	logrus.Info("Comments need to be split into multiple pages")
	return Paginate(sizer, e.geometry.Alphabet, comments, e.geometry.Rect(layout.Comments), e.geometry.FontSizes(layout.Comments))
}

// drawBlock draws pre-wrapped text centred horizontally in rect, line by line with each
// line centred in the block. The block is top-anchored unless centerVertically is set.
func drawBlock(drawingContext *gg.Context, face *font.Face, text string, rect image.Rectangle, centerVertically bool) {
	width, height := face.MeasureWrapped(text)
	left := float64(rect.Min.X) + math.Floor((float64(rect.Dx())-width)/2)
	top := float64(rect.Min.Y)
	if centerVertically {
		top += math.Floor((float64(rect.Dy()) - height) / 2)
	}

	drawingContext.SetFontFace(face.FontFace())
	lineAdvance := face.Height() * face.LineSpacing()
	for i, line := range strings.Split(text, "\n") {
		x := left + math.Floor((width-face.MeasureLine(line))/2)
		y := top + face.Ascent() + float64(i)*lineAdvance
		drawingContext.DrawString(line, x, y)
	}
}
