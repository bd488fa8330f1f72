package engine

import (
	"errors"
	"fmt"
	"image"

	"github.com/albumoftheday/aotd/engine/font"
	"github.com/albumoftheday/aotd/engine/layout"
)

var (
	// ErrDimensionMismatch is returned when a template or photo is not exactly the canvas size.
	ErrDimensionMismatch = errors.New("image size does not match the template canvas")
	// ErrNonSquareCoverArt is returned when the album cover width differs from its height.
	ErrNonSquareCoverArt = errors.New("album cover is not square")
	// ErrFontLoad is returned when the font file is missing or corrupt.
	ErrFontLoad = font.ErrLoad
	// ErrIncompleteRequest is returned when a render request lacks an artist or a cover.
	ErrIncompleteRequest = errors.New("incomplete render request")
	// ErrRequiresManualLayout marks content that cannot be laid out automatically.
	// It is a content problem rather than a system fault and should go to human review.
	ErrRequiresManualLayout = errors.New("text requires manual layout")
)

type DimensionError struct {
	Got  image.Point
	Want image.Point
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%v: input image is %dx%d, required %dx%d", ErrDimensionMismatch, e.Got.X, e.Got.Y, e.Want.X, e.Want.Y)
}

func (e *DimensionError) Unwrap() error {
	return ErrDimensionMismatch
}

type CoverArtError struct {
	Width  int
	Height int
}

func (e *CoverArtError) Error() string {
	return fmt.Sprintf("%v: cover is %dx%d", ErrNonSquareCoverArt, e.Width, e.Height)
}

func (e *CoverArtError) Unwrap() error {
	return ErrNonSquareCoverArt
}

// LayoutError carries enough context to diagnose a region that could not be fitted.
type LayoutError struct {
	Region    layout.Region
	StartSize int
	FloorSize int
	// Comment page being built when the failure happened, 1-based. Zero for title and genres.
	Page int
	// Word that does not fit on its own. Empty unless pagination failed.
	Word string
}

func (e *LayoutError) Error() string {
	if e.Word != "" {
		return fmt.Sprintf("%v: %s word %q on page %d does not fit even on its own (sizes %d down to %d)",
			ErrRequiresManualLayout, e.Region, e.Word, e.Page, e.StartSize, e.FloorSize)
	}
	return fmt.Sprintf("%v: %s text does not fit its region at sizes %d down to %d",
		ErrRequiresManualLayout, e.Region, e.StartSize, e.FloorSize)
}

func (e *LayoutError) Unwrap() error {
	return ErrRequiresManualLayout
}

func checkDimensions(img image.Image, want image.Point) error {
	if got := img.Bounds().Size(); got != want {
		return &DimensionError{Got: got, Want: want}
	}
	return nil
}
