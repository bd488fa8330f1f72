package engine

import (
	"image"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/albumoftheday/aotd/engine/layout"
)

// Composite pastes a downscaled cover onto canvas and returns the cover-art slot used.
//
// Covers at least CoverSide wide or tall are shrunk, keeping the aspect ratio, so that the
// longer side is CoverSide, and go into the default slot. Smaller covers are fitted into a
// square of their smallest side, and the slot shrinks by the difference on its right and
// bottom edges.
func Composite(canvas draw.Image, cover image.Image, geometry layout.Geometry) image.Rectangle {
	width, height := cover.Bounds().Dx(), cover.Bounds().Dy()

	var slot image.Rectangle
	var thumbWidth, thumbHeight int
	if width >= geometry.CoverSide || height >= geometry.CoverSide {
		slot = geometry.CoverSlot(geometry.CoverSide)
		thumbWidth, thumbHeight = thumbnailSize(width, height, geometry.CoverSide)
	} else {
		smallest := min(width, height)
		slot = geometry.CoverSlot(smallest)
		thumbWidth, thumbHeight = thumbnailSize(width, height, smallest)
	}

	target := image.Rectangle{Min: slot.Min, Max: slot.Min.Add(image.Pt(thumbWidth, thumbHeight))}
	xdraw.CatmullRom.Scale(canvas, target, cover, cover.Bounds(), xdraw.Src, nil)
	return slot
}

// thumbnailSize shrinks (never enlarges) width x height to fit limit x limit, keeping the aspect ratio.
func thumbnailSize(width, height, limit int) (int, int) {
	if width <= limit && height <= limit {
		return width, height
	}
	if width >= height {
		return limit, max(1, int(math.Round(float64(height)*float64(limit)/float64(width))))
	}
	return max(1, int(math.Round(float64(width)*float64(limit)/float64(height)))), limit
}

// cloneRGBA copies src into a new RGBA image whose bounds start at the origin.
func cloneRGBA(src image.Image, rect image.Rectangle) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(dst, dst.Bounds(), src, rect.Min, draw.Src)
	return dst
}
