package engine

import (
	"image"

	"github.com/sirupsen/logrus"

	"github.com/albumoftheday/aotd/engine/layout"
)

// ExtractRegions crops the named regions out of a full-size album-of-the-day photo for
// OCR. The photo must be exactly the canvas size. Crops are independent copies.
func ExtractRegions(photo image.Image, geometry layout.Geometry) (map[layout.Region]*image.RGBA, error) {
	if err := checkDimensions(photo, geometry.Canvas); err != nil {
		return nil, err
	}

	origin := photo.Bounds().Min
	parts := map[layout.Region]*image.RGBA{}
	for _, region := range layout.Regions {
		rect := geometry.Rect(region).Add(origin)
		parts[region] = cloneRGBA(photo, rect)
		logrus.WithFields(logrus.Fields{"region": region, "rect": rect}).Debug("Cropped image part")
	}
	return parts, nil
}
