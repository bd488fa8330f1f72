package engine

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
)

// EncodePNG encodes pages as PNG, preserving their order.
func EncodePNG(pages []*image.RGBA) ([][]byte, error) {
	encoded := make([][]byte, 0, len(pages))
	for i, page := range pages {
		buffer := new(bytes.Buffer)
		if err := png.Encode(buffer, page); err != nil {
			return nil, fmt.Errorf("failed to encode page %d: %w", i+1, err)
		}
		encoded = append(encoded, buffer.Bytes())
	}
	return encoded, nil
}
