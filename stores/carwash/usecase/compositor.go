package usecase

import (
	"bytes"
	"image"
	"image/draw"
	"image/png"
)

// composite flattens layers onto a transparent square canvas in slice order,
// bottom first, and encodes the result as png.
func composite(layers []image.Image, size int) ([]byte, error) {
	canvas := image.NewRGBA(image.Rect(0, 0, size, size))
	for _, layer := range layers {
		draw.Draw(canvas, canvas.Bounds(), layer, image.Point{}, draw.Over)
	}

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, canvas); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
