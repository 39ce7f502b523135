package ssd1322

import (
	"bytes"
	"image"

	"github.com/flavioheleno/handwritten/gray4"
)

// damage returns the smallest byte-aligned rectangle covering every pixel
// that differs between prev and next, or an empty rectangle. Both images
// must share the same bounds.
func damage(prev, next *gray4.Image) image.Rectangle {
	minX, maxX := next.Stride, -1
	minY, maxY := next.Rect.Dy(), -1

	for y := 0; y < next.Rect.Dy(); y++ {
		row := y * next.Stride
		a, b := prev.Pix[row:row+next.Stride], next.Pix[row:row+next.Stride]
		if bytes.Equal(a, b) {
			continue
		}
		minY = min(minY, y)
		maxY = y
		for x := range b {
			if a[x] != b[x] {
				minX = min(minX, x)
				maxX = max(maxX, x)
			}
		}
	}
	if maxY < 0 {
		return image.Rectangle{}
	}
	return image.Rect(minX*2, minY, (maxX+1)*2, maxY+1).Add(next.Rect.Min)
}

// region copies the packed pixels of r out of img.
func region(img *gray4.Image, r image.Rectangle) []byte {
	r = r.Sub(img.Rect.Min)
	w := r.Dx() / 2
	out := make([]byte, 0, w*r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		start := y*img.Stride + r.Min.X/2
		out = append(out, img.Pix[start:start+w]...)
	}
	return out
}
