// Package gray4 provides the 4-bit grayscale image format used for tiles and
// framebuffers.
//
// Pixels are packed two per byte, left pixel in the high nibble, which is
// the layout SSD1322 panels expect in RAM. A 144x42 tile takes 3024 bytes.
package gray4

import (
	"image"
	"image/color"
	"image/draw"
)

// Gray4 is a 4-bit intensity (0-15). Only the low nibble of Y is used.
type Gray4 struct {
	Y uint8
}

// Black and White are the two ends of the intensity range.
var (
	Black = Gray4{Y: 0}
	White = Gray4{Y: 15}
)

// RGBA implements color.Color.
func (c Gray4) RGBA() (r, g, b, a uint32) {
	// 0xF * 0x1111 = 0xFFFF
	y := uint32(c.Y&0x0F) * 0x1111
	return y, y, y, 0xFFFF
}

// Inverse returns the complementary intensity.
func (c Gray4) Inverse() Gray4 {
	return Gray4{Y: 15 - c.Y&0x0F}
}

// Model converts colors to Gray4 using luma weights.
var Model = color.ModelFunc(convert)

func convert(c color.Color) color.Color {
	if g, ok := c.(Gray4); ok {
		return g
	}
	return toGray4(c)
}

func toGray4(c color.Color) Gray4 {
	if g, ok := c.(Gray4); ok {
		return g
	}
	r, g, b, _ := c.RGBA()
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Gray4{Y: uint8(y >> 12)}
}

// Image is a nibble-packed 4-bit grayscale image.
type Image struct {
	Pix    []byte
	Stride int
	Rect   image.Rectangle
}

var _ draw.Image = (*Image)(nil)

// New allocates an image. r must have an even width.
func New(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return &Image{Rect: r}
	}
	if w%2 != 0 {
		panic("gray4: width must be even")
	}
	return &Image{
		Pix:    make([]byte, w/2*h),
		Stride: w / 2,
		Rect:   r,
	}
}

// ColorModel implements image.Image.
func (p *Image) ColorModel() color.Model {
	return Model
}

// Bounds implements image.Image.
func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

// At implements image.Image.
func (p *Image) At(x, y int) color.Color {
	return p.Gray4At(x, y)
}

// Gray4At returns the pixel at (x, y), or black outside the bounds.
func (p *Image) Gray4At(x, y int) Gray4 {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Gray4{}
	}
	i, shift := p.offset(x, y)
	return Gray4{Y: (p.Pix[i] >> shift) & 0x0F}
}

// Set implements draw.Image.
func (p *Image) Set(x, y int, c color.Color) {
	p.SetGray4(x, y, toGray4(c))
}

// SetGray4 sets the pixel at (x, y). Writes outside the bounds are ignored.
func (p *Image) SetGray4(x, y int, c Gray4) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i, shift := p.offset(x, y)
	p.Pix[i] = p.Pix[i]&^(0x0F<<shift) | (c.Y&0x0F)<<shift
}

// Fill paints r, clipped to the image, with c.
func (p *Image) Fill(r image.Rectangle, c Gray4) {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return
	}
	// Whole bytes when both edges fall on byte boundaries.
	if (r.Min.X-p.Rect.Min.X)%2 == 0 && (r.Max.X-p.Rect.Min.X)%2 == 0 {
		b := (c.Y&0x0F)<<4 | c.Y&0x0F
		for y := r.Min.Y; y < r.Max.Y; y++ {
			start, _ := p.offset(r.Min.X, y)
			row := p.Pix[start : start+r.Dx()/2]
			for i := range row {
				row[i] = b
			}
		}
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			p.SetGray4(x, y, c)
		}
	}
}

// Bytes returns the number of bytes backing the image.
func (p *Image) Bytes() int {
	return len(p.Pix)
}

// offset returns the byte index and bit shift of (x, y). Even columns use
// the high nibble.
func (p *Image) offset(x, y int) (int, uint) {
	i := (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)/2
	shift := uint(4 * (1 - (x-p.Rect.Min.X)&1))
	return i, shift
}

// Inverted is a read-only view of an image with every intensity inverted.
type Inverted struct {
	Src image.Image
}

// ColorModel implements image.Image.
func (v Inverted) ColorModel() color.Model {
	return Model
}

// Bounds implements image.Image.
func (v Inverted) Bounds() image.Rectangle {
	return v.Src.Bounds()
}

// At implements image.Image.
func (v Inverted) At(x, y int) color.Color {
	return toGray4(v.Src.At(x, y)).Inverse()
}
