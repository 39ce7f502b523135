// Package glyph renders the word tiles shown by the clock face.
//
// Each tile is a gray4 image one slot tall and the full screen wide, white
// words on black, left aligned with a small margin. Tiles are rendered on
// Acquire and dropped on Release so only the resident tiles take memory.
package glyph

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/flavioheleno/handwritten"
	"github.com/flavioheleno/handwritten/gray4"
)

// Opts configures a Source.
type Opts struct {
	// Size is the tile size in pixels (default: 144x42). Width must be even.
	Size image.Point
	// Face is the font used for the words (default: basicfont.Face7x13).
	Face font.Face
	// Margin is the left inset of the words in pixels (default: 4).
	Margin int
}

// Source implements handwritten.ImageSource.
type Source struct {
	size   image.Point
	face   font.Face
	margin int
	live   int
}

var _ handwritten.ImageSource = (*Source)(nil)

// New creates a Source. opts can be nil to use defaults.
func New(opts *Opts) (*Source, error) {
	if opts == nil {
		opts = &Opts{}
	}
	size := opts.Size
	if size == (image.Point{}) {
		size = image.Pt(144, 42)
	}
	if size.X <= 0 || size.X%2 != 0 {
		return nil, errors.New("glyph: tile width must be even and positive")
	}
	if size.Y <= 0 {
		return nil, errors.New("glyph: tile height must be positive")
	}
	face := opts.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	margin := opts.Margin
	if margin == 0 {
		margin = 4
	}
	return &Source{size: size, face: face, margin: margin}, nil
}

// LoadFont reads a TrueType font for use as Opts.Face.
func LoadFont(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("glyph: read font: %w", err)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: parse font: %w", err)
	}
	if size <= 0 {
		size = 28
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// Live returns the number of acquired tiles not yet released.
func (s *Source) Live() int {
	return s.live
}

// Size returns the tile size.
func (s *Source) Size() image.Point {
	return s.size
}

// Acquire renders the tile for code.
func (s *Source) Acquire(code handwritten.Code) (handwritten.Image, error) {
	if !code.Valid() {
		return nil, fmt.Errorf("glyph: %w: %d", handwritten.ErrInvalidCode, int(code))
	}
	img := gray4.New(image.Rectangle{Max: s.size})
	s.render(img, handwritten.Word(code))
	s.live++
	return &Tile{Image: img, Code: code, src: s}, nil
}

func (s *Source) render(dst *gray4.Image, word string) {
	m := s.face.Metrics()
	ascent, descent := m.Ascent.Ceil(), m.Descent.Ceil()
	baseline := (s.size.Y-ascent-descent)/2 + ascent

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(gray4.White),
		Face: s.face,
		Dot:  fixed.P(s.margin, baseline),
	}
	d.DrawString(word)
}

// Tile is a rendered word. Release frees its pixels.
type Tile struct {
	*gray4.Image
	Code handwritten.Code

	src *Source
}

// Release returns the tile to its source. Calls after the first do nothing.
func (t *Tile) Release() {
	if t.src == nil {
		return
	}
	t.src.live--
	t.src = nil
	t.Image = &gray4.Image{}
}
