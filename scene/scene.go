// Package scene is an in-memory compositor for the clock face.
//
// Elements are kept in insertion order and rendered back to front into a
// gray4 framebuffer, which Flush hands to any periph display.Drawer.
package scene

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"periph.io/x/conn/v3/display"

	"github.com/flavioheleno/handwritten"
	"github.com/flavioheleno/handwritten/gray4"
)

type kind int

const (
	kindBitmap kind = iota
	kindFill
)

type element struct {
	scene    *Scene
	kind     kind
	frame    image.Rectangle
	img      image.Image
	inverted bool
	fill     gray4.Gray4
}

func (e *element) Frame() image.Rectangle {
	return e.frame
}

func (e *element) SetFrame(r image.Rectangle) {
	if r == e.frame {
		return
	}
	e.frame = r
	if e.scene != nil {
		e.scene.dirty = true
	}
}

// Scene implements handwritten.Compositor.
//
// Scene is not safe for concurrent use.
type Scene struct {
	bounds image.Rectangle
	bg     gray4.Gray4
	elems  []*element
	fb     *gray4.Image
	dirty  bool
}

var _ handwritten.Compositor = (*Scene)(nil)

// New creates an empty scene covering bounds. The width must be even.
func New(bounds image.Rectangle) *Scene {
	return &Scene{
		bounds: bounds,
		fb:     gray4.New(bounds),
		dirty:  true,
	}
}

// Bounds returns the area covered by the scene.
func (s *Scene) Bounds() image.Rectangle {
	return s.bounds
}

// SetBackground sets the colour behind every element.
func (s *Scene) SetBackground(c color.Color) {
	g := gray4.Model.Convert(c).(gray4.Gray4)
	if g != s.bg {
		s.bg = g
		s.dirty = true
	}
}

// AddBitmap places img at frame, above every existing element.
func (s *Scene) AddBitmap(frame image.Rectangle, img image.Image, inverted bool) (handwritten.Element, error) {
	if img == nil {
		return nil, errors.New("scene: nil bitmap")
	}
	return s.add(&element{kind: kindBitmap, frame: frame, img: img, inverted: inverted}), nil
}

// AddFill places a solid rectangle at frame, above every existing element.
func (s *Scene) AddFill(frame image.Rectangle, c color.Color) (handwritten.Element, error) {
	if c == nil {
		return nil, errors.New("scene: nil fill colour")
	}
	return s.add(&element{kind: kindFill, frame: frame, fill: gray4.Model.Convert(c).(gray4.Gray4)}), nil
}

func (s *Scene) add(e *element) *element {
	e.scene = s
	s.elems = append(s.elems, e)
	s.dirty = true
	return e
}

// Remove drops el from the scene. Unknown elements are ignored.
func (s *Scene) Remove(el handwritten.Element) {
	for i, e := range s.elems {
		if handwritten.Element(e) == el {
			s.elems = append(s.elems[:i], s.elems[i+1:]...)
			e.scene = nil
			s.dirty = true
			return
		}
	}
}

// Len returns the number of elements in the scene.
func (s *Scene) Len() int {
	return len(s.elems)
}

// Dirty reports whether the scene changed since the last Render.
func (s *Scene) Dirty() bool {
	return s.dirty
}

// Render composites every element and returns the framebuffer. The
// returned image is reused by the next Render.
func (s *Scene) Render() *gray4.Image {
	s.fb.Fill(s.bounds, s.bg)
	for _, e := range s.elems {
		r := e.frame.Intersect(s.bounds)
		if r.Empty() {
			continue
		}
		switch e.kind {
		case kindFill:
			s.fb.Fill(r, e.fill)
		case kindBitmap:
			var src image.Image = e.img
			if e.inverted {
				src = gray4.Inverted{Src: e.img}
			}
			sp := e.img.Bounds().Min.Add(r.Min.Sub(e.frame.Min))
			draw.Draw(s.fb, r, src, sp, draw.Src)
		}
	}
	s.dirty = false
	return s.fb
}

// Flush renders the scene and draws it on d if anything changed.
func (s *Scene) Flush(d display.Drawer) error {
	if !s.dirty {
		return nil
	}
	fb := s.Render()
	return d.Draw(d.Bounds(), fb, fb.Rect.Min)
}
