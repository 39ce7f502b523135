package handwritten

import (
	"errors"
	"image"
	"image/color"
	"time"
)

type fakeImage struct {
	image.Image
	code     Code
	released int
	src      *fakeSource
}

func (i *fakeImage) Release() {
	i.released++
	i.src.live--
}

type fakeSource struct {
	size     image.Point
	live     int
	acquired []*fakeImage
	fail     error
}

func newFakeSource() *fakeSource {
	return &fakeSource{size: image.Pt(144, 42)}
}

func (s *fakeSource) Acquire(code Code) (Image, error) {
	if s.fail != nil {
		return nil, s.fail
	}
	img := &fakeImage{
		Image: image.NewGray(image.Rectangle{Max: s.size}),
		code:  code,
		src:   s,
	}
	s.live++
	s.acquired = append(s.acquired, img)
	return img, nil
}

type fakeElement struct {
	frame    image.Rectangle
	bitmap   image.Image
	inverted bool
	fill     color.Color
}

func (e *fakeElement) Frame() image.Rectangle     { return e.frame }
func (e *fakeElement) SetFrame(r image.Rectangle) { e.frame = r }

type fakeCompositor struct {
	bg       color.Color
	elems    []*fakeElement
	removed  []*fakeElement
	failFill bool
}

func (c *fakeCompositor) SetBackground(col color.Color) { c.bg = col }

func (c *fakeCompositor) AddBitmap(frame image.Rectangle, img image.Image, inverted bool) (Element, error) {
	e := &fakeElement{frame: frame, bitmap: img, inverted: inverted}
	c.elems = append(c.elems, e)
	return e, nil
}

func (c *fakeCompositor) AddFill(frame image.Rectangle, col color.Color) (Element, error) {
	if c.failFill {
		return nil, errors.New("no memory for overlay")
	}
	e := &fakeElement{frame: frame, fill: col}
	c.elems = append(c.elems, e)
	return e, nil
}

func (c *fakeCompositor) Remove(el Element) {
	for i, e := range c.elems {
		if Element(e) == el {
			c.elems = append(c.elems[:i], c.elems[i+1:]...)
			c.removed = append(c.removed, e)
			return
		}
	}
}

type fakeAnimation struct {
	el              Element
	start, finish   image.Rectangle
	duration, delay time.Duration
	done            func(bool)
	stopped         bool
}

func (a *fakeAnimation) Stop() { a.stopped = true }

// complete simulates the engine reporting completion.
func (a *fakeAnimation) complete() {
	a.el.SetFrame(a.finish)
	a.done(true)
}

type fakeAnimator struct {
	started []*fakeAnimation
}

func (a *fakeAnimator) Animate(el Element, start, finish image.Rectangle, duration, delay time.Duration, done func(bool)) Animation {
	fa := &fakeAnimation{el: el, start: start, finish: finish, duration: duration, delay: delay, done: done}
	a.started = append(a.started, fa)
	return fa
}

// last returns the most recently started animation.
func (a *fakeAnimator) last() *fakeAnimation {
	if len(a.started) == 0 {
		return nil
	}
	return a.started[len(a.started)-1]
}

type fixture struct {
	src   *fakeSource
	comp  *fakeCompositor
	anim  *fakeAnimator
	store *Store
}

func newFixture() *fixture {
	f := &fixture{
		src:  newFakeSource(),
		comp: &fakeCompositor{},
		anim: &fakeAnimator{},
	}
	f.store = NewStore(f.src, f.comp, f.anim, Layout{Screen: image.Rect(0, 0, 144, 168)})
	return f
}
