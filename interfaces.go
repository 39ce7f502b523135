package handwritten

import (
	"image"
	"image/color"
	"time"
)

// Image is a tile owned by exactly one slot.
//
// Release returns the tile's memory to its source. It is called once, when
// the owning slot is unloaded.
type Image interface {
	image.Image
	Release()
}

// ImageSource hands out a fresh Image for each Acquire call. Two slots
// showing the same code never share an Image.
type ImageSource interface {
	Acquire(code Code) (Image, error)
}

// Element is a positioned layer on the display surface.
type Element interface {
	Frame() image.Rectangle
	SetFrame(r image.Rectangle)
}

// Compositor stacks elements on the display surface. Elements added later
// are drawn above earlier ones.
type Compositor interface {
	SetBackground(c color.Color)
	AddBitmap(frame image.Rectangle, img image.Image, inverted bool) (Element, error)
	AddFill(frame image.Rectangle, c color.Color) (Element, error)
	Remove(el Element)
}

// Animation is the handle of a running frame animation.
//
// Stop cancels the animation if it is still outstanding; the completion
// callback is not invoked. Stopping never destroys the animated element.
type Animation interface {
	Stop()
}

// Animator moves an element's frame from start to finish over duration,
// after waiting delay, and calls done once when it finishes.
type Animator interface {
	Animate(el Element, start, finish image.Rectangle, duration, delay time.Duration, done func(finished bool)) Animation
}
