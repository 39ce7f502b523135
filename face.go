package handwritten

import (
	"errors"
	"image"
	"log"
	"time"
)

// Opts configures a Face.
type Opts struct {
	// Screen is the display area (default: 144x168).
	Screen image.Rectangle
	// Now reads the wall clock (default: time.Now).
	Now func() time.Time
	// Inverted draws dark words on a light background.
	Inverted bool
	// Logger receives failed slot operations (optional).
	Logger *log.Logger
}

// Face drives the three slots from wall-clock time.
//
// Face is not safe for concurrent use. Tick, SetInverted and the animation
// engine's completion callbacks must all run on the same event loop.
type Face struct {
	store    *Store
	comp     Compositor
	now      func() time.Time
	inverted bool
	log      *log.Logger
}

// New creates a Face with every slot empty. Nothing is drawn until the
// first Tick or Refresh.
func New(src ImageSource, comp Compositor, anim Animator, opts *Opts) (*Face, error) {
	if src == nil || comp == nil || anim == nil {
		return nil, errors.New("handwritten: image source, compositor and animator are required")
	}
	if opts == nil {
		opts = &Opts{}
	}

	screen := opts.Screen
	if screen.Empty() {
		screen = image.Rect(0, 0, 144, 168)
	}
	if screen.Dy() < 4 {
		return nil, errors.New("handwritten: screen must be at least 4 pixels tall")
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	f := &Face{
		store:    NewStore(src, comp, anim, Layout{Screen: screen}),
		comp:     comp,
		now:      now,
		inverted: opts.Inverted,
		log:      opts.Logger,
	}
	f.store.SetInverted(f.inverted)
	comp.SetBackground(backgroundColor(f.inverted))
	return f, nil
}

// Store returns the slot store driven by the face.
func (f *Face) Store() *Store {
	return f.store
}

// Tick shows the time t.
//
// The change count is computed once, before any slot changes, and the
// slots are updated in order. A failing slot does not stop the others.
func (f *Face) Tick(t time.Time) error {
	target := ComputeValues(t.Hour(), t.Minute())
	changes := ClassifyChange(f.store.Residents(), target)

	var errs []error
	for i, code := range target {
		if err := f.store.Display(i, code, changes); err != nil {
			f.logf("handwritten: %v", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Refresh shows the current time.
func (f *Face) Refresh() error {
	return f.Tick(f.now())
}

// Inverted reports the current colour setting.
func (f *Face) Inverted() bool {
	return f.inverted
}

// SetInverted changes the colour setting. On a change every slot is
// unloaded and the current time redrawn so all tiles use the new colours.
func (f *Face) SetInverted(v bool) error {
	if v == f.inverted {
		return nil
	}
	f.inverted = v
	f.store.SetInverted(v)
	f.comp.SetBackground(backgroundColor(v))

	if err := f.unloadAll(); err != nil {
		return err
	}
	return f.Refresh()
}

// Close unloads every slot.
func (f *Face) Close() error {
	return f.unloadAll()
}

func (f *Face) unloadAll() error {
	var errs []error
	for i := 0; i < NumSlots; i++ {
		if err := f.store.Unload(i); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (f *Face) logf(format string, args ...any) {
	if f.log != nil {
		f.log.Printf(format, args...)
	}
}
