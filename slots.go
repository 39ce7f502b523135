package handwritten

import (
	"fmt"
	"image"
	"image/color"

	"github.com/flavioheleno/handwritten/gray4"
)

// Layout places the slots on the screen.
//
// Each slot is a full-width band a quarter of the screen tall. The three
// bands are centred vertically, leaving an eighth of the screen above the
// first one.
type Layout struct {
	Screen image.Rectangle
}

// TileSize returns the size tiles should be rendered at.
func (l Layout) TileSize() image.Point {
	return image.Pt(l.Screen.Dx(), l.Screen.Dy()/4)
}

// Frame returns the on-screen rectangle for a tile of the given size in
// slot.
func (l Layout) Frame(slot int, size image.Point) image.Rectangle {
	h := l.Screen.Dy()
	origin := image.Pt(l.Screen.Min.X, l.Screen.Min.Y+h/8+slot*(h/4))
	return image.Rectangle{Min: origin, Max: origin.Add(size)}
}

type slot struct {
	code    Code // Absent when empty
	img     Image
	bitmap  Element
	overlay Element
	reveal  Animation
	gen     uint64
}

// Store owns the resident tile of every slot.
//
// A slot holds at most one tile; it must be unloaded before another code
// can be loaded. Store is not safe for concurrent use: all calls, including
// animation completion callbacks, are expected on one event loop.
type Store struct {
	src    ImageSource
	comp   Compositor
	anim   Animator
	layout Layout

	slots    [NumSlots]slot
	history  History
	inverted bool
}

// NewStore returns a store with every slot empty.
func NewStore(src ImageSource, comp Compositor, anim Animator, layout Layout) *Store {
	s := &Store{
		src:     src,
		comp:    comp,
		anim:    anim,
		layout:  layout,
		history: NewHistory(),
	}
	for i := range s.slots {
		s.slots[i].code = Absent
	}
	return s
}

// Resident returns the code shown in slot i, or Absent.
func (s *Store) Resident(i int) Code {
	if i < 0 || i >= NumSlots {
		return Absent
	}
	return s.slots[i].code
}

// Residents returns the codes of all slots.
func (s *Store) Residents() Values {
	var v Values
	for i := range s.slots {
		v[i] = s.slots[i].code
	}
	return v
}

// History returns the reveal history used for the next load.
func (s *Store) History() History {
	return s.history
}

// Inverted reports whether newly loaded tiles are drawn inverted.
func (s *Store) Inverted() bool {
	return s.inverted
}

// SetInverted selects the colours used by subsequent loads. Resident tiles
// keep their colours until reloaded.
func (s *Store) SetInverted(v bool) {
	s.inverted = v
}

// Unload removes the tile in slot i and releases its memory. Unloading an
// empty slot does nothing.
func (s *Store) Unload(i int) error {
	if i < 0 || i >= NumSlots {
		return &SlotError{Op: "unload", Slot: i, Code: Absent, Err: ErrInvalidSlot}
	}
	sl := &s.slots[i]
	if sl.code == Absent {
		return nil
	}

	// The reveal handle goes first: the overlay must not be removed while
	// an animation still targets it.
	if sl.reveal != nil {
		sl.reveal.Stop()
	}
	if sl.overlay != nil {
		s.comp.Remove(sl.overlay)
	}
	if sl.bitmap != nil {
		s.comp.Remove(sl.bitmap)
	}
	if sl.img != nil {
		sl.img.Release()
	}

	*sl = slot{code: Absent, gen: sl.gen + 1}
	return nil
}

// Load shows code in slot i and starts its reveal. changes is the change
// count of the current tick, see ClassifyChange.
//
// The slot must be empty. If any collaborator fails the slot stays empty
// and everything acquired so far is released.
func (s *Store) Load(i int, code Code, changes int) error {
	if i < 0 || i >= NumSlots {
		return &SlotError{Op: "load", Slot: i, Code: code, Err: ErrInvalidSlot}
	}
	if !code.Valid() {
		return &SlotError{Op: "load", Slot: i, Code: code, Err: ErrInvalidCode}
	}
	sl := &s.slots[i]
	if sl.code != Absent {
		return &SlotError{Op: "load", Slot: i, Code: code, Err: ErrSlotNotEmpty}
	}

	img, err := s.src.Acquire(code)
	if err != nil {
		return &SlotError{Op: "load", Slot: i, Code: code, Err: fmt.Errorf("acquire tile: %w", err)}
	}

	frame := s.layout.Frame(i, img.Bounds().Size())
	bitmap, err := s.comp.AddBitmap(frame, img, s.inverted)
	if err != nil {
		img.Release()
		return &SlotError{Op: "load", Slot: i, Code: code, Err: fmt.Errorf("add bitmap: %w", err)}
	}
	overlay, err := s.comp.AddFill(frame, s.overlayColor())
	if err != nil {
		s.comp.Remove(bitmap)
		img.Release()
		return &SlotError{Op: "load", Slot: i, Code: code, Err: fmt.Errorf("add overlay: %w", err)}
	}

	gen := sl.gen + 1
	*sl = slot{code: code, img: img, bitmap: bitmap, overlay: overlay, gen: gen}

	r, next := Schedule(i, code, changes, frame, s.layout.Screen.Dx(), s.history)
	s.history = next
	finished := false
	handle := s.anim.Animate(overlay, r.Start, r.Finish, r.Duration, r.Delay, func(bool) {
		finished = true
		s.revealDone(i, gen)
	})
	if !finished {
		sl.reveal = handle
	}
	return nil
}

// revealDone drops the finished reveal handle. The overlay stays in place,
// off-screen, until the slot is unloaded.
func (s *Store) revealDone(i int, gen uint64) {
	sl := &s.slots[i]
	if sl.gen != gen {
		return
	}
	sl.reveal = nil
}

// Display makes slot i show target, reloading it if needed. An Absent
// target empties the slot.
func (s *Store) Display(i int, target Code, changes int) error {
	if i < 0 || i >= NumSlots {
		return &SlotError{Op: "display", Slot: i, Code: target, Err: ErrInvalidSlot}
	}
	if s.slots[i].code == target {
		return nil
	}
	if err := s.Unload(i); err != nil {
		return err
	}
	if target == Absent {
		return nil
	}
	return s.Load(i, target, changes)
}

// Revealing reports whether slot i has an outstanding reveal animation.
func (s *Store) Revealing(i int) bool {
	if i < 0 || i >= NumSlots {
		return false
	}
	return s.slots[i].reveal != nil
}

func (s *Store) overlayColor() color.Color {
	return backgroundColor(s.inverted)
}

func backgroundColor(inverted bool) color.Color {
	if inverted {
		return gray4.White
	}
	return gray4.Black
}
