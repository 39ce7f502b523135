package animate

import (
	"image"
	"math"
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type box struct {
	frame image.Rectangle
	sets  int
}

func (b *box) Frame() image.Rectangle     { return b.frame }
func (b *box) SetFrame(r image.Rectangle) { b.frame = r; b.sets++ }

var (
	start  = image.Rect(0, 21, 144, 63)
	finish = image.Rect(144, 21, 288, 63)
)

func TestAnimateHonoursDelay(t *testing.T) {
	clock := newFakeClock()
	e := NewEngine(clock)
	e.Curve = Linear
	el := &box{}

	calls := 0
	a := e.Animate(el, start, finish, 800*time.Millisecond, 360*time.Millisecond, func(finished bool) {
		calls++
		if !finished {
			t.Error("done(false) on natural completion")
		}
	}).(*Animation)

	if el.frame != start {
		t.Errorf("frame after Animate = %v, want %v", el.frame, start)
	}

	clock.Advance(300 * time.Millisecond)
	if !e.Step() {
		t.Error("Step() = false while delayed")
	}
	if a.Status() != Scheduled {
		t.Errorf("Status() = %v, want scheduled", a.Status())
	}
	if el.frame != start {
		t.Errorf("frame during delay = %v, want %v", el.frame, start)
	}

	clock.Advance(460 * time.Millisecond) // 400ms into the slide
	e.Step()
	if a.Status() != Running {
		t.Errorf("Status() = %v, want running", a.Status())
	}
	if want := image.Rect(72, 21, 216, 63); el.frame != want {
		t.Errorf("frame half way = %v, want %v", el.frame, want)
	}

	clock.Advance(time.Second)
	if e.Step() {
		t.Error("Step() = true after completion")
	}
	if el.frame != finish {
		t.Errorf("final frame = %v, want %v", el.frame, finish)
	}
	if calls != 1 {
		t.Errorf("done called %d times, want 1", calls)
	}

	clock.Advance(time.Second)
	e.Step()
	if calls != 1 {
		t.Errorf("done called %d times after extra Step, want 1", calls)
	}
}

func TestStopSkipsCallback(t *testing.T) {
	clock := newFakeClock()
	e := NewEngine(clock)
	el := &box{}

	called := false
	a := e.Animate(el, start, finish, 800*time.Millisecond, 0, func(bool) { called = true })
	clock.Advance(200 * time.Millisecond)
	e.Step()
	moved := el.frame

	a.Stop()
	a.Stop()
	if e.Active() != 0 {
		t.Errorf("Active() = %d, want 0", e.Active())
	}

	clock.Advance(time.Second)
	e.Step()
	if called {
		t.Error("done called after Stop")
	}
	if el.frame != moved {
		t.Errorf("frame changed after Stop: %v, want %v", el.frame, moved)
	}
}

func TestZeroDuration(t *testing.T) {
	e := NewEngine(newFakeClock())
	el := &box{}
	called := false
	e.Animate(el, start, finish, 0, 0, func(bool) { called = true })
	e.Step()
	if !called || el.frame != finish {
		t.Errorf("zero duration: called=%v frame=%v, want true %v", called, el.frame, finish)
	}
}

func TestCallbackMayStartAnimation(t *testing.T) {
	clock := newFakeClock()
	e := NewEngine(clock)
	el := &box{}
	e.Animate(el, start, finish, 100*time.Millisecond, 0, func(bool) {
		e.Animate(el, finish, start, 100*time.Millisecond, 0, nil)
	})
	clock.Advance(time.Second)
	if !e.Step() {
		t.Error("Step() = false, want the chained animation outstanding")
	}
}

func TestCurves(t *testing.T) {
	tests := []struct {
		name  string
		curve Curve
	}{
		{"linear", Linear},
		{"ease in out", EaseInOut},
		{"ease out", EaseOut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.curve(0); got != 0 {
				t.Errorf("curve(0) = %v, want 0", got)
			}
			if got := tt.curve(1); got != 1 {
				t.Errorf("curve(1) = %v, want 1", got)
			}
			prev := 0.0
			for i := 1; i <= 10; i++ {
				v := tt.curve(float64(i) / 10)
				if v < prev-1e-9 {
					t.Errorf("curve not monotonic at %v: %v < %v", float64(i)/10, v, prev)
				}
				prev = v
			}
		})
	}

	if got := EaseInOut(0.5); math.Abs(got-0.5) > 1e-3 {
		t.Errorf("EaseInOut(0.5) = %v, want 0.5", got)
	}
}

func TestStatusString(t *testing.T) {
	if Completed.String() != "completed" {
		t.Errorf("Completed.String() = %q", Completed.String())
	}
	if got := Status(9).String(); got != "Status(9)" {
		t.Errorf("Status(9).String() = %q", got)
	}
}
