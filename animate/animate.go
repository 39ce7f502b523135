// Package animate moves clock face elements between two frames over time.
//
// The Engine owns no goroutines: the event loop calls Step once per frame,
// which interpolates every running animation and fires completion callbacks
// on the caller's goroutine.
package animate

import (
	"fmt"
	"image"
	"math"
	"time"

	"github.com/flavioheleno/handwritten"
)

// Clock provides time for animations. Tests inject a fake.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Status is the lifecycle state of an Animation.
//
//	Scheduled ──delay──► Running ──duration──► Completed
//	    │                   │
//	    └──────Stop()───────┴──────────────────► Stopped
type Status int

const (
	// Scheduled means the animation is waiting for its delay to elapse.
	Scheduled Status = iota
	// Running means the element is moving.
	Running
	// Completed means the element reached the finish frame.
	Completed
	// Stopped means the animation was cancelled.
	Stopped
)

func (s Status) String() string {
	switch s {
	case Scheduled:
		return "scheduled"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Animation is the handle returned by Engine.Animate.
type Animation struct {
	engine   *Engine
	target   handwritten.Element
	start    image.Rectangle
	finish   image.Rectangle
	duration time.Duration
	delay    time.Duration
	begun    time.Time
	curve    Curve
	done     func(finished bool)
	status   Status
}

// Status returns the animation state.
func (a *Animation) Status() Status {
	return a.status
}

// Stop cancels the animation, leaving the element where it is. The
// completion callback is not called. Stopping a finished animation does
// nothing.
func (a *Animation) Stop() {
	if a.status == Completed || a.status == Stopped {
		return
	}
	a.status = Stopped
	a.engine.remove(a)
}

// Engine implements handwritten.Animator.
//
// Engine is not safe for concurrent use.
type Engine struct {
	// Curve eases every animation started after it is set (default: EaseInOut).
	Curve Curve

	clock  Clock
	active []*Animation
}

var _ handwritten.Animator = (*Engine)(nil)

// NewEngine creates an engine. clock can be nil to use system time.
func NewEngine(clock Clock) *Engine {
	if clock == nil {
		clock = realClock{}
	}
	return &Engine{Curve: EaseInOut, clock: clock}
}

// Animate schedules el to move from start to finish. el is placed at start
// immediately; done is called from Step once el reaches finish.
func (e *Engine) Animate(el handwritten.Element, start, finish image.Rectangle, duration, delay time.Duration, done func(finished bool)) handwritten.Animation {
	curve := e.Curve
	if curve == nil {
		curve = Linear
	}
	a := &Animation{
		engine:   e,
		target:   el,
		start:    start,
		finish:   finish,
		duration: duration,
		delay:    delay,
		begun:    e.clock.Now(),
		curve:    curve,
		done:     done,
		status:   Scheduled,
	}
	el.SetFrame(start)
	e.active = append(e.active, a)
	return a
}

// Active returns the number of outstanding animations.
func (e *Engine) Active() int {
	return len(e.active)
}

// Step advances every outstanding animation to the current time and
// reports whether any remain.
func (e *Engine) Step() bool {
	if len(e.active) == 0 {
		return false
	}
	now := e.clock.Now()

	// Callbacks may start or stop animations.
	pending := make([]*Animation, len(e.active))
	copy(pending, e.active)

	for _, a := range pending {
		if a.status == Stopped || a.status == Completed {
			continue
		}
		elapsed := now.Sub(a.begun) - a.delay
		if elapsed < 0 {
			continue
		}
		a.status = Running

		progress := 1.0
		if a.duration > 0 {
			progress = math.Min(1, float64(elapsed)/float64(a.duration))
		}
		a.target.SetFrame(LerpRect(a.start, a.finish, a.curve(progress)))

		if progress >= 1 {
			a.status = Completed
			e.remove(a)
			if a.done != nil {
				a.done(true)
			}
		}
	}
	return len(e.active) > 0
}

func (e *Engine) remove(a *Animation) {
	for i, x := range e.active {
		if x == a {
			e.active = append(e.active[:i], e.active[i+1:]...)
			return
		}
	}
}

// LerpRect interpolates between two rectangles, rounding to whole pixels.
func LerpRect(a, b image.Rectangle, t float64) image.Rectangle {
	return image.Rectangle{
		Min: lerpPoint(a.Min, b.Min, t),
		Max: lerpPoint(a.Max, b.Max, t),
	}
}

func lerpPoint(a, b image.Point, t float64) image.Point {
	return image.Pt(lerp(a.X, b.X, t), lerp(a.Y, b.Y, t))
}

func lerp(a, b int, t float64) int {
	return a + int(math.Round(float64(b-a)*t))
}
