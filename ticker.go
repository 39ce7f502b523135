package handwritten

import "time"

// MinuteTicker delivers the wall-clock time at every minute boundary.
type MinuteTicker struct {
	C    <-chan time.Time
	c    chan time.Time
	now  func() time.Time
	stop chan struct{}
}

// NewMinuteTicker starts a ticker. now defaults to time.Now.
//
// Like time.Ticker, a slow reader misses ticks rather than queueing them.
func NewMinuteTicker(now func() time.Time) *MinuteTicker {
	if now == nil {
		now = time.Now
	}
	c := make(chan time.Time, 1)
	t := &MinuteTicker{
		C:    c,
		c:    c,
		now:  now,
		stop: make(chan struct{}),
	}
	go t.run()
	return t
}

func (t *MinuteTicker) run() {
	timer := time.NewTimer(untilNextMinute(t.now()))
	defer timer.Stop()
	for {
		select {
		case <-timer.C:
			now := t.now()
			select {
			case t.c <- now:
			default:
			}
			timer.Reset(untilNextMinute(now))
		case <-t.stop:
			return
		}
	}
}

// Stop ends the ticker. C is not closed.
func (t *MinuteTicker) Stop() {
	close(t.stop)
}

// untilNextMinute returns the wait from t to the next minute boundary.
func untilNextMinute(t time.Time) time.Duration {
	next := t.Truncate(time.Minute).Add(time.Minute)
	return next.Sub(t)
}
