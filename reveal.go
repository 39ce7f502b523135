package handwritten

import (
	"image"
	"time"
)

const (
	// SlideDuration is how long the overlay takes to travel one screen width.
	SlideDuration = 800 * time.Millisecond

	// RevealTweak is subtracted from every reveal ratio, in percent, to
	// tighten the gap between cascading reveals.
	RevealTweak = 30
)

// revealRatio is the percentage of each tile's width the overlay must
// uncover before the word reads clearly. Hand-tuned per glyph.
var revealRatio = [NumCodes]int{
	87, 75, 87, 75, 75, 75, 50, 100, 75, 62, 50, 100,
	75, 100, 100, 100, 87, 100, 90, 87, 95, 87, 80, 75,
}

// RevealRatio returns the calibration ratio for c, or 0 if c is not valid.
func RevealRatio(c Code) int {
	if !c.Valid() {
		return 0
	}
	return revealRatio[c]
}

// History records the two most recently revealed codes.
type History struct {
	Last       Code
	BeforeLast Code
}

// NewHistory returns a history with nothing written yet.
func NewHistory() History {
	return History{Last: Absent, BeforeLast: Absent}
}

// Reveal describes the overlay animation for one load.
type Reveal struct {
	Start    image.Rectangle // overlay covering the tile
	Finish   image.Rectangle // overlay moved one screen width to the right
	Duration time.Duration
	Delay    time.Duration
}

// Schedule computes the reveal for code being loaded into slot and returns
// the history to use for the next load.
//
// With three changing slots the hour reveals at once, the minute word
// waits for the previous tile to be uncovered and the units wait for the
// previous two. With two changing slots the minute word starts at once and
// the units wait for it. A single change never waits.
func Schedule(slot int, code Code, changes int, frame image.Rectangle, screenWidth int, h History) (Reveal, History) {
	if h.Last == Absent {
		h.Last = code
	}
	if h.BeforeLast == Absent {
		h.BeforeLast = h.Last
	}

	r := Reveal{
		Start:    frame,
		Finish:   frame.Add(image.Pt(screenWidth, 0)),
		Duration: SlideDuration,
	}

	switch changes {
	case 3:
		switch slot {
		case 1:
			r.Delay = revealTerm(h.Last)
		case 2:
			r.Delay = revealTerm(h.Last) + revealTerm(h.BeforeLast)
		}
	case 2:
		if slot != 1 {
			r.Delay = revealTerm(h.Last)
		}
	}

	return r, History{Last: code, BeforeLast: h.Last}
}

// revealTerm is the time the overlay needs to uncover enough of c.
func revealTerm(c Code) time.Duration {
	return SlideDuration * time.Duration(RevealRatio(c)-RevealTweak) / 100
}
