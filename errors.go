package handwritten

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSlot is returned for a slot index outside 0..NumSlots-1.
	ErrInvalidSlot = errors.New("handwritten: invalid slot index")
	// ErrInvalidCode is returned for a code outside 0..NumCodes-1.
	ErrInvalidCode = errors.New("handwritten: invalid digit code")
	// ErrSlotNotEmpty is returned when loading onto an occupied slot.
	ErrSlotNotEmpty = errors.New("handwritten: slot not empty")
)

// SlotError records a failed slot operation.
type SlotError struct {
	// Op is the operation that failed ("load", "unload", "display").
	Op   string
	Slot int
	Code Code
	Err  error
}

func (e *SlotError) Error() string {
	if e.Code == Absent {
		return fmt.Sprintf("%s slot %d: %v", e.Op, e.Slot, e.Err)
	}
	return fmt.Sprintf("%s slot %d (code %d): %v", e.Op, e.Slot, int(e.Code), e.Err)
}

func (e *SlotError) Unwrap() error {
	return e.Err
}
