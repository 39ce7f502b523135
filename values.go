package handwritten

import "fmt"

// NumSlots is the number of on-screen digit positions.
// Slot 0 shows the hour, slot 1 the minute word and slot 2 the minute units.
const NumSlots = 3

// NumCodes is the number of distinct pre-rendered tiles.
const NumCodes = 24

// Code identifies a pre-rendered tile.
//
// Codes 0-20 are the words "o'clock" and one to twenty, codes 21-23 are
// "thirty", "forty" and "fifty". Hours 1-12 reuse codes 1-12.
type Code int8

// Absent marks an empty slot or a missing third value.
const Absent Code = -1

// Valid reports whether c names a tile.
func (c Code) Valid() bool {
	return c >= 0 && c < NumCodes
}

// String returns the word shown for the code.
func (c Code) String() string {
	if c == Absent {
		return "absent"
	}
	if !c.Valid() {
		return fmt.Sprintf("Code(%d)", int(c))
	}
	return words[c]
}

var words = [NumCodes]string{
	"o'clock", "one", "two", "three", "four", "five", "six", "seven",
	"eight", "nine", "ten", "eleven", "twelve", "thirteen", "fourteen",
	"fifteen", "sixteen", "seventeen", "eighteen", "nineteen", "twenty",
	"thirty", "forty", "fifty",
}

// Word returns the word rendered on the tile for c, or "" if c is not a
// valid code.
func Word(c Code) string {
	if !c.Valid() {
		return ""
	}
	return words[c]
}

// Values is the target code for each slot, most significant first.
type Values [NumSlots]Code

// DisplayHour converts a 0-23 hour to the 12-hour dial, mapping 0 to 12.
func DisplayHour(hour int) Code {
	h := hour % 12
	if h == 0 {
		return 12
	}
	return Code(h)
}

// ComputeValues maps a wall-clock time to the three slot codes.
//
// Minutes up to and including 20 are a single word. Past 20 the tens are
// spelled as a word (21 = "thirty" ... 23 = "fifty") followed by the units
// digit, which is Absent on exact multiples of ten.
func ComputeValues(hour, minute int) Values {
	v := Values{DisplayHour(hour), Absent, Absent}
	switch {
	case minute <= 20:
		v[1] = Code(minute)
	case minute%10 == 0:
		v[1] = Code((minute-20)/10 + 20)
	default:
		v[1] = Code(((minute-minute%10)-20)/10 + 20)
		v[2] = Code(minute % 10)
	}
	return v
}

// ClassifyChange returns how many slots redraw on a tick, which sizes the
// reveal stagger.
//
// It is 2 when the hour is unchanged but the minute word differs, 1 when
// only the units differ, and 3 otherwise. The "otherwise" branch also
// covers an hour change with an unchanged minute word and the no-change
// case; both keep the full-cascade count.
func ClassifyChange(resident, target Values) int {
	switch {
	case resident[0] == target[0] && resident[1] != target[1]:
		return 2
	case resident[0] == target[0] && resident[1] == target[1] && resident[2] != target[2]:
		return 1
	default:
		return 3
	}
}
