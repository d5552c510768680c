package allocate

import (
	"errors"
	"fmt"
)

// ErrCollision means a string was reserved twice within one timestamp. The
// two-pass ordering makes this unreachable; hitting it is a defect in the
// caller, not a recoverable condition.
var ErrCollision = errors.New("allocate: string already reserved at this timestamp")

// occupancy tracks which target strings are in use at a single timestamp.
// It is created when a timestamp's processing starts and discarded when the
// timestamp is done, so nothing ever leaks across timestamps.
type occupancy struct {
	frets map[int]int
}

func newOccupancy() *occupancy {
	return &occupancy{frets: make(map[int]int)}
}

func (o *occupancy) reserve(str, fret int) error {
	if prev, ok := o.frets[str]; ok {
		return fmt.Errorf("%w: string %v holds fret %v", ErrCollision, str, prev)
	}
	o.frets[str] = fret
	return nil
}

func (o *occupancy) isFree(str int) bool {
	_, ok := o.frets[str]
	return !ok
}
