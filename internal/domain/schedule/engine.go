package schedule

import "errors"

// ErrInvalidDuration is returned by CheckConflict when the requested
// booking has a non-positive duration.
var ErrInvalidDuration = errors.New("invalid duration")

// Hours is the daily booking window: [OpenMin, CloseMin) minutes since
// midnight, with candidate slots every StepMin minutes.
type Hours struct {
	OpenMin  int
	CloseMin int
	StepMin  int
}

// DefaultHours is 08:00-18:00 with 30-minute slots.
func DefaultHours() Hours {
	return Hours{OpenMin: 8 * 60, CloseMin: 18 * 60, StepMin: 30}
}

// Booked is an existing appointment's interval for one professional on
// one date: [StartMin, StartMin+DurationMin) minutes since midnight.
type Booked struct {
	StartMin    int
	DurationMin int
}

func (b Booked) endMin() int {
	return b.StartMin + b.DurationMin
}

func candidates(h Hours) []int {
	slots := make([]int, 0, (h.CloseMin-h.OpenMin)/h.StepMin)
	for m := h.OpenMin; m < h.CloseMin; m += h.StepMin {
		slots = append(slots, m)
	}
	return slots
}

// FreeSlots returns the candidate slot starts not taken by any booked
// interval, ascending, in minutes since midnight.
//
// A slot is excluded when its start minute is hit while stepping through
// the booked interval from its own start by StepMin. A booked interval
// whose start or length is off the slot grid can therefore leave a
// tail-overlapping slot in the result; FreeSlotsStrict closes that gap.
func FreeSlots(booked []Booked, h Hours) []int {
	occupied := make(map[int]bool)
	for _, b := range booked {
		for m := b.StartMin; m < b.endMin(); m += h.StepMin {
			occupied[m] = true
		}
	}

	free := make([]int, 0)
	for _, m := range candidates(h) {
		if !occupied[m] {
			free = append(free, m)
		}
	}
	return free
}

// FreeSlotsStrict returns the candidate slot starts whose full
// [slot, slot+StepMin) interval is disjoint from every booked interval.
func FreeSlotsStrict(booked []Booked, h Hours) []int {
	free := make([]int, 0)
	for _, m := range candidates(h) {
		if !overlapsAny(m, m+h.StepMin, booked) {
			free = append(free, m)
		}
	}
	return free
}

// CheckConflict tests a requested booking [startMin, startMin+durationMin)
// against the professional's booked intervals and returns the first one
// that overlaps, or nil when the slot is free. Intervals are half-open, so
// a booking starting exactly when another ends does not conflict.
func CheckConflict(booked []Booked, startMin, durationMin int) (*Booked, error) {
	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}

	endMin := startMin + durationMin
	for _, b := range booked {
		if startMin < b.endMin() && endMin > b.StartMin {
			hit := b
			return &hit, nil
		}
	}
	return nil, nil
}

func overlapsAny(startMin, endMin int, booked []Booked) bool {
	for _, b := range booked {
		if startMin < b.endMin() && endMin > b.StartMin {
			return true
		}
	}
	return false
}
