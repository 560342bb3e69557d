package events

import "sort"

// Insertion pairs an event with the index it should occupy relative to the
// original, pre-insertion slice.
type Insertion struct {
	Index int
	Event Event
}

// InsertMany returns a new slice with every insertion applied. Indices are
// interpreted against the input slice, so callers can compute them all up
// front without tracking a running offset. Insertions at the same index keep
// their relative order. Runs in a single pass over the input.
func InsertMany(evs []Event, insertions []Insertion) []Event {
	if len(insertions) == 0 {
		return evs
	}

	sorted := make([]Insertion, len(insertions))
	copy(sorted, insertions)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })

	out := make([]Event, 0, len(evs)+len(sorted))
	next := 0
	for i, e := range evs {
		for next < len(sorted) && sorted[next].Index == i {
			out = append(out, sorted[next].Event)
			next++
		}
		out = append(out, e)
	}
	// Insertions at or past len(evs) land at the end.
	for ; next < len(sorted); next++ {
		out = append(out, sorted[next].Event)
	}
	return out
}
