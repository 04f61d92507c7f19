package layout

import "sort"

// IntervalSet is a set of coalesced closed ranges on the block
// axis. The float manager feeds it the block extents a float occupied
// before and after it moved; between reflows the frame tree asks which
// lines overlap a damaged range and marks them dirty.
type IntervalSet struct {
	intervals []blockInterval
}

type blockInterval struct {
	start, end Coord
}

// Include adds [start, end] to the set, merging with any ranges it
// touches or overlaps.
func (s *IntervalSet) Include(start, end Coord) {
	if end < start {
		start, end = end, start
	}

	// First interval whose end reaches start.
	idx := sort.Search(len(s.intervals), func(i int) bool {
		return s.intervals[i].end >= start
	})

	merged := blockInterval{start, end}
	last := idx
	for last < len(s.intervals) && s.intervals[last].start <= end {
		if s.intervals[last].start < merged.start {
			merged.start = s.intervals[last].start
		}
		if s.intervals[last].end > merged.end {
			merged.end = s.intervals[last].end
		}
		last++
	}

	s.intervals = append(s.intervals[:idx],
		append([]blockInterval{merged}, s.intervals[last:]...)...)
}

// Intersects reports whether [start, end] overlaps any range in the
// set. Touching endpoints count as overlap, matching how a float whose
// edge sits exactly on a line still dirties it.
func (s *IntervalSet) Intersects(start, end Coord) bool {
	if end < start {
		start, end = end, start
	}
	idx := sort.Search(len(s.intervals), func(i int) bool {
		return s.intervals[i].end >= start
	})
	return idx < len(s.intervals) && s.intervals[idx].start <= end
}

// IsEmpty reports whether no damage has been recorded.
func (s *IntervalSet) IsEmpty() bool {
	return len(s.intervals) == 0
}

// Clear discards all recorded ranges.
func (s *IntervalSet) Clear() {
	s.intervals = s.intervals[:0]
}
