package layout

import "testing"

func TestIntervalSet_Basic(t *testing.T) {
	var s IntervalSet
	if !s.IsEmpty() {
		t.Error("Expected new set to be empty")
	}

	s.Include(100, 200)
	if s.IsEmpty() {
		t.Error("Expected set to be non-empty after Include")
	}

	tests := []struct {
		name       string
		start, end Coord
		expected   bool
	}{
		{"inside", 120, 180, true},
		{"overlapping start", 50, 150, true},
		{"overlapping end", 150, 250, true},
		{"touching start", 50, 100, true},
		{"touching end", 200, 250, true},
		{"before", 0, 99, false},
		{"after", 201, 300, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Intersects(tt.start, tt.end); got != tt.expected {
				t.Errorf("Intersects(%d, %d): expected %v, got %v",
					tt.start, tt.end, tt.expected, got)
			}
		})
	}
}

func TestIntervalSet_Coalescing(t *testing.T) {
	var s IntervalSet
	s.Include(0, 100)
	s.Include(300, 400)
	s.Include(50, 350) // bridges both

	if len(s.intervals) != 1 {
		t.Errorf("Expected one coalesced interval, got %d", len(s.intervals))
	}
	if !s.Intersects(200, 210) {
		t.Error("Expected the bridged gap to be damaged")
	}
	if s.Intersects(401, 500) {
		t.Error("Expected nothing past the coalesced range")
	}
}

func TestIntervalSet_DisjointOrder(t *testing.T) {
	var s IntervalSet
	s.Include(500, 600)
	s.Include(0, 100)
	s.Include(250, 300)

	if len(s.intervals) != 3 {
		t.Fatalf("Expected 3 disjoint intervals, got %d", len(s.intervals))
	}
	for i := 1; i < len(s.intervals); i++ {
		if s.intervals[i-1].end > s.intervals[i].start {
			t.Errorf("Intervals out of order at %d", i)
		}
	}

	if s.Intersects(150, 200) {
		t.Error("Expected the gap between ranges to be clean")
	}
	if !s.Intersects(0, 1000) {
		t.Error("Expected a spanning query to hit")
	}
}

func TestIntervalSet_ReversedArguments(t *testing.T) {
	var s IntervalSet
	s.Include(200, 100)
	if !s.Intersects(150, 150) {
		t.Error("Expected reversed Include arguments to normalize")
	}
}

func TestIntervalSet_Clear(t *testing.T) {
	var s IntervalSet
	s.Include(0, 100)
	s.Clear()
	if !s.IsEmpty() || s.Intersects(0, 100) {
		t.Error("Expected cleared set to be empty")
	}
}
