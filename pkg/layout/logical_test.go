package layout

import "testing"

var allWritingModes = []struct {
	name string
	wm   WritingMode
}{
	{"horizontal-tb ltr", WritingMode{Block: HorizontalTB}},
	{"horizontal-tb rtl", WritingMode{Block: HorizontalTB, RTL: true}},
	{"vertical-rl ltr", WritingMode{Block: VerticalRL}},
	{"vertical-rl rtl", WritingMode{Block: VerticalRL, RTL: true}},
	{"vertical-lr ltr", WritingMode{Block: VerticalLR}},
	{"vertical-lr rtl", WritingMode{Block: VerticalLR, RTL: true}},
	{"sideways-rl ltr", WritingMode{Block: SidewaysRL}},
	{"sideways-lr ltr", WritingMode{Block: SidewaysLR}},
	{"sideways-lr rtl", WritingMode{Block: SidewaysLR, RTL: true}},
}

func TestLogicalRectRoundTrip(t *testing.T) {
	container := Size{1000, 800}
	rects := []Rect{
		{0, 0, 100, 50},
		{250, 130, 70, 320},
		{900, 750, 100, 50},
		{0, 0, 0, 0},
	}
	for _, mode := range allWritingModes {
		t.Run(mode.name, func(t *testing.T) {
			for _, r := range rects {
				lr := LogicalRectFromPhysical(mode.wm, r, container)
				back := lr.PhysicalRect(mode.wm, container)
				if back != r {
					t.Errorf("Round trip changed %+v to %+v (logical %+v)", r, back, lr)
				}
			}
		})
	}
}

func TestFlowRelativeRectRoundTrip(t *testing.T) {
	container := Size{1000, 800}
	r := Rect{120, 40, 300, 200}
	for _, mode := range allWritingModes {
		t.Run(mode.name, func(t *testing.T) {
			flow := mode.wm.FlowRelativeRect(r, container)
			back := mode.wm.FlowPhysicalRect(flow, container)
			if back != r {
				t.Errorf("Round trip changed %+v to %+v (flow %+v)", r, back, flow)
			}
		})
	}
}

func TestLogicalRectAgreesWithFlowRelative(t *testing.T) {
	// Converting physical -> LogicalRect -> flow frame must match the
	// direct physical -> flow conversion for every writing mode.
	container := Size{1000, 800}
	r := Rect{120, 40, 300, 200}
	for _, mode := range allWritingModes {
		t.Run(mode.name, func(t *testing.T) {
			direct := mode.wm.FlowRelativeRect(r, container)
			viaLogical := LogicalRectFromPhysical(mode.wm, r, container).
				FlowRelative(mode.wm, container)
			if direct != viaLogical {
				t.Errorf("Direct %+v disagrees with via-logical %+v", direct, viaLogical)
			}
		})
	}
}

func TestFlowRelativePointMatchesRect(t *testing.T) {
	// A point is a zero-sized rect.
	container := Size{1000, 800}
	p := Point{333, 444}
	for _, mode := range allWritingModes {
		t.Run(mode.name, func(t *testing.T) {
			fromPoint := mode.wm.FlowRelativePoint(p, container)
			fromRect := mode.wm.FlowRelativeRect(Rect{p.X, p.Y, 0, 0}, container)
			if fromPoint.X != fromRect.X || fromPoint.Y != fromRect.Y {
				t.Errorf("Point conversion %+v disagrees with rect %+v",
					fromPoint, fromRect)
			}
		})
	}
}

func TestVerticalRLBlockAxis(t *testing.T) {
	// In vertical-rl the block axis starts at the physical right edge.
	wm := WritingMode{Block: VerticalRL}
	container := Size{1000, 800}
	r := Rect{900, 0, 100, 50} // at the physical top-right corner
	flow := wm.FlowRelativeRect(r, container)
	if flow.Y != 0 {
		t.Errorf("Expected the rightmost rect at block-start 0, got %d", flow.Y)
	}
	if flow.X != 0 {
		t.Errorf("Expected the topmost rect at line-left 0, got %d", flow.X)
	}
	if flow.Width != 50 || flow.Height != 100 {
		t.Errorf("Expected axes swapped to (50, 100), got (%d, %d)",
			flow.Width, flow.Height)
	}
}

func TestSidewaysLRLineAxis(t *testing.T) {
	// In sideways-lr the line axis starts at the physical bottom edge.
	wm := WritingMode{Block: SidewaysLR}
	container := Size{1000, 800}
	r := Rect{0, 750, 100, 50} // at the physical bottom-left corner
	flow := wm.FlowRelativeRect(r, container)
	if flow.X != 0 {
		t.Errorf("Expected the bottom rect at line-left 0, got %d", flow.X)
	}
	if flow.Y != 0 {
		t.Errorf("Expected the leftmost rect at block-start 0, got %d", flow.Y)
	}
}

func TestLogicalMarginRoundTrip(t *testing.T) {
	m := Margin{Top: 1, Right: 2, Bottom: 3, Left: 4}
	for _, mode := range allWritingModes {
		t.Run(mode.name, func(t *testing.T) {
			lm := LogicalMarginFromPhysical(mode.wm, m)
			back := lm.PhysicalMargin(mode.wm)
			if back != m {
				t.Errorf("Round trip changed %+v to %+v (logical %+v)", m, back, lm)
			}
		})
	}
}

func TestInflateDeflateInverse(t *testing.T) {
	lr := LogicalRect{IStart: 10, BStart: 20, ISize: 100, BSize: 200}
	lm := LogicalMargin{BStart: 1, BEnd: 2, IStart: 3, IEnd: 4}
	if got := lr.Inflate(lm).Deflate(lm); got != lr {
		t.Errorf("Expected inflate/deflate to cancel, got %+v", got)
	}
}

func TestFlowRelativeRadii(t *testing.T) {
	// Distinct values per corner axis: TLx..BLy.
	physical := [8]Coord{1, 2, 3, 4, 5, 6, 7, 8}

	tests := []struct {
		name     string
		wm       WritingMode
		expected [8]Coord
	}{
		// Identity for horizontal.
		{"horizontal-tb", WritingMode{Block: HorizontalTB}, physical},
		// vertical-rl: flow top-left is the physical top-right corner,
		// with line/block axes swapped.
		{"vertical-rl", WritingMode{Block: VerticalRL},
			[8]Coord{4, 3, 6, 5, 8, 7, 2, 1}},
		// vertical-lr: flow top-left is the physical top-left.
		{"vertical-lr", WritingMode{Block: VerticalLR},
			[8]Coord{2, 1, 8, 7, 6, 5, 4, 3}},
		// sideways-lr: flow top-left is the physical bottom-left.
		{"sideways-lr", WritingMode{Block: SidewaysLR},
			[8]Coord{8, 7, 2, 1, 4, 3, 6, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.wm.FlowRelativeRadii(physical); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSatAdd(t *testing.T) {
	tests := []struct {
		a, b, expected Coord
	}{
		{1, 2, 3},
		{CoordMax, 1, CoordMax},
		{CoordMax, CoordMax, CoordMax},
		{CoordMin, -1, CoordMin},
		{100, CoordMax, CoordMax},
		{-100, CoordMin, CoordMin},
	}
	for _, tt := range tests {
		if got := SatAdd(tt.a, tt.b); got != tt.expected {
			t.Errorf("SatAdd(%d, %d): expected %d, got %d", tt.a, tt.b, tt.expected, got)
		}
	}
}
