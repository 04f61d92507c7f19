package layout

import (
	"testing"

	"flotilla/pkg/css"
)

func TestGetFlowArea_RTL(t *testing.T) {
	wm := WritingMode{Block: HorizontalTB, RTL: true}
	m := NewFloatManager(wm)

	// A right float at inline-start 0 in RTL sits at the physical
	// right edge, which is still the line-right side.
	box := NewBox(styleWithFloat(css.FloatRight), Rect{800, 0, 200, 100})
	m.AddFloat(box, LogicalRect{IStart: 0, ISize: 200, BSize: 100}, wm, testContainer)

	if m.floats[0].Rect.X != 800 {
		t.Errorf("Expected stored line-left 800, got %d", m.floats[0].Rect.X)
	}

	area := m.GetFlowArea(wm, 0, 50, WidthWithinHeight, ShapeTypeMargin,
		contentArea(0, 1000), nil, testContainer)
	if area.InlineStart != 200 || area.ISize != 800 {
		t.Errorf("Expected logical (200, 800), got (%d, %d)",
			area.InlineStart, area.ISize)
	}
	if !area.HasFloats {
		t.Error("Expected HasFloats=true")
	}
}

func TestGetFlowArea_VerticalRL(t *testing.T) {
	wm := WritingMode{Block: VerticalRL}
	m := NewFloatManager(wm)

	// In vertical-rl a left float is at the physical top, and the
	// logical numbers come out the same as the horizontal case.
	box := NewBox(styleWithFloat(css.FloatLeft), Rect{900, 0, 100, 200})
	m.AddFloat(box, LogicalRect{IStart: 0, ISize: 200, BSize: 100}, wm, testContainer)

	area := m.GetFlowArea(wm, 20, 30, WidthWithinHeight, ShapeTypeMargin,
		contentArea(0, 1000), nil, testContainer)
	if area.InlineStart != 200 || area.ISize != 800 || area.BSize != 30 {
		t.Errorf("Expected (200, 800, 30), got (%d, %d, %d)",
			area.InlineStart, area.ISize, area.BSize)
	}
}

func TestWritingModePredicates(t *testing.T) {
	tests := []struct {
		wm                                 WritingMode
		vertical, verticalRL, verticalLR   bool
		sideways                           bool
	}{
		{WritingMode{Block: HorizontalTB}, false, false, false, false},
		{WritingMode{Block: VerticalRL}, true, true, false, false},
		{WritingMode{Block: VerticalLR}, true, false, true, false},
		{WritingMode{Block: SidewaysRL}, true, true, false, true},
		{WritingMode{Block: SidewaysLR}, true, false, true, true},
	}
	for _, tt := range tests {
		if tt.wm.IsVertical() != tt.vertical ||
			tt.wm.IsVerticalRL() != tt.verticalRL ||
			tt.wm.IsVerticalLR() != tt.verticalLR ||
			tt.wm.IsSideways() != tt.sideways {
			t.Errorf("Wrong predicates for %+v", tt.wm)
		}
	}
}
