package layout

import "flotilla/pkg/css"

// Frame is what the float manager needs to know about a floated box.
// The frame tree that implements it lives outside this package; Box
// below is the concrete implementation the tests and the reflow driver
// use. Frames are compared by interface identity, which is how the
// registry keys trailing removal and damage.
type Frame interface {
	// Style returns the frame's computed style.
	Style() *css.Style

	// Rect is the frame's current border-box rect in physical app
	// units.
	Rect() Rect

	// NormalPosition is the border-box position ignoring relative
	// positioning offsets.
	NormalPosition() Point

	// ContentRect is the physical content-box rect.
	ContentRect() Rect

	// Used box-model edges in physical app units.
	UsedMargin() Margin
	UsedBorder() Margin
	UsedPadding() Margin

	// ShapeBoxBorderRadii returns the frame's physical half corner
	// radii for <shape-box> resolution, or false when there are none.
	ShapeBoxBorderRadii() ([8]Coord, bool)

	// AppUnitsPerDevPixel is the device pixel scale of the frame's
	// rendering context.
	AppUnitsPerDevPixel() Coord

	// FloatRegionOffset round-trips the stored float-region margin
	// correction (see StoreRegionFor).
	FloatRegionOffset() (Margin, bool)
	SetFloatRegionOffset(Margin)
	ClearFloatRegionOffset()
}

// physicalFloatSide resolves the frame's float side against the
// manager's inline direction. The result names a side of the line
// axis: css.FloatLeft is line-left.
func physicalFloatSide(f Frame, wm WritingMode) css.FloatType {
	return f.Style().GetFloat().PhysicalFloat(wm.RTL)
}
