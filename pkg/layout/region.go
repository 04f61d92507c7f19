package layout

import "flotilla/pkg/css"

// A float's region is its margin box as the float manager saw it. The
// region is recomputed each reflow, but between reflows the frame tree
// needs the old region to damage the lines it used to affect, so the
// difference between region and frame rect is stored on the frame as a
// margin correction.

// CalculateRegionFor computes the float region for a frame: its
// border-box rect at its normal position, inflated by the given
// margin. Negative margins can collapse the region; a collapsed
// inline size keeps the margin edge facing away from the float's side
// (the line-right edge of a line-left float, and vice versa), and a
// collapsed block size keeps the block-start edge.
func CalculateRegionFor(wm WritingMode, frame Frame, margin LogicalMargin,
	container Size) LogicalRect {

	pos := frame.NormalPosition()
	rect := frame.Rect()
	region := LogicalRectFromPhysical(wm,
		Rect{pos.X, pos.Y, rect.Width, rect.Height}, container)

	region = region.Inflate(margin)

	if region.ISize < 0 {
		// Preserve the end edge for floats placed against the line
		// start, and the start edge otherwise.
		side := physicalFloatSide(frame, wm)
		if (side == css.FloatLeft) == wm.IsBidiLTR() {
			region.IStart += region.ISize
		}
		region.ISize = 0
	}
	if region.BSize < 0 {
		region.BSize = 0
	}
	return region
}

// GetRegionFor reads the frame's stored float region: its current
// logical rect inflated by the stored margin correction, if any.
func GetRegionFor(wm WritingMode, frame Frame, container Size) LogicalRect {
	region := LogicalRectFromPhysical(wm, frame.Rect(), container)
	if offset, ok := frame.FloatRegionOffset(); ok {
		region = region.Inflate(LogicalMarginFromPhysical(wm, offset))
	}
	return region
}

// StoreRegionFor attaches the region to the frame as a margin
// correction against its current rect, or clears the stored value when
// region and rect coincide.
func StoreRegionFor(wm WritingMode, frame Frame, region LogicalRect,
	container Size) {

	physical := region.PhysicalRect(wm, container)
	rect := frame.Rect()
	if physical == rect {
		frame.ClearFloatRegionOffset()
		return
	}
	frame.SetFloatRegionOffset(Margin{
		Top:    rect.Y - physical.Y,
		Right:  physical.XMost() - rect.XMost(),
		Bottom: physical.YMost() - rect.YMost(),
		Left:   rect.X - physical.X,
	})
}
