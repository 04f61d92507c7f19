package layout

// LogicalRect is a rectangle in writing-mode-relative coordinates:
// inline-start/block-start origin with inline/block sizes. Unlike the
// flow-logical frame, the inline axis here is direction-relative, so
// an RTL inline-start is the physical right edge. Callers hand the
// float manager LogicalRects; the manager converts them to the
// flow-logical frame internally.
type LogicalRect struct {
	IStart, BStart Coord
	ISize, BSize   Coord
}

// LogicalRectFromPhysical converts a physical rect into the given
// writing mode, mirroring against the container as needed.
func LogicalRectFromPhysical(wm WritingMode, r Rect, container Size) LogicalRect {
	var lr LogicalRect
	switch wm.Block {
	case VerticalRL, SidewaysRL:
		lr.BStart = container.Width - r.XMost()
		lr.BSize = r.Width
		lr.ISize = r.Height
		if wm.RTL {
			lr.IStart = container.Height - r.YMost()
		} else {
			lr.IStart = r.Y
		}
	case VerticalLR:
		lr.BStart = r.X
		lr.BSize = r.Width
		lr.ISize = r.Height
		if wm.RTL {
			lr.IStart = container.Height - r.YMost()
		} else {
			lr.IStart = r.Y
		}
	case SidewaysLR:
		lr.BStart = r.X
		lr.BSize = r.Width
		lr.ISize = r.Height
		if wm.RTL {
			lr.IStart = r.Y
		} else {
			lr.IStart = container.Height - r.YMost()
		}
	default:
		lr.BStart = r.Y
		lr.BSize = r.Height
		lr.ISize = r.Width
		if wm.RTL {
			lr.IStart = container.Width - r.XMost()
		} else {
			lr.IStart = r.X
		}
	}
	return lr
}

// PhysicalRect is the inverse of LogicalRectFromPhysical.
func (lr LogicalRect) PhysicalRect(wm WritingMode, container Size) Rect {
	flow := Rect{lr.LineLeft(wm, container), lr.BStart, lr.ISize, lr.BSize}
	return wm.FlowPhysicalRect(flow, container)
}

// LineLeft is the rect's line-left edge in the flow-logical frame.
func (lr LogicalRect) LineLeft(wm WritingMode, container Size) Coord {
	if wm.IsBidiLTR() {
		return lr.IStart
	}
	return wm.ContainerISize(container) - lr.IStart - lr.ISize
}

// LineRight is the rect's line-right edge in the flow-logical frame.
func (lr LogicalRect) LineRight(wm WritingMode, container Size) Coord {
	return lr.LineLeft(wm, container) + lr.ISize
}

// FlowRelative returns the rect in the flow-logical frame.
func (lr LogicalRect) FlowRelative(wm WritingMode, container Size) Rect {
	return Rect{lr.LineLeft(wm, container), lr.BStart, lr.ISize, lr.BSize}
}

// Inflate grows the rect by a logical margin on all four sides.
func (lr LogicalRect) Inflate(m LogicalMargin) LogicalRect {
	return LogicalRect{
		IStart: lr.IStart - m.IStart,
		BStart: lr.BStart - m.BStart,
		ISize:  lr.ISize + m.IStart + m.IEnd,
		BSize:  lr.BSize + m.BStart + m.BEnd,
	}
}

// Deflate shrinks the rect by a logical margin on all four sides.
func (lr LogicalRect) Deflate(m LogicalMargin) LogicalRect {
	return LogicalRect{
		IStart: lr.IStart + m.IStart,
		BStart: lr.BStart + m.BStart,
		ISize:  lr.ISize - m.IStart - m.IEnd,
		BSize:  lr.BSize - m.BStart - m.BEnd,
	}
}

// LogicalMargin is a per-side thickness in writing-mode-relative
// terms.
type LogicalMargin struct {
	BStart, BEnd, IStart, IEnd Coord
}

// LogicalMarginFromPhysical maps a physical margin's sides onto the
// writing mode's block and inline axes.
func LogicalMarginFromPhysical(wm WritingMode, m Margin) LogicalMargin {
	var lm LogicalMargin
	switch wm.Block {
	case VerticalRL, SidewaysRL:
		lm.BStart, lm.BEnd = m.Right, m.Left
	case VerticalLR, SidewaysLR:
		lm.BStart, lm.BEnd = m.Left, m.Right
	default:
		lm.BStart, lm.BEnd = m.Top, m.Bottom
	}

	switch {
	case !wm.IsVertical():
		if wm.RTL {
			lm.IStart, lm.IEnd = m.Right, m.Left
		} else {
			lm.IStart, lm.IEnd = m.Left, m.Right
		}
	case wm.Block == SidewaysLR:
		if wm.RTL {
			lm.IStart, lm.IEnd = m.Top, m.Bottom
		} else {
			lm.IStart, lm.IEnd = m.Bottom, m.Top
		}
	default:
		if wm.RTL {
			lm.IStart, lm.IEnd = m.Bottom, m.Top
		} else {
			lm.IStart, lm.IEnd = m.Top, m.Bottom
		}
	}
	return lm
}

// PhysicalMargin is the inverse of LogicalMarginFromPhysical.
func (lm LogicalMargin) PhysicalMargin(wm WritingMode) Margin {
	var m Margin
	switch wm.Block {
	case VerticalRL, SidewaysRL:
		m.Right, m.Left = lm.BStart, lm.BEnd
	case VerticalLR, SidewaysLR:
		m.Left, m.Right = lm.BStart, lm.BEnd
	default:
		m.Top, m.Bottom = lm.BStart, lm.BEnd
	}

	switch {
	case !wm.IsVertical():
		if wm.RTL {
			m.Right, m.Left = lm.IStart, lm.IEnd
		} else {
			m.Left, m.Right = lm.IStart, lm.IEnd
		}
	case wm.Block == SidewaysLR:
		if wm.RTL {
			m.Top, m.Bottom = lm.IStart, lm.IEnd
		} else {
			m.Bottom, m.Top = lm.IStart, lm.IEnd
		}
	default:
		if wm.RTL {
			m.Bottom, m.Top = lm.IStart, lm.IEnd
		} else {
			m.Top, m.Bottom = lm.IStart, lm.IEnd
		}
	}
	return m
}
