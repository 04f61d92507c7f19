package layout

// ShapeType selects which geometry of a float a query consults.
type ShapeType int

const (
	// ShapeTypeMargin considers only the float's margin box.
	ShapeTypeMargin ShapeType = iota
	// ShapeTypeShapeOutside considers the shape-outside geometry,
	// clipped by the margin box.
	ShapeTypeShapeOutside
)

// FloatInfo is one registered float. Its rect and shape are stored in
// the flow-logical frame, already translated by the manager origin
// that was current at insertion time; later origin changes never move
// stored entries.
type FloatInfo struct {
	// Frame identifies the float for trailing removal and damage.
	Frame Frame

	// Rect is the margin-box rect in the flow-logical frame.
	Rect Rect

	// LeftBEnd and RightBEnd are the running maxima of the block-end
	// edges of all floats of that side up to and including this entry.
	// They are monotone non-decreasing along the registry, which is
	// what lets queries walk backwards and stop early.
	LeftBEnd, RightBEnd Coord

	shape *shapeInfo
}

func newFloatInfo(frame Frame, lineLeft, blockStart Coord,
	marginRect LogicalRect, wm WritingMode, container Size) FloatInfo {

	fi := FloatInfo{
		Frame: frame,
		Rect:  marginRect.FlowRelative(wm, container).Translate(lineLeft, blockStart),
	}

	if fi.Rect.IsEmpty() {
		// A shape's float area is clipped to the margin box, so an
		// empty margin box can never grow a shape
		// (https://drafts.csswg.org/css-shapes/#relation-to-box-model-and-float-behavior).
		return fi
	}

	if shape := newShapeInfoForFrame(frame, marginRect, wm, container); shape != nil {
		shape.Translate(lineLeft, blockStart)
		fi.shape = shape
	}
	return fi
}

// LineLeft is the float's line-left-most exclusion edge within the
// band, for the given shape type. Shape results are clipped to the
// margin box.
func (fi *FloatInfo) LineLeft(shapeType ShapeType, bStart, bEnd Coord) Coord {
	if shapeType == ShapeTypeMargin || fi.shape == nil {
		return fi.Rect.X
	}
	return maxCoord(fi.Rect.X, fi.shape.LineLeft(bStart, bEnd))
}

// LineRight is the symmetric line-right edge.
func (fi *FloatInfo) LineRight(shapeType ShapeType, bStart, bEnd Coord) Coord {
	if shapeType == ShapeTypeMargin || fi.shape == nil {
		return fi.Rect.XMost()
	}
	return minCoord(fi.Rect.XMost(), fi.shape.LineRight(bStart, bEnd))
}

// BStart is the float's block-start for the given shape type, clipped
// to the margin box.
func (fi *FloatInfo) BStart(shapeType ShapeType) Coord {
	if shapeType == ShapeTypeMargin || fi.shape == nil {
		return fi.Rect.Y
	}
	return maxCoord(fi.Rect.Y, fi.shape.BStart())
}

// BEnd is the float's block-end for the given shape type, clipped to
// the margin box.
func (fi *FloatInfo) BEnd(shapeType ShapeType) Coord {
	if shapeType == ShapeTypeMargin || fi.shape == nil {
		return fi.Rect.YMost()
	}
	return minCoord(fi.Rect.YMost(), fi.shape.BEnd())
}

// IsEmpty reports whether the float excludes nothing for the given
// shape type.
func (fi *FloatInfo) IsEmpty(shapeType ShapeType) bool {
	if shapeType == ShapeTypeMargin || fi.shape == nil {
		return fi.Rect.IsEmpty()
	}
	return fi.shape.IsEmpty()
}
