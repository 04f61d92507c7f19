package layout

import (
	"image"
	"math"

	"flotilla/pkg/css"
	"flotilla/pkg/images"
)

// shapeKind discriminates the shape-outside strategies. The variants
// are a closed set dispatched by switch rather than an interface
// hierarchy; the common rounded-box and ellipse cases then live inline
// in FloatInfo with no extra indirection.
type shapeKind int

const (
	roundedBoxShape shapeKind = iota
	ellipseShape
	polygonShape
	imageShape
)

// shapeInfo is one shape-outside strategy in the flow-logical frame.
// Which fields are meaningful depends on kind:
//
//	roundedBoxShape: rect, radii (nil radii means sharp corners)
//	ellipseShape:    center, radiiSize
//	polygonShape:    vertices, empty, bStart, bEnd
//	imageShape:      intervals, bStart, bEnd
type shapeInfo struct {
	kind shapeKind

	rect  Rect
	radii *[8]Coord

	center    Point
	radiiSize Size

	vertices []Point
	empty    bool

	// intervals are one-device-pixel-thick slices of the image's float
	// area, sorted ascending on the block axis.
	intervals []Rect

	bStart, bEnd Coord
}

// LineLeft returns the shape's line-left-most coordinate within the
// block band [bStart, bEnd].
func (si *shapeInfo) LineLeft(bStart, bEnd Coord) Coord {
	switch si.kind {
	case roundedBoxShape:
		if si.radii == nil {
			return si.rect.X
		}
		diff := ellipseLineInterceptDiff(
			si.rect.Y, si.rect.YMost(),
			si.radii[RadiusTopLeftX], si.radii[RadiusTopLeftY],
			si.radii[RadiusBottomLeftX], si.radii[RadiusBottomLeftY],
			bStart, bEnd)
		return si.rect.X + diff
	case ellipseShape:
		diff := ellipseLineInterceptDiff(
			si.BStart(), si.BEnd(),
			si.radiiSize.Width, si.radiiSize.Height,
			si.radiiSize.Width, si.radiiSize.Height,
			bStart, bEnd)
		return si.center.X - si.radiiSize.Width + diff
	case polygonShape:
		return si.polygonLineIntercept(bStart, bEnd, true)
	default:
		return si.imageLineEdge(bStart, bEnd, true)
	}
}

// LineRight returns the shape's line-right-most coordinate within the
// block band [bStart, bEnd].
func (si *shapeInfo) LineRight(bStart, bEnd Coord) Coord {
	switch si.kind {
	case roundedBoxShape:
		if si.radii == nil {
			return si.rect.XMost()
		}
		diff := ellipseLineInterceptDiff(
			si.rect.Y, si.rect.YMost(),
			si.radii[RadiusTopRightX], si.radii[RadiusTopRightY],
			si.radii[RadiusBottomRightX], si.radii[RadiusBottomRightY],
			bStart, bEnd)
		return si.rect.XMost() - diff
	case ellipseShape:
		diff := ellipseLineInterceptDiff(
			si.BStart(), si.BEnd(),
			si.radiiSize.Width, si.radiiSize.Height,
			si.radiiSize.Width, si.radiiSize.Height,
			bStart, bEnd)
		return si.center.X + si.radiiSize.Width - diff
	case polygonShape:
		return si.polygonLineIntercept(bStart, bEnd, false)
	default:
		return si.imageLineEdge(bStart, bEnd, false)
	}
}

func (si *shapeInfo) BStart() Coord {
	switch si.kind {
	case roundedBoxShape:
		return si.rect.Y
	case ellipseShape:
		return si.center.Y - si.radiiSize.Height
	default:
		return si.bStart
	}
}

func (si *shapeInfo) BEnd() Coord {
	switch si.kind {
	case roundedBoxShape:
		return si.rect.YMost()
	case ellipseShape:
		return si.center.Y + si.radiiSize.Height
	default:
		return si.bEnd
	}
}

func (si *shapeInfo) IsEmpty() bool {
	switch si.kind {
	case roundedBoxShape:
		return si.rect.IsEmpty()
	case ellipseShape:
		return si.radiiSize.Width <= 0 || si.radiiSize.Height <= 0
	case polygonShape:
		return si.empty
	default:
		return len(si.intervals) == 0
	}
}

// Translate shifts the shape by the manager origin.
func (si *shapeInfo) Translate(dx, dy Coord) {
	switch si.kind {
	case roundedBoxShape:
		si.rect = si.rect.Translate(dx, dy)
	case ellipseShape:
		si.center = si.center.Translate(dx, dy)
	case polygonShape:
		for i := range si.vertices {
			si.vertices[i] = si.vertices[i].Translate(dx, dy)
		}
		si.bStart += dy
		si.bEnd += dy
	default:
		for i := range si.intervals {
			si.intervals[i] = si.intervals[i].Translate(dx, dy)
		}
		si.bStart += dy
		si.bEnd += dy
	}
}

func newRoundedBoxShape(rect Rect, radii *[8]Coord) *shapeInfo {
	return &shapeInfo{kind: roundedBoxShape, rect: rect, radii: radii}
}

func newEllipseShape(center Point, radii Size) *shapeInfo {
	return &shapeInfo{kind: ellipseShape, center: center, radiiSize: radii}
}

// newPolygonShape classifies the polygon on construction: fewer than
// three vertices, or vertices that are all collinear, enclose no area
// (https://drafts.csswg.org/css-shapes/#funcdef-polygon).
func newPolygonShape(vertices []Point) *shapeInfo {
	si := &shapeInfo{
		kind:     polygonShape,
		vertices: vertices,
		bStart:   CoordMax,
		bEnd:     CoordMin,
	}

	if len(vertices) < 3 {
		si.empty = true
		return si
	}

	// Determinant of the 2x2 matrix [p1-p0 p2-p0]; zero means the
	// three points are collinear.
	p0, p1 := vertices[0], vertices[1]
	entirelyCollinear := true
	for _, p2 := range vertices[2:] {
		d := int64(p2.X-p0.X)*int64(p1.Y-p0.Y) -
			int64(p2.Y-p0.Y)*int64(p1.X-p0.X)
		if d != 0 {
			entirelyCollinear = false
			break
		}
	}
	if entirelyCollinear {
		si.empty = true
		return si
	}

	for _, v := range vertices {
		si.bStart = minCoord(si.bStart, v.Y)
		si.bEnd = maxCoord(si.bEnd, v.Y)
	}
	return si
}

// polygonLineIntercept finds the extreme inline coordinate where the
// band crosses any edge of the polygon. Horizontal edges are skipped:
// their endpoints are each shared with a non-horizontal edge, which
// contributes the same extremes.
func (si *shapeInfo) polygonLineIntercept(bStart, bEnd Coord, wantMin bool) Coord {
	assert(!si.empty, "line intercept on an empty polygon")
	assert(bStart <= bEnd, "band block start after block end")

	intercept := CoordMin
	if wantMin {
		intercept = CoordMax
	}

	n := len(si.vertices)
	for i := 0; i < n; i++ {
		p, q := si.vertices[i], si.vertices[(i+1)%n]
		if p.Y > q.Y {
			p, q = q, p
		}
		if bStart >= q.Y || bEnd <= p.Y || p.Y == q.Y {
			continue
		}

		startX := p.X
		if bStart > p.Y {
			startX = polygonXInterceptAtY(bStart, p, q)
		}
		endX := q.X
		if bEnd < q.Y {
			endX = polygonXInterceptAtY(bEnd, p, q)
		}

		if wantMin {
			intercept = minCoord(intercept, minCoord(startX, endX))
		} else {
			intercept = maxCoord(intercept, maxCoord(startX, endX))
		}
	}
	return intercept
}

// polygonXInterceptAtY solves x for the intersection of the horizontal
// line at y with the non-horizontal segment (p, q), where p.Y <= y <=
// q.Y.
func polygonXInterceptAtY(y Coord, p, q Point) Coord {
	return p.X + Coord(int64(y-p.Y)*int64(q.X-p.X)/int64(q.Y-p.Y))
}

// newImageShape scans an alpha buffer and keeps one interval per
// device-pixel row (column under vertical writing modes) whose alpha
// exceeds the threshold
// (https://drafts.csswg.org/css-shapes-1/#valdef-shape-image-threshold-number).
// The buffer itself is not retained.
func newImageShape(alpha *image.Alpha, threshold float64, appUnitsPerDevPixel Coord,
	contentRect Rect, wm WritingMode, container Size) *shapeInfo {

	si := &shapeInfo{
		kind:   imageShape,
		bStart: CoordMax,
		bEnd:   CoordMin,
	}

	thresholdAlpha := uint8(math.Floor(threshold * 255))
	bounds := alpha.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	u := appUnitsPerDevPixel

	// Scan row by row for horizontal writing modes, column by column
	// for vertical ones, tracking the opaque extent of each slice.
	bSize, iSize := h, w
	if wm.IsVertical() {
		bSize, iSize = w, h
	}
	for b := 0; b < bSize; b++ {
		iMin, iMax := -1, -1
		for i := 0; i < iSize; i++ {
			col, row := i, b
			if wm.IsVertical() {
				col, row = b, i
			}
			a := alpha.Pix[row*alpha.Stride+col]
			if a > thresholdAlpha {
				if iMin == -1 {
					iMin = i
				}
				iMax = i
			}
		}
		if iMin == -1 {
			continue
		}

		// The physical rect of this slice; +1 captures the far edge of
		// the last opaque pixel.
		var pr Rect
		if wm.IsVertical() {
			pr = Rect{
				X:      contentRect.X + Coord(b)*u,
				Y:      contentRect.Y + Coord(iMin)*u,
				Width:  u,
				Height: Coord(iMax+1-iMin) * u,
			}
		} else {
			pr = Rect{
				X:      contentRect.X + Coord(iMin)*u,
				Y:      contentRect.Y + Coord(b)*u,
				Width:  Coord(iMax+1-iMin) * u,
				Height: u,
			}
		}
		si.intervals = append(si.intervals, wm.FlowRelativeRect(pr, container))
	}

	if wm.IsVerticalRL() {
		// Columns were scanned left to right, which is descending
		// block order for these modes; reverse so the array is sorted
		// ascending on the block axis.
		for i, j := 0, len(si.intervals)-1; i < j; i, j = i+1, j-1 {
			si.intervals[i], si.intervals[j] = si.intervals[j], si.intervals[i]
		}
	}

	if len(si.intervals) > 0 {
		si.bStart = si.intervals[0].Y
		si.bEnd = si.intervals[len(si.intervals)-1].YMost()
	}
	return si
}

// minIntervalIndexContainingY binary-searches for the lowest interval
// index containing y, or the first interval past it.
func (si *shapeInfo) minIntervalIndexContainingY(y Coord) int {
	lo, hi := 0, len(si.intervals)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if si.intervals[mid].ContainsY(y) {
			return mid
		}
		if si.intervals[mid].Y < y {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return hi
}

// imageLineEdge scans the intervals overlapping [bStart, bEnd] for the
// most extreme inline edge. With no overlap it returns the identity
// for the caller's min/max against the margin box.
func (si *shapeInfo) imageLineEdge(bStart, bEnd Coord, wantLeft bool) Coord {
	assert(bStart <= bEnd, "band block start after block end")

	edge := CoordMin
	if wantLeft {
		edge = CoordMax
	}
	for i := si.minIntervalIndexContainingY(bStart); i < len(si.intervals); i++ {
		interval := si.intervals[i]
		if interval.Y > bEnd {
			break
		}
		if wantLeft {
			edge = minCoord(edge, interval.X)
		} else {
			edge = maxCoord(edge, interval.XMost())
		}
	}
	return edge
}

// ellipseLineInterceptDiff computes how far a rounded corner pulls the
// shape's edge inward within the band [bandBStart, bandBEnd]. The
// corner radii describe quarter-ellipse arcs at the block-start and
// block-end ends of one side of the shape box; the result is the
// line-axis depth of the arc where the band crosses it, or 0 when the
// band only spans the straight middle of the side.
func ellipseLineInterceptDiff(shapeBStart, shapeBEnd,
	bStartCornerRadiusL, bStartCornerRadiusB,
	bEndCornerRadiusL, bEndCornerRadiusB,
	bandBStart, bandBEnd Coord) Coord {

	assert(shapeBStart <= shapeBEnd, "bad shape box coordinates")
	assert(bandBStart <= bandBEnd, "bad band coordinates")

	var diff Coord

	// A band spanning both corners crosses the widest point of the
	// side, so neither branch applies and the diff is 0.
	if bStartCornerRadiusB > 0 &&
		bandBEnd >= shapeBStart &&
		bandBEnd <= shapeBStart+bStartCornerRadiusB {
		// Band within the block-start corner.
		b := bStartCornerRadiusB - (bandBEnd - shapeBStart)
		intercept := ellipseXInterceptAtY(b, bStartCornerRadiusL, bStartCornerRadiusB)
		diff = bStartCornerRadiusL - intercept
	} else if bEndCornerRadiusB > 0 &&
		bandBStart >= shapeBEnd-bEndCornerRadiusB &&
		bandBStart <= shapeBEnd {
		// Band within the block-end corner.
		b := bEndCornerRadiusB - (shapeBEnd - bandBStart)
		intercept := ellipseXInterceptAtY(b, bEndCornerRadiusL, bEndCornerRadiusB)
		diff = bEndCornerRadiusL - intercept
	}

	return diff
}

// ellipseXInterceptAtY solves x in (x/rx)² + (y/ry)² = 1.
func ellipseXInterceptAtY(y, radiusX, radiusY Coord) Coord {
	assert(radiusY > 0, "ellipse intercept with non-positive block radius")
	fy2 := float64(y) * float64(y) / (float64(radiusY) * float64(radiusY))
	return Coord(float64(radiusX) * math.Sqrt(1-fy2))
}

// newShapeInfoForFrame builds the shape strategy for a float from its
// computed shape-outside, in the margin-box coordinate space (the
// caller translates by the manager origin afterwards). Returns nil for
// shape-outside: none and for image shapes whose image is not ready.
func newShapeInfoForFrame(frame Frame, marginRect LogicalRect,
	wm WritingMode, container Size) *shapeInfo {

	so := frame.Style().GetShapeOutside()
	switch so.Kind {
	case css.ShapeSourceNone:
		return nil
	case css.ShapeSourceImage:
		return createImageShape(frame, so, wm, container)
	case css.ShapeSourceBox:
		shapeBoxRect := computeShapeBoxRect(so.Box, frame, marginRect, wm)
		return createShapeBox(frame, shapeBoxRect, wm, container)
	default:
		shapeBoxRect := computeShapeBoxRect(so.Box, frame, marginRect, wm)
		return createBasicShape(so.Shape, shapeBoxRect, wm, container)
	}
}

// computeShapeBoxRect deflates the margin rect down to the reference
// box named by the shape-outside value.
func computeShapeBoxRect(box css.ReferenceBox, frame Frame,
	marginRect LogicalRect, wm WritingMode) LogicalRect {

	rect := marginRect
	switch box {
	case css.ContentBox:
		rect = rect.Deflate(LogicalMarginFromPhysical(wm, frame.UsedPadding()))
		fallthrough
	case css.PaddingBox:
		rect = rect.Deflate(LogicalMarginFromPhysical(wm, frame.UsedBorder()))
		fallthrough
	case css.BorderBox:
		rect = rect.Deflate(LogicalMarginFromPhysical(wm, frame.UsedMargin()))
	case css.MarginBox:
		// Already the margin rect.
	}
	return rect
}

func createShapeBox(frame Frame, shapeBoxRect LogicalRect,
	wm WritingMode, container Size) *shapeInfo {

	logicalRect := shapeBoxRect.FlowRelative(wm, container)

	physicalRadii, hasRadii := frame.ShapeBoxBorderRadii()
	if !hasRadii {
		return newRoundedBoxShape(logicalRect, nil)
	}
	radii := wm.FlowRelativeRadii(physicalRadii)
	return newRoundedBoxShape(logicalRect, &radii)
}

func createBasicShape(shape *css.BasicShape, shapeBoxRect LogicalRect,
	wm WritingMode, container Size) *shapeInfo {

	switch shape.Kind {
	case css.BasicShapeInset:
		return createInset(shape, shapeBoxRect, wm, container)
	case css.BasicShapeCircle, css.BasicShapeEllipse:
		return createCircleOrEllipse(shape, shapeBoxRect, wm, container)
	default:
		return createPolygon(shape, shapeBoxRect, wm, container)
	}
}

// createInset resolves inset() in physical space, because its offsets
// are physical, and converts the result to the flow-logical frame.
func createInset(shape *css.BasicShape, shapeBoxRect LogicalRect,
	wm WritingMode, container Size) *shapeInfo {

	physicalShapeBox := shapeBoxRect.PhysicalRect(wm, container)
	insetRect := computeInsetRect(shape, physicalShapeBox)
	logicalInset := wm.FlowRelativeRect(insetRect, container)

	physicalRadii, hasRadii := computeInsetRadii(shape, insetRect)
	if !hasRadii {
		return newRoundedBoxShape(logicalInset, nil)
	}
	radii := wm.FlowRelativeRadii(physicalRadii)
	return newRoundedBoxShape(logicalInset, &radii)
}

// createCircleOrEllipse resolves circle()/ellipse() in physical space,
// because the <position> keywords are physical, then converts.
func createCircleOrEllipse(shape *css.BasicShape, shapeBoxRect LogicalRect,
	wm WritingMode, container Size) *shapeInfo {

	physicalShapeBox := shapeBoxRect.PhysicalRect(wm, container)
	physicalCenter := computeShapeCenter(shape, physicalShapeBox)
	logicalCenter := wm.FlowRelativePoint(physicalCenter, container)

	var radii Size
	if shape.Kind == css.BasicShapeCircle {
		r := computeCircleRadius(shape, physicalCenter, physicalShapeBox)
		radii = Size{Width: r, Height: r}
	} else {
		physical := computeEllipseRadii(shape, physicalCenter, physicalShapeBox)
		radii = physical
		if wm.IsVertical() {
			radii = Size{Width: physical.Height, Height: physical.Width}
		}
	}
	return newEllipseShape(logicalCenter, radii)
}

func createPolygon(shape *css.BasicShape, shapeBoxRect LogicalRect,
	wm WritingMode, container Size) *shapeInfo {

	physicalShapeBox := shapeBoxRect.PhysicalRect(wm, container)
	physicalVertices := computePolygonVertices(shape, physicalShapeBox)

	vertices := make([]Point, len(physicalVertices))
	for i, v := range physicalVertices {
		vertices[i] = wm.FlowRelativePoint(v, container)
	}
	return newPolygonShape(vertices)
}

// createImageShape renders the shape image synchronously and scans it
// into intervals. An image that is not ready produces no shape; the
// float then excludes by its margin box until a later reflow retries.
func createImageShape(frame Frame, so *css.ShapeOutside,
	wm WritingMode, container Size) *shapeInfo {

	contentRect := frame.ContentRect()
	u := frame.AppUnitsPerDevPixel()
	if u <= 0 {
		u = AppUnitsPerCSSPixel
	}
	w := int(math.Round(float64(contentRect.Width) / float64(u)))
	h := int(math.Round(float64(contentRect.Height) / float64(u)))
	if w <= 0 || h <= 0 {
		return nil
	}

	var alpha *image.Alpha
	if so.Gradient != nil {
		alpha = images.RenderGradientAlpha(so.Gradient, w, h)
	} else {
		img, err := images.LoadImage(so.ImageURL)
		if err != nil {
			// Not ready; a later reflow may succeed.
			logger.Debug("shape image not ready", "url", so.ImageURL, "err", err)
			return nil
		}
		alpha = images.RenderImageAlpha(img, w, h)
	}
	if alpha == nil {
		return nil
	}

	threshold := frame.Style().GetShapeImageThreshold()
	return newImageShape(alpha, threshold, u, contentRect, wm, container)
}
