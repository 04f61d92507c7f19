package layout

import (
	"math"

	"flotilla/pkg/css"
)

// Resolution of <basic-shape> functions against their reference box.
// Everything here works in physical app units; the caller converts the
// results into the flow-logical frame afterwards, because the CSS
// shape functions are specified in physical coordinates
// (https://drafts.csswg.org/css-shapes-1/#basic-shape-functions).

func resolveLengthPercent(lp css.LengthPercent, basis Coord) Coord {
	return FromPixels(lp.Px + lp.Pct/100*ToPixels(basis))
}

// computeInsetRect resolves inset() offsets against the reference
// box. Over-constrained insets collapse the affected axis to zero at
// the inset origin.
func computeInsetRect(shape *css.BasicShape, ref Rect) Rect {
	top := resolveLengthPercent(shape.Insets[0], ref.Height)
	right := resolveLengthPercent(shape.Insets[1], ref.Width)
	bottom := resolveLengthPercent(shape.Insets[2], ref.Height)
	left := resolveLengthPercent(shape.Insets[3], ref.Width)

	r := Rect{
		X:      ref.X + left,
		Y:      ref.Y + top,
		Width:  ref.Width - left - right,
		Height: ref.Height - top - bottom,
	}
	if r.Width < 0 {
		r.Width = 0
	}
	if r.Height < 0 {
		r.Height = 0
	}
	return r
}

// computeInsetRadii resolves the "round" radii of inset() against the
// inset rect and scales them down together when adjacent corners would
// overlap, per the border-radius overflow rule. Returns false when all
// radii are zero.
func computeInsetRadii(shape *css.BasicShape, inset Rect) ([8]Coord, bool) {
	var radii [8]Coord
	if !shape.HasRadii {
		return radii, false
	}

	for corner := 0; corner < 4; corner++ {
		radii[corner*2] = resolveLengthPercent(shape.Radii[corner*2], inset.Width)
		radii[corner*2+1] = resolveLengthPercent(shape.Radii[corner*2+1], inset.Height)
	}

	// Scale factor so no side's pair of radii exceeds its length.
	ratio := 1.0
	shrink := func(side Coord, r1, r2 Coord) {
		sum := int64(r1) + int64(r2)
		if sum > 0 && int64(side) < sum {
			if f := float64(side) / float64(sum); f < ratio {
				ratio = f
			}
		}
	}
	shrink(inset.Width, radii[RadiusTopLeftX], radii[RadiusTopRightX])
	shrink(inset.Width, radii[RadiusBottomLeftX], radii[RadiusBottomRightX])
	shrink(inset.Height, radii[RadiusTopLeftY], radii[RadiusBottomLeftY])
	shrink(inset.Height, radii[RadiusTopRightY], radii[RadiusBottomRightY])
	if ratio < 1.0 {
		for i := range radii {
			radii[i] = Coord(math.Floor(float64(radii[i]) * ratio))
		}
	}

	hasRadii := false
	for _, r := range radii {
		if r > 0 {
			hasRadii = true
			break
		}
	}
	return radii, hasRadii
}

// computeShapeCenter resolves the circle()/ellipse() center against
// the reference box; the default position is the box's center.
func computeShapeCenter(shape *css.BasicShape, ref Rect) Point {
	pos := shape.Position
	if !shape.HasPosition {
		pos = css.PolygonVertex{
			X: css.LengthPercent{Pct: 50},
			Y: css.LengthPercent{Pct: 50},
		}
	}
	return Point{
		X: ref.X + resolveLengthPercent(pos.X, ref.Width),
		Y: ref.Y + resolveLengthPercent(pos.Y, ref.Height),
	}
}

// computeCircleRadius resolves the circle() radius. Percentages
// resolve against sqrt(w²+h²)/√2 per the spec.
func computeCircleRadius(shape *css.BasicShape, center Point, ref Rect) Coord {
	switch shape.Radius.Kind {
	case css.RadiusClosestSide:
		return minCoord(
			minCoord(absCoord(center.X-ref.X), absCoord(ref.XMost()-center.X)),
			minCoord(absCoord(center.Y-ref.Y), absCoord(ref.YMost()-center.Y)))
	case css.RadiusFarthestSide:
		return maxCoord(
			maxCoord(absCoord(center.X-ref.X), absCoord(ref.XMost()-center.X)),
			maxCoord(absCoord(center.Y-ref.Y), absCoord(ref.YMost()-center.Y)))
	default:
		w, h := float64(ref.Width), float64(ref.Height)
		basis := Coord(math.Sqrt(w*w+h*h) / math.Sqrt2)
		return resolveLengthPercent(shape.Radius.Value, basis)
	}
}

// computeEllipseRadii resolves the ellipse() radii, each axis against
// its own dimension of the reference box.
func computeEllipseRadii(shape *css.BasicShape, center Point, ref Rect) Size {
	rx := resolveShapeRadius(shape.RadiusX, center.X, ref.X, ref.XMost(), ref.Width)
	ry := resolveShapeRadius(shape.RadiusY, center.Y, ref.Y, ref.YMost(), ref.Height)
	return Size{Width: rx, Height: ry}
}

func resolveShapeRadius(r css.ShapeRadius, center, lo, hi, basis Coord) Coord {
	switch r.Kind {
	case css.RadiusClosestSide:
		return minCoord(absCoord(center-lo), absCoord(hi-center))
	case css.RadiusFarthestSide:
		return maxCoord(absCoord(center-lo), absCoord(hi-center))
	default:
		return resolveLengthPercent(r.Value, basis)
	}
}

// computePolygonVertices resolves polygon() vertices against the
// reference box.
func computePolygonVertices(shape *css.BasicShape, ref Rect) []Point {
	vertices := make([]Point, 0, len(shape.Vertices))
	for _, v := range shape.Vertices {
		vertices = append(vertices, Point{
			X: ref.X + resolveLengthPercent(v.X, ref.Width),
			Y: ref.Y + resolveLengthPercent(v.Y, ref.Height),
		})
	}
	return vertices
}

func absCoord(c Coord) Coord {
	if c < 0 {
		return -c
	}
	return c
}
