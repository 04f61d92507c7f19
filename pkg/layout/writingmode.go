package layout

// BlockFlow is the block-axis progression of a writing mode.
type BlockFlow int

const (
	HorizontalTB BlockFlow = iota
	VerticalRL
	VerticalLR
	SidewaysRL
	SidewaysLR
)

// WritingMode pairs the block flow with the inline direction. The
// float manager stores everything in the flow-logical frame this type
// defines: x runs along the line axis from the line-left edge, y runs
// along the block axis from the block-start edge.
//
// The line axis is direction-independent: for horizontal writing the
// line-left edge is the physical left edge whether the text is LTR or
// RTL. The RTL flag matters only when translating between
// inline-start-relative logical rects and the line-relative frame.
type WritingMode struct {
	Block BlockFlow
	RTL   bool
}

func (wm WritingMode) IsVertical() bool {
	return wm.Block != HorizontalTB
}

func (wm WritingMode) IsVerticalRL() bool {
	return wm.Block == VerticalRL || wm.Block == SidewaysRL
}

func (wm WritingMode) IsVerticalLR() bool {
	return wm.Block == VerticalLR || wm.Block == SidewaysLR
}

func (wm WritingMode) IsSideways() bool {
	return wm.Block == SidewaysRL || wm.Block == SidewaysLR
}

func (wm WritingMode) IsBidiLTR() bool {
	return !wm.RTL
}

// Compatible reports whether two writing modes agree on the axes the
// float manager cares about. A manager asserts this against every
// query's writing mode.
func (wm WritingMode) Compatible(other WritingMode) bool {
	return wm.Block == other.Block
}

// ContainerISize is the container's span along the inline axis.
func (wm WritingMode) ContainerISize(container Size) Coord {
	if wm.IsVertical() {
		return container.Height
	}
	return container.Width
}

// ContainerBSize is the container's span along the block axis.
func (wm WritingMode) ContainerBSize(container Size) Coord {
	if wm.IsVertical() {
		return container.Width
	}
	return container.Height
}

// FlowRelativeRect converts a physical rect to the flow-logical frame.
// The block axis is mirrored for vertical-rl flows and the line axis
// for sideways-lr, both against the container size; the round trip
// through FlowPhysicalRect is the identity.
func (wm WritingMode) FlowRelativeRect(r Rect, container Size) Rect {
	switch wm.Block {
	case VerticalRL, SidewaysRL:
		return Rect{r.Y, container.Width - r.XMost(), r.Height, r.Width}
	case VerticalLR:
		return Rect{r.Y, r.X, r.Height, r.Width}
	case SidewaysLR:
		return Rect{container.Height - r.YMost(), r.X, r.Height, r.Width}
	default:
		return r
	}
}

// FlowPhysicalRect is the inverse of FlowRelativeRect.
func (wm WritingMode) FlowPhysicalRect(r Rect, container Size) Rect {
	switch wm.Block {
	case VerticalRL, SidewaysRL:
		return Rect{container.Width - r.Y - r.Height, r.X, r.Height, r.Width}
	case VerticalLR:
		return Rect{r.Y, r.X, r.Height, r.Width}
	case SidewaysLR:
		return Rect{r.Y, container.Height - r.X - r.Width, r.Height, r.Width}
	default:
		return r
	}
}

// FlowRelativePoint converts a physical point to the flow-logical
// frame.
func (wm WritingMode) FlowRelativePoint(p Point, container Size) Point {
	switch wm.Block {
	case VerticalRL, SidewaysRL:
		return Point{p.Y, container.Width - p.X}
	case VerticalLR:
		return Point{p.Y, p.X}
	case SidewaysLR:
		return Point{container.Height - p.Y, p.X}
	default:
		return p
	}
}

// Corner indices of a flow-logical radii array: block-start-line-left
// first, then clockwise toward line-right, X before Y. The X radius
// runs along the line axis, the Y radius along the block axis.
const (
	RadiusTopLeftX = iota
	RadiusTopLeftY
	RadiusTopRightX
	RadiusTopRightY
	RadiusBottomRightX
	RadiusBottomRightY
	RadiusBottomLeftX
	RadiusBottomLeftY
)

// FlowRelativeRadii converts eight physical half corner radii (CSS
// corner order: top-left, top-right, bottom-right, bottom-left, x
// before y) to the flow-logical corner order above.
func (wm WritingMode) FlowRelativeRadii(physical [8]Coord) [8]Coord {
	// Physical corner index (0 TL, 1 TR, 2 BR, 3 BL) occupying each
	// flow-logical corner (top-left, top-right, bottom-right,
	// bottom-left in flow terms).
	var corner [4]int
	switch wm.Block {
	case VerticalRL, SidewaysRL:
		// Block-start is the physical right side; line-left is the
		// physical top.
		corner = [4]int{1, 2, 3, 0}
	case VerticalLR:
		// Block-start left, line-left top.
		corner = [4]int{0, 3, 2, 1}
	case SidewaysLR:
		// Block-start left, line-left bottom.
		corner = [4]int{3, 0, 1, 2}
	default:
		corner = [4]int{0, 1, 2, 3}
	}

	swapAxes := wm.IsVertical()
	var logical [8]Coord
	for lc := 0; lc < 4; lc++ {
		pc := corner[lc]
		x, y := physical[pc*2], physical[pc*2+1]
		if swapAxes {
			x, y = y, x
		}
		logical[lc*2] = x
		logical[lc*2+1] = y
	}
	return logical
}
