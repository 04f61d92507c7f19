package layout

import "flotilla/pkg/css"

// Box is the concrete Frame used by the reflow driver and the tests.
// It carries its border-box geometry in physical app units and derives
// the used box-model edges from its computed style.
type Box struct {
	style *css.Style

	// Border-box position and size, physical app units.
	X, Y          Coord
	Width, Height Coord

	// Relative-positioning offsets already applied to X/Y.
	RelX, RelY Coord

	// Device pixel scale; zero means the default CSS-pixel scale.
	DevPixelScale Coord

	floatRegion    Margin
	hasFloatRegion bool
}

// NewBox creates a box with the given computed style and border-box
// rect.
func NewBox(style *css.Style, rect Rect) *Box {
	if style == nil {
		style = css.NewStyle()
	}
	return &Box{
		style:  style,
		X:      rect.X,
		Y:      rect.Y,
		Width:  rect.Width,
		Height: rect.Height,
	}
}

func (b *Box) Style() *css.Style {
	return b.style
}

func (b *Box) Rect() Rect {
	return Rect{b.X, b.Y, b.Width, b.Height}
}

// NormalPosition is the position the box would have without relative
// offsets. Float regions are computed from the normal position (CSS
// 2.1 §9.4.3: relative positioning happens after float placement).
func (b *Box) NormalPosition() Point {
	return Point{b.X - b.RelX, b.Y - b.RelY}
}

func (b *Box) ContentRect() Rect {
	border := b.UsedBorder()
	padding := b.UsedPadding()
	r := Rect{
		X:      b.X + border.Left + padding.Left,
		Y:      b.Y + border.Top + padding.Top,
		Width:  b.Width - border.Left - border.Right - padding.Left - padding.Right,
		Height: b.Height - border.Top - border.Bottom - padding.Top - padding.Bottom,
	}
	if r.Width < 0 {
		r.Width = 0
	}
	if r.Height < 0 {
		r.Height = 0
	}
	return r
}

func (b *Box) UsedMargin() Margin {
	return marginFromEdge(b.style.GetMargin())
}

func (b *Box) UsedBorder() Margin {
	return marginFromEdge(b.style.GetBorderWidth())
}

func (b *Box) UsedPadding() Margin {
	return marginFromEdge(b.style.GetPadding())
}

func (b *Box) ShapeBoxBorderRadii() ([8]Coord, bool) {
	px, has := b.style.BorderRadii()
	if !has {
		return [8]Coord{}, false
	}
	var radii [8]Coord
	for i, r := range px {
		radii[i] = FromPixels(r)
	}
	return radii, true
}

func (b *Box) AppUnitsPerDevPixel() Coord {
	if b.DevPixelScale > 0 {
		return b.DevPixelScale
	}
	return AppUnitsPerCSSPixel
}

func (b *Box) FloatRegionOffset() (Margin, bool) {
	return b.floatRegion, b.hasFloatRegion
}

func (b *Box) SetFloatRegionOffset(m Margin) {
	b.floatRegion = m
	b.hasFloatRegion = true
}

func (b *Box) ClearFloatRegionOffset() {
	b.floatRegion = Margin{}
	b.hasFloatRegion = false
}

func marginFromEdge(e css.BoxEdge) Margin {
	return Margin{
		Top:    FromPixels(e.Top),
		Right:  FromPixels(e.Right),
		Bottom: FromPixels(e.Bottom),
		Left:   FromPixels(e.Left),
	}
}
