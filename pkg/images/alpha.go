package images

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"

	"flotilla/pkg/css"
)

// Shape images are consumed through their alpha channel only: the
// float manager scans an 8-bit alpha surface, sized to the float's
// content box in device pixels, against the shape-image-threshold.
// The renderers here produce that surface synchronously.

// RenderImageAlpha scales a decoded image to w x h device pixels and
// returns its alpha channel.
func RenderImageAlpha(img image.Image, w, h int) *image.Alpha {
	if w <= 0 || h <= 0 {
		return nil
	}
	alpha := image.NewAlpha(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(alpha, alpha.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return alpha
}

// RenderGradientAlpha rasterizes a CSS gradient at w x h device pixels
// and returns its alpha channel. Stops at or faded to transparent are
// what make a gradient useful as a shape image.
func RenderGradientAlpha(g *css.Gradient, w, h int) *image.Alpha {
	if g == nil || len(g.ColorStops) < 2 || w <= 0 || h <= 0 {
		return nil
	}

	// Resolve pixel-positioned stops against the surface size without
	// mutating the caller's computed value.
	resolved := *g
	resolved.ColorStops = append([]css.ColorStop(nil), g.ColorStops...)
	resolved.ConvertPixelOffsetsToPercentages(float64(w), float64(h))

	var grad gg.Gradient
	if resolved.Type == css.GradientRadial {
		cx, cy := float64(w)/2, float64(h)/2
		r := math.Hypot(cx, cy)
		grad = gg.NewRadialGradient(cx, cy, 0, cx, cy, r)
	} else {
		x0, y0, x1, y1 := linearGradientLine(resolved.Direction, float64(w), float64(h))
		grad = gg.NewLinearGradient(x0, y0, x1, y1)
	}

	for _, stop := range resolved.ColorStops {
		offset := stop.Offset
		if offset < 0 {
			offset = 0
		}
		if offset > 1 {
			offset = 1
		}
		grad.AddColorStop(offset, color.NRGBA{
			R: stop.Color.R,
			G: stop.Color.G,
			B: stop.Color.B,
			A: stop.Color.A,
		})
	}

	ctx := gg.NewContext(w, h)
	ctx.SetFillStyle(grad)
	ctx.DrawRectangle(0, 0, float64(w), float64(h))
	ctx.Fill()

	alpha := image.NewAlpha(image.Rect(0, 0, w, h))
	xdraw.Draw(alpha, alpha.Bounds(), ctx.Image(), image.Point{}, xdraw.Src)
	return alpha
}

// linearGradientLine converts a CSS linear-gradient direction into the
// start and end points of the gradient line across a w x h surface.
func linearGradientLine(direction string, w, h float64) (x0, y0, x1, y1 float64) {
	switch strings.TrimSpace(direction) {
	case "to right":
		return 0, 0, w, 0
	case "to left":
		return w, 0, 0, 0
	case "to top":
		return 0, h, 0, 0
	case "to bottom", "":
		return 0, 0, 0, h
	case "to bottom right", "to right bottom":
		return 0, 0, w, h
	case "to bottom left", "to left bottom":
		return w, 0, 0, h
	case "to top right", "to right top":
		return 0, h, w, 0
	case "to top left", "to left top":
		return w, h, 0, 0
	}

	if deg, ok := parseDegrees(direction); ok {
		// CSS angles: 0deg points up, positive clockwise. The gradient
		// line passes through the center with the length that projects
		// onto all four corners.
		rad := deg * math.Pi / 180
		dx, dy := math.Sin(rad), -math.Cos(rad)
		length := math.Abs(w*dx) + math.Abs(h*dy)
		cx, cy := w/2, h/2
		return cx - dx*length/2, cy - dy*length/2,
			cx + dx*length/2, cy + dy*length/2
	}

	return 0, 0, 0, h
}

func parseDegrees(direction string) (float64, bool) {
	direction = strings.TrimSpace(direction)
	if !strings.HasSuffix(direction, "deg") {
		return 0, false
	}
	deg, err := strconv.ParseFloat(strings.TrimSuffix(direction, "deg"), 64)
	if err != nil {
		return 0, false
	}
	return deg, true
}
