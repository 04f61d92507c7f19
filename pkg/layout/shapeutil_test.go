package layout

import (
	"testing"

	"flotilla/pkg/css"
)

func TestComputeInsetRect(t *testing.T) {
	shape, ok := css.ParseBasicShape("inset(10px 20px 30px 40px)")
	if !ok {
		t.Fatal("Expected inset to parse")
	}
	ref := Rect{0, 0, FromPixels(200), FromPixels(100)}

	got := computeInsetRect(shape, ref)
	expected := Rect{FromPixels(40), FromPixels(10), FromPixels(140), FromPixels(60)}
	if got != expected {
		t.Errorf("Expected %+v, got %+v", expected, got)
	}
}

func TestComputeInsetRect_OverConstrained(t *testing.T) {
	shape, ok := css.ParseBasicShape("inset(60% 60%)")
	if !ok {
		t.Fatal("Expected inset to parse")
	}
	got := computeInsetRect(shape, Rect{0, 0, 1000, 1000})
	if got.Width != 0 || got.Height != 0 {
		t.Errorf("Expected collapsed inset, got %+v", got)
	}
}

func TestComputeInsetRadii_OverflowScaling(t *testing.T) {
	// 80+80 = 160 horizontal radii against a 100-wide box scale down
	// by 100/160.
	shape, ok := css.ParseBasicShape("inset(0px round 80px)")
	if !ok {
		t.Fatal("Expected inset to parse")
	}
	// Work in raw units via a pixel-free reference: 80px = 4800 units,
	// box 100px = 6000 wide, 10000 units tall so only width overflows.
	// Scale = 6000/9600 = 0.625, so each radius becomes 3000.
	inset := Rect{0, 0, 6000, 10000}
	radii, has := computeInsetRadii(shape, inset)
	if !has {
		t.Fatal("Expected radii")
	}
	if radii[RadiusTopLeftX] != 3000 {
		t.Errorf("Expected scaled radius 3000, got %d", radii[RadiusTopLeftX])
	}
	// Vertical radii scale by the same factor to keep the corner
	// shape.
	if radii[RadiusTopLeftY] != 3000 {
		t.Errorf("Expected uniform scaling, got %d", radii[RadiusTopLeftY])
	}
}

func TestComputeShapeCenter_Default(t *testing.T) {
	shape, _ := css.ParseBasicShape("circle()")
	got := computeShapeCenter(shape, Rect{100, 200, 400, 600})
	if got.X != 300 || got.Y != 500 {
		t.Errorf("Expected default center (300, 500), got %+v", got)
	}
}

func TestComputeCircleRadius(t *testing.T) {
	// Centered in a 400x300 box: side distances are 200 and 150.
	ref := Rect{0, 0, 400, 300}

	shape, _ := css.ParseBasicShape("circle(closest-side)")
	center := computeShapeCenter(shape, ref)
	if got := computeCircleRadius(shape, center, ref); got != 150 {
		t.Errorf("Expected closest-side radius 150, got %d", got)
	}

	shape, _ = css.ParseBasicShape("circle(farthest-side)")
	if got := computeCircleRadius(shape, center, ref); got != 200 {
		t.Errorf("Expected farthest-side radius 200, got %d", got)
	}

	// An explicit percentage resolves against sqrt(w^2+h^2)/sqrt(2):
	// for 400x300 that is 500/sqrt(2) = 353.
	shape, _ = css.ParseBasicShape("circle(100%)")
	if got := computeCircleRadius(shape, center, ref); got != 353 {
		t.Errorf("Expected percentage radius 353, got %d", got)
	}
}

func TestComputeEllipseRadii(t *testing.T) {
	// Centered in a 400x300 box: rx picks between 200/200, ry between
	// 150/150, so the keyword choice shows once the center moves.
	ref := Rect{0, 0, 400, 300}
	shape, _ := css.ParseBasicShape("ellipse(closest-side farthest-side)")
	shape.Position = css.PolygonVertex{
		X: css.LengthPercent{Pct: 25},
		Y: css.LengthPercent{Pct: 25},
	}
	shape.HasPosition = true

	center := computeShapeCenter(shape, ref) // (100, 75)
	radii := computeEllipseRadii(shape, center, ref)
	if radii.Width != 100 {
		t.Errorf("Expected closest-side rx 100, got %d", radii.Width)
	}
	if radii.Height != 225 {
		t.Errorf("Expected farthest-side ry 225, got %d", radii.Height)
	}
}

func TestComputePolygonVertices(t *testing.T) {
	shape, ok := css.ParseBasicShape("polygon(0 0, 100% 0, 50% 100%)")
	if !ok {
		t.Fatal("Expected polygon to parse")
	}
	ref := Rect{100, 200, 600, 400}

	got := computePolygonVertices(shape, ref)
	expected := []Point{{100, 200}, {700, 200}, {400, 600}}
	if len(got) != len(expected) {
		t.Fatalf("Expected %d vertices, got %d", len(expected), len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Vertex %d: expected %+v, got %+v", i, expected[i], got[i])
		}
	}
}
