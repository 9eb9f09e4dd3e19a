package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func mustBox(t *testing.T, x, y, w, h float64) *BoundingBox {
	t.Helper()
	b, err := NewBoundingBox(cp.Vector{X: x, Y: y}, w, h)
	if err != nil {
		t.Fatalf("NewBoundingBox(%g, %g, %g, %g): %v", x, y, w, h, err)
	}
	return b
}

func TestNewBoundingBoxRejectsBadGeometry(t *testing.T) {
	cases := []struct {
		name string
		w, h float64
	}{
		{"zero_width", 0, 10},
		{"zero_height", 10, 0},
		{"negative", -1, 5},
		{"nan", math.NaN(), 5},
		{"inf", math.Inf(1), 5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewBoundingBox(cp.Vector{}, c.w, c.h); !errors.Is(err, ErrInvalidGeometry) {
				t.Fatalf("expected ErrInvalidGeometry, got %v", err)
			}
		})
	}
}

func TestClassifyGeometry(t *testing.T) {
	cases := []struct {
		name string
		x, y float64
		want Result
	}{
		{"same_spot", 0, 0, Yes},
		{"partial", 5, 5, Yes},
		{"touching_right_edge", 10, 0, No},
		{"touching_bottom_edge", 0, 10, No},
		{"far_left", -30, 0, No},
		{"overlap_x_only", 5, 20, No},
		{"contained", 2, 2, Yes},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := mustBox(t, 0, 0, 10, 10)
			b := mustBox(t, c.x, c.y, 10, 10)
			if got := a.Classify(b); got != c.want {
				t.Fatalf("Classify = %v, want %v", got, c.want)
			}
			if got := b.Classify(a); got != c.want {
				t.Fatalf("reverse Classify = %v, want %v", got, c.want)
			}
		})
	}
}

func TestClassifyLayers(t *testing.T) {
	cases := []struct {
		name                   string
		aExp, aInc, bExp, bInc Layer
		want                   Result
	}{
		{"asymmetric_match", 0b100, 0b001, 0b001, 0b100, Yes},
		{"a_exposed_zero", 0, 0b001, 0b001, 0b100, LayerMismatch},
		{"a_included_zero", 0b100, 0, 0b001, 0b100, LayerMismatch},
		{"b_exposed_zero", 0b100, 0b001, 0, 0b100, LayerMismatch},
		{"b_included_zero", 0b100, 0b001, 0b001, 0, LayerMismatch},
		{"one_way_only", 0b001, 0b001, 0b010, 0b001, LayerMismatch},
		{"defaults", LayerAll, LayerAll, LayerAll, LayerAll, Yes},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := mustBox(t, 0, 0, 10, 10)
			b := mustBox(t, 3, 3, 10, 10)
			a.SetLayers(c.aExp, c.aInc)
			b.SetLayers(c.bExp, c.bInc)
			if got := a.Classify(b); got != c.want {
				t.Fatalf("Classify = %v, want %v", got, c.want)
			}
		})
	}

	t.Run("layers_ignored_without_overlap", func(t *testing.T) {
		a := mustBox(t, 0, 0, 10, 10)
		b := mustBox(t, 50, 0, 10, 10)
		a.SetLayers(0, 0)
		if got := a.Classify(b); got != No {
			t.Fatalf("Classify = %v, want no", got)
		}
	})
}

func TestIntersection(t *testing.T) {
	cases := []struct {
		name string
		x, y float64
		want cp.Vector
	}{
		{"from_left_top", 7, 8, cp.Vector{X: 3, Y: 2}},
		{"from_right_bottom", -4, -6, cp.Vector{X: -6, Y: -4}},
		{"mixed", 9, -1, cp.Vector{X: 1, Y: -9}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := mustBox(t, 0, 0, 10, 10)
			b := mustBox(t, c.x, c.y, 10, 10)
			got := a.Intersection(b)
			if got != c.want {
				t.Fatalf("Intersection = %+v, want %+v", got, c.want)
			}
			if again := a.Intersection(b); again != got {
				t.Fatalf("Intersection not stable: %+v then %+v", got, again)
			}

			// subtracting the vector on either axis separates the pair
			sx := mustBox(t, -got.X, 0, 10, 10)
			if sx.Overlaps(b) {
				t.Fatalf("x correction left boxes overlapping")
			}
			sy := mustBox(t, 0, -got.Y, 10, 10)
			if sy.Overlaps(b) {
				t.Fatalf("y correction left boxes overlapping")
			}
		})
	}
}

func TestBoundingBoxAccessors(t *testing.T) {
	b := mustBox(t, 1, 2, 3, 4)
	if got := b.Max(); got != (cp.Vector{X: 4, Y: 6}) {
		t.Fatalf("Max = %+v", got)
	}
	bb := b.BB()
	if bb.L != 1 || bb.B != 2 || bb.R != 4 || bb.T != 6 {
		t.Fatalf("BB = %+v", bb)
	}
	exp, inc := b.Layers()
	if exp != LayerAll || inc != LayerAll {
		t.Fatalf("default layers = %b/%b, want all", exp, inc)
	}
	b.SetPosition(cp.Vector{X: 9, Y: 9})
	if b.Min() != (cp.Vector{X: 9, Y: 9}) {
		t.Fatalf("SetPosition did not move box")
	}
}
