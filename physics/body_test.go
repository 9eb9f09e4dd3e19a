package physics

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
)

func mustBody(t *testing.T, x, y, w, h float64, opts BodyOptions) *Body {
	t.Helper()
	b, err := NewBody(x, y, w, h, opts)
	if err != nil {
		t.Fatalf("NewBody: %v", err)
	}
	return b
}

func TestNewBodyValidation(t *testing.T) {
	cases := []struct {
		name    string
		w, h    float64
		opts    BodyOptions
		wantErr error
	}{
		{"ok", 10, 10, BodyOptions{Friction: 0.5}, nil},
		{"friction_one", 10, 10, BodyOptions{Friction: 1}, nil},
		{"friction_negative", 10, 10, BodyOptions{Friction: -0.1}, ErrInvalidFriction},
		{"friction_above_one", 10, 10, BodyOptions{Friction: 1.5}, ErrInvalidFriction},
		{"zero_size", 0, 10, BodyOptions{}, ErrInvalidGeometry},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewBody(0, 0, c.w, c.h, c.opts)
			if c.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.wantErr != nil && !errors.Is(err, c.wantErr) {
				t.Fatalf("expected %v, got %v", c.wantErr, err)
			}
		})
	}
}

func TestBodyImpulseAndPosition(t *testing.T) {
	b := mustBody(t, 1, 2, 5, 5, BodyOptions{})
	b.ApplyImpulse(cp.Vector{X: 1, Y: 2})
	b.ApplyImpulse(cp.Vector{X: 3, Y: -1})
	if got := b.Impulse(); got != (cp.Vector{X: 4, Y: 1}) {
		t.Fatalf("Impulse = %+v", got)
	}
	if b.Velocity() != (cp.Vector{}) {
		t.Fatalf("ApplyImpulse must not touch velocity")
	}

	b.SetPosition(cp.Vector{X: 20, Y: 30})
	if b.Shape().Position() != (cp.Vector{X: 20, Y: 30}) {
		t.Fatalf("shape did not follow body: %+v", b.Shape().Position())
	}
}

func TestBodyDelegatesToShapes(t *testing.T) {
	a := mustBody(t, 0, 0, 10, 10, BodyOptions{})
	b := mustBody(t, 7, 8, 10, 10, BodyOptions{})
	if got := a.Classify(b); got != Yes {
		t.Fatalf("Classify = %v", got)
	}
	if got, want := a.Intersection(b), a.Shape().Intersection(b.Shape()); got != want {
		t.Fatalf("Intersection = %+v, want %+v", got, want)
	}
	if a.ID() != 0 {
		t.Fatalf("unregistered body should have zero id")
	}
}
