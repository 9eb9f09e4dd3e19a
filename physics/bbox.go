package physics

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

// BoundingBox is an axis-aligned rectangle anchored at its top-left corner.
//
// A box is owned by exactly one Body. The owner field is a handle, not a
// pointer; it is resolved through the World when a collision needs both bodies.
type BoundingBox struct {
	pos    cp.Vector
	width  float64
	height float64

	exposed  Layer
	included Layer

	onBegin func(*Collision)
	onEnd   func(*Collision)

	owner BodyID
}

// NewBoundingBox creates a box exposing and including every layer.
func NewBoundingBox(pos cp.Vector, width, height float64) (*BoundingBox, error) {
	if err := validateSize(width, height); err != nil {
		return nil, err
	}
	return &BoundingBox{
		pos:      pos,
		width:    width,
		height:   height,
		exposed:  LayerAll,
		included: LayerAll,
	}, nil
}

func validateSize(width, height float64) error {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return fmt.Errorf("%w: %gx%g", ErrInvalidGeometry, width, height)
	}
	return nil
}

// SetPosition moves the top-left corner.
func (b *BoundingBox) SetPosition(pos cp.Vector) {
	if b == nil {
		return
	}
	b.pos = pos
}

func (b *BoundingBox) Position() cp.Vector {
	if b == nil {
		return cp.Vector{}
	}
	return b.pos
}

// Size returns width and height.
func (b *BoundingBox) Size() (float64, float64) {
	if b == nil {
		return 0, 0
	}
	return b.width, b.height
}

// Min returns the top-left corner.
func (b *BoundingBox) Min() cp.Vector {
	return b.Position()
}

// Max returns the bottom-right corner.
func (b *BoundingBox) Max() cp.Vector {
	if b == nil {
		return cp.Vector{}
	}
	return cp.Vector{X: b.pos.X + b.width, Y: b.pos.Y + b.height}
}

// BB returns the box as a chipmunk bounding box in screen space (B is the top edge).
func (b *BoundingBox) BB() cp.BB {
	lo, hi := b.Min(), b.Max()
	return cp.BB{L: lo.X, B: lo.Y, R: hi.X, T: hi.Y}
}

// SetLayers replaces the exposed and included masks.
func (b *BoundingBox) SetLayers(exposed, included Layer) {
	if b == nil {
		return
	}
	b.exposed = exposed
	b.included = included
}

// Layers returns the exposed and included masks.
func (b *BoundingBox) Layers() (exposed, included Layer) {
	if b == nil {
		return LayerNone, LayerNone
	}
	return b.exposed, b.included
}

// Owner returns the handle of the body owning this box, or zero while the
// body is not registered with a world.
func (b *BoundingBox) Owner() BodyID {
	if b == nil {
		return 0
	}
	return b.owner
}

// SetCollisionHandlers replaces both handlers. Nil handlers are skipped.
func (b *BoundingBox) SetCollisionHandlers(begin, end func(*Collision)) {
	if b == nil {
		return
	}
	b.onBegin = begin
	b.onEnd = end
}

// Overlaps reports whether the two boxes share interior area. Touching edges
// do not overlap.
func (b *BoundingBox) Overlaps(other *BoundingBox) bool {
	if b == nil || other == nil {
		return false
	}
	return b.pos.X < other.pos.X+other.width &&
		b.pos.X+b.width > other.pos.X &&
		b.pos.Y < other.pos.Y+other.height &&
		b.pos.Y+b.height > other.pos.Y
}

// Classify tests geometry first and layers second.
func (b *BoundingBox) Classify(other *BoundingBox) Result {
	if !b.Overlaps(other) {
		return No
	}
	if b.included&other.exposed != 0 && other.included&b.exposed != 0 {
		return Yes
	}
	return LayerMismatch
}

// Intersection returns, per axis, the signed distance b must be moved back by
// (position minus the vector) to stop overlapping other along that axis. Each
// axis picks the shorter way out. The result is meaningless for boxes that do
// not overlap; gate it on Classify.
func (b *BoundingBox) Intersection(other *BoundingBox) cp.Vector {
	if b == nil || other == nil {
		return cp.Vector{}
	}
	return cp.Vector{
		X: penetration(b.pos.X, b.width, other.pos.X, other.width),
		Y: penetration(b.pos.Y, b.height, other.pos.Y, other.height),
	}
}

func penetration(aMin, aSize, bMin, bSize float64) float64 {
	fromBelow := aMin + aSize - bMin
	fromAbove := bMin + bSize - aMin
	if fromBelow < fromAbove {
		return fromBelow
	}
	return -fromAbove
}
