package physics

import (
	"fmt"
	"maps"
	"slices"

	"github.com/jakecoffman/cp"
)

// BodyID is a stable handle for a body registered in a World. Zero is never
// assigned.
type BodyID uint64

// Ticker is implemented by game entities that react once per physics tick,
// typically by reading input or AI state and calling ApplyImpulse.
type Ticker interface {
	OnTick(dt float64)
}

// TickerFunc adapts a function to Ticker.
type TickerFunc func(dt float64)

func (f TickerFunc) OnTick(dt float64) { f(dt) }

// BodyOptions configures a new Body.
type BodyOptions struct {
	// Gravity is added to the impulse accumulator on every integration step.
	Gravity cp.Vector
	// Friction damps horizontal velocity once per tick: vx *= 1 - Friction.
	Friction float64
	// Static bodies are never integrated nor pushed by collision resolution.
	Static bool
}

// Body is a unit-mass kinematic body carrying one BoundingBox.
type Body struct {
	id    BodyID
	world *World

	position cp.Vector
	velocity cp.Vector
	impulse  cp.Vector
	gravity  cp.Vector
	friction float64
	static   bool

	shape     BoundingBox
	colliding map[BodyID]*Collision
	ticker    Ticker
}

// NewBody creates a body whose box's top-left corner sits at (x, y).
func NewBody(x, y, width, height float64, opts BodyOptions) (*Body, error) {
	if err := validateSize(width, height); err != nil {
		return nil, err
	}
	if !(opts.Friction >= 0 && opts.Friction <= 1) {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidFriction, opts.Friction)
	}
	pos := cp.Vector{X: x, Y: y}
	b := &Body{
		position: pos,
		gravity:  opts.Gravity,
		friction: opts.Friction,
		static:   opts.Static,
		shape: BoundingBox{
			pos:      pos,
			width:    width,
			height:   height,
			exposed:  LayerAll,
			included: LayerAll,
		},
		colliding: make(map[BodyID]*Collision),
	}
	return b, nil
}

// ID returns the handle assigned by World.AddBody, or zero.
func (b *Body) ID() BodyID {
	if b == nil {
		return 0
	}
	return b.id
}

// Shape returns the owned box. Use it to set layers and collision handlers.
func (b *Body) Shape() *BoundingBox {
	if b == nil {
		return nil
	}
	return &b.shape
}

// SetTicker installs the per-tick hook. Nil removes it.
func (b *Body) SetTicker(t Ticker) {
	if b == nil {
		return
	}
	b.ticker = t
}

func (b *Body) Position() cp.Vector {
	if b == nil {
		return cp.Vector{}
	}
	return b.position
}

// SetPosition overwrites the position and moves the shape with it.
func (b *Body) SetPosition(pos cp.Vector) {
	if b == nil {
		return
	}
	b.position = pos
	b.SyncShape()
}

// SyncShape propagates the current position to the shape.
func (b *Body) SyncShape() {
	if b == nil {
		return
	}
	b.shape.SetPosition(b.position)
}

func (b *Body) Velocity() cp.Vector {
	if b == nil {
		return cp.Vector{}
	}
	return b.velocity
}

func (b *Body) SetVelocity(v cp.Vector) {
	if b == nil {
		return
	}
	b.velocity = v
}

// ApplyImpulse accumulates force for the next integration step.
func (b *Body) ApplyImpulse(force cp.Vector) {
	if b == nil {
		return
	}
	b.impulse = b.impulse.Add(force)
}

// Impulse returns the accumulated, not yet integrated, force.
func (b *Body) Impulse() cp.Vector {
	if b == nil {
		return cp.Vector{}
	}
	return b.impulse
}

func (b *Body) Gravity() cp.Vector {
	if b == nil {
		return cp.Vector{}
	}
	return b.gravity
}

func (b *Body) Friction() float64 {
	if b == nil {
		return 0
	}
	return b.friction
}

func (b *Body) Static() bool {
	return b != nil && b.static
}

// Classify delegates to the owned shapes.
func (b *Body) Classify(other *Body) Result {
	if b == nil || other == nil {
		return No
	}
	return b.shape.Classify(&other.shape)
}

// Intersection delegates to the owned shapes.
func (b *Body) Intersection(other *Body) cp.Vector {
	if b == nil || other == nil {
		return cp.Vector{}
	}
	return b.shape.Intersection(&other.shape)
}

// CollidingWith returns the standing collision with the given partner. The
// value is the one begin handlers received; later detections refresh its
// Result and Intersection in place.
func (b *Body) CollidingWith(id BodyID) (*Collision, bool) {
	if b == nil {
		return nil, false
	}
	c, ok := b.colliding[id]
	return c, ok
}

// IsColliding reports whether the body has any standing collision.
func (b *Body) IsColliding() bool {
	return b != nil && len(b.colliding) > 0
}

// Contacts returns the standing collisions ordered by partner handle.
func (b *Body) Contacts() []*Collision {
	if b == nil || len(b.colliding) == 0 {
		return nil
	}
	out := make([]*Collision, 0, len(b.colliding))
	for _, id := range b.partners() {
		out = append(out, b.colliding[id])
	}
	return out
}

func (b *Body) partners() []BodyID {
	return slices.Sorted(maps.Keys(b.colliding))
}

func (b *Body) link(other *Body, c *Collision) {
	b.colliding[other.id] = c
	other.colliding[b.id] = c
}

func (b *Body) unlink(other *Body) {
	delete(b.colliding, other.id)
	delete(other.colliding, b.id)
}
