package physics

import "github.com/jakecoffman/cp"

// Collision is one detected pairing of two bodies' shapes. A is always the
// shape of the body being integrated when the pairing was detected.
type Collision struct {
	A, B   *BoundingBox
	Result Result
	// Intersection is the penetration of A into B at the latest detection,
	// as returned by BoundingBox.Intersection.
	Intersection cp.Vector
}

func newCollision(a, b *Body, result Result) *Collision {
	return &Collision{
		A:            &a.shape,
		B:            &b.shape,
		Result:       result,
		Intersection: a.Intersection(b),
	}
}

// refresh re-detects a standing pair in place, keeping its orientation, so
// handlers see the same value from begin to end. b is the body being stepped.
func (c *Collision) refresh(b, other *Body, result Result) {
	c.Result = result
	if c.A == &b.shape {
		c.Intersection = b.Intersection(other)
		return
	}
	c.Intersection = other.Intersection(b)
}

// BodyA returns the handle of the body owning A.
func (c *Collision) BodyA() BodyID {
	if c == nil {
		return 0
	}
	return c.A.Owner()
}

// BodyB returns the handle of the body owning B.
func (c *Collision) BodyB() BodyID {
	if c == nil {
		return 0
	}
	return c.B.Owner()
}

// Involves reports whether id is one of the pair.
func (c *Collision) Involves(id BodyID) bool {
	return c != nil && id != 0 && (c.BodyA() == id || c.BodyB() == id)
}

// Other returns the partner of id within the pair.
func (c *Collision) Other(id BodyID) (BodyID, bool) {
	switch {
	case c == nil || id == 0:
		return 0, false
	case c.BodyA() == id:
		return c.BodyB(), true
	case c.BodyB() == id:
		return c.BodyA(), true
	}
	return 0, false
}

// IntersectionFor returns the penetration from id's point of view: subtracting
// it from id's position separates the pair.
func (c *Collision) IntersectionFor(id BodyID) cp.Vector {
	switch {
	case c == nil || id == 0:
		return cp.Vector{}
	case c.BodyA() == id:
		return c.Intersection
	case c.BodyB() == id:
		return c.Intersection.Neg()
	}
	return cp.Vector{}
}

func (c *Collision) doBegin() {
	if h := c.A.onBegin; h != nil {
		h(c)
	}
	if h := c.B.onBegin; h != nil {
		h(c)
	}
}

func (c *Collision) doEnd() {
	if h := c.A.onEnd; h != nil {
		h(c)
	}
	if h := c.B.onEnd; h != nil {
		h(c)
	}
}

func (c *Collision) event(kind EventKind) CollisionEvent {
	return CollisionEvent{
		Kind:         kind,
		A:            c.BodyA(),
		B:            c.BodyB(),
		Result:       c.Result,
		Intersection: c.Intersection,
	}
}
