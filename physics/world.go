package physics

import (
	"slices"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
)

// World owns every body and advances them one tick at a time.
//
// A World is single threaded. Collision handlers, listeners and tickers run
// synchronously inside Update; they may call Remove and AddBody but must not
// call Update or Ragnarok.
type World struct {
	bodies  []*Body
	index   map[BodyID]*Body
	pending []*Body
	nextID  BodyID

	updating bool

	events    EventQueue
	listeners []Listener
	logger    *log.Logger
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger used for lifecycle diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(w *World) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithListener registers a collision listener.
func WithListener(l Listener) Option {
	return func(w *World) {
		w.AddListener(l)
	}
}

// NewWorld creates an empty world.
func NewWorld(opts ...Option) *World {
	w := &World{
		index:  make(map[BodyID]*Body),
		logger: log.Default().WithPrefix("physics"),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	return w
}

// AddListener registers l for begin/end events.
func (w *World) AddListener(l Listener) {
	if w == nil || l == nil {
		return
	}
	w.listeners = append(w.listeners, l)
}

// Events returns the queue of collision events published since the last
// Update began.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// AddBody registers b and assigns its handle. Bodies added mid-tick are
// visited later in the same tick.
func (w *World) AddBody(b *Body) error {
	if w == nil || b == nil {
		return nil
	}
	if b.world != nil {
		return ErrBodyRegistered
	}
	if err := validateSize(b.shape.width, b.shape.height); err != nil {
		return err
	}
	if b.colliding == nil {
		b.colliding = make(map[BodyID]*Collision)
	}
	w.nextID++
	b.id = w.nextID
	b.shape.owner = b.id
	b.world = w
	b.SyncShape()
	clear(b.colliding)
	w.bodies = append(w.bodies, b)
	w.index[b.id] = b
	w.logger.Debug("body added", "body", b.id, "static", b.static)
	return nil
}

// Remove unregisters b. Mid-tick removals are deferred until the tick ends.
// Removing a body ends every standing collision it holds. Unknown bodies are
// ignored.
func (w *World) Remove(b *Body) {
	if w == nil || b == nil {
		return
	}
	if w.updating {
		if b.world == w && !slices.Contains(w.pending, b) {
			w.pending = append(w.pending, b)
		}
		return
	}
	w.detach(b)
}

// Body resolves a handle.
func (w *World) Body(id BodyID) *Body {
	if w == nil {
		return nil
	}
	return w.index[id]
}

// Bodies returns the live bodies in insertion order.
func (w *World) Bodies() []*Body {
	if w == nil {
		return nil
	}
	return slices.Clone(w.bodies)
}

func (w *World) Len() int {
	if w == nil {
		return 0
	}
	return len(w.bodies)
}

// Updating reports whether a tick is in progress.
func (w *World) Updating() bool {
	return w != nil && w.updating
}

// Ragnarok drops every body without firing end events, for level reloads.
func (w *World) Ragnarok() error {
	if w == nil {
		return nil
	}
	if w.updating {
		return ErrWorldUpdating
	}
	for _, b := range w.bodies {
		b.world = nil
		clear(b.colliding)
	}
	w.logger.Debug("ragnarok", "bodies", len(w.bodies))
	w.bodies = nil
	w.index = make(map[BodyID]*Body)
	w.pending = nil
	w.events.flush()
	return nil
}

// Update advances the simulation by dt.
//
// Every dynamic body, in insertion order, integrates its velocity, then moves
// and resolves along X and then along Y, re-detecting contacts against all
// other bodies after each axis. Contacts missing from both passes end. Friction
// is applied once per tick, independent of dt.
func (w *World) Update(dt float64) error {
	if w == nil {
		return nil
	}
	if w.updating {
		w.logger.Warn("update called during update", "dt", dt)
		return ErrReentrantUpdate
	}
	w.updating = true
	defer func() { w.updating = false }()

	w.events.flush()
	for i := 0; i < len(w.bodies); i++ {
		b := w.bodies[i]
		if b.static {
			continue
		}
		w.step(b, dt)
	}

	for len(w.pending) > 0 {
		b := w.pending[0]
		w.pending = w.pending[1:]
		w.detach(b)
	}
	w.pending = nil
	return nil
}

func (w *World) step(b *Body, dt float64) {
	b.velocity = b.velocity.Add(b.impulse.Add(b.gravity).Mult(dt))

	touched := make(map[BodyID]struct{}, len(b.colliding))
	w.sweep(b, axisX, dt, touched)
	w.sweep(b, axisY, dt, touched)
	w.reconcile(b, touched)

	b.velocity.X *= 1 - b.friction
	b.impulse = cp.Vector{}

	if b.ticker != nil {
		b.ticker.OnTick(dt)
	}
}

// sweep moves b along one axis, detects every overlapping body at the new
// position, then resolves the detected pairs in order.
func (w *World) sweep(b *Body, ax axis, dt float64, touched map[BodyID]struct{}) {
	b.position = ax.with(b.position, ax.of(b.position)+ax.of(b.velocity)*dt)
	b.SyncShape()

	type hit struct {
		other  *Body
		result Result
	}
	var hits []hit
	for _, other := range w.bodies {
		if other == b {
			continue
		}
		if result := b.Classify(other); result != No {
			hits = append(hits, hit{other, result})
		}
	}

	for _, h := range hits {
		touched[h.other.id] = struct{}{}

		if c, standing := b.colliding[h.other.id]; standing {
			c.refresh(b, h.other, h.result)
		} else {
			fresh := newCollision(b, h.other, h.result)
			b.link(h.other, fresh)
			w.begin(fresh)
		}

		if h.result != Yes {
			continue
		}
		b.velocity = ax.with(b.velocity, 0)
		// An earlier correction in this pass may already have separated
		// the pair; the boxes then only touch and need no push.
		if !b.shape.Overlaps(&h.other.shape) {
			continue
		}
		depth := ax.of(b.Intersection(h.other))
		b.position = ax.with(b.position, ax.of(b.position)-depth)
		b.SyncShape()
	}
}

func (w *World) reconcile(b *Body, touched map[BodyID]struct{}) {
	for _, id := range b.partners() {
		if _, ok := touched[id]; ok {
			continue
		}
		c := b.colliding[id]
		if other := w.index[id]; other != nil {
			b.unlink(other)
		} else {
			delete(b.colliding, id)
		}
		w.end(c)
	}
}

func (w *World) detach(b *Body) {
	if b.world != w {
		return
	}
	if i := slices.Index(w.bodies, b); i >= 0 {
		w.bodies = slices.Delete(w.bodies, i, i+1)
	}
	delete(w.index, b.id)
	b.world = nil

	for _, id := range b.partners() {
		c := b.colliding[id]
		if other := w.index[id]; other != nil {
			b.unlink(other)
		} else {
			delete(b.colliding, id)
		}
		w.end(c)
	}
	w.logger.Debug("body removed", "body", b.id)
}

func (w *World) begin(c *Collision) {
	c.doBegin()
	w.publish(c.event(EventBegin))
}

func (w *World) end(c *Collision) {
	c.doEnd()
	w.publish(c.event(EventEnd))
}

func (w *World) publish(evt CollisionEvent) {
	w.events.Push(evt)
	for _, l := range w.listeners {
		l.OnCollision(evt)
	}
}

type axis uint8

const (
	axisX axis = iota
	axisY
)

func (a axis) of(v cp.Vector) float64 {
	if a == axisX {
		return v.X
	}
	return v.Y
}

func (a axis) with(v cp.Vector, f float64) cp.Vector {
	if a == axisX {
		v.X = f
	} else {
		v.Y = f
	}
	return v
}
