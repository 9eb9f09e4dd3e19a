package physics

import "errors"

var (
	// ErrInvalidGeometry is returned for boxes whose width or height is not a
	// positive finite number.
	ErrInvalidGeometry = errors.New("physics: invalid geometry")
	// ErrInvalidFriction is returned for friction coefficients outside [0, 1].
	ErrInvalidFriction = errors.New("physics: friction must be within [0, 1]")
	// ErrReentrantUpdate is returned when World.Update is called while a tick
	// is already running.
	ErrReentrantUpdate = errors.New("physics: update called during update")
	// ErrWorldUpdating is returned by structural resets attempted mid-tick.
	ErrWorldUpdating = errors.New("physics: world is updating")
	// ErrBodyRegistered is returned when a body already belongs to a world.
	ErrBodyRegistered = errors.New("physics: body already registered")
)
