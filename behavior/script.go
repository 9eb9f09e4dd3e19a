// Package behavior drives physics bodies from tengo scripts.
package behavior

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/paperchase/physics"
)

// Params are constants exposed to a script as globals.
type Params struct {
	Speed    float64
	Distance float64
}

// Script is a physics.Ticker running a compiled tengo program once per tick.
//
// Globals visible to the script: dt, x, y, vx, vy, blocked (true when the
// body has a solid contact to its left or right), contacts, speed, distance
// and state (a map kept across ticks). The script sets fx and fy; the result
// is applied to the body with ApplyImpulse.
type Script struct {
	name     string
	body     *physics.Body
	compiled *tengo.Compiled
	state    *tengo.Map
	logger   *log.Logger
	err      error
}

// NewScript compiles src for body.
func NewScript(name string, src []byte, body *physics.Body, params Params, logger *log.Logger) (*Script, error) {
	if body == nil {
		return nil, fmt.Errorf("behavior: %s: nil body", name)
	}
	if logger == nil {
		logger = log.Default()
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	globals := map[string]any{
		"dt":       0.0,
		"x":        0.0,
		"y":        0.0,
		"vx":       0.0,
		"vy":       0.0,
		"blocked":  false,
		"contacts": 0,
		"speed":    params.Speed,
		"distance": params.Distance,
		"state":    map[string]any{},
		"fx":       0.0,
		"fy":       0.0,
	}
	for k, v := range globals {
		if err := script.Add(k, v); err != nil {
			return nil, fmt.Errorf("behavior: %s: add %s: %w", name, k, err)
		}
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("behavior: compile %s: %w", name, err)
	}

	return &Script{
		name:     name,
		body:     body,
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
		logger:   logger,
	}, nil
}

// Load compiles the named script from LoadScript.
func Load(name string, body *physics.Body, params Params, logger *log.Logger) (*Script, error) {
	src, err := LoadScript(name)
	if err != nil {
		return nil, err
	}
	return NewScript(name, src, body, params, logger)
}

// OnTick runs the script. Failures are logged and remembered; the body gets no
// impulse for that tick.
func (s *Script) OnTick(dt float64) {
	if s == nil || s.compiled == nil {
		return
	}
	if err := s.run(dt); err != nil {
		if s.err == nil {
			s.logger.Error("script failed", "script", s.name, "body", s.body.ID(), "err", err)
		}
		s.err = err
		return
	}
	s.err = nil
}

// Err returns the error from the most recent tick.
func (s *Script) Err() error {
	if s == nil {
		return nil
	}
	return s.err
}

func (s *Script) run(dt float64) error {
	pos := s.body.Position()
	vel := s.body.Velocity()
	inputs := map[string]any{
		"dt":       dt,
		"x":        pos.X,
		"y":        pos.Y,
		"vx":       vel.X,
		"vy":       vel.Y,
		"blocked":  blockedSideways(s.body),
		"contacts": len(s.body.Contacts()),
		"state":    s.state,
		"fx":       0.0,
		"fy":       0.0,
	}
	for k, v := range inputs {
		if err := s.compiled.Set(k, v); err != nil {
			return fmt.Errorf("set %s: %w", k, err)
		}
	}
	if err := s.compiled.Run(); err != nil {
		return err
	}

	fx := s.compiled.Get("fx").Float()
	fy := s.compiled.Get("fy").Float()
	s.body.ApplyImpulse(cp.Vector{X: fx, Y: fy})
	return nil
}

// blockedSideways reports a solid contact that pushed the body horizontally.
func blockedSideways(b *physics.Body) bool {
	for _, c := range b.Contacts() {
		if c.Result != physics.Yes {
			continue
		}
		if d := c.IntersectionFor(b.ID()); d.X != 0 && abs(d.X) < abs(d.Y) {
			return true
		}
	}
	return false
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
