// Package scenario runs a physics world described by a YAML file without a
// window, for regression checks and tuning.
package scenario

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/paperchase/physics"
	"gopkg.in/yaml.v3"
)

// Scenario is the root of a scenario file.
type Scenario struct {
	Dt     float64    `yaml:"dt"`
	Ticks  int        `yaml:"ticks"`
	Bodies []BodySpec `yaml:"bodies"`
}

// BodySpec describes one body. Thrust is applied as an impulse on every tick.
type BodySpec struct {
	Name     string     `yaml:"name"`
	X        float64    `yaml:"x"`
	Y        float64    `yaml:"y"`
	W        float64    `yaml:"w"`
	H        float64    `yaml:"h"`
	Static   bool       `yaml:"static"`
	Friction float64    `yaml:"friction"`
	Gravity  [2]float64 `yaml:"gravity"`
	Velocity [2]float64 `yaml:"velocity"`
	Thrust   [2]float64 `yaml:"thrust"`
	Exposed  *uint32    `yaml:"exposed"`
	Included *uint32    `yaml:"included"`
}

// Parse decodes and validates a scenario.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scenario: unmarshal: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: load %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (s *Scenario) Validate() error {
	var errs []error
	if s.Dt <= 0 {
		errs = append(errs, fmt.Errorf("scenario: dt must be positive, got %g", s.Dt))
	}
	if s.Ticks < 0 {
		errs = append(errs, fmt.Errorf("scenario: ticks must not be negative, got %d", s.Ticks))
	}
	seen := make(map[string]bool, len(s.Bodies))
	for i, b := range s.Bodies {
		if b.Name == "" {
			errs = append(errs, fmt.Errorf("scenario: bodies[%d] has no name", i))
		} else if seen[b.Name] {
			errs = append(errs, fmt.Errorf("scenario: duplicate body %q", b.Name))
		}
		seen[b.Name] = true
		if _, err := b.build(); err != nil {
			errs = append(errs, fmt.Errorf("scenario: body %q: %w", b.Name, err))
		}
	}
	return errors.Join(errs...)
}

func (b BodySpec) build() (*physics.Body, error) {
	body, err := physics.NewBody(b.X, b.Y, b.W, b.H, physics.BodyOptions{
		Gravity:  vec(b.Gravity),
		Friction: b.Friction,
		Static:   b.Static,
	})
	if err != nil {
		return nil, err
	}
	exposed, included := body.Shape().Layers()
	if b.Exposed != nil {
		exposed = physics.Layer(*b.Exposed)
	}
	if b.Included != nil {
		included = physics.Layer(*b.Included)
	}
	body.Shape().SetLayers(exposed, included)
	body.SetVelocity(vec(b.Velocity))
	if thrust := vec(b.Thrust); thrust != (cp.Vector{}) {
		body.SetTicker(physics.TickerFunc(func(float64) {
			body.ApplyImpulse(thrust)
		}))
	}
	return body, nil
}

func vec(v [2]float64) cp.Vector {
	return cp.Vector{X: v[0], Y: v[1]}
}

// Event is a collision event with body names resolved.
type Event struct {
	Tick   int
	Kind   physics.EventKind
	A, B   string
	Result physics.Result
}

// Final is a body's state after the last tick.
type Final struct {
	Name     string
	Position cp.Vector
	Velocity cp.Vector
}

// Report is the outcome of Run.
type Report struct {
	Events []Event
	Bodies []Final
}

// Run simulates s for s.Ticks ticks.
func Run(s *Scenario, logger *log.Logger) (*Report, error) {
	if s == nil {
		return nil, errors.New("scenario: nil scenario")
	}
	if logger == nil {
		logger = log.Default()
	}

	world := physics.NewWorld(physics.WithLogger(logger.WithPrefix("physics")))
	names := make(map[physics.BodyID]string, len(s.Bodies))
	order := make([]*physics.Body, 0, len(s.Bodies))
	for _, spec := range s.Bodies {
		body, err := spec.build()
		if err != nil {
			return nil, fmt.Errorf("scenario: body %q: %w", spec.Name, err)
		}
		if err := world.AddBody(body); err != nil {
			return nil, err
		}
		names[body.ID()] = spec.Name
		order = append(order, body)
	}

	report := &Report{}
	for tick := 1; tick <= s.Ticks; tick++ {
		if err := world.Update(s.Dt); err != nil {
			return nil, fmt.Errorf("scenario: tick %d: %w", tick, err)
		}
		for _, evt := range world.Events().Drain() {
			e := Event{Tick: tick, Kind: evt.Kind, A: names[evt.A], B: names[evt.B], Result: evt.Result}
			logger.Debug("collision", "tick", tick, "kind", e.Kind, "a", e.A, "b", e.B, "result", e.Result)
			report.Events = append(report.Events, e)
		}
	}

	for _, b := range order {
		report.Bodies = append(report.Bodies, Final{Name: names[b.ID()], Position: b.Position(), Velocity: b.Velocity()})
	}
	return report, nil
}

// Body returns the final state of the named body.
func (r *Report) Body(name string) (Final, bool) {
	if r == nil {
		return Final{}, false
	}
	for _, b := range r.Bodies {
		if b.Name == name {
			return b, true
		}
	}
	return Final{}, false
}

// Snapshot captures bodies as a scenario that replays from their current
// state. name labels each body; unnamed bodies get "body<id>". Thrust and
// tickers are not captured.
func Snapshot(bodies []*physics.Body, name func(physics.BodyID) string, dt float64, ticks int) *Scenario {
	s := &Scenario{Dt: dt, Ticks: ticks}
	seen := make(map[string]int, len(bodies))
	for _, b := range bodies {
		n := ""
		if name != nil {
			n = name(b.ID())
		}
		if n == "" {
			n = "body"
		}
		seen[n]++
		if seen[n] > 1 || n == "body" {
			n = fmt.Sprintf("%s%d", n, b.ID())
		}

		pos, vel, g := b.Position(), b.Velocity(), b.Gravity()
		w, h := b.Shape().Size()
		exposed, included := b.Shape().Layers()
		e, i := uint32(exposed), uint32(included)
		s.Bodies = append(s.Bodies, BodySpec{
			Name:     n,
			X:        pos.X,
			Y:        pos.Y,
			W:        w,
			H:        h,
			Static:   b.Static(),
			Friction: b.Friction(),
			Gravity:  [2]float64{g.X, g.Y},
			Velocity: [2]float64{vel.X, vel.Y},
			Exposed:  &e,
			Included: &i,
		})
	}
	return s
}

// Marshal encodes s as YAML.
func (s *Scenario) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("scenario: marshal: %w", err)
	}
	return data, nil
}
