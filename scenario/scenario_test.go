package scenario

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/milk9111/paperchase/physics"
)

const landing = `
dt: 0.5
ticks: 12
bodies:
  - {name: ground, x: 0, y: 0, w: 10, h: 10, static: true}
  - {name: crate, x: 0, y: -20, w: 10, h: 10, gravity: [0, 10]}
`

func TestRunLanding(t *testing.T) {
	s, err := Parse([]byte(landing))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	r, err := Run(s, log.New(io.Discard))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	crate, ok := r.Body("crate")
	if !ok {
		t.Fatalf("crate missing from report")
	}
	if crate.Position.Y != -10 || crate.Velocity.Y != 0 {
		t.Fatalf("crate should rest on ground: %+v", crate)
	}
	if len(r.Events) != 1 {
		t.Fatalf("expected a single begin, got %+v", r.Events)
	}
	evt := r.Events[0]
	if evt.Tick != 3 || evt.Kind != physics.EventBegin || evt.A != "crate" || evt.B != "ground" || evt.Result != physics.Yes {
		t.Fatalf("unexpected event %+v", evt)
	}
}

func TestRunTriggerAndThrust(t *testing.T) {
	src := `
dt: 1
ticks: 6
bodies:
  - {name: runner, x: 0, y: 0, w: 5, h: 5, thrust: [5, 0], exposed: 1, included: 1}
  - {name: zone, x: 10, y: 0, w: 10, h: 5, static: true, exposed: 2, included: 2}
`
	s, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	r, err := Run(s, log.New(io.Discard))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// x after each tick: 0, 5, 15, 30, 50, 75
	runner, _ := r.Body("runner")
	if runner.Position.X != 75 {
		t.Fatalf("runner x = %g, want 75", runner.Position.X)
	}
	if len(r.Events) != 2 || r.Events[0].Kind != physics.EventBegin || r.Events[1].Kind != physics.EventEnd {
		t.Fatalf("unexpected events %+v", r.Events)
	}
	if r.Events[0].Result != physics.LayerMismatch || r.Events[0].Tick != 3 || r.Events[1].Tick != 4 {
		t.Fatalf("unexpected trigger events %+v", r.Events)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"dt", "dt: 0\nticks: 1\n", "dt must be positive"},
		{"unnamed", "dt: 1\nbodies:\n  - {w: 1, h: 1}\n", "no name"},
		{"duplicate", "dt: 1\nbodies:\n  - {name: a, w: 1, h: 1}\n  - {name: a, w: 1, h: 1}\n", "duplicate"},
		{"geometry", "dt: 1\nbodies:\n  - {name: a, w: 0, h: 1}\n", "invalid geometry"},
		{"friction", "dt: 1\nbodies:\n  - {name: a, w: 1, h: 1, friction: 2}\n", "friction"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.src))
			if err == nil || !strings.Contains(err.Error(), c.wantErr) {
				t.Fatalf("expected error containing %q, got %v", c.wantErr, err)
			}
		})
	}
}

func TestLoadNamesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("dt: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "broken.yaml") {
		t.Fatalf("expected error naming the file, got %v", err)
	}
}

func TestSnapshotReplays(t *testing.T) {
	s, err := Parse([]byte(landing))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	s.Ticks = 2
	world := physics.NewWorld(physics.WithLogger(log.New(io.Discard)))
	names := map[physics.BodyID]string{}
	for _, spec := range s.Bodies {
		b, err := spec.build()
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		if err := world.AddBody(b); err != nil {
			t.Fatalf("AddBody: %v", err)
		}
		names[b.ID()] = spec.Name
	}
	for range 2 {
		if err := world.Update(s.Dt); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}

	snap := Snapshot(world.Bodies(), func(id physics.BodyID) string { return names[id] }, 0.5, 10)
	data, err := snap.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	replay, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse snapshot: %v\n%s", err, data)
	}
	crate := replay.Bodies[1]
	if crate.Name != "crate" || crate.Y != -12.5 || crate.Velocity[1] != 10 {
		t.Fatalf("unexpected crate snapshot %+v", crate)
	}

	r, err := Run(replay, log.New(io.Discard))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	final, _ := r.Body("crate")
	if final.Position.Y != -10 {
		t.Fatalf("replayed crate y = %g, want -10", final.Position.Y)
	}
	if len(r.Events) != 1 || r.Events[0].Tick != 1 {
		t.Fatalf("replay should land on its first tick, got %+v", r.Events)
	}
}

func TestSnapshotNames(t *testing.T) {
	a, _ := physics.NewBody(0, 0, 1, 1, physics.BodyOptions{})
	b, _ := physics.NewBody(5, 0, 1, 1, physics.BodyOptions{})
	c, _ := physics.NewBody(9, 0, 1, 1, physics.BodyOptions{})
	world := physics.NewWorld(physics.WithLogger(log.New(io.Discard)))
	for _, body := range []*physics.Body{a, b, c} {
		if err := world.AddBody(body); err != nil {
			t.Fatal(err)
		}
	}
	name := func(id physics.BodyID) string {
		if id == c.ID() {
			return ""
		}
		return "enemy"
	}
	snap := Snapshot(world.Bodies(), name, 1, 1)
	if err := snap.Validate(); err != nil {
		t.Fatalf("snapshot should be valid: %v", err)
	}
	if snap.Bodies[0].Name != "enemy" || snap.Bodies[1].Name == "enemy" || !strings.HasPrefix(snap.Bodies[2].Name, "body") {
		t.Fatalf("unexpected names %q %q %q", snap.Bodies[0].Name, snap.Bodies[1].Name, snap.Bodies[2].Name)
	}
}
