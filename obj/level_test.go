package obj

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/paperchase/config"
	"github.com/milk9111/paperchase/physics"
)

// testConfig returns a tiny level: a player at (x, y) and nothing else.
func testConfig(x, y float64) *config.Game {
	return &config.Game{
		Physics: config.PhysicsConfig{Gravity: 0, TickRate: 1},
		Player: config.PlayerConfig{
			Width: 10, Height: 10,
			JumpForce: 100, MoveSpeed: 4, Knockback: 2,
			Health: 3, Invincibility: 1.5,
			Layers: config.Layers{Exposed: 0b100, Included: 0b001},
		},
		Enemy: config.EnemyConfig{
			Width: 10, Height: 10, Script: "patrol.tengo",
			Layers: config.Layers{Exposed: 0b001, Included: 0b101},
		},
		Paper: config.PaperConfig{
			Width: 5, Height: 5,
			Layers: config.Layers{Exposed: 0b010, Included: 0b100},
		},
		Level: config.LevelConfig{Spawn: config.Point{X: x, Y: y}},
	}
}

func buildTestLevel(t *testing.T, cfg *config.Game, controls *Controls) *Level {
	t.Helper()
	l, err := BuildLevel(physics.NewWorld(physics.WithLogger(log.New(io.Discard))), cfg, controls, log.New(io.Discard))
	if err != nil {
		t.Fatalf("BuildLevel: %v", err)
	}
	return l
}

func update(t *testing.T, l *Level, dt float64, ticks int) {
	t.Helper()
	for range ticks {
		if err := l.World.Update(dt); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
}

func TestBuildDefaultLevel(t *testing.T) {
	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	l := buildTestLevel(t, cfg, nil)

	if len(l.Platforms) != 8 || len(l.Papers) != 6 || len(l.Enemies) != 3 || l.Player == nil {
		t.Fatalf("unexpected level: %d platforms, %d papers, %d enemies", len(l.Platforms), len(l.Papers), len(l.Enemies))
	}
	if got := l.World.Len(); got != 18 {
		t.Fatalf("world has %d bodies, want 18", got)
	}
	if got := l.Kind(l.Player.Body.ID()); got != KindPlayer {
		t.Fatalf("player kind = %s", got)
	}
	if got := l.Kind(l.Enemies[0].Body.ID()); got != KindEnemy {
		t.Fatalf("enemy kind = %s", got)
	}
	if l.Paper(l.Papers[2].Body.ID()) != l.Papers[2] {
		t.Fatalf("paper lookup mismatch")
	}
	if want := (cp.BB{L: -100, B: 0, R: 2500, T: 720}); l.Bounds() != want {
		t.Fatalf("bounds = %+v, want %+v", l.Bounds(), want)
	}
	if l.Remaining() != 6 || l.Won() || l.Lost() {
		t.Fatalf("fresh level should be in progress")
	}
}

func TestBuildLevelResetsWorld(t *testing.T) {
	cfg := testConfig(0, 0)
	cfg.Level.Platforms = []config.Rect{{X: 0, Y: 20, W: 50, H: 5}}
	l := buildTestLevel(t, cfg, nil)
	first := l.Player.Body

	again, err := BuildLevel(l.World, cfg, nil, log.New(io.Discard))
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if got := again.World.Len(); got != 2 {
		t.Fatalf("world has %d bodies after rebuild, want 2", got)
	}
	if again.World.Body(first.ID()) != nil {
		t.Fatalf("old player still registered")
	}
}

func TestBuildLevelRejectsBadGeometry(t *testing.T) {
	cfg := testConfig(0, 0)
	cfg.Level.Platforms = []config.Rect{{X: 0, Y: 0, W: 0, H: 5}}
	_, err := BuildLevel(physics.NewWorld(physics.WithLogger(log.New(io.Discard))), cfg, nil, log.New(io.Discard))
	if err == nil {
		t.Fatalf("expected error for zero-width platform")
	}
}
