// Package config loads the YAML tuning file for the game: physics constants,
// entity sizes and layer masks, and the level layout.
package config

import (
	"errors"
	"fmt"

	"github.com/milk9111/paperchase/physics"
)

// Game is the root of game.yaml.
type Game struct {
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Paper   PaperConfig   `yaml:"paper"`
	Level   LevelConfig   `yaml:"level"`
}

type PhysicsConfig struct {
	Gravity  float64 `yaml:"gravity"`
	TickRate int     `yaml:"tick_rate"`
}

// Dt returns the fixed step length in seconds.
func (p PhysicsConfig) Dt() float64 {
	if p.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(p.TickRate)
}

// Layers holds a box's collision masks.
type Layers struct {
	Exposed  physics.Layer `yaml:"exposed"`
	Included physics.Layer `yaml:"included"`
}

type PlayerConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Friction      float64 `yaml:"friction"`
	MoveSpeed     float64 `yaml:"move_speed"`
	JumpForce     float64 `yaml:"jump_force"`
	MaxSpeed      float64 `yaml:"max_speed"`
	Health        int     `yaml:"health"`
	Invincibility float64 `yaml:"invincibility"` // seconds
	Knockback     float64 `yaml:"knockback"`     // multiplier applied to the contact depth
	Layers        Layers  `yaml:"layers"`
}

type EnemyConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Friction float64 `yaml:"friction"`
	Speed    float64 `yaml:"speed"`
	Distance float64 `yaml:"distance"`
	Script   string  `yaml:"script"`
	Layers   Layers  `yaml:"layers"`
}

type PaperConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Layers Layers  `yaml:"layers"`
}

type LevelConfig struct {
	Spawn     Point   `yaml:"spawn"`
	Platforms []Rect  `yaml:"platforms"`
	Papers    []Point `yaml:"papers"`
	Enemies   []Point `yaml:"enemies"`
}

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type Rect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Validate reports every problem found in the configuration.
func (g *Game) Validate() error {
	if g == nil {
		return errors.New("config: nil game config")
	}
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("config: "+format, args...))
		}
	}

	check(g.Physics.TickRate > 0, "physics.tick_rate must be positive, got %d", g.Physics.TickRate)
	check(g.Player.Width > 0 && g.Player.Height > 0, "player size must be positive")
	check(g.Enemy.Width > 0 && g.Enemy.Height > 0, "enemy size must be positive")
	check(g.Paper.Width > 0 && g.Paper.Height > 0, "paper size must be positive")
	check(validFriction(g.Player.Friction), "player.friction must be within [0, 1], got %g", g.Player.Friction)
	check(validFriction(g.Enemy.Friction), "enemy.friction must be within [0, 1], got %g", g.Enemy.Friction)
	check(g.Player.Health > 0, "player.health must be positive")
	check(g.Player.Invincibility >= 0, "player.invincibility must not be negative")
	for i, r := range g.Level.Platforms {
		check(r.W > 0 && r.H > 0, "level.platforms[%d] size must be positive", i)
	}
	return errors.Join(errs...)
}

func validFriction(f float64) bool {
	return f >= 0 && f <= 1
}
