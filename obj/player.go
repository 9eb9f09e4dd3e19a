package obj

import (
	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/paperchase/config"
	"github.com/milk9111/paperchase/physics"
)

// Player is the controllable body. It moves with impulses, jumps only while
// standing on something solid, takes damage from enemies and collects papers.
type Player struct {
	Body   *physics.Body
	Health *Health
	Papers int

	cfg      config.PlayerConfig
	controls *Controls
	level    *Level
	logger   *log.Logger

	onGround  bool
	knockback cp.Vector
}

func newPlayer(level *Level, cfg *config.Game, controls *Controls, logger *log.Logger) (*Player, error) {
	pc := cfg.Player
	body, err := physics.NewBody(cfg.Level.Spawn.X, cfg.Level.Spawn.Y, pc.Width, pc.Height, physics.BodyOptions{
		Gravity:  cp.Vector{Y: cfg.Physics.Gravity},
		Friction: pc.Friction,
	})
	if err != nil {
		return nil, err
	}
	body.Shape().SetLayers(pc.Layers.Exposed, pc.Layers.Included)

	if controls == nil {
		controls = &Controls{}
	}
	p := &Player{
		Body:     body,
		Health:   NewHealth(pc.Health),
		cfg:      pc,
		controls: controls,
		level:    level,
		logger:   logger,
	}
	p.Health.OnDeath = func(*Health) {
		logger.Info("player died", "papers", p.Papers)
	}
	body.Shape().SetCollisionHandlers(p.onBegin, nil)
	body.SetTicker(p)
	return p, nil
}

// OnGround reports whether the last tick left the player standing on a solid
// body.
func (p *Player) OnGround() bool {
	return p != nil && p.onGround
}

// Invincible reports whether the player is inside its post-hit window.
func (p *Player) Invincible() bool {
	return p != nil && p.Health.Invincible > 0
}

// OnTick runs after the player's physics pass. Impulses applied here are
// integrated on the next tick.
func (p *Player) OnTick(dt float64) {
	if p == nil {
		return
	}
	p.onGround = p.standing()

	if p.knockback != (cp.Vector{}) {
		p.Body.ApplyImpulse(p.knockback)
		p.knockback = cp.Vector{}
	}

	if p.Health.IsAlive() {
		if p.controls.Jump && p.onGround {
			v := p.Body.Velocity()
			v.Y = 0
			p.Body.SetVelocity(v)
			p.Body.ApplyImpulse(cp.Vector{Y: -p.cfg.JumpForce})
			p.onGround = false
		}
		if p.controls.MoveX != 0 {
			p.Body.ApplyImpulse(cp.Vector{X: p.controls.MoveX * p.cfg.MoveSpeed})
		}
	}

	if p.cfg.MaxSpeed > 0 {
		v := p.Body.Velocity()
		if v.X > p.cfg.MaxSpeed {
			v.X = p.cfg.MaxSpeed
		} else if v.X < -p.cfg.MaxSpeed {
			v.X = -p.cfg.MaxSpeed
		}
		p.Body.SetVelocity(v)
	}

	p.Health.Tick(dt)
}

// standing reports a solid contact that pushed the player upward.
func (p *Player) standing() bool {
	id := p.Body.ID()
	for _, c := range p.Body.Contacts() {
		if c.Result == physics.Yes && c.IntersectionFor(id).Y > 0 {
			return true
		}
	}
	return false
}

func (p *Player) onBegin(c *physics.Collision) {
	id := p.Body.ID()
	other, ok := c.Other(id)
	if !ok {
		return
	}

	switch p.level.Kind(other) {
	case KindEnemy:
		if !p.Health.ApplyDamage(1, p.cfg.Invincibility) {
			return
		}
		// Impulses applied mid-pass are cleared at the end of the pass, so
		// the bounce is held until OnTick.
		p.knockback = c.IntersectionFor(id).Neg().Mult(p.cfg.Knockback)
		p.logger.Debug("player hit", "enemy", other, "health", p.Health.Current)
	case KindPaper:
		paper := p.level.Paper(other)
		if paper == nil || paper.Collected {
			return
		}
		paper.Collected = true
		p.level.World.Remove(paper.Body)
		p.Papers++
		p.logger.Debug("paper collected", "paper", other, "papers", p.Papers)
	}
}
