package obj

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/paperchase/config"
	"github.com/milk9111/paperchase/physics"
)

// Level is the set of bodies built from a config, all registered in World.
type Level struct {
	World     *physics.World
	Player    *Player
	Enemies   []*Enemy
	Platforms []*physics.Body
	Papers    []*Paper

	kinds  map[physics.BodyID]Kind
	papers map[physics.BodyID]*Paper
	bounds cp.BB
}

// BuildLevel resets world and fills it with the level described by cfg.
func BuildLevel(world *physics.World, cfg *config.Game, controls *Controls, logger *log.Logger) (*Level, error) {
	if world == nil || cfg == nil {
		return nil, fmt.Errorf("level: nil world or config")
	}
	if logger == nil {
		logger = log.Default()
	}
	if err := world.Ragnarok(); err != nil {
		return nil, fmt.Errorf("level: reset world: %w", err)
	}

	l := &Level{
		World:  world,
		kinds:  make(map[physics.BodyID]Kind),
		papers: make(map[physics.BodyID]*Paper),
	}

	for i, r := range cfg.Level.Platforms {
		body, err := physics.NewBody(r.X, r.Y, r.W, r.H, physics.BodyOptions{Static: true})
		if err != nil {
			return nil, fmt.Errorf("level: platform %d: %w", i, err)
		}
		if err := l.add(body, KindPlatform); err != nil {
			return nil, err
		}
		l.Platforms = append(l.Platforms, body)
		l.grow(body)
	}

	for i, pos := range cfg.Level.Papers {
		paper, err := newPaper(pos, cfg.Paper)
		if err != nil {
			return nil, fmt.Errorf("level: paper %d: %w", i, err)
		}
		if err := l.add(paper.Body, KindPaper); err != nil {
			return nil, err
		}
		l.papers[paper.Body.ID()] = paper
		l.Papers = append(l.Papers, paper)
	}

	for i, pos := range cfg.Level.Enemies {
		enemy, err := newEnemy(pos, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("level: enemy %d: %w", i, err)
		}
		if err := l.add(enemy.Body, KindEnemy); err != nil {
			return nil, err
		}
		l.Enemies = append(l.Enemies, enemy)
	}

	player, err := newPlayer(l, cfg, controls, logger)
	if err != nil {
		return nil, fmt.Errorf("level: player: %w", err)
	}
	if err := l.add(player.Body, KindPlayer); err != nil {
		return nil, err
	}
	l.Player = player

	logger.Info("level built",
		"platforms", len(l.Platforms), "papers", len(l.Papers), "enemies", len(l.Enemies))
	return l, nil
}

func (l *Level) add(body *physics.Body, kind Kind) error {
	if err := l.World.AddBody(body); err != nil {
		return fmt.Errorf("level: add %s: %w", kind, err)
	}
	l.kinds[body.ID()] = kind
	return nil
}

func (l *Level) grow(body *physics.Body) {
	bb := body.Shape().BB()
	if len(l.Platforms) == 1 {
		l.bounds = bb
		return
	}
	l.bounds = l.bounds.Merge(bb)
}

// Kind returns what the body with id represents.
func (l *Level) Kind(id physics.BodyID) Kind {
	if l == nil {
		return KindNone
	}
	return l.kinds[id]
}

// Paper returns the paper owning id, or nil.
func (l *Level) Paper(id physics.BodyID) *Paper {
	if l == nil {
		return nil
	}
	return l.papers[id]
}

// Remaining returns the number of papers not yet collected.
func (l *Level) Remaining() int {
	n := 0
	for _, p := range l.Papers {
		if !p.Collected {
			n++
		}
	}
	return n
}

// Won reports whether every paper has been collected.
func (l *Level) Won() bool {
	return l != nil && len(l.Papers) > 0 && l.Remaining() == 0
}

// Lost reports whether the player is dead.
func (l *Level) Lost() bool {
	return l != nil && l.Player != nil && !l.Player.Health.IsAlive()
}

// Bounds is the box enclosing every platform.
func (l *Level) Bounds() cp.BB {
	if l == nil {
		return cp.BB{}
	}
	return l.bounds
}
