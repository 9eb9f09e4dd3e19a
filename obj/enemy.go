package obj

import (
	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/paperchase/behavior"
	"github.com/milk9111/paperchase/config"
	"github.com/milk9111/paperchase/physics"
)

// Enemy is a body driven by a patrol script.
type Enemy struct {
	Body   *physics.Body
	Script *behavior.Script
}

func newEnemy(pos config.Point, cfg *config.Game, logger *log.Logger) (*Enemy, error) {
	ec := cfg.Enemy
	body, err := physics.NewBody(pos.X, pos.Y, ec.Width, ec.Height, physics.BodyOptions{
		Gravity:  cp.Vector{Y: cfg.Physics.Gravity},
		Friction: ec.Friction,
	})
	if err != nil {
		return nil, err
	}
	body.Shape().SetLayers(ec.Layers.Exposed, ec.Layers.Included)

	script, err := behavior.Load(ec.Script, body, behavior.Params{Speed: ec.Speed, Distance: ec.Distance}, logger)
	if err != nil {
		return nil, err
	}
	body.SetTicker(script)
	return &Enemy{Body: body, Script: script}, nil
}
