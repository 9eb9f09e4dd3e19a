package obj

import (
	"github.com/milk9111/paperchase/config"
	"github.com/milk9111/paperchase/physics"
)

// Paper is a static pickup. Its layers never produce a solid contact with the
// player, so touching it only raises a trigger.
type Paper struct {
	Body      *physics.Body
	Collected bool
}

func newPaper(pos config.Point, cfg config.PaperConfig) (*Paper, error) {
	body, err := physics.NewBody(pos.X, pos.Y, cfg.Width, cfg.Height, physics.BodyOptions{Static: true})
	if err != nil {
		return nil, err
	}
	body.Shape().SetLayers(cfg.Layers.Exposed, cfg.Layers.Included)
	return &Paper{Body: body}, nil
}
