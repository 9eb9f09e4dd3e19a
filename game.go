package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/paperchase/config"
	"github.com/milk9111/paperchase/obj"
	"github.com/milk9111/paperchase/physics"
	"golang.org/x/image/font/basicfont"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

var errQuit = errors.New("quit")

type Game struct {
	frames int

	cfg     *config.Game
	cfgPath string
	watcher *config.Watcher
	logger  *log.Logger

	world  *physics.World
	level  *obj.Level
	camera *obj.Camera
	input  *Input

	transition *Transition
	pauseUI    *ebitenui.UI
	face       text.Face
	clipboard  bool

	debug  bool
	paused bool
	quit   bool
}

func NewGame(cfg *config.Game, cfgPath string, debug bool, logger *log.Logger) (*Game, error) {
	g := &Game{
		cfg:        cfg,
		cfgPath:    cfgPath,
		logger:     logger,
		camera:     obj.NewCamera(baseWidth, baseHeight),
		input:      NewInput(),
		transition: NewTransition(),
		face:       text.NewGoXFace(basicfont.Face7x13),
		debug:      debug,
	}
	g.world = physics.NewWorld(
		physics.WithLogger(logger.WithPrefix("physics")),
		physics.WithListener(physics.ListenerFunc(g.logCollision)),
	)
	g.transition.OnMidpoint = func(reason string) {
		if err := g.rebuild(); err != nil {
			g.logger.Error("rebuild failed", "reason", reason, "err", err)
		}
	}
	g.pauseUI = NewPauseUI(g)
	g.clipboard = initClipboard(logger)

	if err := g.rebuild(); err != nil {
		return nil, err
	}

	if cfgPath != "" {
		w, err := config.NewWatcher(cfgPath)
		if err != nil {
			logger.Warn("config hot reload disabled", "path", cfgPath, "err", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// Close stops the config watcher.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

// rebuild resets the world and builds the level from the current config.
func (g *Game) rebuild() error {
	level, err := obj.BuildLevel(g.world, g.cfg, g.input.Controls, g.logger)
	if err != nil {
		return fmt.Errorf("build level: %w", err)
	}
	g.level = level
	g.camera.SetBounds(level.Bounds())
	g.followPlayer(true)
	return nil
}

func (g *Game) restart(reason string) {
	g.paused = false
	g.transition.Enter(reason)
}

func (g *Game) Update() error {
	g.frames++
	if g.quit {
		return errQuit
	}

	g.pollConfig()
	g.input.Update()
	if g.input.QuitPressed {
		return errQuit
	}
	if g.input.DebugPressed {
		g.debug = !g.debug
	}
	if g.input.SnapshotPressed {
		g.copySnapshot()
	}

	if g.transition.Update() {
		return nil
	}

	if g.input.PausePressed {
		g.paused = !g.paused
	}
	if g.paused {
		g.input.Clear()
		g.pauseUI.Update()
		return nil
	}

	if g.input.RestartPressed {
		g.restart("restart")
		return nil
	}

	if g.level.Won() || g.level.Lost() {
		return nil
	}

	if err := g.world.Update(g.cfg.Physics.Dt()); err != nil {
		return err
	}
	g.drainEvents()
	g.followPlayer(false)
	return nil
}

func (g *Game) followPlayer(snap bool) {
	p := g.level.Player
	if p == nil {
		return
	}
	pos := p.Body.Position()
	w, h := p.Body.Shape().Size()
	x, y := pos.X+w/2, pos.Y+h/2
	if snap {
		g.camera.SnapTo(x, y)
		return
	}
	g.camera.Update(x, y)
}

// pollConfig rebuilds the level when the watched config file changes.
func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path := <-g.watcher.Events:
			cfg, _, err := config.Load(path)
			if err != nil {
				g.logger.Warn("config reload failed, keeping current", "err", err)
				continue
			}
			g.logger.Info("config changed, rebuilding level", "path", path)
			g.cfg = cfg
			ebiten.SetTPS(cfg.Physics.TickRate)
			g.restart("reload")
		case err := <-g.watcher.Errors:
			g.logger.Warn("config watcher error", "err", err)
		default:
			return
		}
	}
}

func (g *Game) drainEvents() {
	events := g.world.Events().Drain()
	if !g.debug {
		return
	}
	for _, evt := range events {
		g.logger.Debug("collision",
			"kind", evt.Kind,
			"a", g.describe(evt.A),
			"b", g.describe(evt.B),
			"result", evt.Result)
	}
}

// logCollision reports player contacts as they happen.
func (g *Game) logCollision(evt physics.CollisionEvent) {
	if g.level == nil || g.level.Player == nil || !evt.Involves(g.level.Player.Body.ID()) {
		return
	}
	if evt.Kind == physics.EventBegin && evt.Result == physics.Yes {
		g.logger.Debug("player contact", "a", g.describe(evt.A), "b", g.describe(evt.B))
	}
}

func (g *Game) describe(id physics.BodyID) string {
	return fmt.Sprintf("%s#%d", g.level.Kind(id), id)
}

func (g *Game) Draw(screen *ebiten.Image) {
	camX, camY := g.camera.ViewTopLeft()
	drawLevel(screen, g.level, camX, camY)
	if g.debug {
		drawDebug(screen, g.world, camX, camY)
	}

	drawHUD(screen, g.face, g.level)
	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Bodies: %d", g.frames, ebiten.ActualFPS(), g.world.Len()), 8, baseHeight-20)
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
	g.transition.Draw(screen)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
