package main

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/paperchase/physics"
	"github.com/milk9111/paperchase/scenario"
	"golang.design/x/clipboard"
)

// snapshotTicks is how long a copied snapshot runs under physsim by default.
const snapshotTicks = 120

func initClipboard(logger *log.Logger) bool {
	if err := clipboard.Init(); err != nil {
		logger.Warn("clipboard unavailable, snapshots disabled", "err", err)
		return false
	}
	return true
}

// copySnapshot puts the world on the clipboard as a physsim scenario.
func (g *Game) copySnapshot() {
	if !g.clipboard {
		return
	}
	name := func(id physics.BodyID) string { return g.level.Kind(id).String() }
	data, err := scenario.Snapshot(g.world.Bodies(), name, g.cfg.Physics.Dt(), snapshotTicks).Marshal()
	if err != nil {
		g.logger.Error("snapshot failed", "err", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	g.logger.Info("copied world snapshot to clipboard", "bodies", g.world.Len(), "bytes", len(data))
}
