package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/paperchase/physics"
)

var (
	debugStatic  = color.RGBA{R: 0x66, G: 0xb3, B: 0xff, A: 0xff}
	debugDynamic = color.RGBA{R: 0xe6, G: 0x66, B: 0xe6, A: 0xff}
	debugContact = color.RGBA{R: 0xff, G: 0x1a, B: 0x1a, A: 0xff}
	debugTrigger = color.RGBA{R: 0xff, G: 0xd9, B: 0x33, A: 0xff}
)

// drawDebug outlines every body's box and marks live contacts: solid ones
// with the separation vector, triggers with a tint.
func drawDebug(screen *ebiten.Image, w *physics.World, camX, camY float64) {
	if w == nil || screen == nil {
		return
	}
	for _, b := range w.Bodies() {
		bb := b.Shape().BB()
		clr := debugDynamic
		if b.Static() {
			clr = debugStatic
		}
		x, y := float32(bb.L-camX), float32(bb.B-camY)
		wdt, hgt := float32(bb.R-bb.L), float32(bb.T-bb.B)
		vector.StrokeRect(screen, x, y, wdt, hgt, 1.0, clr, false)

		for _, c := range b.Contacts() {
			if c.Result != physics.Yes {
				vector.FillRect(screen, x, y, wdt, hgt, color.RGBA{R: debugTrigger.R, G: debugTrigger.G, B: debugTrigger.B, A: 48}, false)
				continue
			}
			// Line from the box center along the correction this body received.
			d := c.IntersectionFor(b.ID())
			cx, cy := x+wdt/2, y+hgt/2
			vector.StrokeLine(screen, cx, cy, cx-float32(d.X), cy-float32(d.Y), 2, debugContact, true)
		}
	}
}
