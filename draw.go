package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/paperchase/obj"
	"github.com/milk9111/paperchase/physics"
	"golang.org/x/image/colornames"
)

func drawBody(screen *ebiten.Image, b *physics.Body, camX, camY float64, clr color.Color) {
	pos := b.Position()
	w, h := b.Shape().Size()
	vector.FillRect(screen, float32(pos.X-camX), float32(pos.Y-camY), float32(w), float32(h), clr, false)
}

func drawLevel(screen *ebiten.Image, l *obj.Level, camX, camY float64) {
	screen.Fill(colornames.Midnightblue)
	if l == nil {
		return
	}
	for _, b := range l.Platforms {
		drawBody(screen, b, camX, camY, colornames.Slategray)
	}
	for _, p := range l.Papers {
		if p.Collected {
			continue
		}
		drawBody(screen, p.Body, camX, camY, colornames.Ivory)
	}
	for _, e := range l.Enemies {
		drawBody(screen, e.Body, camX, camY, colornames.Crimson)
	}
	if p := l.Player; p != nil {
		clr := colornames.Lime
		if p.Invincible() {
			clr = colornames.Darkgreen
		}
		drawBody(screen, p.Body, camX, camY, clr)
	}
}

func drawText(screen *ebiten.Image, face text.Face, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

func drawHUD(screen *ebiten.Image, face text.Face, l *obj.Level) {
	if l == nil || l.Player == nil {
		return
	}
	p := l.Player
	drawText(screen, face, fmt.Sprintf("Health: %d/%d", p.Health.Current, p.Health.Max), 8, 8, colornames.White)
	drawText(screen, face, fmt.Sprintf("Papers: %d/%d", p.Papers, len(l.Papers)), 8, 24, colornames.White)

	switch {
	case l.Won():
		drawText(screen, face, "All papers collected! Press R to play again", baseWidth/2-150, baseHeight/2, colornames.Gold)
	case l.Lost():
		drawText(screen, face, "Out of health. Press R to retry", baseWidth/2-110, baseHeight/2, colornames.Tomato)
	}
}
