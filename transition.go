package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Transition manages a fade-to-black, level rebuild, fade-from-black sequence.
type Transition struct {
	Active   bool
	Phase    int // 1: fade-in, 3: fade-out
	Frames   int
	Duration int
	Reason   string
	// OnMidpoint is called once the screen is black.
	OnMidpoint func(reason string)
}

func NewTransition() *Transition {
	return &Transition{Duration: 20}
}

// Enter starts a transition. It is ignored while one is running.
func (t *Transition) Enter(reason string) {
	if t.Active {
		return
	}
	t.Active = true
	t.Phase = 1
	t.Frames = 0
	t.Reason = reason
}

// Update advances the transition. It returns true while the caller should
// skip simulation.
func (t *Transition) Update() bool {
	if !t.Active {
		return false
	}
	t.Frames++
	switch t.Phase {
	case 1:
		if t.Frames >= t.Duration {
			if t.OnMidpoint != nil {
				t.OnMidpoint(t.Reason)
			}
			t.Phase = 3
			t.Frames = 0
		}
	case 3:
		if t.Frames >= t.Duration {
			t.Active = false
			t.Phase = 0
			t.Frames = 0
			t.Reason = ""
		}
	}
	return true
}

// Alpha is the overlay opacity for the current frame.
func (t *Transition) Alpha() float64 {
	if !t.Active || t.Duration <= 0 {
		return 0
	}
	f := float64(t.Frames) / float64(t.Duration)
	switch t.Phase {
	case 1:
		return min(f, 1)
	case 3:
		return max(1-f, 0)
	}
	return 0
}

// Draw draws the fade overlay onto the provided screen.
func (t *Transition) Draw(screen *ebiten.Image) {
	alpha := t.Alpha()
	if alpha <= 0 {
		return
	}
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.NRGBA{A: uint8(alpha * 255)}, false)
}
