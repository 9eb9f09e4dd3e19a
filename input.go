package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/paperchase/obj"
)

// Input polls the keyboard and first gamepad once per frame.
type Input struct {
	// Controls is shared with the player and rewritten every frame.
	Controls *obj.Controls

	// Single-frame presses.
	PausePressed    bool
	RestartPressed  bool
	DebugPressed    bool
	SnapshotPressed bool
	QuitPressed     bool
}

func NewInput() *Input {
	return &Input{Controls: &obj.Controls{}}
}

func (i *Input) Update() {
	var moveX float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		moveX += 1
	}
	jump := ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyUp)

	var gpPause bool
	if ids := ebiten.AppendGamepadIDs(nil); len(ids) > 0 {
		gid := ids[0]

		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if leftX < -0.3 {
			moveX = -1
		} else if leftX > 0.3 {
			moveX = 1
		}
		jump = jump || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		gpPause = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight)
	}

	i.Controls.MoveX = moveX
	i.Controls.Jump = jump

	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || gpPause
	i.RestartPressed = inpututil.IsKeyJustPressed(ebiten.KeyR)
	i.DebugPressed = inpututil.IsKeyJustPressed(ebiten.KeyF3)
	i.SnapshotPressed = inpututil.IsKeyJustPressed(ebiten.KeyF5)
	i.QuitPressed = inpututil.IsKeyJustPressed(ebiten.KeyF12)
}

// Clear drops held movement, used while the game is paused.
func (i *Input) Clear() {
	*i.Controls = obj.Controls{}
}
