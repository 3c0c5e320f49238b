package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/stickfighter/ecs/component"
)

const stickDeadzone = 0.3

// Input holds the keyboard and gamepad state for one tick.
type Input struct {
	// Buttons is the held state of the fighter controls.
	Buttons component.Buttons

	PausePressed  bool
	QuitPressed   bool
	DumpPressed   bool
	LabelsPressed bool
	ResetPressed  bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard and the first gamepad.
func (i *Input) Update() {
	i.QuitPressed = inpututil.IsKeyJustPressed(ebiten.KeyF12)
	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	i.LabelsPressed = inpututil.IsKeyJustPressed(ebiten.KeyF1)
	i.DumpPressed = inpututil.IsKeyJustPressed(ebiten.KeyF2)
	i.ResetPressed = inpututil.IsKeyJustPressed(ebiten.KeyR)

	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight)
	jump := ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeySpace)
	crouch := ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown)

	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]

		leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
		leftY := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical)
		left = left || leftX < -stickDeadzone || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftLeft)
		right = right || leftX > stickDeadzone || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftRight)
		crouch = crouch || leftY > stickDeadzone || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftBottom)
		jump = jump || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)

		i.PausePressed = i.PausePressed || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight)
	}

	i.Buttons = component.Buttons{Left: left, Right: right, Jump: jump, Crouch: crouch}
}
