package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/shooter/obj"
)

const stickDeadzone = 0.2

// Input is the keyboard and gamepad state sampled once per frame.
type Input struct {
	Left, Right bool
	Jump        bool
	Shoot       bool
	Pause       bool
	Confirm     bool
}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Update() {
	i.Left = ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	i.Right = ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	i.Jump = inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp)
	i.Shoot = ebiten.IsKeyPressed(ebiten.KeyJ) || ebiten.IsKeyPressed(ebiten.KeyControl)
	i.Pause = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	i.Confirm = inpututil.IsKeyJustPressed(ebiten.KeyEnter)

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		i.Left = i.Left || x < -stickDeadzone ||
			ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		i.Right = i.Right || x > stickDeadzone ||
			ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
		i.Jump = i.Jump || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		i.Shoot = i.Shoot || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightLeft)
		i.Pause = i.Pause || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
		i.Confirm = i.Confirm || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}
}

func (i *Input) Controls() obj.Controls {
	return obj.Controls{Left: i.Left, Right: i.Right, Jump: i.Jump, Shoot: i.Shoot}
}
