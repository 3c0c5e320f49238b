package system

import (
	"github.com/milk9111/stickfighter/ecs"
	"github.com/milk9111/stickfighter/ecs/component"
)

// Intents is the fire-and-forget surface of a fighter controller.
type Intents interface {
	MoveLeft()
	MoveRight()
	StopHorizontalMovement()
	Jump()
	StartCrouch()
	StopCrouch()
}

// IntentSystem turns button edges into controller intents. Repeated intents
// are not coalesced; the controller's own guards decide what sticks.
type IntentSystem struct{}

func NewIntentSystem() *IntentSystem {
	return &IntentSystem{}
}

func (i *IntentSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.InputComponent.Kind(), component.FighterComponent.Kind(), func(e ecs.Entity, input *component.Input, fighter *component.Fighter) {
		if fighter.Controller == nil {
			return
		}
		ApplyIntents(fighter.Controller, input.Prev, input.Held)
		input.Prev = input.Held
	})
}

// ApplyIntents issues the intents implied by going from prev to cur. When
// both directions are held the most recently pressed one wins.
func ApplyIntents(ctrl Intents, prev, cur component.Buttons) {
	if prev.Left != cur.Left || prev.Right != cur.Right {
		switch {
		case cur.Left && !prev.Left:
			ctrl.MoveLeft()
		case cur.Right && !prev.Right:
			ctrl.MoveRight()
		case cur.Left:
			ctrl.MoveLeft()
		case cur.Right:
			ctrl.MoveRight()
		default:
			ctrl.StopHorizontalMovement()
		}
	}

	if cur.Jump && !prev.Jump {
		ctrl.Jump()
	}

	if cur.Crouch && !prev.Crouch {
		ctrl.StartCrouch()
	} else if !cur.Crouch && prev.Crouch {
		ctrl.StopCrouch()
	}
}
