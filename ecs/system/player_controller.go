package system

import (
	"github.com/milk9111/stickfighter/ecs"
	"github.com/milk9111/stickfighter/ecs/component"
)

// PlayerControllerSystem steps every fighter's kinematics once per tick,
// re-reading the ground line first so a moved floor takes effect the same
// tick.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.FighterComponent.Kind(), func(e ecs.Entity, fighter *component.Fighter) {
		if fighter.Controller == nil {
			return
		}
		fighter.Controller.UpdateGroundY()
		fighter.Controller.Update()
	})
}
