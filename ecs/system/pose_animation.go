package system

import (
	"github.com/milk9111/stickfighter/ecs"
	"github.com/milk9111/stickfighter/ecs/component"
	"github.com/milk9111/stickfighter/pose"
)

const EventPoseChanged = "pose_changed"

// PoseChangedEvent is pushed when a fighter's target pose changes.
type PoseChangedEvent struct {
	Entity ecs.Entity
	From   pose.Variant
	To     pose.Variant
}

// PoseAnimationSystem reads each fighter's state once per tick and advances
// its animator.
type PoseAnimationSystem struct{}

func NewPoseAnimationSystem() *PoseAnimationSystem {
	return &PoseAnimationSystem{}
}

func (p *PoseAnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.FighterComponent.Kind(), component.PoseComponent.Kind(), func(e ecs.Entity, fighter *component.Fighter, pc *component.Pose) {
		if fighter.Controller == nil || pc.Animator == nil {
			return
		}
		if tr := pc.Animator.Update(fighter.Controller.State()); tr != nil {
			w.Events().Push(ecs.Event{
				Type: EventPoseChanged,
				Data: PoseChangedEvent{Entity: e, From: tr.From, To: tr.To},
			})
		}
	})
}
