package component

import "github.com/milk9111/stickfighter/player"

// Fighter binds an entity to its kinematic controller.
type Fighter struct {
	Name       string
	Spec       string
	SpawnX     float64
	Controller *player.Controller
}

var FighterComponent = NewComponent[Fighter]()
