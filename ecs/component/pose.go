package component

import "github.com/milk9111/stickfighter/pose"

// Pose holds a fighter's animator and the renderer it writes to.
type Pose struct {
	Animator *pose.Animator
	Renderer pose.Renderer
}

var PoseComponent = NewComponent[Pose]()
