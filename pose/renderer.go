package pose

import (
	"image/color"

	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"
)

// Renderer draws a skeleton. The animator is its only writer.
type Renderer interface {
	// SetKeypoints replaces only the named points and refreshes the geometry.
	SetKeypoints(p Partial)
	// SetPosition places the centre of the figure's bounds.
	SetPosition(x, y float64)
	// SetScaleX mirrors the figure around its centre (1 or -1).
	SetScaleX(sign float64)
	SetVisible(visible bool)
	Destroy()
}

// Bone is one drawn segment between two keypoints.
type Bone struct {
	From, To Keypoint
	Color    color.RGBA
}

// Bones lists every segment of the figure.
var Bones = []Bone{
	// head
	{Neck, HeadTop, colornames.Blue},
	{HeadTop, HeadLeft, colornames.Magenta},
	{HeadTop, HeadRight, colornames.Magenta},
	{HeadLeft, HeadBottom, colornames.Magenta},
	{HeadRight, HeadBottom, colornames.Magenta},
	{Neck, HeadBottom, colornames.Magenta},

	// torso
	{Neck, Hip, colornames.Lime},
	{Neck, LeftShoulder, colornames.Red},
	{Neck, RightShoulder, colornames.Red},
	{LeftShoulder, Hip, colornames.Darkorange},
	{RightShoulder, Hip, colornames.Darkorange},

	// arms
	{LeftShoulder, LeftElbow, colornames.Orange},
	{LeftElbow, LeftWrist, colornames.Greenyellow},
	{RightShoulder, RightElbow, colornames.Lightgreen},
	{RightElbow, RightWrist, colornames.Lime},

	// legs
	{Hip, LeftHip, colornames.Lime},
	{Hip, RightHip, colornames.Cyan},
	{LeftHip, LeftKnee, colornames.Darkturquoise},
	{LeftKnee, LeftAnkle, colornames.Darkcyan},
	{RightHip, RightKnee, colornames.Blue},
	{RightKnee, RightAnkle, colornames.Indigo},
}

// Frame maps local skeleton coordinates to the screen: the centre of the
// keypoint bounds lands on (X, Y) and x is mirrored by ScaleX around it.
type Frame struct {
	X, Y   float64
	ScaleX float64
}

// Apply returns the screen-space copy of k.
func (f Frame) Apply(k Keypoints) Keypoints {
	scaleX := f.ScaleX
	if scaleX == 0 {
		scaleX = 1
	}
	center := k.Bounds().Center()
	for i, v := range k {
		k[i] = cp.Vector{
			X: f.X + (v.X-center.X)*scaleX,
			Y: f.Y + (v.Y - center.Y),
		}
	}
	return k
}
