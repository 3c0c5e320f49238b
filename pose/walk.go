package pose

import (
	"math"

	"github.com/jakecoffman/cp"
)

// limbSwing is how far one limb point moves per unit of swing: X scales the
// signed sinusoid, Y its absolute value.
type limbSwing struct {
	point Keypoint
	x, y  float64
}

var (
	leftSwing = []limbSwing{
		{LeftElbow, 0.5, 0.3},
		{LeftWrist, 1, 0.4},
		{LeftKnee, 0.4, 0.2},
		{LeftAnkle, 0.6, 0.3},
	}
	rightSwing = []limbSwing{
		{RightElbow, 0.5, 0.3},
		{RightWrist, 1, 0.4},
		{RightKnee, 0.4, 0.2},
		{RightAnkle, 0.6, 0.3},
	}
)

// WalkCycle overlays the limb swing for the given phase onto k. The left and
// right limbs run in antiphase.
func WalkCycle(k Keypoints, phase int, frequency, swing float64) Keypoints {
	s1 := math.Sin(float64(phase) * frequency)
	s2 := math.Sin(float64(phase)*frequency + math.Pi)

	applySwing(&k, leftSwing, s1, swing)
	applySwing(&k, rightSwing, s2, swing)
	return k
}

func applySwing(k *Keypoints, limbs []limbSwing, s, swing float64) {
	for _, l := range limbs {
		k[l.point] = k[l.point].Add(cp.Vector{
			X: s * swing * l.x,
			Y: math.Abs(s) * swing * l.y,
		})
	}
}
