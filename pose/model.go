package pose

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Body sizes a skeleton. Size is the overall figure height; every other
// length is a fixed ratio of it.
type Body struct {
	Size       float64
	HeadRadius float64
}

// NewBody derives the head radius from the size.
func NewBody(size float64) Body {
	return Body{Size: size, HeadRadius: size * 0.1}
}

// polar offsets p by length along angle (radians, y down).
func polar(p cp.Vector, angle, length float64) cp.Vector {
	return p.Add(cp.ForAngle(angle).Mult(length))
}

// Standing is the idle layout, centred on the origin with the head toward
// negative y. Every other pose is an offset of it.
func (b Body) Standing() Keypoints {
	size := b.Size
	headRadius := b.HeadRadius

	var k Keypoints

	neckY := -size/2 + headRadius*2.2
	k[Neck] = cp.Vector{X: 0, Y: neckY}

	bodyLength := size * 0.4
	hipY := neckY + bodyLength
	k[Hip] = cp.Vector{X: 0, Y: hipY}

	shoulderY := hipY - bodyLength*0.9
	shoulderWidth := size * 0.08
	k[LeftShoulder] = cp.Vector{X: -shoulderWidth, Y: shoulderY}
	k[RightShoulder] = cp.Vector{X: shoulderWidth, Y: shoulderY}

	upperArm := size * 0.2
	leftArm := math.Pi * 0.55
	rightArm := math.Pi * 0.45
	k[LeftElbow] = polar(k[LeftShoulder], leftArm, upperArm)
	k[RightElbow] = polar(k[RightShoulder], rightArm, upperArm)

	forearm := size * 0.18
	k[LeftWrist] = polar(k[LeftElbow], leftArm+math.Pi*0.05, forearm)
	k[RightWrist] = polar(k[RightElbow], rightArm-math.Pi*0.05, forearm)

	hipDistance := size * 0.13
	hipAngle := math.Pi * 0.35
	k[LeftHip] = cp.Vector{X: -math.Cos(hipAngle) * hipDistance, Y: hipY + math.Sin(hipAngle)*hipDistance}
	k[RightHip] = cp.Vector{X: math.Cos(hipAngle) * hipDistance, Y: hipY + math.Sin(hipAngle)*hipDistance}

	thigh := size * 0.24
	leftThigh := math.Pi * 0.52
	rightThigh := math.Pi * 0.48
	k[LeftKnee] = polar(k[LeftHip], leftThigh, thigh)
	k[RightKnee] = polar(k[RightHip], rightThigh, thigh)

	shin := size * 0.24
	k[LeftAnkle] = polar(k[LeftKnee], leftThigh+math.Pi*0.02, shin)
	k[RightAnkle] = polar(k[RightKnee], rightThigh-math.Pi*0.02, shin)

	headCenterY := -size/2 + headRadius
	k[HeadTop] = cp.Vector{X: 0, Y: headCenterY - headRadius*0.9}
	k[HeadRight] = cp.Vector{X: headRadius * 0.75, Y: headCenterY - headRadius*0.15}
	k[HeadLeft] = cp.Vector{X: -headRadius * 0.75, Y: headCenterY - headRadius*0.15}
	k[HeadBottom] = cp.Vector{X: 0, Y: headCenterY + headRadius*0.6}

	return k
}

// Pose returns the target layout for a variant.
func (b Body) Pose(v Variant) Keypoints {
	return b.Variant(b.Standing(), v)
}

// Variant applies v's offsets to a standing layout built for the same body.
func (b Body) Variant(standing Keypoints, v Variant) Keypoints {
	if !v.Valid() {
		return standing
	}
	if apply := variantOffsets[v]; apply != nil {
		apply(&standing, b.Size)
	}
	return standing
}

// variantOffsets holds one additive offset function per variant. Idle and
// both walks have none: walking motion is layered on by the animator.
var variantOffsets = [variantCount]func(k *Keypoints, size float64){
	Crouch: crouchOffsets,
	Jump:   jumpOffsets,
}

func crouchOffsets(k *Keypoints, size float64) {
	kneeBend := size * 0.15
	hipDrop := size * 0.1
	headDrop := size * 0.05

	k[Hip].Y += hipDrop
	k[LeftHip].Y += hipDrop
	k[RightHip].Y += hipDrop

	k[LeftKnee] = cp.Vector{X: k[LeftHip].X - kneeBend*0.3, Y: k[LeftHip].Y + size*0.15}
	k[RightKnee] = cp.Vector{X: k[RightHip].X + kneeBend*0.3, Y: k[RightHip].Y + size*0.15}

	k[LeftAnkle].Y = k[LeftKnee].Y + size*0.12
	k[RightAnkle].Y = k[RightKnee].Y + size*0.12

	for _, p := range []Keypoint{Neck, HeadTop, HeadLeft, HeadRight, HeadBottom} {
		k[p].Y += headDrop
	}
}

func jumpOffsets(k *Keypoints, size float64) {
	armLift := size * 0.2
	legLift := size * 0.15

	k[LeftElbow] = k[LeftElbow].Add(cp.Vector{X: -size * 0.1, Y: -armLift})
	k[LeftWrist] = k[LeftWrist].Add(cp.Vector{X: -size * 0.15, Y: -armLift * 1.2})
	k[RightElbow] = k[RightElbow].Add(cp.Vector{X: size * 0.1, Y: -armLift})
	k[RightWrist] = k[RightWrist].Add(cp.Vector{X: size * 0.15, Y: -armLift * 1.2})

	k[LeftKnee] = k[LeftKnee].Add(cp.Vector{X: -size * 0.05, Y: -legLift})
	k[LeftAnkle] = k[LeftAnkle].Add(cp.Vector{X: -size * 0.08, Y: -legLift * 1.5})
	k[RightKnee] = k[RightKnee].Add(cp.Vector{X: size * 0.05, Y: -legLift})
	k[RightAnkle] = k[RightAnkle].Add(cp.Vector{X: size * 0.08, Y: -legLift * 1.5})
}
