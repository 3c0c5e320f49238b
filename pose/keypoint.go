// Package pose models the 18-point stick-figure skeleton: the standing
// layout, the per-variant pose tables, and the animator that blends between
// them every tick.
package pose

import (
	"strconv"

	"github.com/jakecoffman/cp"
)

// Keypoint names one anchor of the skeleton. The numeric value is the index
// shown by the label overlay.
type Keypoint int

const (
	Neck Keypoint = iota
	Hip
	LeftShoulder
	LeftElbow
	LeftWrist
	RightShoulder
	RightElbow
	RightWrist
	LeftHip
	LeftKnee
	LeftAnkle
	RightHip
	RightKnee
	RightAnkle
	HeadTop
	HeadRight
	HeadLeft
	HeadBottom

	KeypointCount
)

var keypointInfo = [KeypointCount]struct {
	name   string
	abbrev string
}{
	Neck:          {"neck", "Nk"},
	Hip:           {"hip", "Hp"},
	LeftShoulder:  {"left_shoulder", "LS"},
	LeftElbow:     {"left_elbow", "LE"},
	LeftWrist:     {"left_wrist", "LW"},
	RightShoulder: {"right_shoulder", "RS"},
	RightElbow:    {"right_elbow", "RE"},
	RightWrist:    {"right_wrist", "RW"},
	LeftHip:       {"left_hip", "LH"},
	LeftKnee:      {"left_knee", "LK"},
	LeftAnkle:     {"left_ankle", "LA"},
	RightHip:      {"right_hip", "RH"},
	RightKnee:     {"right_knee", "RK"},
	RightAnkle:    {"right_ankle", "RA"},
	HeadTop:       {"head_top", "HT"},
	HeadRight:     {"head_right", "HR"},
	HeadLeft:      {"head_left", "HL"},
	HeadBottom:    {"head_bottom", "Ch"},
}

func (k Keypoint) Valid() bool {
	return k >= 0 && k < KeypointCount
}

func (k Keypoint) Index() int {
	return int(k)
}

func (k Keypoint) Name() string {
	if !k.Valid() {
		return ""
	}
	return keypointInfo[k].name
}

// Abbrev is the fixed two-letter label drawn next to the index.
func (k Keypoint) Abbrev() string {
	if !k.Valid() {
		return ""
	}
	return keypointInfo[k].abbrev
}

// Label is the overlay text for k: its index and abbreviation.
func (k Keypoint) Label() string {
	if !k.Valid() {
		return ""
	}
	return strconv.Itoa(k.Index()) + " " + k.Abbrev()
}

func (k Keypoint) String() string {
	return k.Name()
}

// KeypointByName resolves a snake_case keypoint name.
func KeypointByName(name string) (Keypoint, bool) {
	for k := Keypoint(0); k < KeypointCount; k++ {
		if keypointInfo[k].name == name {
			return k, true
		}
	}
	return 0, false
}

// Keypoints is a full skeleton. It is an array so assignment copies it;
// every name is always present.
type Keypoints [KeypointCount]cp.Vector

// Partial carries a subset of keypoints for a renderer update.
type Partial map[Keypoint]cp.Vector

func (k Keypoints) Partial() Partial {
	p := make(Partial, KeypointCount)
	for i, v := range k {
		p[Keypoint(i)] = v
	}
	return p
}

// Merge overwrites the named points of k with the valid entries of p.
func (k Keypoints) Merge(p Partial) Keypoints {
	for name, v := range p {
		if name.Valid() {
			k[name] = v
		}
	}
	return k
}

// Lerp moves every point of k toward target by t.
func (k Keypoints) Lerp(target Keypoints, t float64) Keypoints {
	for i := range k {
		k[i] = k[i].Lerp(target[i], t)
	}
	return k
}

// Bounds is the axis-aligned box around every keypoint. B is the smallest y
// and T the largest, so T-B is the height in screen space.
func (k Keypoints) Bounds() cp.BB {
	bb := cp.BB{L: k[0].X, B: k[0].Y, R: k[0].X, T: k[0].Y}
	for _, v := range k[1:] {
		bb = bb.Expand(v)
	}
	return bb
}

func (k Keypoints) Height() float64 {
	bb := k.Bounds()
	return bb.T - bb.B
}
