package pose

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func nearVec(a, b cp.Vector) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func TestKeypointNames(t *testing.T) {
	seenName := map[string]bool{}
	seenAbbrev := map[string]bool{}
	for k := Keypoint(0); k < KeypointCount; k++ {
		if k.Index() != int(k) {
			t.Fatalf("%v index = %d", k, k.Index())
		}
		if len(k.Abbrev()) != 2 {
			t.Fatalf("%v abbrev %q is not two letters", k, k.Abbrev())
		}
		if seenName[k.Name()] || seenAbbrev[k.Abbrev()] {
			t.Fatalf("duplicate label for %v", k)
		}
		seenName[k.Name()] = true
		seenAbbrev[k.Abbrev()] = true

		got, ok := KeypointByName(k.Name())
		if !ok || got != k {
			t.Fatalf("KeypointByName(%q) = %v, %v", k.Name(), got, ok)
		}
	}
	if KeypointCount != 18 {
		t.Fatalf("KeypointCount = %d, want 18", KeypointCount)
	}
	if Keypoint(99).Name() != "" {
		t.Fatalf("invalid keypoint has a name")
	}
	if _, ok := KeypointByName("tail"); ok {
		t.Fatalf("unknown name resolved")
	}
}

func TestKeypointLabels(t *testing.T) {
	tests := []struct {
		k    Keypoint
		want string
	}{
		{Neck, "0 Nk"},
		{LeftElbow, "3 LE"},
		{RightAnkle, "13 RA"},
		{HeadBottom, "17 Ch"},
		{Keypoint(-1), ""},
		{KeypointCount, ""},
	}
	for _, tt := range tests {
		if got := tt.k.Label(); got != tt.want {
			t.Fatalf("Label(%d) = %q, want %q", int(tt.k), got, tt.want)
		}
	}
}

func TestKeypointsAreValues(t *testing.T) {
	a := NewBody(100).Standing()
	b := a
	b[Neck].X += 10
	if a[Neck].X == b[Neck].X {
		t.Fatalf("copy aliases the original")
	}
}

func TestPartialAndMerge(t *testing.T) {
	k := NewBody(100).Standing()
	p := k.Partial()
	if len(p) != int(KeypointCount) {
		t.Fatalf("partial has %d entries", len(p))
	}

	moved := cp.Vector{X: 42, Y: -7}
	merged := k.Merge(Partial{LeftWrist: moved, Keypoint(-1): moved})
	if merged[LeftWrist] != moved {
		t.Fatalf("merge missed LeftWrist")
	}
	for i := range merged {
		if Keypoint(i) != LeftWrist && merged[i] != k[i] {
			t.Fatalf("merge touched %v", Keypoint(i))
		}
	}
}

func TestStandingLayout(t *testing.T) {
	const size = 328.8
	b := NewBody(size)
	if !near(b.HeadRadius, 32.88) {
		t.Fatalf("head radius = %v", b.HeadRadius)
	}
	k := b.Standing()

	t.Run("spine", func(t *testing.T) {
		if !near(k[Neck].Y, -size/2+b.HeadRadius*2.2) || k[Neck].X != 0 {
			t.Fatalf("neck = %v", k[Neck])
		}
		if !near(k[Hip].Y-k[Neck].Y, 0.4*size) {
			t.Fatalf("hip offset = %v", k[Hip].Y-k[Neck].Y)
		}
	})

	t.Run("shoulders", func(t *testing.T) {
		if !near(k[RightShoulder].X, 0.08*size) || !near(k[LeftShoulder].X, -0.08*size) {
			t.Fatalf("shoulders = %v %v", k[LeftShoulder], k[RightShoulder])
		}
	})

	t.Run("segment_lengths", func(t *testing.T) {
		cases := []struct {
			from, to Keypoint
			length   float64
		}{
			{LeftShoulder, LeftElbow, 0.2 * size},
			{LeftElbow, LeftWrist, 0.18 * size},
			{Hip, LeftHip, 0.13 * size},
			{LeftHip, LeftKnee, 0.24 * size},
			{LeftKnee, LeftAnkle, 0.24 * size},
		}
		for _, c := range cases {
			if d := k[c.from].Distance(k[c.to]); !near(d, c.length) {
				t.Fatalf("%v-%v = %v, want %v", c.from, c.to, d, c.length)
			}
		}
	})

	t.Run("mirror_symmetric", func(t *testing.T) {
		pairs := [][2]Keypoint{
			{LeftShoulder, RightShoulder},
			{LeftElbow, RightElbow},
			{LeftWrist, RightWrist},
			{LeftHip, RightHip},
			{LeftKnee, RightKnee},
			{LeftAnkle, RightAnkle},
			{HeadLeft, HeadRight},
		}
		for _, p := range pairs {
			l, r := k[p[0]], k[p[1]]
			if !near(l.X, -r.X) || !near(l.Y, r.Y) {
				t.Fatalf("%v %v not mirrored: %v %v", p[0], p[1], l, r)
			}
		}
	})

	t.Run("head_above_neck", func(t *testing.T) {
		if !(k[HeadTop].Y < k[HeadBottom].Y && k[HeadBottom].Y < k[Neck].Y) {
			t.Fatalf("head order wrong: top=%v chin=%v neck=%v", k[HeadTop], k[HeadBottom], k[Neck])
		}
	})
}

func TestVariantPoses(t *testing.T) {
	const size = 200
	b := NewBody(size)
	standing := b.Standing()

	t.Run("idle_and_walks_are_standing", func(t *testing.T) {
		for _, v := range []Variant{Idle, WalkLeft, WalkRight} {
			if b.Pose(v) != standing {
				t.Fatalf("%v differs from standing", v)
			}
		}
	})

	t.Run("crouch", func(t *testing.T) {
		k := b.Pose(Crouch)
		if !near(k[Hip].Y-standing[Hip].Y, 0.1*size) {
			t.Fatalf("hip drop = %v", k[Hip].Y-standing[Hip].Y)
		}
		if !near(k[Neck].Y-standing[Neck].Y, 0.05*size) || !near(k[HeadTop].Y-standing[HeadTop].Y, 0.05*size) {
			t.Fatalf("head drop wrong")
		}
		if !near(k[LeftKnee].Y, k[LeftHip].Y+0.15*size) || !near(k[LeftKnee].X, k[LeftHip].X-0.045*size) {
			t.Fatalf("left knee = %v", k[LeftKnee])
		}
		if !near(k[RightKnee].X, k[RightHip].X+0.045*size) {
			t.Fatalf("right knee = %v", k[RightKnee])
		}
		if !near(k[LeftAnkle].Y, k[LeftKnee].Y+0.12*size) || k[LeftAnkle].X != standing[LeftAnkle].X {
			t.Fatalf("left ankle = %v", k[LeftAnkle])
		}
		if k.Height() >= standing.Height() {
			t.Fatalf("crouch is not shorter: %v >= %v", k.Height(), standing.Height())
		}
	})

	t.Run("jump", func(t *testing.T) {
		k := b.Pose(Jump)
		if !near(standing[LeftWrist].Y-k[LeftWrist].Y, 0.24*size) || !near(standing[LeftWrist].X-k[LeftWrist].X, 0.15*size) {
			t.Fatalf("left wrist = %v", k[LeftWrist])
		}
		if !near(k[RightElbow].X-standing[RightElbow].X, 0.1*size) {
			t.Fatalf("right elbow = %v", k[RightElbow])
		}
		if !near(standing[RightAnkle].Y-k[RightAnkle].Y, 0.225*size) {
			t.Fatalf("right ankle = %v", k[RightAnkle])
		}
		if k[Neck] != standing[Neck] || k[Hip] != standing[Hip] {
			t.Fatalf("jump moved the spine")
		}
	})

	t.Run("unknown_variant_is_standing", func(t *testing.T) {
		if b.Pose(Variant(42)) != standing {
			t.Fatalf("unknown variant changed the layout")
		}
	})
}

func TestWalkCycle(t *testing.T) {
	b := NewBody(200)
	base := b.Standing()
	swing := 200 * 0.15

	t.Run("phase_zero_is_rest", func(t *testing.T) {
		k := WalkCycle(base, 0, 0.025, swing)
		for i := range k {
			if !nearVec(k[i], base[i]) {
				t.Fatalf("%v moved at phase 0", Keypoint(i))
			}
		}
	})

	t.Run("antiphase", func(t *testing.T) {
		phase := 40
		s := math.Sin(float64(phase) * 0.025)
		k := WalkCycle(base, phase, 0.025, swing)
		dl := k[LeftWrist].Sub(base[LeftWrist])
		dr := k[RightWrist].Sub(base[RightWrist])
		if !near(dl.X, s*swing) || !near(dr.X, -s*swing) {
			t.Fatalf("wrist swing x: left %v right %v", dl.X, dr.X)
		}
		if !near(dl.Y, math.Abs(s)*swing*0.4) || !near(dr.Y, dl.Y) {
			t.Fatalf("wrist swing y: left %v right %v", dl.Y, dr.Y)
		}
		if k[Neck] != base[Neck] || k[Hip] != base[Hip] {
			t.Fatalf("walk cycle moved the spine")
		}
	})
}

func TestFrameApply(t *testing.T) {
	k := NewBody(100).Standing()
	c := k.Bounds().Center()
	h := k.Height()

	f := Frame{X: 300, Y: 500, ScaleX: 1}
	out := f.Apply(k)
	if !nearVec(out.Bounds().Center(), cp.Vector{X: 300, Y: 500}) {
		t.Fatalf("centre = %v", out.Bounds().Center())
	}
	if !near(out.Height(), h) {
		t.Fatalf("height changed: %v", out.Height())
	}

	mirrored := Frame{X: 300, Y: 500, ScaleX: -1}.Apply(k)
	wantX := 300 - (k[LeftWrist].X - c.X)
	if !near(mirrored[LeftWrist].X, wantX) {
		t.Fatalf("mirrored wrist x = %v, want %v", mirrored[LeftWrist].X, wantX)
	}

	if (Frame{X: 300, Y: 500}).Apply(k) != out {
		t.Fatalf("zero ScaleX should draw unmirrored")
	}
}
