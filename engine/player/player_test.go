package player

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/rig-go/common"
	"github.com/Carmen-Shannon/rig-go/engine/rig"
	"github.com/Carmen-Shannon/rig-go/engine/scheduler"
	"github.com/Carmen-Shannon/rig-go/engine/track"
)

func transformAt(x float32) *common.Transform {
	return &common.Transform{Position: [3]float32{x, 0, 0}, Rotation: [4]float32{0, 0, 0, 1}}
}

// torsoKeyframe builds a classic-layout keyframe where the Torso drives
// RootJoint at position x, optionally with a Head child driving Neck.
func torsoKeyframe(x float32, withHead bool, headX float32) map[string]any {
	torso := &track.PoseNode{Transform: transformAt(x)}
	if withHead {
		torso.Children = map[string]any{
			"Head": &track.PoseNode{Transform: transformAt(headX)},
		}
	}
	return map[string]any{
		"Root": &track.PoseNode{
			Children: map[string]any{"Torso": torso},
		},
	}
}

func approx(got, want, eps float32) bool {
	return float32(math.Abs(float64(got-want))) <= eps
}

func newTestPlayer() (Player, scheduler.Scheduler) {
	sched := scheduler.NewScheduler(scheduler.BackendTypeManual)
	return NewPlayer(sched, WithFlattenWorkers(2)), sched
}

func TestPlayer_InterpolationMidpoint(t *testing.T) {
	p, sched := newTestPlayer()

	tr := &track.Track{Keyframes: map[float32]map[string]any{
		0:  torsoKeyframe(0, false, 0),
		10: torsoKeyframe(10, false, 0),
	}}
	r := rig.NewRig(rig.WithJoints("RootJoint"))

	p.Play(tr, r)
	sched.Step(5)

	j, _ := r.FindJoint("RootJoint")
	if got := j.Transform().Position[0]; !approx(got, 5, 1e-4) {
		t.Errorf("RootJoint position.x at t=5 = %v, want 5", got)
	}
	if !approx(p.Time(), 5, 1e-4) {
		t.Errorf("Time = %v, want 5", p.Time())
	}
}

func TestPlayer_WrapAround(t *testing.T) {
	p, sched := newTestPlayer()

	tr := &track.Track{Keyframes: map[float32]map[string]any{
		0:  torsoKeyframe(0, false, 0),
		10: torsoKeyframe(100, false, 0),
	}}
	r := rig.NewRig(rig.WithJoints("RootJoint"))

	p.Play(tr, r)
	sched.Step(9.9)
	sched.Step(0.5)

	if got := p.Time(); !approx(got, 0.4, 1e-3) {
		t.Errorf("Time after wrap = %v, want 0.4", got)
	}

	// Still interpolating inside the (0, 10) bracket after the wrap.
	j, _ := r.FindJoint("RootJoint")
	if got := j.Transform().Position[0]; !approx(got, 4, 1e-2) {
		t.Errorf("RootJoint position.x after wrap = %v, want 4", got)
	}
}

func TestPlayer_SpeedMultiplier(t *testing.T) {
	p, sched := newTestPlayer()

	tr := &track.Track{
		Speed: 2,
		Keyframes: map[float32]map[string]any{
			0:  torsoKeyframe(0, false, 0),
			10: torsoKeyframe(10, false, 0),
		},
	}
	r := rig.NewRig(rig.WithJoints("RootJoint"))

	p.Play(tr, r)
	if p.Speed() != 2 {
		t.Fatalf("Speed = %v, want 2", p.Speed())
	}

	sched.Step(2.5)
	if got := p.Time(); !approx(got, 5, 1e-4) {
		t.Errorf("Time with speed 2 after dt=2.5 = %v, want 5", got)
	}
}

func TestPlayer_IrregularSpacing(t *testing.T) {
	p, sched := newTestPlayer()

	tr := &track.Track{Keyframes: map[float32]map[string]any{
		0:   torsoKeyframe(0, false, 0),
		1:   torsoKeyframe(10, false, 0),
		7.5: torsoKeyframe(75, false, 0),
	}}
	r := rig.NewRig(rig.WithJoints("RootJoint"))

	p.Play(tr, r)
	sched.Step(4.25) // inside the (1, 7.5) bracket at alpha 0.5

	j, _ := r.FindJoint("RootJoint")
	if got := j.Transform().Position[0]; !approx(got, 42.5, 1e-3) {
		t.Errorf("RootJoint position.x at t=4.25 = %v, want 42.5", got)
	}
}

func TestPlayer_MissingJointSkipped(t *testing.T) {
	p, sched := newTestPlayer()

	// Head (Neck joint) exists only in the first keyframe; across the (0, 10)
	// bracket its transform must be left untouched.
	tr := &track.Track{Keyframes: map[float32]map[string]any{
		0:  torsoKeyframe(0, true, 3),
		10: torsoKeyframe(10, false, 0),
	}}
	r := rig.NewRig(rig.WithJoints("RootJoint", "Neck"))

	sentinel := common.Transform{Position: [3]float32{7, 7, 7}, Rotation: [4]float32{0, 0, 0, 1}}
	neck, _ := r.FindJoint("Neck")
	neck.SetTransform(sentinel)

	p.Play(tr, r)
	sched.Step(5)

	if got := neck.Transform(); got != sentinel {
		t.Errorf("Neck transform = %v, want untouched sentinel %v", got, sentinel)
	}

	j, _ := r.FindJoint("RootJoint")
	if got := j.Transform().Position[0]; !approx(got, 5, 1e-4) {
		t.Errorf("RootJoint position.x = %v, want 5", got)
	}
}

func TestPlayer_LaterKeyframeJointNeverCached(t *testing.T) {
	p, sched := newTestPlayer()

	// Head appears only in the second keyframe, so Neck is never resolved
	// into the joint cache and never animated.
	tr := &track.Track{Keyframes: map[float32]map[string]any{
		0:  torsoKeyframe(0, false, 0),
		10: torsoKeyframe(10, true, 3),
	}}
	r := rig.NewRig(rig.WithJoints("RootJoint", "Neck"))

	p.Play(tr, r)
	sched.Step(5)

	neck, _ := r.FindJoint("Neck")
	if got := neck.Transform(); got != common.IdentityTransform() {
		t.Errorf("Neck transform = %v, want identity (never animated)", got)
	}
}

func TestPlayer_JointAbsentFromRig(t *testing.T) {
	p, sched := newTestPlayer()

	tr := &track.Track{Keyframes: map[float32]map[string]any{
		0:  torsoKeyframe(0, true, 3),
		10: torsoKeyframe(10, true, 6),
	}}
	// The rig has no Neck joint; the lookup fails silently at Play time.
	r := rig.NewRig(rig.WithJoints("RootJoint"))

	p.Play(tr, r)
	sched.Step(5)

	j, _ := r.FindJoint("RootJoint")
	if got := j.Transform().Position[0]; !approx(got, 5, 1e-4) {
		t.Errorf("RootJoint position.x = %v, want 5", got)
	}
}

func TestPlayer_DegenerateTracks(t *testing.T) {
	tests := []struct {
		name      string
		keyframes map[float32]map[string]any
	}{
		{"zero keyframes", map[float32]map[string]any{}},
		{"one keyframe", map[float32]map[string]any{0: torsoKeyframe(9, false, 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, sched := newTestPlayer()
			r := rig.NewRig(rig.WithJoints("RootJoint"))

			p.Play(&track.Track{Keyframes: tt.keyframes}, r)
			if !p.Playing() {
				t.Fatal("expected player to be playing")
			}

			for i := 0; i < 5; i++ {
				sched.Step(0.25)
			}

			if got := p.Time(); got != 0 {
				t.Errorf("Time = %v, want 0 (degenerate track must not advance)", got)
			}
			j, _ := r.FindJoint("RootJoint")
			if got := j.Transform(); got != common.IdentityTransform() {
				t.Errorf("RootJoint transform = %v, want identity (no writes)", got)
			}
		})
	}
}

func TestPlayer_DetachedOncePerPlay(t *testing.T) {
	p, _ := newTestPlayer()

	detaches := 0
	r := rig.NewRig(
		rig.WithJoints("RootJoint"),
		rig.WithDetachFunc(func() { detaches++ }),
	)

	tr := &track.Track{Keyframes: map[float32]map[string]any{
		0:  torsoKeyframe(0, false, 0),
		10: torsoKeyframe(10, false, 0),
	}}

	p.Play(tr, r)
	if detaches != 1 {
		t.Errorf("detaches after first Play = %d, want 1", detaches)
	}

	p.Play(tr, r) // re-entrant Play: implicit Stop, then detach again
	if detaches != 2 {
		t.Errorf("detaches after second Play = %d, want 2", detaches)
	}
}

func TestPlayer_StopClearsSession(t *testing.T) {
	p, sched := newTestPlayer()

	trA := &track.Track{Keyframes: map[float32]map[string]any{
		0:  torsoKeyframe(0, false, 0),
		10: torsoKeyframe(10, false, 0),
	}}
	rigA := rig.NewRig(rig.WithJoints("RootJoint"))

	p.Play(trA, rigA)
	sched.Step(5)
	p.Stop()

	if p.Playing() {
		t.Fatal("expected player to be stopped")
	}
	if p.Time() != 0 || p.Speed() != 0 {
		t.Errorf("Time/Speed after Stop = %v/%v, want 0/0", p.Time(), p.Speed())
	}

	// Frames delivered while stopped must not touch the old rig.
	jA, _ := rigA.FindJoint("RootJoint")
	before := jA.Transform()
	sched.Step(1)
	if got := jA.Transform(); got != before {
		t.Errorf("old rig joint changed after Stop: %v != %v", got, before)
	}

	// A subsequent Play derives everything from the new track only.
	trB := &track.Track{Keyframes: map[float32]map[string]any{
		0: torsoKeyframe(0, true, 0),
		4: torsoKeyframe(0, true, 8),
	}}
	rigB := rig.NewRig(rig.WithJoints("RootJoint", "Neck"))

	p.Play(trB, rigB)
	sched.Step(2)

	neckB, _ := rigB.FindJoint("Neck")
	if got := neckB.Transform().Position[0]; !approx(got, 4, 1e-4) {
		t.Errorf("new session Neck position.x = %v, want 4", got)
	}
	if got := jA.Transform(); got != before {
		t.Errorf("old rig joint changed during new session: %v != %v", got, before)
	}
}

func TestPlayer_StopIdempotent(t *testing.T) {
	p, _ := newTestPlayer()
	p.Stop()
	p.Stop()
	if p.Playing() {
		t.Error("expected stopped player")
	}
}

func TestPlayer_ReentrantPlaySingleCallback(t *testing.T) {
	p, sched := newTestPlayer()

	tr := &track.Track{Keyframes: map[float32]map[string]any{
		0:  torsoKeyframe(0, false, 0),
		10: torsoKeyframe(10, false, 0),
	}}
	r := rig.NewRig(rig.WithJoints("RootJoint"))

	p.Play(tr, r)
	p.Play(tr, r)

	// Were the superseded session's callback still registered, time would
	// advance twice per frame.
	sched.Step(3)
	if got := p.Time(); !approx(got, 3, 1e-4) {
		t.Errorf("Time after one frame = %v, want 3", got)
	}
}

func TestPlayer_NilArgumentsNoOp(t *testing.T) {
	p, sched := newTestPlayer()

	p.Play(nil, rig.NewRig())
	if p.Playing() {
		t.Error("Play(nil track) must not start a session")
	}

	p.Play(&track.Track{}, nil)
	if p.Playing() {
		t.Error("Play(nil rig) must not start a session")
	}

	sched.Step(1)
}

func TestNewPlayer_RequiresScheduler(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected NewPlayer(nil) to panic")
		}
	}()
	NewPlayer(nil)
}
