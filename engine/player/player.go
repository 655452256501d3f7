// package player implements keyframe playback: it drives a rig's joints over
// time by interpolating between the two keyframes bracketing the current
// playback position, looping until stopped.
package player

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/rig-go/engine/rig"
	"github.com/Carmen-Shannon/rig-go/engine/scheduler"
	"github.com/Carmen-Shannon/rig-go/engine/track"
)

// session holds the mutable runtime state of one active Play call.
// Created by Play, advanced every frame by tick, and reset to the zero value
// by Stop (or by the implicit Stop inside a superseding Play).
type session struct {
	rig     rig.Rig
	track   *track.Track
	playing bool

	// time is the playback position in seconds, kept within [0, length).
	time  float32
	speed float32

	// joints caches the live joint handles resolved at Play time from the
	// earliest keyframe's joint set. Joints that first appear in later
	// keyframes are never cached and never animated.
	joints map[string]rig.Joint

	// timestamps holds the track's distinct keyframe times, ascending.
	timestamps []float32

	// poses maps each timestamp to its flattened joint → transform table.
	poses map[float32]track.Pose
}

// player is the implementation of the Player interface.
type player struct {
	mu *sync.Mutex

	sched      scheduler.Scheduler
	callbackID uint64

	resolve track.JointResolver

	// flattenPool manages a bounded set of reusable goroutines for the
	// once-per-Play keyframe flattening. Workers persist across sessions,
	// avoiding per-Play goroutine spawn/teardown overhead.
	flattenPool    worker.DynamicWorkerPool
	flattenWorkers int // fixed at construction

	session session
}

// Player drives one animation session at a time against a live rig.
// Starting a new Play implicitly stops any prior session first; there is
// never more than one active session per Player instance.
//
// All anomalies (empty tracks, joints missing from the rig or from one side
// of a bracket, malformed hierarchy entries) degrade to "this joint/keyframe
// is not animated this tick" — no method returns or raises an error.
type Player interface {
	// Play starts playback of a track against a rig, stopping any session
	// already in progress. The rig's default controller is detached, every
	// keyframe is flattened, joint handles are resolved from the earliest
	// keyframe's joint set, and a per-frame callback is registered with the
	// scheduler. Playback loops until Stop.
	//
	// Parameters:
	//   - t: the animation track to play
	//   - r: the live rig whose joints will be driven
	Play(t *track.Track, r rig.Rig)

	// Stop ends the current session and clears all of its state: rig and
	// track references, joint cache, timestamps, and flattened poses.
	// Idempotent; stopping an already stopped player is a no-op.
	Stop()

	// Playing reports whether a session is currently active.
	//
	// Returns:
	//   - bool: true while a session is playing
	Playing() bool

	// Time returns the current playback position in seconds.
	//
	// Returns:
	//   - float32: the playback position, within [0, track length)
	Time() float32

	// Speed returns the active session's playback speed multiplier.
	//
	// Returns:
	//   - float32: the speed multiplier, or 0 when stopped
	Speed() float32
}

var _ Player = &player{}

func (p *player) Play(t *track.Track, r rig.Rig) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopSession()

	if t == nil || r == nil {
		return
	}

	p.session.rig = r
	p.session.track = t
	p.session.time = 0
	p.session.speed = t.PlaybackSpeed()

	// The engine needs exclusive write access to the joints for the session.
	r.DetachDefaultController()

	timestamps := t.Timestamps()
	p.session.timestamps = timestamps
	p.session.poses = p.flattenAll(t, timestamps)

	// Resolve the joint cache from the earliest keyframe's joint set only.
	// Joints the rig lookup misses are simply absent; later ticks skip them.
	joints := make(map[string]rig.Joint)
	if len(timestamps) > 0 {
		for name := range p.session.poses[timestamps[0]] {
			if j, ok := r.FindJoint(name); ok {
				joints[name] = j
			}
		}
	}
	p.session.joints = joints

	p.session.playing = true
	p.callbackID = p.sched.Register(p.tick)
}

func (p *player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopSession()
}

// stopSession deregisters the frame callback and resets the session to the
// zero value. Callers must hold p.mu.
func (p *player) stopSession() {
	if p.session.playing {
		p.sched.Deregister(p.callbackID)
		p.callbackID = 0
	}
	p.session = session{}
}

func (p *player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.session.playing
}

func (p *player) Time() float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.session.time
}

func (p *player) Speed() float32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.session.speed
}

// flattenAll flattens every keyframe of the track into its per-timestamp
// pose table. Each keyframe flattens independently, so the work is submitted
// to the flatten pool with a WaitGroup barrier; results land in a slice
// indexed per timestamp, needing no locking. Callers must hold p.mu.
func (p *player) flattenAll(t *track.Track, timestamps []float32) map[float32]track.Pose {
	results := make([]track.Pose, len(timestamps))

	var wg sync.WaitGroup
	for i, ts := range timestamps {
		wg.Add(1)
		idx, stamp := i, ts
		p.flattenPool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				results[idx] = track.Flatten(t.Keyframes[stamp], p.resolve)
				return nil, nil
			},
		})
	}
	wg.Wait()

	poses := make(map[float32]track.Pose, len(timestamps))
	for i, ts := range timestamps {
		poses[ts] = results[i]
	}
	return poses
}

// tick advances the session by one frame: advance playback time with
// wrap-around, locate the bracketing keyframe pair, and interpolate every
// cached joint that both bracket poses carry.
func (p *player) tick(deltaTime float32) {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := &p.session
	if !s.playing {
		return
	}

	// Fewer than two distinct timestamps leaves no span to interpolate
	// across; the frame is a no-op rather than a division by zero.
	if len(s.timestamps) < 2 {
		return
	}

	length := s.timestamps[len(s.timestamps)-1]
	if length <= 0 {
		return
	}

	s.time = float32(math.Mod(float64(s.time+deltaTime*s.speed), float64(length)))
	if s.time < 0 {
		s.time += length
	}

	first := s.timestamps[0]
	var t0, t1, alpha float32
	switch {
	case s.time >= length:
		// Transient float rounding at the wrap boundary: snap to the start
		// of the loop rather than interpolating backward.
		t0, t1, alpha = length, first, 0
	case s.time < first:
		t0, t1, alpha = first, s.timestamps[1], 0
	default:
		for i := 0; i < len(s.timestamps)-1; i++ {
			if s.time >= s.timestamps[i] && s.time < s.timestamps[i+1] {
				t0, t1 = s.timestamps[i], s.timestamps[i+1]
				alpha = (s.time - t0) / (t1 - t0)
				break
			}
		}
	}

	fromPose := s.poses[t0]
	toPose := s.poses[t1]

	for name, joint := range s.joints {
		from, okFrom := fromPose[name]
		to, okTo := toPose[name]
		if !okFrom || !okTo {
			// The joint exists in only one side of the bracket; leave its
			// previous transform in place for this frame.
			continue
		}
		joint.SetTransform(from.Lerp(to, alpha))
	}
}
