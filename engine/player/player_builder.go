package player

import (
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/rig-go/engine/rig"
	"github.com/Carmen-Shannon/rig-go/engine/scheduler"
	"github.com/Carmen-Shannon/rig-go/engine/track"
)

// PlayerBuilderOption is a functional option for configuring a Player during
// construction. Use the With* functions to create options.
type PlayerBuilderOption func(*player)

// WithFlattenWorkers sets the number of pool workers used to flatten
// keyframes at Play time. Values <= 0 are treated as the default
// (NumCPU - 1, minimum 1).
//
// Parameters:
//   - workers: the worker count for the flatten pool
//
// Returns:
//   - PlayerBuilderOption: option function to apply
func WithFlattenWorkers(workers int) PlayerBuilderOption {
	return func(p *player) {
		if workers > 0 {
			p.flattenWorkers = workers
		}
	}
}

// WithJointResolver replaces the joint mapper used when flattening keyframe
// hierarchies. The default is the built-in humanoid topology tables
// (rig.ResolveJoint); hosts with custom rig layouts supply their own.
//
// Parameters:
//   - resolve: the joint mapper for (parent, child) body-part pairs
//
// Returns:
//   - PlayerBuilderOption: option function to apply
func WithJointResolver(resolve track.JointResolver) PlayerBuilderOption {
	return func(p *player) {
		if resolve != nil {
			p.resolve = resolve
		}
	}
}

// NewPlayer creates a new Player bound to a scheduler. The scheduler is
// required — it delivers the per-frame callbacks that advance playback —
// and NewPlayer panics if it is nil.
//
// Parameters:
//   - sched: the per-frame scheduler to register with while playing (must not be nil)
//   - options: functional options to further configure the player
//
// Returns:
//   - Player: the newly created player
func NewPlayer(sched scheduler.Scheduler, options ...PlayerBuilderOption) Player {
	if sched == nil {
		panic("player: NewPlayer requires a non-nil Scheduler")
	}

	p := &player{
		mu:             &sync.Mutex{},
		sched:          sched,
		resolve:        rig.ResolveJoint,
		flattenWorkers: max(runtime.NumCPU()-1, 1),
	}

	for _, opt := range options {
		opt(p)
	}

	// Initialize the flatten pool after options so WithFlattenWorkers can
	// override the default. Queue size of 256 accommodates typical keyframe
	// counts with headroom.
	p.flattenPool = worker.NewDynamicWorkerPool(p.flattenWorkers, 256, 1*time.Second)

	return p
}
