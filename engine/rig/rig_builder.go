package rig

import (
	"sync"

	"github.com/Carmen-Shannon/rig-go/common"
)

// RigBuilderOption is a functional option for configuring an in-memory rig.
// Use the With* functions to create options.
type RigBuilderOption func(r *memoryRig)

// WithJoints registers named joints on the rig, each starting at the
// identity transform.
//
// Parameters:
//   - names: the joint names to register
//
// Returns:
//   - RigBuilderOption: option function to apply
func WithJoints(names ...string) RigBuilderOption {
	return func(r *memoryRig) {
		for _, name := range names {
			r.joints[name] = &memoryJoint{
				mu:        r.mu,
				name:      name,
				transform: common.IdentityTransform(),
			}
		}
	}
}

// WithJointTransform registers a named joint with an initial transform,
// replacing any joint of the same name already registered.
//
// Parameters:
//   - name: the joint name to register
//   - t: the joint's initial transform
//
// Returns:
//   - RigBuilderOption: option function to apply
func WithJointTransform(name string, t common.Transform) RigBuilderOption {
	return func(r *memoryRig) {
		r.joints[name] = &memoryJoint{
			mu:        r.mu,
			name:      name,
			transform: t,
		}
	}
}

// WithDetachFunc sets a hook invoked when DetachDefaultController is called,
// letting a host integration tear down its own default animation state.
//
// Parameters:
//   - detach: the hook to invoke (may be nil)
//
// Returns:
//   - RigBuilderOption: option function to apply
func WithDetachFunc(detach func()) RigBuilderOption {
	return func(r *memoryRig) {
		r.detachFunc = detach
	}
}

// NewRig creates an in-memory Rig with the specified options.
//
// Parameters:
//   - options: functional options to configure the rig (joints, detach hook)
//
// Returns:
//   - Rig: the configured rig
func NewRig(options ...RigBuilderOption) Rig {
	r := &memoryRig{
		mu:     &sync.Mutex{},
		joints: make(map[string]*memoryJoint),
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}
