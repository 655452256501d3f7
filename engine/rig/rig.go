package rig

import (
	"sync"

	"github.com/Carmen-Shannon/rig-go/common"
)

// Joint is a live handle to a single driven connection in a rig.
// The playback engine writes a joint's transform once per tick while a
// session is playing; hosts read it back when posing the character.
type Joint interface {
	// Name returns the joint's identifier.
	//
	// Returns:
	//   - string: the joint name
	Name() string

	// Transform returns the joint's current local transform.
	//
	// Returns:
	//   - common.Transform: the transform most recently set on this joint
	Transform() common.Transform

	// SetTransform sets the joint's current local transform.
	//
	// Parameters:
	//   - t: the transform to apply
	SetTransform(t common.Transform)
}

// Rig is an opaque handle to a live character skeleton supplied by the host.
// The playback engine only needs to look joints up by name and to disable
// whatever default controller is currently driving them.
type Rig interface {
	// FindJoint looks up a live joint handle by name.
	// A missing joint is not an error; the engine simply never animates it.
	//
	// Parameters:
	//   - name: the joint name to look up
	//
	// Returns:
	//   - Joint: the live joint handle, or nil when not found
	//   - bool: true if the joint exists in this rig
	FindJoint(name string) (Joint, bool)

	// DetachDefaultController removes or disables whatever is currently
	// driving this rig's joints, giving the playback engine exclusive write
	// access for the duration of a session. Called once per Play.
	DetachDefaultController()
}

// memoryJoint is the in-memory Joint implementation used by memoryRig.
type memoryJoint struct {
	mu        *sync.Mutex
	name      string
	transform common.Transform
}

var _ Joint = &memoryJoint{}

func (j *memoryJoint) Name() string {
	return j.name
}

func (j *memoryJoint) Transform() common.Transform {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.transform
}

func (j *memoryJoint) SetTransform(t common.Transform) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.transform = t
}

// memoryRig is a self-contained Rig implementation backed by a joint map.
// Hosts with their own skeleton representation implement Rig directly;
// memoryRig serves tests, tools, and simple integrations.
type memoryRig struct {
	mu         *sync.Mutex
	joints     map[string]*memoryJoint
	detachFunc func()
	detached   bool
}

var _ Rig = &memoryRig{}

func (r *memoryRig) FindJoint(name string) (Joint, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.joints[name]
	if !ok {
		return nil, false
	}
	return j, true
}

func (r *memoryRig) DetachDefaultController() {
	r.mu.Lock()
	detach := r.detachFunc
	r.detached = true
	r.mu.Unlock()

	if detach != nil {
		detach()
	}
}

// DefaultControllerDetached reports whether DetachDefaultController has been
// called on this rig. Only available on rigs created by NewRig.
//
// Returns:
//   - bool: true once DetachDefaultController has run at least once
func (r *memoryRig) DefaultControllerDetached() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.detached
}
