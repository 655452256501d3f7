package scheduler

import "sync"

// SchedulerBackendType identifies the frame source used by a Scheduler.
type SchedulerBackendType int

const (
	// BackendTypeManual delivers frames only when the host calls Step,
	// for integration into an existing game loop (and for tests).
	BackendTypeManual SchedulerBackendType = iota

	// BackendTypeTicker delivers frames from an internal fixed-rate
	// time.Ticker loop started by Run.
	BackendTypeTicker

	// BackendTypeGLFW delivers frames from a GLFW window message pump
	// started by Run, for hosts whose frame clock is the windowing system.
	BackendTypeGLFW
)

// SchedulerBackend is the interface all frame-source backends implement.
// Methods that do not apply to a given backend type are implemented as no-ops:
// Step no-ops on ticker and GLFW backends, and Run is a no-op on the manual
// backend.
type SchedulerBackend interface {
	// Register adds a per-frame callback and returns its handle.
	Register(callback func(deltaTime float32)) uint64

	// Deregister removes a previously registered callback by handle.
	Deregister(id uint64)

	// Step delivers one frame with the given delta time (manual backend only).
	Step(deltaTime float32)

	// Run blocks delivering frames until Stop is called.
	Run() error

	// Stop signals the frame loop to exit. Safe to call multiple times.
	Stop()

	// SetTickRate sets the frame rate in frames per second (ticker backend only).
	SetTickRate(fps float64)

	// SetFrameLimit caps the frame rate in frames per second (GLFW backend only; 0 = uncapped).
	SetFrameLimit(fps float64)

	// SetProfiling enables or disables per-frame profiler output during Run.
	SetProfiling(enabled bool)

	// SetWindowTitle sets the pump window's title (GLFW backend only).
	SetWindowTitle(title string)
}

// callbackRegistry is the callback bookkeeping shared by every backend.
// Dispatch snapshots the callback set under the lock and invokes it unlocked,
// so a callback may safely Register or Deregister (including itself) mid-frame.
type callbackRegistry struct {
	mu        *sync.Mutex
	callbacks map[uint64]func(deltaTime float32)
	nextID    uint64
}

func newCallbackRegistry() callbackRegistry {
	return callbackRegistry{
		mu:        &sync.Mutex{},
		callbacks: make(map[uint64]func(deltaTime float32)),
		nextID:    1,
	}
}

func (r *callbackRegistry) Register(callback func(deltaTime float32)) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	r.callbacks[id] = callback
	return id
}

func (r *callbackRegistry) Deregister(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.callbacks, id)
}

func (r *callbackRegistry) dispatch(deltaTime float32) {
	r.mu.Lock()
	snapshot := make([]func(deltaTime float32), 0, len(r.callbacks))
	for _, cb := range r.callbacks {
		snapshot = append(snapshot, cb)
	}
	r.mu.Unlock()

	for _, cb := range snapshot {
		cb(deltaTime)
	}
}
