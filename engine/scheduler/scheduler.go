// package scheduler provides the per-frame scheduling primitive that drives
// playback: a stream of (elapsedSeconds) deliveries to registered callbacks,
// sourced from a host-stepped loop, an internal ticker, or a GLFW window pump.
package scheduler

// scheduler is the implementation of the Scheduler interface.
type scheduler struct {
	backendType SchedulerBackendType
	backend     SchedulerBackend
}

// Scheduler delivers an elapsed-time value once per frame to every registered
// callback. Frame delivery is strictly sequential: callbacks for one frame
// complete before the next frame is dispatched, so consumers need no
// cross-frame synchronization of their own.
//
// Methods specific to a particular backend type no-op when called on a
// Scheduler using a different backend: Step no-ops on ticker and GLFW
// backends, and Run returns immediately on the manual backend.
type Scheduler interface {
	// Register adds a per-frame callback.
	//
	// Parameters:
	//   - callback: function receiving the frame's delta time in seconds
	//
	// Returns:
	//   - uint64: a handle for deregistering the callback
	Register(callback func(deltaTime float32)) uint64

	// Deregister removes a previously registered callback.
	// Unknown handles are ignored.
	//
	// Parameters:
	//   - id: the handle returned by Register
	Deregister(id uint64)

	// Step delivers a single frame with the given delta time.
	// No-op on ticker and GLFW backends.
	//
	// Parameters:
	//   - deltaTime: elapsed time since the previous frame in seconds
	Step(deltaTime float32)

	// Run starts the frame loop and blocks until Stop is called (or, for the
	// GLFW backend, until the window closes). No-op on the manual backend.
	//
	// Returns:
	//   - error: error if the frame source could not be initialized
	Run() error

	// Stop signals the frame loop to exit. Safe to call multiple times.
	Stop()

	// BackendType returns the type of backend this scheduler is using.
	//
	// Returns:
	//   - SchedulerBackendType: the backend type
	BackendType() SchedulerBackendType
}

var _ Scheduler = &scheduler{}

// NewScheduler creates a new Scheduler instance with the specified backend
// type. The backend is created based on the type and then configured using
// the provided options.
//
// Parameters:
//   - backendType: the frame source to use (BackendTypeManual, BackendTypeTicker, or BackendTypeGLFW)
//   - options: variadic list of SchedulerBuilderOption functions to configure the scheduler
//
// Returns:
//   - Scheduler: a new instance of Scheduler configured with the specified backend and options
func NewScheduler(backendType SchedulerBackendType, options ...SchedulerBuilderOption) Scheduler {
	s := &scheduler{
		backendType: backendType,
	}
	switch backendType {
	case BackendTypeTicker:
		s.backend = newTickerSchedulerBackend()
	case BackendTypeGLFW:
		s.backend = newGLFWSchedulerBackend()
	case BackendTypeManual:
		fallthrough
	default:
		s.backend = newManualSchedulerBackend()
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

func (s *scheduler) Register(callback func(deltaTime float32)) uint64 {
	return s.backend.Register(callback)
}

func (s *scheduler) Deregister(id uint64) {
	s.backend.Deregister(id)
}

func (s *scheduler) Step(deltaTime float32) {
	s.backend.Step(deltaTime)
}

func (s *scheduler) Run() error {
	return s.backend.Run()
}

func (s *scheduler) Stop() {
	s.backend.Stop()
}

func (s *scheduler) BackendType() SchedulerBackendType {
	return s.backendType
}
