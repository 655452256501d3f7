package scheduler

// manualSchedulerBackend delivers a frame only when the host calls Step,
// so playback can ride an existing game loop. Run and the rate setters no-op.
type manualSchedulerBackend struct {
	callbackRegistry
}

var _ SchedulerBackend = &manualSchedulerBackend{}

// newManualSchedulerBackend creates a new host-stepped scheduler backend.
//
// Returns:
//   - SchedulerBackend: the manual backend
func newManualSchedulerBackend() SchedulerBackend {
	return &manualSchedulerBackend{
		callbackRegistry: newCallbackRegistry(),
	}
}

func (m *manualSchedulerBackend) Step(deltaTime float32) {
	m.dispatch(deltaTime)
}

func (m *manualSchedulerBackend) Run() error {
	return nil
}

func (m *manualSchedulerBackend) Stop() {}

func (m *manualSchedulerBackend) SetTickRate(fps float64) {}

func (m *manualSchedulerBackend) SetFrameLimit(fps float64) {}

func (m *manualSchedulerBackend) SetProfiling(enabled bool) {}

func (m *manualSchedulerBackend) SetWindowTitle(title string) {}
