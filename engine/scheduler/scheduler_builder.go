package scheduler

// SchedulerBuilderOption is a functional option for configuring a Scheduler
// during construction. Use the With* functions to create options.
type SchedulerBuilderOption func(*scheduler)

// WithTickRate sets the frame rate for the ticker backend in frames per
// second. Values <= 0 are treated as the default (60Hz). No-op on other
// backends.
//
// Parameters:
//   - fps: target frames per second (default 60)
//
// Returns:
//   - SchedulerBuilderOption: option function to apply
func WithTickRate(fps float64) SchedulerBuilderOption {
	return func(s *scheduler) {
		s.backend.SetTickRate(fps)
	}
}

// WithFrameLimit sets an optional frame rate cap for the GLFW backend in
// frames per second. Pass 0 to uncap the loop (default). No-op on other
// backends.
//
// Parameters:
//   - fps: maximum frames per second (0 = uncapped)
//
// Returns:
//   - SchedulerBuilderOption: option function to apply
func WithFrameLimit(fps float64) SchedulerBuilderOption {
	return func(s *scheduler) {
		s.backend.SetFrameLimit(fps)
	}
}

// WithProfiling enables or disables per-frame profiler output while the
// scheduler's Run loop is active.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - SchedulerBuilderOption: option function to apply
func WithProfiling(enabled bool) SchedulerBuilderOption {
	return func(s *scheduler) {
		s.backend.SetProfiling(enabled)
	}
}

// WithWindowTitle sets the pump window's title for the GLFW backend.
// No-op on other backends.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - SchedulerBuilderOption: option function to apply
func WithWindowTitle(title string) SchedulerBuilderOption {
	return func(s *scheduler) {
		s.backend.SetWindowTitle(title)
	}
}
