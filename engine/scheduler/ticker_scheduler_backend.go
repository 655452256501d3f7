package scheduler

import (
	"sync"
	"time"

	"github.com/Carmen-Shannon/rig-go/engine/profiler"
)

// tickerSchedulerBackend delivers frames from a fixed-rate time.Ticker loop.
// Delta times are measured with wall-clock reads rather than assumed from the
// tick rate, so a delayed tick still reports the real elapsed time.
type tickerSchedulerBackend struct {
	callbackRegistry

	tickRate time.Duration

	quitChannel chan struct{}
	quitOnce    *sync.Once

	profiler         *profiler.Profiler
	profilingEnabled bool
}

var _ SchedulerBackend = &tickerSchedulerBackend{}

// newTickerSchedulerBackend creates a new ticker-driven scheduler backend
// with a default rate of 60 frames per second.
//
// Returns:
//   - SchedulerBackend: the ticker backend
func newTickerSchedulerBackend() SchedulerBackend {
	return &tickerSchedulerBackend{
		callbackRegistry: newCallbackRegistry(),
		tickRate:         time.Second / 60,
		quitChannel:      make(chan struct{}),
		quitOnce:         &sync.Once{},
		profiler:         profiler.NewProfiler(),
	}
}

func (t *tickerSchedulerBackend) Step(deltaTime float32) {}

func (t *tickerSchedulerBackend) Run() error {
	ticker := time.NewTicker(t.tickRate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-t.quitChannel:
			return nil
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			t.dispatch(dt)

			if t.profilingEnabled {
				t.profiler.Tick()
			}
		}
	}
}

// Stop closes the quit channel to signal the Run loop to exit.
// Uses sync.Once so repeated calls are no-ops.
func (t *tickerSchedulerBackend) Stop() {
	t.quitOnce.Do(func() {
		close(t.quitChannel)
	})
}

func (t *tickerSchedulerBackend) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	t.tickRate = time.Second / time.Duration(fps)
}

func (t *tickerSchedulerBackend) SetFrameLimit(fps float64) {}

func (t *tickerSchedulerBackend) SetProfiling(enabled bool) {
	t.profilingEnabled = enabled
}

func (t *tickerSchedulerBackend) SetWindowTitle(title string) {}
