package scheduler

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/Carmen-Shannon/rig-go/engine/profiler"
)

// glfwSchedulerBackend delivers frames from a GLFW window message pump, for
// hosts whose frame clock is the windowing system rather than an internal
// timer. Each loop iteration polls pending window events and dispatches one
// frame with a glfw.GetTime-derived delta.
type glfwSchedulerBackend struct {
	callbackRegistry

	title      string
	frameLimit time.Duration // minimum frame duration; 0 = uncapped

	quitChannel chan struct{}
	quitOnce    *sync.Once

	profiler         *profiler.Profiler
	profilingEnabled bool
}

var _ SchedulerBackend = &glfwSchedulerBackend{}

// newGLFWSchedulerBackend creates a new window-pumped scheduler backend.
//
// Returns:
//   - SchedulerBackend: the GLFW backend
func newGLFWSchedulerBackend() SchedulerBackend {
	return &glfwSchedulerBackend{
		callbackRegistry: newCallbackRegistry(),
		title:            "rig-go playback",
		quitChannel:      make(chan struct{}),
		quitOnce:         &sync.Once{},
		profiler:         profiler.NewProfiler(),
	}
}

func (g *glfwSchedulerBackend) Step(deltaTime float32) {}

// Run creates the pump window and loops until Stop is called or the window
// closes. GLFW requires its event loop to stay on one OS thread, so the
// calling goroutine is locked for the duration.
//
// GLFW reference: https://www.glfw.org/docs/latest/window_guide.html
// go-gl/glfw: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw
func (g *glfwSchedulerBackend) Run() error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %v", err)
	}
	defer glfw.Terminate()

	// The pump window is only a frame clock; no GL context is needed.
	// Reference: https://www.glfw.org/docs/latest/window_guide.html#window_hints_ctx
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(320, 240, g.title, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create GLFW window: %v", err)
	}
	defer win.Destroy()

	lastFrame := glfw.GetTime()

	for !win.ShouldClose() {
		select {
		case <-g.quitChannel:
			return nil
		default:
		}

		glfw.PollEvents()

		now := glfw.GetTime()
		dt := float32(now - lastFrame)
		lastFrame = now

		g.dispatch(dt)

		if g.profilingEnabled {
			g.profiler.Tick()
		}

		// Frame rate limiting
		if g.frameLimit > 0 {
			elapsed := time.Duration((glfw.GetTime() - now) * float64(time.Second))
			if remaining := g.frameLimit - elapsed; remaining > 0 {
				time.Sleep(remaining)
			}
		}
	}

	return nil
}

// Stop closes the quit channel to signal the Run loop to exit.
// Uses sync.Once so repeated calls are no-ops.
func (g *glfwSchedulerBackend) Stop() {
	g.quitOnce.Do(func() {
		close(g.quitChannel)
	})
}

func (g *glfwSchedulerBackend) SetTickRate(fps float64) {}

func (g *glfwSchedulerBackend) SetFrameLimit(fps float64) {
	if fps <= 0 {
		g.frameLimit = 0
		return
	}
	g.frameLimit = time.Second / time.Duration(fps)
}

func (g *glfwSchedulerBackend) SetProfiling(enabled bool) {
	g.profilingEnabled = enabled
}

func (g *glfwSchedulerBackend) SetWindowTitle(title string) {
	g.title = title
}
