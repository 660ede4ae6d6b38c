package game

import (
	"log"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/paolovsrl/game-activity-opengl-test/internal/graphics"
	"github.com/paolovsrl/game-activity-opengl-test/internal/input"
	"github.com/paolovsrl/game-activity-opengl-test/internal/profiling"
)

// App drives the cooperative frame loop on the GL thread: poll events,
// hand the input buffer to the renderer, render, then pace to the
// configured frame rate.
type App struct {
	window     *glfw.Window
	buffer     *input.Buffer
	renderer   *graphics.Renderer
	fpsLimiter *FPSLimiter
}

func NewApp(window *glfw.Window, buffer *input.Buffer, renderer *graphics.Renderer) *App {
	return &App{
		window:     window,
		buffer:     buffer,
		renderer:   renderer,
		fpsLimiter: NewFPSLimiter(),
	}
}

// Run blocks until the window should close.
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now()

	glfw.PollEvents()

	// Escape quits; everything else is the renderer's to consume.
	_, keys := a.buffer.Events()
	for _, ev := range keys {
		if ev.Action == input.KeyDown && ev.Code == int(glfw.KeyEscape) {
			a.window.SetShouldClose(true)
		}
	}

	a.renderer.HandleInput(a.buffer)
	a.renderer.Render()

	// Check if the frame took too long (> 16ms)
	processingDuration := time.Since(startTick)
	if processingDuration > 16*time.Millisecond {
		log.Printf("Slow frame: %v. Top tasks: %s", processingDuration, profiling.TopN(5))
	}

	a.fpsLimiter.Wait()
}
