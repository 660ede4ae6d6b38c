package main

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/paolovsrl/game-activity-opengl-test/internal/assets"
	"github.com/paolovsrl/game-activity-opengl-test/internal/config"
	"github.com/paolovsrl/game-activity-opengl-test/internal/game"
	"github.com/paolovsrl/game-activity-opengl-test/internal/graphics"
	"github.com/paolovsrl/game-activity-opengl-test/internal/input"
)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		panic(err)
	}

	buffer := input.NewBuffer()
	buffer.Attach(window)

	loader := assets.NewLoader(config.AssetRoot)
	renderer, err := graphics.NewRenderer(window, loader)
	if err != nil {
		panic(err)
	}
	defer renderer.Destroy()

	game.NewApp(window, buffer, renderer).Run()
}
