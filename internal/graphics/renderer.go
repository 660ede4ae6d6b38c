package graphics

import (
	"fmt"
	"log"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/paolovsrl/game-activity-opengl-test/internal/assets"
	"github.com/paolovsrl/game-activity-opengl-test/internal/config"
	"github.com/paolovsrl/game-activity-opengl-test/internal/input"
	"github.com/paolovsrl/game-activity-opengl-test/internal/profiling"
)

// Shader sources are small enough to keep inline rather than shipping
// them as assets.
const textureVertexSource = `#version 410 core
in vec3 inPosition;
in vec2 inUV;

out vec2 fragUV;

uniform mat4 uProjection;

void main() {
	fragUV = inUV;
	gl_Position = uProjection * vec4(inPosition, 1.0);
}
`

const textureFragmentSource = `#version 410 core
in vec2 fragUV;

uniform sampler2D uTexture;

out vec4 outColor;

void main() {
	outColor = texture(uTexture, fragUV);
}
`

const solidVertexSource = `#version 410 core
in vec3 inPosition;

uniform mat4 uProjection;

void main() {
	gl_Position = uProjection * vec4(inPosition, 1.0);
}
`

const solidFragmentSource = `#version 410 core
out vec4 outColor;

void main() {
	outColor = vec4(1.0, 0.0, 0.0, 1.0);
}
`

const (
	// invalidExtent forces the first updateRenderArea to rebuild the
	// projection before anything is drawn.
	invalidExtent int32 = -1

	// Depth seeding for spawned quads. Each new model gets a slightly
	// larger z so stacked quads never fight for the same depth.
	depthSeed float32 = 0.0001
	depthStep float32 = 0.00001

	spawnHalfExtent float32 = 0.1
)

// Renderer owns the render surface, the two shader programs, the draw
// lists and the texture cache, and drives the per-frame protocol:
// refresh the render area, rebuild the projection when stale, clear,
// draw the solid list then the textured list, present.
type Renderer struct {
	window *glfw.Window

	textureProgram *Program
	solidProgram   *Program

	width                  int32
	height                 int32
	needsProjectionRebuild bool

	// Solid models draw first, textured models second. The order is a
	// correctness requirement for alpha blending.
	solidModels    []*Model
	texturedModels []*Model

	textures *textureCache

	depthCounter float32
}

// NewRenderer initializes the GL bindings against the window's current
// context, compiles both required programs, establishes the fixed
// blending/depth pipeline state and creates the demo content. Failure to
// build either program is fatal to initialization.
func NewRenderer(window *glfw.Window, loader *assets.Loader) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initialize OpenGL bindings: %w", err)
	}

	logGLInfo()

	r := &Renderer{
		window:       window,
		width:        invalidExtent,
		height:       invalidExtent,
		depthCounter: depthSeed,
	}
	r.textures = newTextureCache(func(key string) (*TextureAsset, error) {
		return loadTextureAsset(loader, key)
	})

	var err error
	r.textureProgram, err = LoadProgram(
		textureVertexSource, textureFragmentSource,
		"inPosition", "inUV", "uProjection")
	if err != nil {
		return nil, fmt.Errorf("texture program: %w", err)
	}

	r.solidProgram, err = LoadProgram(
		solidVertexSource, solidFragmentSource,
		"inPosition", "", "uProjection")
	if err != nil {
		r.textureProgram.Destroy()
		return nil, fmt.Errorf("solid-color program: %w", err)
	}

	cc := config.GetClearColor()
	gl.ClearColor(cc[0], cc[1], cc[2], cc[3])

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.DepthMask(true)
	log.Printf("Depth testing enabled.")

	r.createBackground()
	if err := r.createDemoModel(); err != nil {
		// Missing demo texture is recoverable; the loop still runs.
		log.Printf("Could not create demo model: %v", err)
	}

	checkGLError("renderer init")
	return r, nil
}

// Render draws one frame and presents it.
func (r *Renderer) Render() {
	defer profiling.Track("renderer.Render")()

	// The drawable can resize without any other notification, so the
	// size check has to run every frame.
	r.updateRenderArea()

	if r.needsProjectionRebuild {
		projection := buildProjection(r.width, r.height)
		for _, p := range []*Program{r.solidProgram, r.textureProgram} {
			p.Activate()
			p.SetProjectionMatrix(projection)
			p.Deactivate()
		}
		r.needsProjectionRebuild = false
	}

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if len(r.solidModels) > 0 {
		r.solidProgram.Activate()
		for _, m := range r.solidModels {
			r.solidProgram.DrawModel(m)
		}
		r.solidProgram.Deactivate()
	}

	// Textured content composites over the solid background.
	if len(r.texturedModels) > 0 {
		r.textureProgram.Activate()
		for _, m := range r.texturedModels {
			r.textureProgram.DrawModel(m)
		}
		r.textureProgram.Deactivate()
	}

	// Present; an implicit flush. A lost surface here means the context
	// is unusable.
	if r.window == nil {
		log.Fatalf("renderer: presenting without a surface")
	}
	r.window.SwapBuffers()
}

// updateRenderArea queries the drawable size and, on change, updates the
// viewport and flags the projection for a lazy rebuild.
func (r *Renderer) updateRenderArea() {
	w, h := r.window.GetFramebufferSize()
	if r.noteSize(int32(w), int32(h)) {
		gl.Viewport(0, 0, r.width, r.height)
	}
}

// noteSize records new drawable dimensions. It returns true and flags the
// projection for rebuild only when the size actually changed.
func (r *Renderer) noteSize(width, height int32) bool {
	if width == r.width && height == r.height {
		return false
	}
	r.width = width
	r.height = height
	r.needsProjectionRebuild = true
	return true
}

// HandleInput consumes all events queued since the previous frame and
// clears the buffer. Pointer down spawns a textured quad at the touch
// position; everything else is observed for diagnostics only.
func (r *Renderer) HandleInput(buffer *input.Buffer) {
	defer profiling.Track("renderer.HandleInput")()

	pointers, keys := buffer.Events()

	for _, ev := range pointers {
		switch ev.Action {
		case input.PointerDown, input.SecondaryPointerDown:
			log.Printf("Pointer %d down at (%.0f, %.0f)", ev.ID, ev.X, ev.Y)
			if err := r.spawnQuadAt(ev.X, ev.Y); err != nil {
				log.Printf("Skipping quad at (%.0f, %.0f): %v", ev.X, ev.Y, err)
			}
		case input.PointerUp, input.SecondaryPointerUp, input.PointerCancel:
			log.Printf("Pointer %d up at (%.0f, %.0f)", ev.ID, ev.X, ev.Y)
		case input.PointerMove:
			log.Printf("Pointer %d move to (%.0f, %.0f)", ev.ID, ev.X, ev.Y)
		default:
			log.Printf("Unknown pointer action: %d", ev.Action)
		}
	}

	for _, ev := range keys {
		switch ev.Action {
		case input.KeyDown:
			log.Printf("Key %d down", ev.Code)
		case input.KeyUp:
			log.Printf("Key %d up", ev.Code)
		case input.KeyRepeat:
			log.Printf("Key %d repeat", ev.Code)
		default:
			log.Printf("Unknown key action: %d", ev.Action)
		}
	}

	buffer.Clear()
}

// spawnQuadAt creates a small textured quad centered at the world-space
// position of the given surface pixel coordinates. A texture load
// failure skips the model; the rest of the frame proceeds.
func (r *Renderer) spawnQuadAt(x, y float32) error {
	tex, err := r.textures.getOrLoad(config.GetSpawnTexture())
	if err != nil {
		return err
	}

	wx, wy := worldFromScreen(x, y, r.width, r.height)
	model, err := newQuad(wx, wy, r.nextDepth(), spawnHalfExtent, tex)
	if err != nil {
		return err
	}

	r.texturedModels = append(r.texturedModels, model)
	return nil
}

// nextDepth returns the current depth value and advances the counter so
// no two spawned models share a depth.
func (r *Renderer) nextDepth() float32 {
	d := r.depthCounter
	r.depthCounter += depthStep
	return d
}

// createBackground adds the full-height solid quad that everything else
// composites over.
func (r *Renderer) createBackground() {
	vertices := []Vertex{
		{Pos: mgl32.Vec3{1.25, 2, 0}},
		{Pos: mgl32.Vec3{-1.25, 2, 0}},
		{Pos: mgl32.Vec3{-1.25, -2, 0}},
		{Pos: mgl32.Vec3{1.25, -2, 0}},
	}

	model, err := NewModel(vertices, quadIndices(), nil)
	if err != nil {
		log.Printf("background model: %v", err)
		return
	}
	r.solidModels = append(r.solidModels, model)
}

// createDemoModel adds one textured quad in the center of the world.
func (r *Renderer) createDemoModel() error {
	tex, err := r.textures.getOrLoad(config.GetSpawnTexture())
	if err != nil {
		return err
	}

	model, err := newQuad(0, 0, r.nextDepth(), 1, tex)
	if err != nil {
		return err
	}

	r.texturedModels = append(r.texturedModels, model)
	return nil
}

// Destroy releases all GPU resources in dependency order: models, then
// programs, then cached textures. Safe to call more than once and after
// partial initialization.
func (r *Renderer) Destroy() {
	for _, m := range r.texturedModels {
		m.Destroy()
	}
	for _, m := range r.solidModels {
		m.Destroy()
	}
	r.texturedModels = nil
	r.solidModels = nil

	if r.textureProgram != nil {
		r.textureProgram.Destroy()
		r.textureProgram = nil
	}
	if r.solidProgram != nil {
		r.solidProgram.Destroy()
		r.solidProgram = nil
	}

	if r.textures != nil {
		r.textures.destroyAll()
	}

	r.window = nil
}

func logGLInfo() {
	log.Printf("GL_VENDOR: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	log.Printf("GL_RENDERER: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	log.Printf("GL_VERSION: %s", gl.GoStr(gl.GetString(gl.VERSION)))
	log.Printf("GL_SHADING_LANGUAGE_VERSION: %s", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))
}

// checkGLError drains and logs any pending GL errors under the given
// operation name.
func checkGLError(op string) {
	for e := gl.GetError(); e != gl.NO_ERROR; e = gl.GetError() {
		log.Printf("GL error after %s: 0x%04x", op, e)
	}
}
