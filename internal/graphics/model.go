package graphics

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex layout is part of the draw contract: Program.DrawModel assumes
// three position floats followed by two UV floats per vertex.
type Vertex struct {
	Pos mgl32.Vec3
	UV  mgl32.Vec2
}

const (
	floatsPerVertex = 5
	vertexStride    = floatsPerVertex * 4 // bytes
	uvOffset        = 3 * 4               // UV follows the position floats
)

// Model is an indexed triangle list with an optional shared texture.
// A model without a texture renders as solid color through the
// untextured program. Models are appended to one of the renderer's
// draw lists at creation and live until the renderer is destroyed.
type Model struct {
	vertices []Vertex
	indices  []uint16
	texture  *TextureAsset

	vao      uint32
	vbo      uint32
	ebo      uint32
	uploaded bool
}

// NewModel validates that every index references a vertex and returns
// the model. GL objects are created lazily on first draw.
func NewModel(vertices []Vertex, indices []uint16, texture *TextureAsset) (*Model, error) {
	if len(vertices) == 0 {
		return nil, fmt.Errorf("model requires at least one vertex")
	}
	for i, idx := range indices {
		if int(idx) >= len(vertices) {
			return nil, fmt.Errorf("index %d out of range: %d >= %d vertices", i, idx, len(vertices))
		}
	}
	return &Model{vertices: vertices, indices: indices, texture: texture}, nil
}

// Texture returns the shared texture, or nil for solid-color models.
func (m *Model) Texture() *TextureAsset { return m.texture }

// IndexCount returns the number of indices in the triangle list.
func (m *Model) IndexCount() int32 { return int32(len(m.indices)) }

// interleave flattens vertices into the packed float layout the draw
// contract expects.
func interleave(vertices []Vertex) []float32 {
	out := make([]float32, 0, len(vertices)*floatsPerVertex)
	for _, v := range vertices {
		out = append(out, v.Pos.X(), v.Pos.Y(), v.Pos.Z(), v.UV.X(), v.UV.Y())
	}
	return out
}

// upload creates the VAO/VBO/EBO on first use. Requires a current context.
func (m *Model) upload() {
	if m.uploaded {
		return
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	data := interleave(m.vertices)
	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.indices)*2, gl.Ptr(m.indices), gl.STATIC_DRAW)

	m.uploaded = true
}

// Destroy releases the GL objects. Safe to call more than once.
func (m *Model) Destroy() {
	if !m.uploaded {
		return
	}
	gl.DeleteBuffers(1, &m.ebo)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
	m.vao, m.vbo, m.ebo = 0, 0, 0
	m.uploaded = false
}

// newQuad builds a screen-aligned quad of the given half extent centered
// at (cx, cy). Vertex order matches the shared index pattern:
//
//	0 --- 1
//	| \   |
//	|  \  |
//	|   \ |
//	3 --- 2
func newQuad(cx, cy, z, half float32, tex *TextureAsset) (*Model, error) {
	vertices := []Vertex{
		{Pos: mgl32.Vec3{cx + half, cy + half, z}, UV: mgl32.Vec2{0, 0}},
		{Pos: mgl32.Vec3{cx - half, cy + half, z}, UV: mgl32.Vec2{1, 0}},
		{Pos: mgl32.Vec3{cx - half, cy - half, z}, UV: mgl32.Vec2{1, 1}},
		{Pos: mgl32.Vec3{cx + half, cy - half, z}, UV: mgl32.Vec2{0, 1}},
	}
	return NewModel(vertices, quadIndices(), tex)
}

func quadIndices() []uint16 {
	return []uint16{0, 1, 2, 0, 2, 3}
}
