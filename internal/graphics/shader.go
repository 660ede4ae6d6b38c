package graphics

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Program is a linked GL program with its attribute and uniform locations
// resolved up front. Construction is all-or-nothing: LoadProgram either
// returns a fully usable program or releases every GL object it created.
// The UV attribute is optional; a program without one never binds UV data
// or a texture in DrawModel.
type Program struct {
	id         uint32
	position   uint32
	uv         uint32
	hasUV      bool
	projection int32
}

// LoadProgram compiles and links a program and resolves the named
// locations. The position attribute and projection uniform are required;
// uvAttr may be empty or name an attribute the shader does not use.
func LoadProgram(vertexSrc, fragmentSrc, positionAttr, uvAttr, projectionUniform string) (*Program, error) {
	vertexShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex stage: %w", err)
	}

	fragmentShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return nil, fmt.Errorf("fragment stage: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	// The stage objects are not needed once the link has been attempted.
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))

		gl.DeleteProgram(program)
		return nil, fmt.Errorf("failed to link program: %v", infoLog)
	}

	position := gl.GetAttribLocation(program, gl.Str(positionAttr+"\x00"))
	if position == -1 {
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("required attribute %q not found", positionAttr)
	}

	var uv int32 = -1
	if uvAttr != "" {
		uv = gl.GetAttribLocation(program, gl.Str(uvAttr+"\x00"))
		if uv == -1 {
			// The shader may legitimately not use texturing.
			log.Printf("UV attribute %q not found; program will draw without texture coordinates", uvAttr)
		}
	}

	projection := gl.GetUniformLocation(program, gl.Str(projectionUniform+"\x00"))
	if projection == -1 {
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("required uniform %q not found", projectionUniform)
	}

	p := &Program{
		id:         program,
		position:   uint32(position),
		projection: projection,
	}
	if uv != -1 {
		p.uv = uint32(uv)
		p.hasUV = true
	}
	return p, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))

		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile shader: %v", infoLog)
	}
	return shader, nil
}

// Activate binds this program as the active GPU program. Must be paired
// with Deactivate around a draw batch.
func (p *Program) Activate() {
	gl.UseProgram(p.id)
}

// Deactivate unbinds the program.
func (p *Program) Deactivate() {
	gl.UseProgram(0)
}

// SetProjectionMatrix uploads a column-major projection matrix to the
// resolved uniform. The program must be active.
func (p *Program) SetProjectionMatrix(m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.projection, 1, false, &m[0])
}

// DrawModel binds the model's vertex stream at this program's locations
// and issues an indexed triangle draw. UV data and the model's texture
// are bound only when the program resolved a UV attribute. Attributes are
// disabled in reverse order of enabling.
func (p *Program) DrawModel(m *Model) {
	m.upload()

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)

	gl.VertexAttribPointerWithOffset(p.position, 3, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(p.position)

	if p.hasUV {
		gl.VertexAttribPointerWithOffset(p.uv, 2, gl.FLOAT, false, vertexStride, uvOffset)
		gl.EnableVertexAttribArray(p.uv)

		if tex := m.Texture(); tex != nil {
			gl.ActiveTexture(gl.TEXTURE0)
			gl.BindTexture(gl.TEXTURE_2D, tex.ID())
		}
	}

	gl.DrawElementsWithOffset(gl.TRIANGLES, m.IndexCount(), gl.UNSIGNED_SHORT, 0)

	if p.hasUV {
		gl.DisableVertexAttribArray(p.uv)
	}
	gl.DisableVertexAttribArray(p.position)
}

// Destroy releases the GL program. Safe to call more than once.
func (p *Program) Destroy() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}
