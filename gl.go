package glg

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
)

const floatSize = 4

type glContext struct{}

// NewGLContext loads the OpenGL 3.3 core function pointers for the GL
// context current on the calling thread.
func NewGLContext() (Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContextInit, err)
	}
	return &glContext{}, nil
}

func glShaderType(stage ShaderStage) uint32 {
	if stage == FragmentShader {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

func glPrimitive(mode Primitive) uint32 {
	switch mode {
	case Lines:
		return gl.LINES
	case Points:
		return gl.POINTS
	}
	return gl.TRIANGLES
}

func (c *glContext) CreateShader(stage ShaderStage) uint32 {
	return gl.CreateShader(glShaderType(stage))
}

func (c *glContext) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (c *glContext) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (c *glContext) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (c *glContext) ShaderInfoLog(shader uint32, maxLength int32) string {
	if maxLength <= 0 {
		return ""
	}
	var length int32
	buf := make([]byte, maxLength)
	gl.GetShaderInfoLog(shader, maxLength, &length, &buf[0])
	return string(buf[:length])
}

func (c *glContext) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (c *glContext) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (c *glContext) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (c *glContext) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (c *glContext) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (c *glContext) ProgramInfoLog(program uint32, maxLength int32) string {
	if maxLength <= 0 {
		return ""
	}
	var length int32
	buf := make([]byte, maxLength)
	gl.GetProgramInfoLog(program, maxLength, &length, &buf[0])
	return string(buf[:length])
}

func (c *glContext) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (c *glContext) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (c *glContext) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (c *glContext) UniformMatrix4fv(location int32, value *[16]float32) {
	gl.UniformMatrix4fv(location, 1, false, &value[0])
}

func (c *glContext) GenBuffer() uint32 {
	var buffer uint32
	gl.GenBuffers(1, &buffer)
	return buffer
}

func (c *glContext) BindArrayBuffer(buffer uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
}

func (c *glContext) ArrayBufferData(data []float32) {
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*floatSize, gl.Ptr(data), gl.STATIC_DRAW)
}

func (c *glContext) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (c *glContext) GenVertexArray() uint32 {
	var array uint32
	gl.GenVertexArrays(1, &array)
	return array
}

func (c *glContext) BindVertexArray(array uint32) {
	gl.BindVertexArray(array)
}

func (c *glContext) VertexAttribPointer(index uint32, size int32, strideFloats, offsetFloats int) {
	gl.VertexAttribPointer(index, size, gl.FLOAT, false, int32(strideFloats*floatSize), gl.PtrOffset(offsetFloats*floatSize))
}

func (c *glContext) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (c *glContext) DeleteVertexArray(array uint32) {
	gl.DeleteVertexArrays(1, &array)
}

func (c *glContext) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (c *glContext) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (c *glContext) ClearColorBuffer() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (c *glContext) DrawArrays(mode Primitive, first, count int32) {
	gl.DrawArrays(glPrimitive(mode), first, count)
}

func (c *glContext) GetString(name StringName) string {
	var enum uint32
	switch name {
	case Vendor:
		enum = gl.VENDOR
	case Renderer:
		enum = gl.RENDERER
	case Version:
		enum = gl.VERSION
	case ShadingLanguageVersion:
		enum = gl.SHADING_LANGUAGE_VERSION
	default:
		return ""
	}

	str := gl.GetString(enum)
	if str == nil {
		return ""
	}
	return gl.GoStr(str)
}
