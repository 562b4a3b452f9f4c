package glg

// ShaderStage identifies the pipeline stage a shader is compiled for.
type ShaderStage int

const (
	VertexShader ShaderStage = iota
	FragmentShader
)

func (s ShaderStage) String() string {
	switch s {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	}
	return "unknown"
}

// Primitive is the topology used by a draw call.
type Primitive int

const (
	Triangles Primitive = iota
	Lines
	Points
)

// StringName selects a context information string.
type StringName int

const (
	Vendor StringName = iota
	Renderer
	Version
	ShadingLanguageVersion
)

// Context exposes the GL entry points used by this package. Implementations
// operate on whatever GL context is current on the calling thread.
type Context interface {
	CreateShader(stage ShaderStage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32, maxLength int32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32, maxLength int32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GetUniformLocation(program uint32, name string) int32
	UniformMatrix4fv(location int32, value *[16]float32)

	GenBuffer() uint32
	BindArrayBuffer(buffer uint32)
	ArrayBufferData(data []float32)
	DeleteBuffer(buffer uint32)

	GenVertexArray() uint32
	BindVertexArray(array uint32)
	VertexAttribPointer(index uint32, size int32, strideFloats, offsetFloats int)
	EnableVertexAttribArray(index uint32)
	DeleteVertexArray(array uint32)

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	ClearColorBuffer()
	DrawArrays(mode Primitive, first, count int32)

	GetString(name StringName) string
}
