package glg

import lin "github.com/xlab/linmath"

// Diagnostic is a compile or link failure recorded while building a Program.
type Diagnostic struct {
	Stage string
	Log   string
}

// Program is a linked vertex + fragment shader pair.
type Program struct {
	ctx Context

	ID             uint32
	VertexSource   string
	FragmentSource string

	// Diagnostics holds every failure seen while compiling and linking, in
	// the order they occurred. A program with diagnostics is kept anyway.
	Diagnostics []Diagnostic

	locations map[string]int32
	destroyed bool
}

// NewProgram compiles both sources and links them into a program.
func NewProgram(ctx Context, vertexSource, fragmentSource string) *Program {
	p := &Program{
		ctx:            ctx,
		VertexSource:   vertexSource,
		FragmentSource: fragmentSource,
		locations:      make(map[string]int32),
	}

	vs := Compile(ctx, vertexSource, VertexShader)
	p.record(vs.Err())
	fs := Compile(ctx, fragmentSource, FragmentShader)
	p.record(fs.Err())

	linked := Link(ctx, vs, fs)
	p.record(linked.Err())
	p.ID = linked.Handle

	return p
}

func (p *Program) record(err error) {
	if se, ok := err.(*ShaderError); ok {
		p.Diagnostics = append(p.Diagnostics, Diagnostic{Stage: se.Stage, Log: se.Log})
	}
}

// Valid reports whether the program linked without any diagnostics.
func (p *Program) Valid() bool {
	return p.ID != 0 && len(p.Diagnostics) == 0
}

// Use makes this program the target of subsequent draw calls.
func (p *Program) Use() {
	p.ctx.UseProgram(p.ID)
}

// UniformLocation returns the location of the named uniform, or -1 when the
// program has no such active uniform. Locations are cached per program.
func (p *Program) UniformLocation(name string) int32 {
	location, ok := p.locations[name]
	if !ok {
		location = p.ctx.GetUniformLocation(p.ID, name)
		p.locations[name] = location
	}
	return location
}

// SetMat4 uploads m to the named mat4 uniform in column-major order. The
// program must be in use.
func (p *Program) SetMat4(name string, m *lin.Mat4x4) {
	var value [16]float32
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			value[col*4+row] = m[col][row]
		}
	}
	p.ctx.UniformMatrix4fv(p.UniformLocation(name), &value)
}

func (p *Program) Destroy() {
	if p.destroyed {
		return
	}
	p.ctx.DeleteProgram(p.ID)
	p.destroyed = true
}
