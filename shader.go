package glg

import "github.com/vanisha13/OpenGL-Rotating-Cube-Project/log"

// InfoLogSize is the maximum number of info log bytes read back from the
// driver after a failed compile or link.
const InfoLogSize = 512

var logger = log.New("glg")

// CompileResult describes the outcome of compiling a single shader stage.
// Handle is set even when OK is false; a failed stage can still be attached
// to a program and must still be deleted.
type CompileResult struct {
	Stage  ShaderStage
	Handle uint32
	OK     bool
	Log    string
}

// Err returns a *ShaderError for a failed compilation, nil otherwise.
func (r CompileResult) Err() error {
	if r.OK {
		return nil
	}
	return &ShaderError{Stage: r.Stage.String(), Log: r.Log}
}

// LinkResult describes the outcome of linking a program.
type LinkResult struct {
	Handle uint32
	OK     bool
	Log    string
}

// Err returns a *ShaderError for a failed link, nil otherwise.
func (r LinkResult) Err() error {
	if r.OK {
		return nil
	}
	return &ShaderError{Stage: "program", Log: r.Log}
}

// Compile creates a shader object for the given stage and compiles source
// into it. Failures are logged and reported in the result, never returned
// as an error.
func Compile(ctx Context, source string, stage ShaderStage) CompileResult {
	shader := ctx.CreateShader(stage)
	ctx.ShaderSource(shader, source)
	ctx.CompileShader(shader)

	res := CompileResult{Stage: stage, Handle: shader, OK: ctx.ShaderCompiled(shader)}
	if !res.OK {
		res.Log = ctx.ShaderInfoLog(shader, InfoLogSize)
		logger.Errorf("%s shader compilation failed\n%s", stage, res.Log)
	}
	return res
}

// Link attaches both stages to a new program and links it. The two stage
// handles are deleted once linking has been attempted, whatever the outcome.
func Link(ctx Context, vertex, fragment CompileResult) LinkResult {
	program := ctx.CreateProgram()
	ctx.AttachShader(program, vertex.Handle)
	ctx.AttachShader(program, fragment.Handle)
	ctx.LinkProgram(program)

	res := LinkResult{Handle: program, OK: ctx.ProgramLinked(program)}
	if !res.OK {
		res.Log = ctx.ProgramInfoLog(program, InfoLogSize)
		logger.Errorf("program linking failed\n%s", res.Log)
	}

	ctx.DeleteShader(vertex.Handle)
	ctx.DeleteShader(fragment.Handle)

	return res
}
