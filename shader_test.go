package glg_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lin "github.com/xlab/linmath"

	glg "github.com/vanisha13/OpenGL-Rotating-Cube-Project"
	"github.com/vanisha13/OpenGL-Rotating-Cube-Project/gltest"
)

const (
	validVertex   = "#version 330 core\nvoid main() { gl_Position = vec4(0.0); }\n"
	validFragment = "#version 330 core\nout vec4 c;\nvoid main() { c = vec4(1.0); }\n"
)

func TestCompileValidSource(t *testing.T) {
	ctx := gltest.NewContext()

	res := glg.Compile(ctx, validVertex, glg.VertexShader)
	assert.True(t, res.OK)
	assert.NotZero(t, res.Handle)
	assert.Empty(t, res.Log)
	assert.NoError(t, res.Err())
	assert.Zero(t, ctx.Count("ShaderInfoLog"))
}

func TestCompileInvalidSourceKeepsHandle(t *testing.T) {
	ctx := gltest.NewContext()

	res := glg.Compile(ctx, "#error not glsl", glg.FragmentShader)
	require.False(t, res.OK)
	assert.NotZero(t, res.Handle, "failed stage must stay attachable")
	assert.Contains(t, res.Log, "syntax error")
	assert.Equal(t, 1, ctx.Live("shader"))

	var se *glg.ShaderError
	require.True(t, errors.As(res.Err(), &se))
	assert.Equal(t, "fragment", se.Stage)
	assert.Contains(t, se.Error(), "fragment shader compilation failed")

	// the info log is read with the fixed buffer size
	for _, call := range ctx.Calls {
		if call.Name == "ShaderInfoLog" {
			assert.Equal(t, int32(glg.InfoLogSize), call.Args[1])
		}
	}
}

func TestLinkFreesStagesOnSuccess(t *testing.T) {
	ctx := gltest.NewContext()

	vs := glg.Compile(ctx, validVertex, glg.VertexShader)
	fs := glg.Compile(ctx, validFragment, glg.FragmentShader)
	res := glg.Link(ctx, vs, fs)

	assert.True(t, res.OK)
	assert.NotZero(t, res.Handle)
	assert.Equal(t, 0, ctx.Live("shader"))
	assert.Equal(t, 1, ctx.Live("program"))
}

func TestLinkFreesStagesOnFailure(t *testing.T) {
	ctx := gltest.NewContext()

	vs := glg.Compile(ctx, validVertex+"#unlinkable", glg.VertexShader)
	fs := glg.Compile(ctx, validFragment, glg.FragmentShader)
	require.True(t, vs.OK)
	require.True(t, fs.OK)

	res := glg.Link(ctx, vs, fs)
	assert.False(t, res.OK)
	assert.NotZero(t, res.Handle)
	assert.Contains(t, res.Log, "linking program")
	assert.Equal(t, 0, ctx.Live("shader"), "stage handles leaked after failed link")
	assert.Equal(t, 2, ctx.Count("DeleteShader"))

	var se *glg.ShaderError
	require.True(t, errors.As(res.Err(), &se))
	assert.Equal(t, "program", se.Stage)
}

func TestLinkDeletesAfterLinking(t *testing.T) {
	ctx := gltest.NewContext()

	vs := glg.Compile(ctx, validVertex, glg.VertexShader)
	fs := glg.Compile(ctx, validFragment, glg.FragmentShader)
	ctx.Reset()
	glg.Link(ctx, vs, fs)

	assert.Equal(t, []string{
		"CreateProgram", "AttachShader", "AttachShader", "LinkProgram", "ProgramLinked",
		"DeleteShader", "DeleteShader",
	}, ctx.Names())
}

func TestNewProgram(t *testing.T) {
	ctx := gltest.NewContext()

	p := glg.NewProgram(ctx, validVertex, validFragment)
	assert.True(t, p.Valid())
	assert.Empty(t, p.Diagnostics)
	assert.Equal(t, validVertex, p.VertexSource)
	assert.Equal(t, validFragment, p.FragmentSource)

	p.Use()
	assert.Equal(t, gltest.Call{Name: "UseProgram", Args: []interface{}{p.ID}}, ctx.Calls[len(ctx.Calls)-1])

	p.Destroy()
	p.Destroy()
	assert.Equal(t, 1, ctx.Count("DeleteProgram"))
	assert.Equal(t, 0, ctx.Live("program"))
}

func TestNewProgramRecordsDiagnostics(t *testing.T) {
	ctx := gltest.NewContext()

	p := glg.NewProgram(ctx, validVertex, "#error broken")
	assert.False(t, p.Valid())
	assert.NotZero(t, p.ID)
	require.Len(t, p.Diagnostics, 2)
	assert.Equal(t, "fragment", p.Diagnostics[0].Stage)
	assert.Equal(t, "program", p.Diagnostics[1].Stage)
	assert.Equal(t, 0, ctx.Live("shader"))
}

func TestSetMat4(t *testing.T) {
	ctx := gltest.NewContext()
	ctx.Uniforms["model"] = 3

	p := glg.NewProgram(ctx, validVertex, validFragment)

	var m lin.Mat4x4
	m.Identity()
	m[3][0], m[3][1], m[3][2] = 1, 2, 3
	p.SetMat4("model", &m)
	p.SetMat4("model", &m)

	upload, ok := ctx.Uploads[3]
	require.True(t, ok)
	// column-major: translation lives in elements 12..14
	assert.Equal(t, float32(1), upload[12])
	assert.Equal(t, float32(2), upload[13])
	assert.Equal(t, float32(3), upload[14])
	assert.Equal(t, float32(1), upload[0])
	assert.Equal(t, 1, ctx.Count("GetUniformLocation"), "uniform location should be cached")
}

func TestSetMat4MissingUniform(t *testing.T) {
	ctx := gltest.NewContext()
	p := glg.NewProgram(ctx, validVertex, validFragment)

	var m lin.Mat4x4
	m.Identity()
	assert.NotPanics(t, func() { p.SetMat4("missing", &m) })
	assert.Equal(t, int32(-1), p.UniformLocation("missing"))
	_, ok := ctx.Uploads[-1]
	assert.True(t, ok)
}
