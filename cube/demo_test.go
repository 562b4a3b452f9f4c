package cube

import (
	"bytes"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	glg "github.com/vanisha13/OpenGL-Rotating-Cube-Project"
	"github.com/vanisha13/OpenGL-Rotating-Cube-Project/gltest"
)

func newTestContext() *gltest.Context {
	ctx := gltest.NewContext()
	ctx.Uniforms[ModelUniform] = 0
	ctx.Uniforms[ViewUniform] = 1
	ctx.Uniforms[ProjectionUniform] = 2
	return ctx
}

func assertUploaded(t *testing.T, want mgl32.Mat4, ctx *gltest.Context, location int32) {
	t.Helper()
	got, ok := ctx.Uploads[location]
	require.True(t, ok, "no upload to location %d", location)
	for i := range want {
		assert.InDeltaf(t, want[i], got[i], matrixDelta, "location %d element %d", location, i)
	}
}

func TestFrameOrder(t *testing.T) {
	ctx := newTestContext()
	surface := gltest.NewSurface(-1)
	d := NewDemo(ctx, surface)
	defer d.Destroy()

	d.Renderer.Frame(Input{})
	ctx.Reset()
	d.Renderer.Frame(Input{})

	assert.Equal(t, []string{
		"ClearColor", "ClearColorBuffer",
		"UseProgram",
		"UniformMatrix4fv", "UniformMatrix4fv", "UniformMatrix4fv",
		"BindVertexArray", "DrawArrays",
	}, ctx.Names())
	assert.Equal(t, []interface{}{float32(0.2), float32(0.3), float32(0.3), float32(1)}, ctx.Calls[0].Args)
	assert.Equal(t, []interface{}{glg.Triangles, int32(0), int32(VertexCount)}, ctx.Calls[7].Args)
}

func TestDemoLeftThenRight(t *testing.T) {
	ctx := newTestContext()
	surface := gltest.NewSurface(1)
	surface.Keys = []map[glg.Key]bool{
		{glg.KeyLeft: true},
		{glg.KeyRight: true},
	}

	d := NewDemo(ctx, surface)
	defer d.Destroy()
	require.True(t, d.Program.Valid())

	require.NoError(t, d.Run(0))
	assertMatrix(t, rotY(-1), d.Renderer.Transform.Model)
	assertUploaded(t, rotY(-1), ctx, 0)

	// a terminated loop stays terminated; draw the follow-up frame directly
	d.Renderer.Frame(PollInput(surface))
	assertMatrix(t, mgl32.Ident4(), d.Renderer.Transform.Model)

	assertUploaded(t, mgl32.Ident4(), ctx, 0)
	assertUploaded(t, mgl32.Translate3D(0, 0, -3), ctx, 1)
	assertUploaded(t, mgl32.Perspective(mgl32.DegToRad(45), 800.0/600.0, 0.1, 100), ctx, 2)
}

func TestDemoUploadsMeshOnce(t *testing.T) {
	ctx := newTestContext()
	surface := gltest.NewSurface(25)

	d := NewDemo(ctx, surface)
	defer d.Destroy()
	require.NoError(t, d.Run(0))

	assert.Equal(t, uint64(25), d.Stats.Frames)
	assert.Equal(t, 1, ctx.BufferUploads)
	assert.Equal(t, 25, ctx.Count("DrawArrays"))
	assert.Equal(t, VertexCount*6*4, d.Stats.MeshBytes)
	assert.Equal(t, glg.Terminated, d.Loop.State)
}

func TestDemoEscapeCloses(t *testing.T) {
	ctx := newTestContext()
	surface := gltest.NewSurface(-1)
	surface.Keys = []map[glg.Key]bool{{glg.KeyEscape: true}}

	d := NewDemo(ctx, surface)
	defer d.Destroy()
	require.NoError(t, d.Run(0))
	assert.Equal(t, uint64(1), d.Loop.Frames)
}

func TestDemoMaxFrames(t *testing.T) {
	ctx := newTestContext()
	d := NewDemo(ctx, gltest.NewSurface(-1))
	defer d.Destroy()

	require.NoError(t, d.Run(4))
	assert.Equal(t, uint64(4), d.Stats.Frames)
}

func TestDemoReleasesInOrder(t *testing.T) {
	ctx := newTestContext()
	d := NewDemo(ctx, gltest.NewSurface(2))
	require.NoError(t, d.Run(0))

	ctx.Reset()
	d.Destroy()
	d.Destroy()

	assert.Equal(t, []string{"DeleteVertexArray", "DeleteBuffer", "DeleteProgram"}, ctx.Names())
	assert.Zero(t, ctx.Live("vertexarray"))
	assert.Zero(t, ctx.Live("buffer"))
	assert.Zero(t, ctx.Live("program"))
	assert.Zero(t, ctx.Live("shader"))
}

func TestDemoContinuesWithBrokenShaders(t *testing.T) {
	ctx := newTestContext()
	ctx.FailCompileMarker = "#version"

	d := NewDemo(ctx, gltest.NewSurface(3))
	defer d.Destroy()

	assert.False(t, d.Program.Valid())
	require.Len(t, d.Program.Diagnostics, 3)
	assert.Equal(t, "vertex", d.Program.Diagnostics[0].Stage)
	assert.Equal(t, "fragment", d.Program.Diagnostics[1].Stage)
	assert.Equal(t, "program", d.Program.Diagnostics[2].Stage)

	require.NoError(t, d.Run(0))
	assert.Equal(t, uint64(3), d.Stats.Frames)
}

func TestFrameStats(t *testing.T) {
	s := FrameStats{Frames: 120, Elapsed: 2 * time.Second, MeshBytes: 864}
	assert.InDelta(t, 60.0, s.FPS(), 1e-9)
	assert.Zero(t, FrameStats{Frames: 3}.FPS())

	var buf bytes.Buffer
	s.WriteTable(&buf)
	out := buf.String()
	assert.Contains(t, out, "Avg FPS")
	assert.Contains(t, out, "120")
	assert.Contains(t, out, "60.0")
	assert.Contains(t, out, "864B")
}
