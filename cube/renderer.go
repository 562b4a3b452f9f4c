package cube

import (
	lin "github.com/xlab/linmath"

	glg "github.com/vanisha13/OpenGL-Rotating-Cube-Project"
)

// Renderer draws the cube once per frame. It owns the model transform; view
// and projection are fixed when it is created.
type Renderer struct {
	ctx glg.Context

	Program   *glg.Program
	Mesh      *glg.Mesh
	Transform *Transform

	View       lin.Mat4x4
	Projection lin.Mat4x4
	Background [4]float32
}

func NewRenderer(ctx glg.Context, program *glg.Program, mesh *glg.Mesh, aspect float32) *Renderer {
	return &Renderer{
		ctx:        ctx,
		Program:    program,
		Mesh:       mesh,
		Transform:  NewTransform(),
		View:       View(),
		Projection: Projection(aspect),
		Background: Background,
	}
}

// PollInput samples the rotation keys.
func PollInput(s glg.Surface) Input {
	return Input{
		Left:  s.KeyPressed(glg.KeyLeft),
		Right: s.KeyPressed(glg.KeyRight),
	}
}

// Frame applies in to the transform and draws the cube.
func (r *Renderer) Frame(in Input) {
	r.Transform.Apply(in)

	bg := r.Background
	r.ctx.ClearColor(bg[0], bg[1], bg[2], bg[3])
	r.ctx.ClearColorBuffer()

	r.Program.Use()
	r.Program.SetMat4(ModelUniform, &r.Transform.Model)
	r.Program.SetMat4(ViewUniform, &r.View)
	r.Program.SetMat4(ProjectionUniform, &r.Projection)

	r.Mesh.Array.Draw(glg.Triangles)
}
