package cube

import lin "github.com/xlab/linmath"

// RotationStep is the rotation applied per frame for each held key, in
// degrees.
const RotationStep float32 = 1

// Input is the keyboard state sampled at the start of a frame.
type Input struct {
	Left, Right bool
}

// Transform is the cube's cumulative model matrix.
type Transform struct {
	Model lin.Mat4x4
}

func NewTransform() *Transform {
	t := &Transform{}
	t.Model.Identity()
	return t
}

// Rotate post-multiplies the model matrix by a rotation of degrees about
// the Y axis.
func (t *Transform) Rotate(degrees float32) {
	var m lin.Mat4x4
	m.Dup(&t.Model)
	t.Model.Rotate(&m, 0, 1, 0, lin.DegreesToRadians(degrees))
}

// Apply rotates for each held key, left first. Holding both keys applies
// both steps, which cancel out.
func (t *Transform) Apply(in Input) {
	if in.Left {
		t.Rotate(-RotationStep)
	}
	if in.Right {
		t.Rotate(RotationStep)
	}
}

// View returns the camera matrix: looking at the origin from 3 units down
// +Z.
func View() lin.Mat4x4 {
	var v lin.Mat4x4
	v.LookAt(&lin.Vec3{0, 0, 3}, &lin.Vec3{0, 0, 0}, &lin.Vec3{0, 1, 0})
	return v
}

// Projection returns a 45 degree perspective projection for the given
// aspect ratio.
func Projection(aspect float32) lin.Mat4x4 {
	var p lin.Mat4x4
	p.Perspective(lin.DegreesToRadians(45), aspect, 0.1, 100)
	return p
}
