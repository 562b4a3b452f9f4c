package cube

import (
	lin "github.com/xlab/linmath"

	glg "github.com/vanisha13/OpenGL-Rotating-Cube-Project"
)

// Attribute locations used by the vertex shader.
const (
	PositionLocation = 0
	ColorLocation    = 1
)

type Vertex struct {
	Pos   lin.Vec3
	Color lin.Vec3
}

// VertexData is a list of interleaved position/color vertices.
type VertexData []Vertex

const floatsPerVertex = 6

func (v VertexData) Floats() []float32 {
	out := make([]float32, 0, len(v)*floatsPerVertex)
	for _, vert := range v {
		out = append(out, vert.Pos[0], vert.Pos[1], vert.Pos[2])
		out = append(out, vert.Color[0], vert.Color[1], vert.Color[2])
	}
	return out
}

func (v VertexData) Layout() glg.VertexLayout {
	return glg.VertexLayout{
		Stride: floatsPerVertex,
		Attributes: []glg.VertexAttribute{
			{Location: PositionLocation, Size: 3, Offset: 0},
			{Location: ColorLocation, Size: 3, Offset: 3},
		},
	}
}

// VertexCount is the number of vertices drawn per frame: 6 faces of 2
// triangles each.
const VertexCount = 36

// Vertices is the unit cube centered on the origin, two triangles per face.
var Vertices = VertexData{
	// Back
	{Pos: lin.Vec3{-0.5, -0.5, -0.5}, Color: lin.Vec3{1, 0, 0}},
	{Pos: lin.Vec3{0.5, -0.5, -0.5}, Color: lin.Vec3{0, 1, 0}},
	{Pos: lin.Vec3{0.5, 0.5, -0.5}, Color: lin.Vec3{0, 0, 1}},
	{Pos: lin.Vec3{0.5, 0.5, -0.5}, Color: lin.Vec3{0, 0, 1}},
	{Pos: lin.Vec3{-0.5, 0.5, -0.5}, Color: lin.Vec3{1, 1, 0}},
	{Pos: lin.Vec3{-0.5, -0.5, -0.5}, Color: lin.Vec3{1, 0, 0}},

	// Front
	{Pos: lin.Vec3{-0.5, -0.5, 0.5}, Color: lin.Vec3{0, 1, 1}},
	{Pos: lin.Vec3{0.5, -0.5, 0.5}, Color: lin.Vec3{1, 0, 1}},
	{Pos: lin.Vec3{0.5, 0.5, 0.5}, Color: lin.Vec3{1, 1, 1}},
	{Pos: lin.Vec3{0.5, 0.5, 0.5}, Color: lin.Vec3{1, 1, 1}},
	{Pos: lin.Vec3{-0.5, 0.5, 0.5}, Color: lin.Vec3{0.5, 0.5, 0.5}},
	{Pos: lin.Vec3{-0.5, -0.5, 0.5}, Color: lin.Vec3{0, 1, 1}},

	// Left
	{Pos: lin.Vec3{-0.5, 0.5, 0.5}, Color: lin.Vec3{1, 0, 0}},
	{Pos: lin.Vec3{-0.5, 0.5, -0.5}, Color: lin.Vec3{0, 1, 0}},
	{Pos: lin.Vec3{-0.5, -0.5, -0.5}, Color: lin.Vec3{0, 0, 1}},
	{Pos: lin.Vec3{-0.5, -0.5, -0.5}, Color: lin.Vec3{0, 0, 1}},
	{Pos: lin.Vec3{-0.5, -0.5, 0.5}, Color: lin.Vec3{1, 1, 0}},
	{Pos: lin.Vec3{-0.5, 0.5, 0.5}, Color: lin.Vec3{1, 0, 0}},

	// Right
	{Pos: lin.Vec3{0.5, 0.5, 0.5}, Color: lin.Vec3{0, 1, 1}},
	{Pos: lin.Vec3{0.5, 0.5, -0.5}, Color: lin.Vec3{1, 0, 1}},
	{Pos: lin.Vec3{0.5, -0.5, -0.5}, Color: lin.Vec3{1, 1, 1}},
	{Pos: lin.Vec3{0.5, -0.5, -0.5}, Color: lin.Vec3{1, 1, 1}},
	{Pos: lin.Vec3{0.5, -0.5, 0.5}, Color: lin.Vec3{0.5, 0.5, 0.5}},
	{Pos: lin.Vec3{0.5, 0.5, 0.5}, Color: lin.Vec3{0, 1, 1}},

	// Bottom
	{Pos: lin.Vec3{-0.5, -0.5, -0.5}, Color: lin.Vec3{1, 0, 0}},
	{Pos: lin.Vec3{0.5, -0.5, -0.5}, Color: lin.Vec3{0, 1, 0}},
	{Pos: lin.Vec3{0.5, -0.5, 0.5}, Color: lin.Vec3{0, 0, 1}},
	{Pos: lin.Vec3{0.5, -0.5, 0.5}, Color: lin.Vec3{0, 0, 1}},
	{Pos: lin.Vec3{-0.5, -0.5, 0.5}, Color: lin.Vec3{1, 1, 0}},
	{Pos: lin.Vec3{-0.5, -0.5, -0.5}, Color: lin.Vec3{1, 0, 0}},

	// Top
	{Pos: lin.Vec3{-0.5, 0.5, -0.5}, Color: lin.Vec3{0.5, 0.5, 0.5}},
	{Pos: lin.Vec3{0.5, 0.5, -0.5}, Color: lin.Vec3{0.1, 0.7, 0.2}},
	{Pos: lin.Vec3{0.5, 0.5, 0.5}, Color: lin.Vec3{0.8, 0.3, 0.5}},
	{Pos: lin.Vec3{0.5, 0.5, 0.5}, Color: lin.Vec3{0.8, 0.3, 0.5}},
	{Pos: lin.Vec3{-0.5, 0.5, 0.5}, Color: lin.Vec3{0.2, 0.8, 0.3}},
	{Pos: lin.Vec3{-0.5, 0.5, -0.5}, Color: lin.Vec3{0.5, 0.5, 0.5}},
}
