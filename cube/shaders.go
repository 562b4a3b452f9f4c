package cube

import _ "embed"

// Uniform names shared with the vertex shader.
const (
	ModelUniform      = "model"
	ViewUniform       = "view"
	ProjectionUniform = "projection"
)

//go:embed shaders/cube.vert
var VertexShaderSource string

//go:embed shaders/cube.frag
var FragmentShaderSource string
