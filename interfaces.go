package glg

// Destroyer is implemented by every object owning a GL resource.
type Destroyer interface {
	Destroy()
}

// VertexAttribute describes one float attribute inside an interleaved vertex.
type VertexAttribute struct {
	Location uint32
	// Size is the number of float components (1-4).
	Size int32
	// Offset is the attribute's offset from the start of a vertex, in floats.
	Offset int
}

// VertexLayout describes interleaved float vertex data.
type VertexLayout struct {
	// Stride is the size of one vertex, in floats.
	Stride     int
	Attributes []VertexAttribute
}

// VertexSource is implemented by vertex data which can describe its own
// layout.
type VertexSource interface {
	Floats() []float32
	Layout() VertexLayout
}
