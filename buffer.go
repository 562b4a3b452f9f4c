package glg

// VertexBuffer is GPU storage for vertex data. Its contents are uploaded
// once, when it is created.
type VertexBuffer struct {
	ctx Context

	ID uint32
	// Size of the uploaded data in bytes.
	Size int

	destroyed bool
}

// CreateVertexBuffer allocates a buffer and uploads data into it with static
// usage. The array buffer binding is cleared before returning.
func CreateVertexBuffer(ctx Context, data []float32) *VertexBuffer {
	b := &VertexBuffer{ctx: ctx, ID: ctx.GenBuffer(), Size: len(data) * floatSize}
	ctx.BindArrayBuffer(b.ID)
	ctx.ArrayBufferData(data)
	ctx.BindArrayBuffer(0)
	return b
}

func (b *VertexBuffer) Bind() {
	b.ctx.BindArrayBuffer(b.ID)
}

func (b *VertexBuffer) Destroy() {
	if b.destroyed {
		return
	}
	b.ctx.DeleteBuffer(b.ID)
	b.destroyed = true
}

// VertexArray records how the attributes of a vertex buffer feed a program.
type VertexArray struct {
	ctx Context

	ID uint32
	// Count is the number of vertices described by the attached buffer.
	Count int32

	destroyed bool
}

func CreateVertexArray(ctx Context) *VertexArray {
	return &VertexArray{ctx: ctx, ID: ctx.GenVertexArray()}
}

// Attach binds buffer to the vertex array using layout. vertexCount is kept
// for draw calls.
func (a *VertexArray) Attach(buffer *VertexBuffer, layout VertexLayout, vertexCount int) {
	a.Bind()
	buffer.Bind()
	for _, attr := range layout.Attributes {
		a.ctx.VertexAttribPointer(attr.Location, attr.Size, layout.Stride, attr.Offset)
		a.ctx.EnableVertexAttribArray(attr.Location)
	}
	a.ctx.BindArrayBuffer(0)
	a.Unbind()
	a.Count = int32(vertexCount)
}

func (a *VertexArray) Bind() {
	a.ctx.BindVertexArray(a.ID)
}

func (a *VertexArray) Unbind() {
	a.ctx.BindVertexArray(0)
}

// Draw binds the vertex array and draws all of its vertices.
func (a *VertexArray) Draw(mode Primitive) {
	a.Bind()
	a.ctx.DrawArrays(mode, 0, a.Count)
}

func (a *VertexArray) Destroy() {
	if a.destroyed {
		return
	}
	a.ctx.DeleteVertexArray(a.ID)
	a.destroyed = true
}

// Mesh holds a vertex source uploaded to the GPU together with the vertex
// array describing it.
type Mesh struct {
	Buffer *VertexBuffer
	Array  *VertexArray
}

// UploadMesh uploads src once and wires its layout into a new vertex array.
// Both objects are registered with scope, buffer first.
func UploadMesh(ctx Context, scope *Scope, src VertexSource) *Mesh {
	data := src.Floats()
	layout := src.Layout()

	buffer := CreateVertexBuffer(ctx, data)
	scope.Add(buffer)

	array := CreateVertexArray(ctx)
	scope.Add(array)

	count := 0
	if layout.Stride > 0 {
		count = len(data) / layout.Stride
	}
	array.Attach(buffer, layout, count)

	logger.Debugf("uploaded mesh: %d vertices, buffer %d, vertex array %d", count, buffer.ID, array.ID)
	return &Mesh{Buffer: buffer, Array: array}
}
