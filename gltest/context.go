// Package gltest provides recording implementations of glg.Context and
// glg.Surface for tests which cannot create a real GL context.
package gltest

import (
	"fmt"
	"strings"

	glg "github.com/vanisha13/OpenGL-Rotating-Cube-Project"
)

// Call is a single recorded Context call.
type Call struct {
	Name string
	Args []interface{}
}

func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = fmt.Sprint(a)
	}
	return c.Name + "(" + strings.Join(args, ", ") + ")"
}

// Context records every call made through it and simulates the pieces of
// GL state the glg wrappers rely on. Sources containing FailCompileMarker
// fail to compile; programs with a stage containing FailLinkMarker fail to
// link. Uniform names present in Uniforms resolve to their value, any other
// name resolves to -1.
type Context struct {
	Calls []Call

	FailCompileMarker string
	FailLinkMarker    string
	Uniforms          map[string]int32
	Strings           map[glg.StringName]string

	// Uploads records every matrix uploaded, keyed by location.
	Uploads map[int32][16]float32
	// BufferUploads counts ArrayBufferData calls.
	BufferUploads int

	nextID   uint32
	sources  map[uint32]string
	attached map[uint32][]uint32
	live     map[uint32]string
}

func NewContext() *Context {
	return &Context{
		FailCompileMarker: "#error",
		FailLinkMarker:    "#unlinkable",
		Uniforms:          map[string]int32{},
		Strings:           map[glg.StringName]string{},
		Uploads:           map[int32][16]float32{},
		sources:           map[uint32]string{},
		attached:          map[uint32][]uint32{},
		live:              map[uint32]string{},
	}
}

func (c *Context) record(name string, args ...interface{}) {
	c.Calls = append(c.Calls, Call{Name: name, Args: args})
}

func (c *Context) alloc(kind string) uint32 {
	c.nextID++
	c.live[c.nextID] = kind
	return c.nextID
}

func (c *Context) release(id uint32) {
	delete(c.live, id)
}

// Live returns the number of objects of the given kind ("shader",
// "program", "buffer", "vertexarray") not yet deleted.
func (c *Context) Live(kind string) int {
	n := 0
	for _, k := range c.live {
		if k == kind {
			n++
		}
	}
	return n
}

// Names returns the names of the recorded calls, in order.
func (c *Context) Names() []string {
	names := make([]string, len(c.Calls))
	for i, call := range c.Calls {
		names[i] = call.Name
	}
	return names
}

// Count returns how many times the named call was made.
func (c *Context) Count(name string) int {
	n := 0
	for _, call := range c.Calls {
		if call.Name == name {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls but keeps simulated state.
func (c *Context) Reset() {
	c.Calls = nil
}

func (c *Context) CreateShader(stage glg.ShaderStage) uint32 {
	id := c.alloc("shader")
	c.record("CreateShader", stage)
	return id
}

func (c *Context) ShaderSource(shader uint32, source string) {
	c.sources[shader] = source
	c.record("ShaderSource", shader)
}

func (c *Context) CompileShader(shader uint32) {
	c.record("CompileShader", shader)
}

func (c *Context) ShaderCompiled(shader uint32) bool {
	c.record("ShaderCompiled", shader)
	return !strings.Contains(c.sources[shader], c.FailCompileMarker)
}

func (c *Context) ShaderInfoLog(shader uint32, maxLength int32) string {
	c.record("ShaderInfoLog", shader, maxLength)
	return truncate(fmt.Sprintf("0:1(1): error: syntax error in shader %d", shader), maxLength)
}

func (c *Context) DeleteShader(shader uint32) {
	c.release(shader)
	c.record("DeleteShader", shader)
}

func (c *Context) CreateProgram() uint32 {
	id := c.alloc("program")
	c.record("CreateProgram")
	return id
}

func (c *Context) AttachShader(program, shader uint32) {
	c.attached[program] = append(c.attached[program], shader)
	c.record("AttachShader", program, shader)
}

func (c *Context) LinkProgram(program uint32) {
	c.record("LinkProgram", program)
}

func (c *Context) ProgramLinked(program uint32) bool {
	c.record("ProgramLinked", program)
	for _, shader := range c.attached[program] {
		src := c.sources[shader]
		if strings.Contains(src, c.FailCompileMarker) || strings.Contains(src, c.FailLinkMarker) {
			return false
		}
	}
	return true
}

func (c *Context) ProgramInfoLog(program uint32, maxLength int32) string {
	c.record("ProgramInfoLog", program, maxLength)
	return truncate(fmt.Sprintf("error: linking program %d failed", program), maxLength)
}

func (c *Context) UseProgram(program uint32) {
	c.record("UseProgram", program)
}

func (c *Context) DeleteProgram(program uint32) {
	c.release(program)
	c.record("DeleteProgram", program)
}

func (c *Context) GetUniformLocation(program uint32, name string) int32 {
	c.record("GetUniformLocation", program, name)
	if loc, ok := c.Uniforms[name]; ok {
		return loc
	}
	return -1
}

func (c *Context) UniformMatrix4fv(location int32, value *[16]float32) {
	c.Uploads[location] = *value
	c.record("UniformMatrix4fv", location)
}

func (c *Context) GenBuffer() uint32 {
	id := c.alloc("buffer")
	c.record("GenBuffer")
	return id
}

func (c *Context) BindArrayBuffer(buffer uint32) {
	c.record("BindArrayBuffer", buffer)
}

func (c *Context) ArrayBufferData(data []float32) {
	c.BufferUploads++
	c.record("ArrayBufferData", len(data))
}

func (c *Context) DeleteBuffer(buffer uint32) {
	c.release(buffer)
	c.record("DeleteBuffer", buffer)
}

func (c *Context) GenVertexArray() uint32 {
	id := c.alloc("vertexarray")
	c.record("GenVertexArray")
	return id
}

func (c *Context) BindVertexArray(array uint32) {
	c.record("BindVertexArray", array)
}

func (c *Context) VertexAttribPointer(index uint32, size int32, strideFloats, offsetFloats int) {
	c.record("VertexAttribPointer", index, size, strideFloats, offsetFloats)
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	c.record("EnableVertexAttribArray", index)
}

func (c *Context) DeleteVertexArray(array uint32) {
	c.release(array)
	c.record("DeleteVertexArray", array)
}

func (c *Context) Viewport(x, y, width, height int32) {
	c.record("Viewport", x, y, width, height)
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.record("ClearColor", r, g, b, a)
}

func (c *Context) ClearColorBuffer() {
	c.record("ClearColorBuffer")
}

func (c *Context) DrawArrays(mode glg.Primitive, first, count int32) {
	c.record("DrawArrays", mode, first, count)
}

func (c *Context) GetString(name glg.StringName) string {
	c.record("GetString", name)
	return c.Strings[name]
}

func truncate(s string, maxLength int32) string {
	if maxLength <= 0 {
		return ""
	}
	// One byte is reserved for the terminator, as with the real driver.
	if int32(len(s)) > maxLength-1 {
		return s[:maxLength-1]
	}
	return s
}

var _ glg.Context = (*Context)(nil)
