/*
Package glg implements a thin layer atop OpenGL for go. It wraps the handful of GL objects a
small renderer needs - shader stages, programs, vertex buffers and vertex arrays - in go types
with explicit Create/Destroy pairs, and adds a window surface and a frame loop around them.

Every wrapper takes a Context rather than calling GL directly. OpenGL keeps its state (the
current program, the bound buffer, the bound vertex array) in an implicit per-thread singleton;
passing the Context around makes those ordering dependencies visible and lets tests substitute a
recording implementation (see package gltest).

Terms
	Context		the GL entry points for the current thread's GL context
	Shader stage	a compiled unit of GPU code for one pipeline stage (vertex or fragment)
	Program		a linked combination of shader stages
	Uniform		a named per-draw constant uploaded from the host
	VertexBuffer	GPU storage holding interleaved vertex attributes
	VertexArray	a description of how vertex buffer contents map to shader attributes
	Surface		the window being drawn into, its close flag and its keyboard state

A typical application:

	1. Open a window with OpenWindow and make its GL context current
	2. Create the Context with NewGLContext
	3. Create a Scope and defer its Destroy
	4. Build a Program from vertex and fragment source, upload vertex data once
	5. Run a RenderLoop, drawing one frame per iteration until the window closes

Shader failures

Compilation and link failures are not fatal. Compile and Link return result values carrying the
driver's info log, the failure is logged, and the (possibly unusable) handle is kept so the
program can still be attached, bound and destroyed.
*/
package glg
