package cube

import (
	"time"

	units "github.com/docker/go-units"

	glg "github.com/vanisha13/OpenGL-Rotating-Cube-Project"
	"github.com/vanisha13/OpenGL-Rotating-Cube-Project/log"
)

// Window parameters.
const (
	Width  = 800
	Height = 600
	Title  = "OpenGL Rotating Cube"
)

// Background is the clear color.
var Background = [4]float32{0.2, 0.3, 0.3, 1.0}

var logger = log.New("cube")

// WindowConfig returns the window and context requested by the demo.
func WindowConfig() glg.WindowConfig {
	return glg.WindowConfig{
		Width:   Width,
		Height:  Height,
		Title:   Title,
		GLMajor: 3,
		GLMinor: 3,
	}
}

// Demo is the rotating cube application: a program, the uploaded cube mesh
// and the loop drawing them. Everything it creates on the GPU is owned by
// its scope.
type Demo struct {
	ctx     glg.Context
	surface glg.Surface
	scope   *glg.Scope

	Program  *glg.Program
	Mesh     *glg.Mesh
	Renderer *Renderer
	Loop     *glg.RenderLoop
	Stats    FrameStats
}

// NewDemo builds the shader program and uploads the cube mesh. Shader
// failures are logged and recorded in Program.Diagnostics; setup carries on
// regardless.
func NewDemo(ctx glg.Context, surface glg.Surface) *Demo {
	d := &Demo{
		ctx:     ctx,
		surface: surface,
		scope:   glg.NewScope(),
	}

	d.Program = NewProgram(ctx)
	d.scope.Add(d.Program)
	if !d.Program.Valid() {
		logger.Warningf("continuing with invalid shader program (%d diagnostics)", len(d.Program.Diagnostics))
	}

	d.Mesh = glg.UploadMesh(ctx, d.scope, Vertices)
	d.Stats.MeshBytes = d.Mesh.Buffer.Size
	logger.Infof("uploaded %d vertices (%s)", d.Mesh.Array.Count, units.HumanSize(float64(d.Mesh.Buffer.Size)))

	d.Renderer = NewRenderer(ctx, d.Program, d.Mesh, float32(Width)/float32(Height))
	d.Loop = glg.NewRenderLoop(surface)

	return d
}

// NewProgram builds the cube's shader program from the embedded sources.
func NewProgram(ctx glg.Context) *glg.Program {
	return glg.NewProgram(ctx, VertexShaderSource, FragmentShaderSource)
}

// Run draws frames until the window closes, Escape is pressed or maxFrames
// frames have been drawn (0 for no limit).
func (d *Demo) Run(maxFrames uint64) error {
	d.Loop.MaxFrames = maxFrames

	start := time.Now()
	err := d.Loop.Run(d.frame)
	d.Stats.Frames = d.Loop.Frames
	d.Stats.Elapsed = time.Since(start)

	logger.Infof("render loop %s after %d frames", d.Loop.State, d.Loop.Frames)
	return err
}

func (d *Demo) frame() error {
	if d.surface.KeyPressed(glg.KeyEscape) {
		d.surface.SetShouldClose(true)
	}
	d.Renderer.Frame(PollInput(d.surface))
	return nil
}

// Destroy releases the vertex array, the vertex buffer and the program, in
// that order.
func (d *Demo) Destroy() {
	d.scope.Destroy()
}
