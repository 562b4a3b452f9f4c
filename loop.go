package glg

// LoopState is the state of a RenderLoop.
type LoopState int

const (
	Running LoopState = iota
	Terminated
)

func (s LoopState) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "running"
}

// FrameFunc draws a single frame.
type FrameFunc func() error

// RenderLoop draws frames into a Surface until its close flag is set. Once
// terminated a loop does not run again.
type RenderLoop struct {
	Surface Surface
	State   LoopState

	// MaxFrames stops the loop after that many frames; 0 means no limit.
	MaxFrames uint64

	// Frames counts the frames presented so far.
	Frames uint64
}

func NewRenderLoop(surface Surface) *RenderLoop {
	return &RenderLoop{Surface: surface}
}

// Run calls frame once per iteration, then presents the frame and processes
// pending window events. It returns when the surface asks to close, when
// MaxFrames is reached or when frame returns an error, which is passed on.
func (l *RenderLoop) Run(frame FrameFunc) error {
	for l.State == Running {
		if l.Surface.ShouldClose() || (l.MaxFrames != 0 && l.Frames >= l.MaxFrames) {
			break
		}

		if err := frame(); err != nil {
			l.State = Terminated
			return err
		}

		l.Surface.SwapBuffers()
		l.Surface.PollEvents()
		l.Frames++
	}

	l.State = Terminated
	return nil
}
