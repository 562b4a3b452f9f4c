package gltest

import glg "github.com/vanisha13/OpenGL-Rotating-Cube-Project"

// Surface is a scripted glg.Surface. Frame i (starting at 0) sees the keys in
// Keys[i] as pressed; the surface reports it should close once CloseAfter
// frames have been presented, or when SetShouldClose(true) is called.
type Surface struct {
	Keys       []map[glg.Key]bool
	CloseAfter int
	Width      int
	Height     int

	Swaps int
	Polls int

	closed bool
}

func NewSurface(closeAfter int) *Surface {
	return &Surface{CloseAfter: closeAfter, Width: 800, Height: 600}
}

func (s *Surface) ShouldClose() bool {
	return s.closed || (s.CloseAfter >= 0 && s.Swaps >= s.CloseAfter)
}

func (s *Surface) SetShouldClose(v bool) {
	s.closed = v
}

func (s *Surface) KeyPressed(key glg.Key) bool {
	if s.Swaps >= len(s.Keys) {
		return false
	}
	return s.Keys[s.Swaps][key]
}

func (s *Surface) FramebufferSize() (int, int) {
	return s.Width, s.Height
}

func (s *Surface) SwapBuffers() {
	s.Swaps++
}

func (s *Surface) PollEvents() {
	s.Polls++
}

var _ glg.Surface = (*Surface)(nil)
