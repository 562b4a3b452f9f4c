package cube

import (
	"fmt"
	"io"
	"time"

	units "github.com/docker/go-units"
	"github.com/olekukonko/tablewriter"
)

// FrameStats summarizes a finished run of the demo.
type FrameStats struct {
	Frames    uint64
	Elapsed   time.Duration
	MeshBytes int
}

// FPS returns the average frame rate over the run.
func (s FrameStats) FPS() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Frames) / s.Elapsed.Seconds()
}

// WriteTable renders the stats as a table.
func (s FrameStats) WriteTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Frames", "Elapsed", "Avg FPS", "Mesh size"})
	table.Append([]string{
		fmt.Sprintf("%d", s.Frames),
		s.Elapsed.Round(time.Millisecond).String(),
		fmt.Sprintf("%.1f", s.FPS()),
		units.HumanSize(float64(s.MeshBytes)),
	})
	table.Render()
}
