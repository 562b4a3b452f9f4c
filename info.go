package glg

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// Info describes the GL implementation behind a Context.
type Info struct {
	Vendor                 string
	Renderer               string
	Version                string
	ShadingLanguageVersion string
}

func QueryInfo(ctx Context) Info {
	return Info{
		Vendor:                 ctx.GetString(Vendor),
		Renderer:               ctx.GetString(Renderer),
		Version:                ctx.GetString(Version),
		ShadingLanguageVersion: ctx.GetString(ShadingLanguageVersion),
	}
}

// Rows returns the info as label/value pairs, in display order.
func (i Info) Rows() [][]string {
	return [][]string{
		{"Vendor", i.Vendor},
		{"Renderer", i.Renderer},
		{"Version", i.Version},
		{"GLSL", i.ShadingLanguageVersion},
	}
}

// WriteTable renders the info as a two column table.
func (i Info) WriteTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Property", "Value"})
	table.AppendBulk(i.Rows())
	table.Render()
}
