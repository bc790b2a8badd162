package commands

import (
	"os"

	"coursegraph/internal/banner"

	"github.com/jedib0t/go-pretty/v6/table"
)

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

func renderOptions(options *banner.OptionSet) {
	t := newTable()
	t.AppendHeader(table.Row{"Code", "Label"})
	for _, opt := range options.Options() {
		t.AppendRow(table.Row{opt.Code, opt.Label})
	}
	t.Render()
}
