package fetch

import (
	"io"
	"path/filepath"

	"github.com/docker/go-units"
	"github.com/jedib0t/go-pretty/v6/table"
)

// WriteSummary renders one row per extracted asset.
func WriteSummary(w io.Writer, result Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(result.Release.Version)
	t.AppendHeader(table.Row{"Triple", "Directory", "Size", "Files", "Headers"})

	for _, target := range result.Targets {
		t.AppendRow(table.Row{
			target.Asset.Triple.String(),
			filepath.ToSlash(target.Dir),
			units.HumanSize(float64(target.Bytes)),
			target.Files,
			len(target.Headers),
		})
	}

	t.Render()
}
