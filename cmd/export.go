package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/fretviz/internal/domain"
	m "github.com/mouse-blink/fretviz/internal/model"
)

var exportDirFlag string
var exportParallelFlag int

// exportCmd represents the export command.
var exportCmd = newExportCmd()

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every chord and scale as SVG",
		Long: `Render every chord and scale for the selected root and tuning into a
directory of SVG files, plus an index.yaml describing them.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Export(domain.ExportArgs{
				Selection: selection(),
				Dir:       m.Path(exportDirFlag),
				Threads:   exportParallelFlag,
			})
		},
	}
	cmd.Flags().StringVarP(&exportDirFlag, "dir", "d", "fretviz-export", "output directory")
	cmd.Flags().IntVarP(&exportParallelFlag, "parallel", "j", 1, "number of parallel workers for rendering")

	return cmd
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
