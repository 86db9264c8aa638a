package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/fretviz/internal/domain"
)

var showFormatFlag string

// showCmd represents the show command.
var showCmd = newShowCmd()

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print one diagram and exit",
		Long: `Print the selected chord or scale once, as a text table or as an SVG
document on stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Show(domain.ShowArgs{
				Selection: selection(),
				Format:    showFormatFlag,
				Out:       cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().StringVar(&showFormatFlag, "format", domain.FormatText, "output format: text or svg")

	return cmd
}

func init() {
	rootCmd.AddCommand(showCmd)
}
