package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/fretviz/internal/controller"
	"github.com/mouse-blink/fretviz/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "list [chords|scales|presets]",
		Short:     "List chords, scales and tuning presets",
		Long:      "List the theory tables in display order, including entries added by the config file.",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{controller.TableChords, controller.TableScales, controller.TablePresets},
		RunE: func(_ *cobra.Command, args []string) error {
			table := ""
			if len(args) == 1 {
				table = args[0]
			}

			return workflow.List(domain.ListArgs{Table: table})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
