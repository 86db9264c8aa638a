// Package cmd provides the root command and CLI setup for fretviz.
package cmd

import (
	"fmt"
	"os"

	"github.com/mouse-blink/fretviz/internal/adapter"
	"github.com/mouse-blink/fretviz/internal/config"
	"github.com/mouse-blink/fretviz/internal/controller"
	"github.com/mouse-blink/fretviz/internal/domain"
	"github.com/mouse-blink/fretviz/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var cfg *config.Config
var logger *zap.Logger
var workflow domain.Workflow

var configFlag string
var presetFlag string
var tuningFlag string
var rootFlag string
var chordFlag string
var scaleFlag string
var labelsFlag string
var fretsFlag int
var verboseFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fretviz",
		Short: "Show chord and scale positions on a fretboard",
		Long: `Fretviz draws where the notes of a chord or scale fall on a stringed
instrument's fretboard, for any tuning and any root.

Run without a subcommand in a terminal to open the interactive view;
with redirected output it prints the selected diagram once.

Examples:
  fretviz --root A --scale minor-blues
  fretviz show --preset drop-d --chord 7th --format svg > d7.svg
  fretviz export --root E --dir ./diagrams --parallel 4`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd, isInteractive(cmd))
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isInteractive(cmd) {
				return workflow.Interactive(domain.InteractiveArgs{Selection: selection()})
			}

			return workflow.Show(domain.ShowArgs{
				Selection: selection(),
				Format:    domain.FormatText,
				Out:       cmd.OutOrStdout(),
			})
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&configFlag, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/fretviz/config.yaml)")
	flags.StringVarP(&presetFlag, "preset", "p", "", "tuning preset by id or name (see 'fretviz list presets')")
	flags.StringVarP(&tuningFlag, "tuning", "t", "", "tuning from the lowest string up, e.g. \"D A D G B E\"")
	flags.StringVarP(&rootFlag, "root", "r", "", "root note, e.g. C, F#, A#")
	flags.StringVar(&chordFlag, "chord", "", "show a chord by id or name")
	flags.StringVar(&scaleFlag, "scale", "", "show a scale by id or name")
	flags.StringVarP(&labelsFlag, "labels", "l", "", "marker labels: interval or note")
	flags.IntVarP(&fretsFlag, "frets", "f", 0, "number of frets to draw, open string included")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// isInteractive reports whether the root command should start the TUI.
func isInteractive(cmd *cobra.Command) bool {
	return !cmd.HasParent() && controller.IsTTY(cmd.OutOrStdout())
}

// setup loads the configuration and, unless a workflow was injected, wires
// the catalog, store, UI and logger into a new one.
func setup(cmd *cobra.Command, interactive bool) error {
	path := configFlag
	if path == "" {
		path = config.DefaultPath()
	}

	loaded, err := config.Load(path)
	if err != nil {
		return err
	}

	cfg = loaded

	if workflow != nil {
		return nil
	}

	if interactive {
		logger, err = logging.ForTerminalUI(cfg.Logging, verboseFlag)
	} else {
		logger, err = logging.New(cfg.Logging, verboseFlag)
	}

	if err != nil {
		return err
	}

	catalog, err := cfg.Catalogs()
	if err != nil {
		return fmt.Errorf("failed to load theory tables: %w", err)
	}

	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))
	workflow = domain.NewWorkflow(catalog, adapter.NewDiagramStore(), ui, logger)

	logger.Debug("workflow ready",
		zap.String("config", path),
		zap.Int("chords", len(catalog.Chords())),
		zap.Int("scales", len(catalog.Scales())),
		zap.Int("presets", len(catalog.Presets())),
	)

	return nil
}

// selection merges the configured defaults with the command line. A flag
// always beats the config file, so a preset flag drops a configured tuning
// and a chord or scale flag drops a configured mode.
func selection() domain.Selection {
	sel := domain.Selection{}
	if cfg != nil {
		sel = cfg.Selection()
	}

	if presetFlag != "" {
		sel.Preset = presetFlag
		sel.Tuning = ""
	}
	if tuningFlag != "" {
		sel.Tuning = tuningFlag
	}
	if rootFlag != "" {
		sel.Root = rootFlag
	}
	if chordFlag != "" || scaleFlag != "" {
		sel.Mode = ""
	}
	if chordFlag != "" {
		sel.Chord = chordFlag
	}
	if scaleFlag != "" {
		sel.Scale = scaleFlag
	}
	if labelsFlag != "" {
		sel.Labels = labelsFlag
	}
	if fretsFlag != 0 {
		sel.Frets = fretsFlag
	}

	return sel
}
