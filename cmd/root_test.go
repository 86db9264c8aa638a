package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mouse-blink/fretviz/internal/domain"
	domainmocks "github.com/mouse-blink/fretviz/internal/domain/mocks"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// isolateConfig points the config lookup at an empty directory and clears
// the environment overrides.
func isolateConfig(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)

	for _, env := range []string{"FRETVIZ_PRESET", "FRETVIZ_TUNING", "FRETVIZ_ROOT", "FRETVIZ_LABELS", "FRETVIZ_LOG_LEVEL"} {
		t.Setenv(env, "")
	}
}

// useMockWorkflow swaps the global workflow for a mock until the test ends.
func useMockWorkflow(t *testing.T) *domainmocks.MockWorkflow {
	t.Helper()
	isolateConfig(t)

	mockWorkflow := domainmocks.NewMockWorkflow(t)

	originalWorkflow := workflow
	workflow = mockWorkflow

	t.Cleanup(func() {
		workflow = originalWorkflow
		cfg = nil
	})

	return mockWorkflow
}

func newTestRootCmd(out *bytes.Buffer) *cobra.Command {
	cmd := newRootCmd()
	cmd.AddCommand(newShowCmd(), newListCmd(), newExportCmd())
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})

	return cmd
}

func TestRootCmd_ShowsDefaultsWithoutTTY(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	var out bytes.Buffer
	cmd := newTestRootCmd(&out)

	mockWorkflow.On("Show", mock.MatchedBy(func(args domain.ShowArgs) bool {
		return args.Format == domain.FormatText &&
			args.Out == &out &&
			args.Selection == domain.Selection{Root: "C", Labels: "interval", Frets: 15}
	})).Return(nil)

	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_FlagsBuildSelection(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	cmd := newTestRootCmd(&bytes.Buffer{})

	want := domain.Selection{
		Preset: "drop-d",
		Root:   "A",
		Scale:  "minor-blues",
		Labels: "note",
		Frets:  12,
	}

	mockWorkflow.On("Show", mock.MatchedBy(func(args domain.ShowArgs) bool {
		return args.Selection == want
	})).Return(nil)

	cmd.SetArgs([]string{"--preset", "drop-d", "-r", "A", "--scale", "minor-blues", "-l", "note", "-f", "12"})
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_FlagsBeatConfigFile(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	path := filepath.Join(t.TempDir(), "fretviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
defaults:
  tuning: D A D G A D
  mode: scale
  scale: major-pentatonic
  root: D
`), 0o644))

	cmd := newTestRootCmd(&bytes.Buffer{})

	mockWorkflow.On("Show", mock.MatchedBy(func(args domain.ShowArgs) bool {
		sel := args.Selection
		return sel.Preset == "open-g" &&
			sel.Tuning == "" &&
			sel.Mode == "" &&
			sel.Chord == "sus4" &&
			sel.Scale == "major-pentatonic" &&
			sel.Root == "D"
	})).Return(nil)

	cmd.SetArgs([]string{"--config", path, "--preset", "open-g", "--chord", "sus4"})
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_EnvBeatsConfigFile(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	t.Setenv("FRETVIZ_ROOT", "G#")

	path := filepath.Join(t.TempDir(), "fretviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaults:\n  root: D\n"), 0o644))

	cmd := newTestRootCmd(&bytes.Buffer{})

	mockWorkflow.On("Show", mock.MatchedBy(func(args domain.ShowArgs) bool {
		return args.Selection.Root == "G#"
	})).Return(nil)

	cmd.SetArgs([]string{"--config", path})
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	useMockWorkflow(t)

	path := filepath.Join(t.TempDir(), "fretviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaults:\n  labels: solfege\n"), 0o644))

	cmd := newTestRootCmd(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "defaults.labels")
}

func TestRootCmd_WorkflowError(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)
	errShow := errors.New("unknown chord")

	mockWorkflow.On("Show", mock.Anything).Return(errShow)

	cmd := newTestRootCmd(&bytes.Buffer{})
	cmd.SetArgs([]string{"--chord", "maj13"})

	require.ErrorIs(t, cmd.Execute(), errShow)
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	useMockWorkflow(t)

	cmd := newTestRootCmd(&bytes.Buffer{})
	cmd.SetArgs([]string{"C", "major"})

	require.Error(t, cmd.Execute())
}

func TestRootCmd_WiresRealWorkflow(t *testing.T) {
	isolateConfig(t)

	originalWorkflow := workflow
	workflow = nil
	t.Cleanup(func() {
		workflow = originalWorkflow
		cfg = nil
	})

	var out bytes.Buffer
	cmd := newTestRootCmd(&out)
	cmd.SetArgs([]string{"--root", "A", "--scale", "メジャースケール"})

	require.NoError(t, cmd.Execute())
	require.NotNil(t, workflow)
	assert.Contains(t, out.String(), "A メジャースケール")
	assert.Contains(t, out.String(), "Tuning: E A D G B E")
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	if cmd.Use != "fretviz" {
		t.Errorf("newRootCmd() Use = %v, want %v", cmd.Use, "fretviz")
	}
	if cmd.Short == "" {
		t.Error("newRootCmd() Short should not be empty")
	}
	if cmd.Long == "" {
		t.Error("newRootCmd() Long should not be empty")
	}

	for _, name := range []string{"config", "preset", "tuning", "root", "chord", "scale", "labels", "frets", "verbose"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("newRootCmd() missing persistent flag --%s", name)
		}
	}
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0, len(rootCmd.Commands()))
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	assert.Subset(t, names, []string{"show", "list", "export"})
}

func TestExecute(t *testing.T) {
	// Save original rootCmd
	originalRootCmd := rootCmd

	// Create a mock command that succeeds
	mockCmd := &cobra.Command{
		Use: "test",
		RunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
	}
	mockCmd.SetOut(&bytes.Buffer{})
	mockCmd.SetErr(&bytes.Buffer{})
	mockCmd.SetArgs([]string{})

	rootCmd = mockCmd

	// Execute should not panic or exit
	Execute()

	// Restore
	rootCmd = originalRootCmd
}

func TestExecute_ProcessLevel_Success(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS") == "1" {
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Println("success")
				return nil
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		mockCmd.SetArgs([]string{})
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		Execute()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Success")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS=1")
	output, err := cmd.CombinedOutput()

	if err != nil {
		t.Errorf("Process exited with error: %v, output: %s", err, output)
	}

	if !strings.Contains(string(output), "success") {
		t.Errorf("Expected 'success' in output, got: %s", output)
	}
}

func TestExecute_ProcessLevel_Failure(t *testing.T) {
	if os.Getenv("TEST_EXECUTE_SUBPROCESS_FAIL") == "1" {
		originalRootCmd := rootCmd
		mockCmd := &cobra.Command{
			Use: "test",
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(os.Stderr, "error occurred")
				return fmt.Errorf("command failed")
			},
		}
		mockCmd.SetOut(os.Stdout)
		mockCmd.SetErr(os.Stderr)
		mockCmd.SetArgs([]string{})
		rootCmd = mockCmd
		defer func() { rootCmd = originalRootCmd }()

		Execute() // This should call os.Exit(1)
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestExecute_ProcessLevel_Failure")
	cmd.Env = append(os.Environ(), "TEST_EXECUTE_SUBPROCESS_FAIL=1")
	output, err := cmd.CombinedOutput()

	if err == nil {
		t.Error("Expected process to exit with error")
	}

	if exitErr, ok := err.(*exec.ExitError); ok {
		if exitErr.ExitCode() != 1 {
			t.Errorf("Expected exit code 1, got %d", exitErr.ExitCode())
		}
	} else {
		t.Errorf("Expected exec.ExitError, got %T", err)
	}

	if !strings.Contains(string(output), "error occurred") {
		t.Logf("Output: %s", output)
	}
}
