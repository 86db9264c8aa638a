package cmd

import (
	"bytes"
	"testing"

	"github.com/mouse-blink/fretviz/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_DefaultFormat(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	cmd := newTestRootCmd(&bytes.Buffer{})

	mockWorkflow.EXPECT().Show(mock.MatchedBy(func(args domain.ShowArgs) bool {
		return args.Format == domain.FormatText && args.Selection.Chord == "dim"
	})).Return(nil)

	cmd.SetArgs([]string{"show", "--chord", "dim"})
	require.NoError(t, cmd.Execute())
}

func TestShowCmd_SVG(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	var out bytes.Buffer
	cmd := newTestRootCmd(&out)

	mockWorkflow.EXPECT().Show(mock.Anything).Run(func(args domain.ShowArgs) {
		assert.Equal(t, domain.FormatSVG, args.Format)
		assert.Equal(t, "D G D G B D", args.Selection.Tuning)
		_, _ = args.Out.Write([]byte("<svg/>"))
	}).Return(nil)

	cmd.SetArgs([]string{"show", "--format", "svg", "--tuning", "D G D G B D"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "<svg/>", out.String())
}

func TestShowCmd_RealSVG(t *testing.T) {
	isolateConfig(t)

	originalWorkflow := workflow
	workflow = nil
	t.Cleanup(func() {
		workflow = originalWorkflow
		cfg = nil
	})

	var out bytes.Buffer
	cmd := newTestRootCmd(&out)
	cmd.SetArgs([]string{"show", "--format", "svg", "--root", "E", "--chord", "minor"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "<title>E マイナー</title>")
}
