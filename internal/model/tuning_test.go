package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTuning(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Tuning
		wantErr error
	}{
		{name: "commas", input: "E,A,D,G,B,E", want: Tuning{4, 9, 2, 7, 11, 4}},
		{name: "spaces", input: "D A D G B E", want: Tuning{2, 9, 2, 7, 11, 4}},
		{name: "mixed", input: "F#, B E,A D G B E", want: Tuning{6, 11, 4, 9, 2, 7, 11, 4}},
		{name: "empty", input: " , ", wantErr: ErrEmptyTuning},
		{name: "bad note", input: "E,A,X", wantErr: ErrInvalidNoteName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTuning(tt.input)
			if tt.wantErr != nil {
				require.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTuning_Validate(t *testing.T) {
	require.ErrorIs(t, Tuning{}.Validate(), ErrEmptyTuning)
	require.ErrorIs(t, Tuning{4, 12}.Validate(), ErrInvalidNoteName)
	require.NoError(t, Tuning{4, 9}.Validate())
}

func TestTuning_CloneDoesNotAlias(t *testing.T) {
	orig := Tuning{4, 9, 2}
	clone := orig.Clone()
	clone[0] = 2

	require.Equal(t, PitchClass(4), orig[0])
	require.False(t, orig.Equal(clone))
	require.Nil(t, Tuning(nil).Clone())
}

func TestTuning_String(t *testing.T) {
	require.Equal(t, "E A D G B E", Tuning{4, 9, 2, 7, 11, 4}.String())
}
