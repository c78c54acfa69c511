package learningpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sugamrai0/AIML/internal/models"
)

func TestTotalDuration(t *testing.T) {
	tests := []struct {
		name   string
		phases []models.Phase
		want   string
	}{
		{name: "no phases", phases: nil, want: "0-0 weeks"},
		{name: "single phase", phases: []models.Phase{{Duration: "3-4 weeks"}}, want: "3-4 weeks"},
		{
			name:   "upper bound is sum plus count",
			phases: []models.Phase{{Duration: "4-6 weeks"}, {Duration: "6-8 weeks"}, {Duration: "3-4 weeks"}},
			want:   "13-16 weeks",
		},
		{name: "whitespace around bound", phases: []models.Phase{{Duration: " 10 -12 weeks"}}, want: "10-11 weeks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TotalDuration(tt.phases)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTotalDuration_Malformed(t *testing.T) {
	for _, d := range []string{"", "soon", "four-six weeks", "-3 weeks"} {
		_, err := TotalDuration([]models.Phase{{Title: "Broken", Duration: d}})
		require.Error(t, err, d)
		assert.ErrorIs(t, err, models.ErrMalformedDuration)
		assert.Contains(t, err.Error(), `phase "Broken"`)
	}
}
