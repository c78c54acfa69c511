package clix

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sugamrai0/AIML/internal/services"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("format", "text", "")
	flags.String("level", "", "")
	flags.String("time", "", "")
	flags.String("style", "", "")
	flags.String("origins", "", "")
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		args    []string
		want    string
		wantErr bool
	}{
		{args: nil, want: FormatText},
		{args: []string{"--format", "JSON"}, want: FormatJSON},
		{args: []string{"--format", " table "}, want: FormatTable},
		{args: []string{"--format", "yaml"}, wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseOutputFormat(newFlags(t, tt.args...))
		if tt.wantErr {
			assert.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseSuggestParams(t *testing.T) {
	flags := newFlags(t, "--level", " Intermediate", "--time", "10 hours/week ")
	got := ParseSuggestParams(flags, []string{"learn", "langchain"})
	assert.Equal(t, services.SuggestParams{
		Goals:           "learn langchain",
		ExperienceLevel: "intermediate",
		TimeCommitment:  "10 hours/week",
	}, got)
}

func TestParseList(t *testing.T) {
	flags := newFlags(t, "--origins", "http://a.test, ,http://b.test,")
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, ParseList(flags, "origins"))
	assert.Nil(t, ParseList(newFlags(t), "origins"))
}
