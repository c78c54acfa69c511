package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sugamrai0/AIML/internal/models"
)

// run executes the root command with args and returns its stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("AIML_LOG_LEVEL", "error")
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	_, err := rootCmd.ExecuteC()
	return out.String(), err
}

func TestSuggestCommand_JSON(t *testing.T) {
	out, err := run(t, "suggest", "I", "want", "to", "learn", "machine", "learning", "--level", "beginner", "--format", "json")
	require.NoError(t, err)

	var path models.LearningPath
	require.NoError(t, json.Unmarshal([]byte(out), &path))
	assert.Equal(t, "13-16 weeks", path.TotalDuration)
	assert.Equal(t, []models.FocusTag{models.FocusMachineLearning}, path.FocusAreas)
}

func TestSuggestCommand_Table(t *testing.T) {
	out, err := run(t, "suggest", "learn langchain and flowise", "--level", "beginner", "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "Modern AI Frameworks & Tools")
	assert.Contains(t, out, "11-14 weeks")
}

func TestSuggestCommand_InvalidFormat(t *testing.T) {
	_, err := run(t, "suggest", "python", "--format", "xml")
	assert.ErrorContains(t, err, "invalid --format")
}

func TestSuggestCommand_BlankGoals(t *testing.T) {
	_, err := run(t, "suggest", "   ", "--format", "text")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestTemplatesCommand(t *testing.T) {
	out, err := run(t, "templates", "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, strings.ToUpper(out), "DURATION")
	assert.Contains(t, out, "weeks")
}

func TestAskCommand(t *testing.T) {
	out, err := run(t, "ask", "What", "is", "machine", "learning?", "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "What is machine learning?")
	assert.Contains(t, out, "subset of artificial intelligence")
}

func TestSummarizeCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.md")
	text := "Go is a statically typed language. It was designed at Google. " +
		"Goroutines make concurrency cheap. Channels connect goroutines. The standard library is broad."
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))

	out, err := run(t, "summarize", path, "--format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "**Document Summary (MD): notes.md**")
	assert.Contains(t, out, "**AI Summary**: ")
}

func TestDoctorCommand(t *testing.T) {
	out, err := run(t, "doctor")
	require.NoError(t, err)
	assert.Contains(t, out, "192 compositions aggregate cleanly.")
}

func TestCheckCompositions(t *testing.T) {
	checked, failures := checkCompositions()
	assert.Equal(t, 3*64, checked)
	assert.Empty(t, failures)
}
