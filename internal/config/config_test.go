package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFrom_Defaults(t *testing.T) {
	cfg, err := LoadConfigFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Addr)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, "beginner", cfg.LearningPath.DefaultExperienceLevel)
	assert.Equal(t, "3-5 hours/week", cfg.LearningPath.DefaultTimeCommitment)
	assert.True(t, cfg.QA.Enabled)
	assert.Equal(t, 50, cfg.Summarization.MinLength)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFrom_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  port: "9001"
log:
  level: debug
  format: json
learning_path:
  default_experience_level: intermediate
summarization:
  min_length: 10
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("AIML_LEARNING_PATH_DEFAULT_TIME_COMMITMENT", "1 hour/day")

	cfg, err := LoadConfigFrom(dir)
	require.NoError(t, err)
	assert.Equal(t, "9001", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "intermediate", cfg.LearningPath.DefaultExperienceLevel)
	assert.Equal(t, "1 hour/day", cfg.LearningPath.DefaultTimeCommitment)
	assert.Equal(t, 10, cfg.Summarization.MinLength)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFrom_BadFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server: [unclosed"), 0o600))

	_, err := LoadConfigFrom(dir)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := LoadConfigFrom(t.TempDir())
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "bad port", mutate: func(c *Config) { c.Server.Port = "http" }, wantErr: "server.port"},
		{name: "port out of range", mutate: func(c *Config) { c.Server.Port = "70000" }, wantErr: "server.port"},
		{name: "bad mode", mutate: func(c *Config) { c.Server.Mode = "prod" }, wantErr: "server.mode"},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "loud" }, wantErr: "log.level"},
		{name: "bad format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: "log.format"},
		{name: "blank experience", mutate: func(c *Config) { c.LearningPath.DefaultExperienceLevel = " " }, wantErr: "default_experience_level"},
		{name: "blank commitment", mutate: func(c *Config) { c.LearningPath.DefaultTimeCommitment = "" }, wantErr: "default_time_commitment"},
		{name: "negative min length", mutate: func(c *Config) { c.Summarization.MinLength = -1 }, wantErr: "min_length"},
		{name: "negative max length", mutate: func(c *Config) { c.Summarization.MaxLength = -5 }, wantErr: "max_length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
