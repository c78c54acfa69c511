package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Addr string `mapstructure:"addr"`
		Port string `mapstructure:"port"`
		Mode string `mapstructure:"mode"` // gin mode: debug, release or test
	} `mapstructure:"server"`

	CORS struct {
		AllowOrigins []string `mapstructure:"allow_origins"`
	} `mapstructure:"cors"`

	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"` // "text" or "json"
	} `mapstructure:"log"`

	LearningPath struct {
		DefaultExperienceLevel string `mapstructure:"default_experience_level"`
		DefaultTimeCommitment  string `mapstructure:"default_time_commitment"`
	} `mapstructure:"learning_path"`

	QA struct {
		Enabled      bool   `mapstructure:"enabled"`
		DocumentPath string `mapstructure:"document_path"` // empty uses the built-in demo document
	} `mapstructure:"qa"`

	Summarization struct {
		Enabled   bool `mapstructure:"enabled"`
		MinLength int  `mapstructure:"min_length"`
		MaxLength int  `mapstructure:"max_length"` // 0 means no cap
	} `mapstructure:"summarization"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", "localhost")
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.mode", "release")
	v.SetDefault("cors.allow_origins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("learning_path.default_experience_level", "beginner")
	v.SetDefault("learning_path.default_time_commitment", "3-5 hours/week")
	v.SetDefault("qa.enabled", true)
	v.SetDefault("qa.document_path", "")
	v.SetDefault("summarization.enabled", true)
	v.SetDefault("summarization.min_length", 50)
	v.SetDefault("summarization.max_length", 0)
}

// LoadConfig reads config.yaml from the working directory if present, then
// applies AIML_* environment overrides (e.g. AIML_SERVER_PORT).
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".")
}

// LoadConfigFrom is LoadConfig with an explicit search directory.
func LoadConfigFrom(dir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("AIML")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// It's okay if the config file doesn't exist; defaults and env vars apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &config, nil
}
