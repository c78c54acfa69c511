package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

func (c *Config) Validate() error {
	// Server config
	port, err := strconv.Atoi(c.Server.Port)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("server.port must be a number between 1 and 65535, got %q", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be one of debug, release, test, got %q", c.Server.Mode)
	}

	// Logging config
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}

	// Learning path defaults
	if strings.TrimSpace(c.LearningPath.DefaultExperienceLevel) == "" {
		return errors.New("learning_path.default_experience_level is required")
	}
	if strings.TrimSpace(c.LearningPath.DefaultTimeCommitment) == "" {
		return errors.New("learning_path.default_time_commitment is required")
	}

	// Summarization config
	if c.Summarization.MinLength < 0 {
		return errors.New("summarization.min_length must not be negative")
	}
	if c.Summarization.MaxLength < 0 {
		return errors.New("summarization.max_length must not be negative")
	}

	return nil
}
