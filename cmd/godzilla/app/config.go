package app

import (
	"fmt"

	"github.com/Nehal-Choudhury/Godzilla-Wordlist-Generator/internal/wordlist/runner"
	"github.com/Nehal-Choudhury/Godzilla-Wordlist-Generator/pkg/logging"
)

type Config struct {
	Logging *logging.LoggerConfig `yaml:"logging"`
	Writer  *runner.Config        `yaml:"writer"`
}

func DefaultConfig() *Config {
	return &Config{
		Logging: &logging.LoggerConfig{Level: "info"},
		Writer:  &runner.Config{FlushEvery: runner.DefaultFlushEvery},
	}
}

func (c *Config) Validate() error {
	if c.Logging == nil {
		return fmt.Errorf("logging config is required")
	}

	if c.Writer == nil {
		return fmt.Errorf("writer config is required")
	}

	if c.Writer.FlushEvery <= 0 {
		return fmt.Errorf("flush_every must be greater than 0")
	}

	return nil
}
