package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Validate checks that the port is bindable and the log level is known.
// Port 0 is allowed and lets the OS pick a free port.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port must be between 0 and 65535, got %d", c.Port)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}
