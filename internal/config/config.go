package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// EnvPort is the environment variable consulted for the listen port.
const EnvPort = "PORT"

// Config is the explicit configuration handed to the server at startup.
type Config struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	LogLevel string `yaml:"log_level"`
}

// Default returns a Config populated with built-in defaults.
func Default() *Config {
	return &Config{
		Host:     DefaultHost,
		Port:     DefaultPort,
		LogLevel: DefaultLogLevel,
	}
}

// Load reads a YAML file on top of the defaults. An empty path or a
// missing file yields the defaults with no error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the environment using lookup,
// normally os.LookupEnv. An empty PORT is ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	v, ok := lookup(EnvPort)
	if !ok || v == "" {
		return nil
	}
	port, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s=%q is not a port number: %w", EnvPort, v, err)
	}
	c.Port = port
	return nil
}

// Addr is the host:port string to bind.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
