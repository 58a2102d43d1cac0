// Package config resolves the server's listen address and log level.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// the PORT environment variable. Command-line flags are applied last by the
// caller. The routing code never reads the environment itself.
package config
