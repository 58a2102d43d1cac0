package config

// Default values for optional configuration fields.
const (
	DefaultHost     = ""
	DefaultPort     = 3000
	DefaultLogLevel = "info"
)
