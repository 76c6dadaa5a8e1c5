package config

// Default values for the command line
const (
	DefaultLogLevel = LevelUnset
	ProgramName     = "fibonacci"
)
