// Package config provides the request structure built from the command line.
package config

// LogLevel is the verbosity requested on the command line.
type LogLevel int

const (
	// LevelUnset means no -v flag was given; only warnings and errors are logged.
	LevelUnset LogLevel = iota
	// LevelInfo is selected by -v
	LevelInfo
	// LevelDebug is selected by -vv
	LevelDebug
)

// String returns the effective threshold name: warn, info or debug.
func (l LogLevel) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	default:
		return "warn"
	}
}

// LevelFromVerbosity converts the number of -v flags into a LogLevel.
// Anything beyond -vv is clamped to debug.
func LevelFromVerbosity(count int) LogLevel {
	switch {
	case count <= 0:
		return DefaultLogLevel
	case count == 1:
		return LevelInfo
	default:
		return LevelDebug
	}
}

// Request holds one invocation's parsed arguments.
type Request struct {
	// N is the index into the Fibonacci sequence
	N int
	// LogLevel is the requested verbosity
	LogLevel LogLevel
}

// NewRequest creates a Request for n with the level derived from verbosity.
func NewRequest(n, verbosity int) *Request {
	return &Request{
		N:        n,
		LogLevel: LevelFromVerbosity(verbosity),
	}
}
