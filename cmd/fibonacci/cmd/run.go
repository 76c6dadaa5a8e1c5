package cmd

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/twardoch/pyfs-utils/internal/fib"
	"github.com/twardoch/pyfs-utils/internal/logger"
)

// Main parses args, configures logging on stderr, computes the Fibonacci
// number and prints the result line to stdout.
//
// An n below 1 is a precondition violation and panics; it is not turned into
// an error.
func Main(args []string, stdout, stderr io.Writer) error {
	req, err := ParseArgs(args, stdout, stderr)
	if errors.Is(err, ErrEarlyExit) {
		return nil
	}
	if err != nil {
		var usageErr *UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprintln(stderr, "Error:", usageErr)
			fmt.Fprint(stderr, usageErr.Usage)
		}
		return err
	}

	log, err := logger.Setup(logger.Config{
		Level:  req.LogLevel,
		Output: stderr,
		Color:  logger.IsTerminal(stderr),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync(log)

	log.Debug("Starting Fibonacci computation", zap.Int("n", req.N))
	value := fib.Fib(req.N)
	fmt.Fprintf(stdout, "The %d-th Fibonacci number is %s\n", req.N, value)
	log.Info("Computation finished", zap.Int("n", req.N), zap.Stringer("value", value))

	return nil
}
