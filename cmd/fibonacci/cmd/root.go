// Package cmd contains the command line front end of the fibonacci demo.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/twardoch/pyfs-utils/internal/config"
	"github.com/twardoch/pyfs-utils/pkg/version"
)

// ErrEarlyExit is returned by ParseArgs when --help or --version was handled
// and nothing is left to compute.
var ErrEarlyExit = errors.New("help or version printed")

// UsageError reports a malformed command line.
type UsageError struct {
	Err   error
	Usage string
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

var negativeNumber = regexp.MustCompile(`^-[0-9]+$`)

// newRootCmd creates the root command. The parsed request is stored in *req
// once the command runs.
func newRootCmd(req **config.Request) *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   config.ProgramName + " N",
		Short: "Just a Fibonacci demonstration",
		Long: `Just a Fibonacci demonstration.

Computes the N-th Fibonacci number, where fib(1) = fib(2) = 1.

Examples:
  fibonacci 7
  fibonacci -v 12
  fibonacci -vv 42`,
		Version:       version.GetVersion(),
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid value %q for N: must be an integer", args[0])
			}
			*req = config.NewRequest(n, verbosity)
			return nil
		},
	}

	rootCmd.Flags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity (-v for info, -vv for debug)")
	rootCmd.SetVersionTemplate(`{{printf "` + config.ProgramName + ` %s\n" .Version}}` + version.GetNotice() + "\n")

	return rootCmd
}

// ParseArgs parses the command line tokens (without the program name) into a
// Request. Help and version output go to stdout; in that case the returned
// error is ErrEarlyExit. Malformed input yields a *UsageError.
func ParseArgs(args []string, stdout, stderr io.Writer) (*config.Request, error) {
	var req *config.Request

	rootCmd := newRootCmd(&req)
	rootCmd.SetArgs(normalizeArgs(args))
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		return nil, &UsageError{Err: err, Usage: rootCmd.UsageString()}
	}
	if req == nil {
		return nil, ErrEarlyExit
	}
	return req, nil
}

// normalizeArgs moves negative integers behind a "--" terminator so they are
// taken as the positional N rather than unknown shorthand flags.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args)+1)
	var numbers []string
	for i, arg := range args {
		if arg == "--" {
			out = append(out, args[i:]...)
			// Positionals already follow the terminator.
			return append(out, numbers...)
		}
		if negativeNumber.MatchString(arg) {
			numbers = append(numbers, arg)
			continue
		}
		out = append(out, arg)
	}
	if len(numbers) > 0 {
		out = append(out, "--")
		out = append(out, numbers...)
	}
	return out
}

// ExitCode maps an error returned by Main to a process exit status.
// Status 2 is left to the runtime, which uses it for an unrecovered panic.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// ReportError writes err to w unless Main already reported it together with
// the usage text.
func ReportError(w io.Writer, err error) {
	var usageErr *UsageError
	if err == nil || errors.As(err, &usageErr) {
		return
	}
	fmt.Fprintln(w, "Error:", err)
}

// Execute runs the command line with the process arguments.
// This is called by main.main().
func Execute() error {
	return Main(os.Args[1:], os.Stdout, os.Stderr)
}
