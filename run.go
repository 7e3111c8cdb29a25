package checkedcmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// State is handed to the function executed by [Run].
type State struct {
	// Set is the parsed and validated argument set.
	Set *Set

	Stdin          io.Reader
	Stdout, Stderr io.Writer
}

// RunOptions specifies options for [Run].
type RunOptions struct {
	// Stdin, Stdout, and Stderr are the standard input, output, and error streams. If any of these
	// are nil, the defaults are used ([os.Stdin], [os.Stdout], and [os.Stderr], respectively).
	Stdin          io.Reader
	Stdout, Stderr io.Writer

	// Name is the program name shown in usage text. See [WithName].
	Name string
	// Logger receives debug records about parsing. See [WithLogger].
	Logger *slog.Logger
}

// Run parses args against set and executes exec with the result. It is the recommended entry point
// for programs:
//
//	if err := checkedcmd.Run(ctx, os.Args[1:], set, exec, nil); err != nil {
//	    fmt.Fprintf(os.Stderr, "error: %v\n", err)
//	    os.Exit(1)
//	}
//
// When set contains a [Help] spec and -h or --help was supplied, Run prints the usage text to
// Stdout and returns nil without calling exec, whether or not the other inputs were valid. A panic
// in exec is recovered and returned as an error.
//
// The options parameter may be nil, in which case default values are used.
func Run(ctx context.Context, args []string, set *Set, exec func(context.Context, *State) error, options *RunOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if exec == nil {
		return errors.New("exec function is nil")
	}
	options = checkAndSetRunOptions(options)

	var opts []Option
	if options.Name != "" {
		opts = append(opts, WithName(options.Name))
	}
	if options.Logger != nil {
		opts = append(opts, WithLogger(options.Logger))
	}
	parsed, err := Parse(args, set, opts...)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) && pe.HelpRequested {
			fmt.Fprintln(options.Stdout, pe.Usage)
			return nil
		}
		return err
	}
	if help, ok := Lookup[*Help](parsed); ok && help.Value().Get() {
		fmt.Fprintln(options.Stdout, help.Description())
		return nil
	}
	return run(ctx, exec, &State{
		Set:    parsed,
		Stdin:  options.Stdin,
		Stdout: options.Stdout,
		Stderr: options.Stderr,
	})
}

func run(ctx context.Context, exec func(context.Context, *State) error, s *State) (retErr error) {
	defer func() {
		if r := recover(); r != nil {
			switch err := r.(type) {
			case error:
				// Programming errors from this package are already descriptive.
				var intErr *internalError
				if errors.As(err, &intErr) {
					retErr = err
				} else {
					retErr = fmt.Errorf("panic: %w", err)
				}
			default:
				retErr = fmt.Errorf("panic: %v", r)
			}
		}
	}()
	return exec(ctx, s)
}

func checkAndSetRunOptions(opt *RunOptions) *RunOptions {
	if opt == nil {
		opt = &RunOptions{}
	}
	if opt.Stdin == nil {
		opt.Stdin = os.Stdin
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	return opt
}
