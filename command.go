package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jcorbin/gorpn/internal/flushio"
	"github.com/jcorbin/gorpn/internal/logio"
	"github.com/jcorbin/gorpn/internal/rpn"
	"github.com/jcorbin/gorpn/internal/version"
)

type rootFlags struct {
	capacity     int
	maxDepth     int
	appendOutput bool
	defines      []string
	noPrelude    bool
	trace        bool
	tee          string
	timeout      time.Duration
	interactive  bool
	listWords    bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "gorpn [flags] [script ...]",
		Short: "Interactive postfix stack language interpreter",
		Long: `gorpn evaluates lines of space separated postfix tokens against an integer
stack, printing what each line prints followed by the stack.

Scripts named as arguments are evaluated in order, then standard input; use "-"
to place standard input elsewhere in that order. Evaluating "bye" ends the
session.`,
		Version:       version.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.run(cmd, args)
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf("gorpn %s\n", version.String()))

	f := cmd.Flags()
	f.IntVarP(&flags.capacity, "capacity", "c", envInt("GORPN_CAPACITY", 20), "Initial stack capacity")
	f.IntVar(&flags.maxDepth, "max-depth", envInt("GORPN_MAX_DEPTH", 1024), "Maximum word expansion depth (0 = unlimited)")
	f.BoolVar(&flags.appendOutput, "append-output", false, "Append word output to the line's output instead of replacing it")
	f.StringArrayVarP(&flags.defines, "define", "d", nil, "Define a word as name=body (repeatable)")
	f.BoolVar(&flags.noPrelude, "no-prelude", false, "Do not define the prelude words")
	f.BoolVar(&flags.trace, "trace", false, "Enable trace logging")
	f.StringVar(&flags.tee, "tee", "", "Also write the session transcript to a file")
	f.DurationVar(&flags.timeout, "timeout", 0, "Specify a time limit for the session")
	f.BoolVarP(&flags.interactive, "interactive", "i", false, "Show banner and prompt (default when standard input is a terminal)")
	f.BoolVar(&flags.listWords, "list-words", false, "List defined words and exit")

	return cmd
}

func (flags rootFlags) run(cmd *cobra.Command, args []string) (rerr error) {
	log := logio.NewLogger(cmd.ErrOrStderr())
	defer func() {
		if code := log.ExitCode(); code != 0 && rerr == nil {
			rerr = exitCode(code)
		}
	}()

	opts := []REPLOption{
		WithOutput(cmd.OutOrStdout()),
		WithLogger(log),
	}

	var interpOpts []rpn.Option
	interpOpts = append(interpOpts,
		rpn.WithCapacity(flags.capacity),
		rpn.WithMaxDepth(flags.maxDepth))
	if flags.appendOutput {
		interpOpts = append(interpOpts, rpn.WithExpansion(rpn.AppendOutput))
	}
	if flags.trace {
		interpOpts = append(interpOpts, rpn.WithLogf(log.Leveledf("TRACE")))
	}
	opts = append(opts, WithInterpOptions(interpOpts...))

	if !flags.noPrelude {
		for _, word := range prelude {
			opts = append(opts, word)
		}
	}
	for _, def := range flags.defines {
		word, err := parseDefine(def)
		if err != nil {
			return err
		}
		opts = append(opts, word)
	}

	inputs, err := openInputs(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	opts = append(opts, WithInput(inputs...))

	interactive := flags.interactive
	if !cmd.Flags().Changed("interactive") {
		interactive = len(args) == 0 && isTerminal(cmd.InOrStdin())
	}
	opts = append(opts, WithInteractive(interactive))

	if flags.tee != "" {
		f, err := os.Create(flags.tee)
		if err != nil {
			return err
		}
		ff := flushio.NewFileFlusher(f)
		defer func() {
			if err := ff.Close(); rerr == nil {
				rerr = err
			}
		}()
		opts = append(opts, WithTee(ff))
	}

	repl := NewREPL(opts...)
	if flags.listWords {
		return repl.ListWords()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if flags.timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flags.timeout)
		defer cancel()
	}
	return repl.Run(ctx)
}

// openInputs opens each named script, with "-" standing for stdin; stdin
// alone is used when no scripts are named.
func openInputs(stdin io.Reader, args []string) ([]io.Reader, error) {
	if len(args) == 0 {
		return []io.Reader{stdinReader(stdin)}, nil
	}
	inputs := make([]io.Reader, 0, len(args))
	for _, arg := range args {
		if arg == "-" {
			inputs = append(inputs, stdinReader(stdin))
			continue
		}
		f, err := os.Open(arg)
		if err != nil {
			for _, r := range inputs {
				if cl, ok := r.(io.Closer); ok {
					cl.Close()
				}
			}
			return nil, err
		}
		inputs = append(inputs, f)
	}
	return inputs, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func envInt(name string, def int) int {
	if s := os.Getenv(name); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			return n
		}
	}
	return def
}

// exitCode carries a process exit status out of a command run that has
// already reported its failures.
type exitCode int

func (code exitCode) Error() string { return fmt.Sprintf("exit status %d", int(code)) }

func isExitCode(err error) (int, bool) {
	var code exitCode
	if errors.As(err, &code) {
		return int(code), true
	}
	return 0, false
}
