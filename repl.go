package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jcorbin/gorpn/internal/fileinput"
	"github.com/jcorbin/gorpn/internal/flushio"
	"github.com/jcorbin/gorpn/internal/logio"
	"github.com/jcorbin/gorpn/internal/panicerr"
	"github.com/jcorbin/gorpn/internal/rpn"
	"github.com/jcorbin/gorpn/internal/version"
)

// REPL reads lines from its input, evaluates each one, and writes the
// line's output followed by the resulting stack.
type REPL struct {
	interp *rpn.Interp
	in     fileinput.Input
	out    flushio.WriteFlusher
	log    *logio.Logger
	styles styles

	interactive bool
	interpOpts  []rpn.Option
	words       []wordOption
}

type styles struct {
	prompt lipgloss.Style
	label  lipgloss.Style
	err    lipgloss.Style
}

func newStyles(re *lipgloss.Renderer) styles {
	return styles{
		prompt: re.NewStyle().Bold(true).Foreground(lipgloss.Color("81")),
		label:  re.NewStyle().Foreground(lipgloss.Color("240")),
		err:    re.NewStyle().Foreground(lipgloss.Color("196")),
	}
}

// NewREPL creates a REPL around a new interpreter; any words given with
// WithWord are defined before the first line is read.
func NewREPL(opts ...REPLOption) *REPL {
	var repl REPL
	for _, opt := range defaults {
		opt.apply(&repl)
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(&repl)
		}
	}
	repl.interp = rpn.New(repl.interpOpts...)
	for _, word := range repl.words {
		repl.interp.Define(word.name, word.body)
	}
	return &repl
}

// Run evaluates input lines until input runs out, a line says "bye", or ctx
// is done. Evaluation errors are reported to the user and do not stop Run.
func (repl *REPL) Run(ctx context.Context) (rerr error) {
	defer func() {
		if err := repl.in.Close(); rerr == nil {
			rerr = err
		}
	}()

	if repl.interactive {
		fmt.Fprintf(repl.out, "gorpn %v\ntype 'bye' to exit\n", version.Version)
	}

	for {
		if err := ctx.Err(); err != nil {
			repl.out.Flush()
			return err
		}

		if repl.interactive {
			io.WriteString(repl.out, repl.styles.prompt.Render(">>>")+" ")
		}
		if err := repl.out.Flush(); err != nil {
			return err
		}

		line, err := repl.in.ReadLine()
		if err == io.EOF {
			if repl.interactive {
				io.WriteString(repl.out, "\n")
			}
			return repl.out.Flush()
		} else if err != nil {
			return err
		}

		if bye := repl.handle(line); bye {
			return repl.out.Flush()
		}
	}
}

// handle evaluates one line, returning true if it asked to end the session.
func (repl *REPL) handle(line fileinput.Line) (bye bool) {
	var output string
	err := panicerr.Recover("eval", func() (err error) {
		output, err = repl.interp.Eval(line.Text)
		return err
	})

	switch {
	case errors.Is(err, rpn.ErrBye):
		fmt.Fprintln(repl.out, "Exiting...")
		return true
	case err != nil:
		repl.reportError(line, err)
	default:
		fmt.Fprintln(repl.out, output)
	}

	fmt.Fprintf(repl.out, "%v %v\n", repl.styles.label.Render("Stack:"), repl.interp.Stack())
	return false
}

func (repl *REPL) reportError(line fileinput.Line, err error) {
	mess := errorMessage(err)
	if !repl.interactive {
		mess = fmt.Sprintf("%v: %v", line.Location, mess)
	}
	fmt.Fprintln(repl.out, repl.styles.err.Render(mess))

	if repl.log == nil {
		return
	}
	if panicerr.IsPanic(err) {
		repl.log.Errorf("%v: %v", line, err)
		lw := logio.Writer{Logf: repl.log.Leveledf("STACK")}
		io.WriteString(&lw, panicerr.PanicStack(err))
		lw.Close()
	} else if !repl.interactive {
		repl.log.Errorf("%v: %v", line, err)
	}
}

var errorMessages = []struct {
	err  error
	mess string
}{
	{rpn.ErrNameNotFound, "Name not found"},
	{rpn.ErrStackUnderflow, "Stack underflow"},
	{rpn.ErrBadNumberParse, "Number couldn't be parsed"},
	{rpn.ErrBadWordDefinitionForm, "Bad word definition form"},
	{rpn.ErrDivisionByZero, "Division by zero"},
	{rpn.ErrExpansionTooDeep, "Word expansion too deep"},
}

// errorMessage describes an evaluation error for the user.
func errorMessage(err error) string {
	if panicerr.IsPanic(err) {
		return fmt.Sprintf("Internal error: %v", err)
	}
	for _, em := range errorMessages {
		if !errors.Is(err, em.err) {
			continue
		}
		var te rpn.TokenError
		if errors.As(err, &te) {
			return fmt.Sprintf("%v: %q", em.mess, te.Token)
		}
		return em.mess
	}
	return err.Error()
}

// ListWords writes every defined word in definition syntax.
func (repl *REPL) ListWords() error {
	for _, name := range repl.interp.Words() {
		body, _ := repl.interp.Lookup(name)
		if body = strings.TrimSpace(body); body != "" {
			body += " "
		}
		fmt.Fprintf(repl.out, ": %v %v;\n", name, body)
	}
	return repl.out.Flush()
}
