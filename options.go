package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/jcorbin/gorpn/internal/fileinput"
	"github.com/jcorbin/gorpn/internal/flushio"
	"github.com/jcorbin/gorpn/internal/logio"
	"github.com/jcorbin/gorpn/internal/rpn"
)

// REPLOption configures a REPL under NewREPL.
type REPLOption interface{ apply(repl *REPL) }

var defaults = []REPLOption{
	withOutput(io.Discard),
}

func WithInput(rs ...io.Reader) REPLOption            { return inputOption(rs) }
func WithOutput(w io.Writer) REPLOption               { return withOutput(w) }
func WithTee(w io.Writer) REPLOption                  { return withTee(w) }
func WithLogger(log *logio.Logger) REPLOption         { return loggerOption{log} }
func WithInteractive(interactive bool) REPLOption     { return interactiveOption(interactive) }
func WithInterpOptions(opts ...rpn.Option) REPLOption { return interpOption(opts) }
func WithWord(name, body string) REPLOption           { return wordOption{name, body} }

type inputOption []io.Reader
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type loggerOption struct{ *logio.Logger }
type interactiveOption bool
type interpOption []rpn.Option
type wordOption struct{ name, body string }

func withOutput(w io.Writer) outputOption { return outputOption{w} }
func withTee(w io.Writer) teeOption       { return teeOption{w} }

func (rs inputOption) apply(repl *REPL) {
	repl.in.Queue = append(repl.in.Queue, rs...)
}

// Output styling is detected on the given writer, before any buffering hides
// whether it is a terminal.
func (o outputOption) apply(repl *REPL) {
	if repl.out != nil {
		repl.out.Flush()
	}
	repl.out = flushio.NewWriteFlusher(o.Writer)
	repl.styles = newStyles(lipgloss.NewRenderer(o.Writer))
}

func (o teeOption) apply(repl *REPL) {
	repl.out = flushio.WriteFlushers(repl.out, flushio.NewWriteFlusher(o.Writer))
}

func (o loggerOption) apply(repl *REPL)      { repl.log = o.Logger }
func (i interactiveOption) apply(repl *REPL) { repl.interactive = bool(i) }
func (opts interpOption) apply(repl *REPL)   { repl.interpOpts = append(repl.interpOpts, opts...) }
func (word wordOption) apply(repl *REPL)     { repl.words = append(repl.words, word) }

// stdinReader hides any Close method, so that exhausting standard input does
// not close it.
func stdinReader(r io.Reader) io.Reader {
	return fileinput.NamedReader("<stdin>", struct{ io.Reader }{r})
}
