package logio

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Logger implements a leveled logging facility around an output stream.
// Level labels are styled when the output is a color capable terminal.
type Logger struct {
	sync.Mutex
	output   io.Writer
	styles   map[string]lipgloss.Style
	buf      bytes.Buffer
	exitCode int
}

// NewLogger creates a logger writing to out.
func NewLogger(out io.Writer) *Logger {
	log := &Logger{}
	log.SetOutput(out)
	return log
}

// SetOutput sets the logger's output stream, re-detecting its styling.
func (log *Logger) SetOutput(out io.Writer) {
	log.Lock()
	defer log.Unlock()
	re := lipgloss.NewRenderer(out)
	log.output = out
	log.styles = map[string]lipgloss.Style{
		"TRACE": re.NewStyle().Foreground(lipgloss.Color("240")),
		"WARN":  re.NewStyle().Foreground(lipgloss.Color("220")),
		"ERROR": re.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
}

// ExitCode returns a code to pass to os.Exit, facilitating "exit non-zero if
// any error log" semantics.
func (log *Logger) ExitCode() int {
	log.Lock()
	defer log.Unlock()
	return log.exitCode
}

// Leveledf returns a typical printf-style formatting function that logs
// messages with the given level.
func (log *Logger) Leveledf(level string) func(mess string, args ...interface{}) {
	return func(mess string, args ...interface{}) { log.Printf(level, mess, args...) }
}

// ErrorIf logs any non-nil error through Errorf.
func (log *Logger) ErrorIf(err error) {
	if err != nil {
		log.Errorf("%+v", err)
	}
}

// Errorf is like `Printf("ERROR", ...)` but additionally retains state so that
// ExitCode() will return non-zero.
func (log *Logger) Errorf(mess string, args ...interface{}) {
	log.Lock()
	defer log.Unlock()
	log.printf("ERROR", mess, args...)
	log.exitCode = 1
}

// Printf prints a line to the output stream like "level: message...\n".
// Any io error is retained as exit code 2 for ExitCode(), since it cannot be
// reported through the failing stream.
func (log *Logger) Printf(level, mess string, args ...interface{}) {
	log.Lock()
	defer log.Unlock()
	if err := log.printf(level, mess, args...); err != nil {
		log.exitCode = 2
	}
}

func (log *Logger) printf(level, mess string, args ...interface{}) error {
	if log.output == nil {
		return nil
	}
	if level != "" {
		if style, ok := log.styles[level]; ok {
			level = style.Render(level)
		}
		log.buf.WriteString(level)
		log.buf.WriteString(": ")
	}
	if len(args) > 0 {
		fmt.Fprintf(&log.buf, mess, args...)
	} else {
		log.buf.WriteString(mess)
	}
	if b := log.buf.Bytes(); len(b) > 0 && b[len(b)-1] != '\n' {
		log.buf.WriteByte('\n')
	}
	_, err := log.buf.WriteTo(log.output)
	log.buf.Reset()
	return err
}
