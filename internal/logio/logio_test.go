package logio

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var out bytes.Buffer
	log := NewLogger(&out)

	log.Printf("", "plain")
	log.Printf("INFO", "hello %v", "world")
	log.Leveledf("TRACE")("eval %q", "1 2 +")
	log.Printf("WARN", "already terminated\n")
	assert.Equal(t, 0, log.ExitCode(), "expected zero exit code without errors")

	log.ErrorIf(nil)
	assert.Equal(t, 0, log.ExitCode(), "expected nil error to be ignored")

	log.ErrorIf(errors.New("bad"))
	assert.Equal(t, 1, log.ExitCode(), "expected non-zero exit code after an error")

	assert.Equal(t, lines(
		"plain",
		"INFO: hello world",
		`TRACE: eval "1 2 +"`,
		"WARN: already terminated",
		"ERROR: bad",
	), out.String())
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) { return 0, errors.New("closed") }

func TestLogger_writeError(t *testing.T) {
	log := NewLogger(failWriter{})
	log.Printf("INFO", "lost")
	assert.Equal(t, 2, log.ExitCode(), "expected io errors to be retained")
}

func TestLogger_noOutput(t *testing.T) {
	var log Logger
	log.Printf("INFO", "nowhere")
	assert.Equal(t, 0, log.ExitCode())
}

func TestWriter(t *testing.T) {
	var logged []string
	lw := &Writer{Logf: func(mess string, args ...interface{}) {
		logged = append(logged, fmt.Sprintf(mess, args...))
	}}

	fmt.Fprintf(lw, "Error: unknown flag\n\nUsage:")
	assert.Equal(t, []string{"Error: unknown flag"}, logged, "expected only complete non-blank lines")

	fmt.Fprintf(lw, " gorpn")
	assert.NoError(t, lw.Close())
	assert.Equal(t, []string{"Error: unknown flag", "Usage: gorpn"}, logged)
}

func lines(parts ...string) string {
	var buf bytes.Buffer
	for _, part := range parts {
		buf.WriteString(part)
		buf.WriteByte('\n')
	}
	return buf.String()
}
