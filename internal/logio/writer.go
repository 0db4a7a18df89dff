package logio

import (
	"bytes"
	"sync"
)

// Writer implements an io.Writer around a formatted logging function, so
// that line oriented output from other packages ends up in a Logger.
type Writer struct {
	Logf func(string, ...interface{})

	mu  sync.Mutex
	buf bytes.Buffer
}

// Write buffers p, then flushes any completed lines through Logf.
func (lw *Writer) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.buf.Write(p)
	lw.flushLines(false)
	return len(p), nil
}

// Sync flushes any partial line remaining in the buffer.
func (lw *Writer) Sync() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	lw.flushLines(true)
	return nil
}

// Close calls Sync.
func (lw *Writer) Close() error {
	return lw.Sync()
}

func (lw *Writer) flushLines(all bool) {
	for lw.buf.Len() > 0 {
		if i := bytes.IndexByte(lw.buf.Bytes(), '\n'); i >= 0 {
			line := lw.buf.Next(i)
			lw.buf.Next(1)
			if len(bytes.TrimSpace(line)) > 0 {
				lw.Logf("%s", line)
			}
		} else if all {
			lw.Logf("%s", lw.buf.Next(lw.buf.Len()))
		} else {
			break
		}
	}
}
