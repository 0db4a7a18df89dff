package fileinput

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Location names a line in an Input file.
type Location struct {
	Name string
	Line int
}

// Line is one line of input text, without its line ending, along with where
// it was read from.
type Line struct {
	Location
	Text string
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }
func (il Line) String() string      { return fmt.Sprintf("%v %q", il.Location, il.Text) }

// Input implements sequential line reading through a Queue of one or more
// input streams. Each stream is closed, if it is an io.Closer, once it has
// been read to its end.
type Input struct {
	Queue []io.Reader

	br   *bufio.Reader
	cl   io.Closer
	next Location
	Last Line
}

// ReadLine reads the next line from the current input stream, moving on to
// the next queued stream whenever one is exhausted. A final line lacking a
// line feed is still returned. Returns io.EOF after the last stream ends.
func (in *Input) ReadLine() (Line, error) {
	for {
		if in.br == nil && !in.nextIn() {
			return Line{}, io.EOF
		}

		text, err := in.br.ReadString('\n')
		if err != nil && err != io.EOF {
			return Line{}, err
		}
		if err == io.EOF {
			in.closeIn()
			if text == "" {
				continue
			}
		}

		in.Last = Line{in.next, trimLineEnd(text)}
		in.next.Line++
		return in.Last, nil
	}
}

// Close closes the current stream and any streams still queued.
func (in *Input) Close() (err error) {
	if cerr := in.closeIn(); cerr != nil {
		err = cerr
	}
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

func trimLineEnd(text string) string {
	text = strings.TrimSuffix(text, "\n")
	return strings.TrimSuffix(text, "\r")
}

func (in *Input) closeIn() (err error) {
	if in.cl != nil {
		err = in.cl.Close()
		in.cl = nil
	}
	in.br = nil
	return err
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	in.br = bufio.NewReader(r)
	in.cl, _ = r.(io.Closer)
	in.next = Location{Name: nameOf(r), Line: 1}
	return true
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}

// NamedReader attaches a name to a reader, for use in Location.
func NamedReader(name string, r io.Reader) io.Reader {
	if cl, ok := r.(io.Closer); ok {
		return namedReadCloser{namedReader{r, name}, cl}
	}
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

type namedReadCloser struct {
	namedReader
	io.Closer
}

func (nr namedReader) Name() string { return nr.name }
