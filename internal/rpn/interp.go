package rpn

import (
	"fmt"
	"sort"
)

// Interp holds the data stack and word dictionary of one interpreter session.
type Interp struct {
	logging

	// The stack is a plain LIFO of ints; its capacity is only a hint, it
	// grows as needed.
	stack []int

	// The dictionary maps word names, exactly as defined, to the raw text
	// of their bodies. Bodies are not parsed until the word is used.
	dict map[string]string

	maxDepth  int
	depth     int
	expansion ExpansionMode
}

// New creates an interpreter with an empty stack and dictionary.
func New(opts ...Option) *Interp {
	var in Interp
	options(defaults).apply(&in)
	options(opts).apply(&in)
	in.dict = make(map[string]string)
	return &in
}

// Define adds a word to the dictionary, replacing any prior body of the same
// name. The body is stored verbatim and only evaluated when the word is used.
func (in *Interp) Define(name, body string) {
	if prior, defined := in.dict[name]; defined {
		in.logf(":", "redefine %q %q -> %q", name, prior, body)
	} else {
		in.logf(":", "define %q %q", name, body)
	}
	in.dict[name] = body
}

// Lookup returns the body of a defined word.
func (in *Interp) Lookup(name string) (body string, defined bool) {
	body, defined = in.dict[name]
	return body, defined
}

// Words returns the sorted names of all defined words.
func (in *Interp) Words() []string {
	names := make([]string, 0, len(in.dict))
	for name := range in.dict {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stack returns a copy of the stack contents, bottom first.
func (in *Interp) Stack() []int {
	stack := make([]int, len(in.stack))
	copy(stack, in.stack)
	return stack
}

func (in *Interp) push(vals ...int) {
	in.stack = append(in.stack, vals...)
}

// need checks that n values are available before any are popped, so that an
// underflowing operator leaves the stack as it found it.
func (in *Interp) need(n int) error {
	if len(in.stack) < n {
		return ErrStackUnderflow
	}
	return nil
}

func (in *Interp) pop() (val int) {
	i := len(in.stack) - 1
	val, in.stack = in.stack[i], in.stack[:i]
	return val
}

// pop2 returns the top value as a and the one beneath it as b.
func (in *Interp) pop2() (a, b int) {
	a = in.pop()
	b = in.pop()
	return a, b
}

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
