package rpn

import (
	"errors"
	"strconv"
	"strings"
)

// Defined is the output of a line whose last effect was a word definition.
const Defined = "defined"

// Eval evaluates one line of tokens against the stack and dictionary,
// returning whatever the line printed.
//
// Any failure aborts the line at the failing token: effects of earlier tokens
// remain, and the partial output is discarded. A "bye" token stops evaluation
// with ErrBye.
func (in *Interp) Eval(line string) (string, error) {
	in.logf("#", "eval %q", line)
	ev := evaluation{cursor: newCursor(line)}
	if err := in.eval(&ev); err != nil {
		in.logf("!", "%v", err)
		return "", err
	}
	return ev.out.String(), nil
}

// evaluation is the state of one line, or of one word's body during
// expansion.
type evaluation struct {
	cursor
	out strings.Builder
}

// cursor walks the tokens of a line. Both the dispatch loop and the
// definition reader advance the same cursor, so tokens consumed by a
// definition are never seen by dispatch.
type cursor struct {
	tokens []string
	i      int
}

// newCursor splits a line on spaces; runs of spaces do not produce empty
// tokens.
func newCursor(line string) cursor {
	var cur cursor
	for _, token := range strings.Split(line, " ") {
		if token != "" {
			cur.tokens = append(cur.tokens, token)
		}
	}
	return cur
}

func (cur *cursor) next() (token string, ok bool) {
	if cur.i >= len(cur.tokens) {
		return "", false
	}
	token = cur.tokens[cur.i]
	cur.i++
	return token, true
}

func (in *Interp) eval(ev *evaluation) error {
	for {
		token, ok := ev.next()
		if !ok {
			return nil
		}
		if err := in.dispatch(ev, token); err != nil {
			return err
		}
		if in.logfn != nil {
			in.logf("-", "%v -- s:%v", token, in.stack)
		}
	}
}

// dispatch classifies and runs one token. The order matters: literals first,
// then keywords, then words. Keywords are compared after lower casing the
// token; words are looked up with the token exactly as written.
func (in *Interp) dispatch(ev *evaluation, token string) error {
	if val, isLiteral, err := literal(token); err != nil {
		return TokenError{token, err}
	} else if isLiteral {
		in.push(val)
		return nil
	}

	switch strings.ToLower(token) {
	case "+":
		return in.binary(token, add)
	case "-":
		return in.binary(token, sub)
	case "*":
		return in.binary(token, mul)
	case "/":
		return in.binary(token, div)
	case ">":
		return in.binary(token, greater)
	case "<":
		return in.binary(token, less)
	case "=":
		return in.binary(token, equal)

	case ".":
		if err := in.need(1); err != nil {
			return TokenError{token, err}
		}
		ev.out.WriteString(strconv.Itoa(in.pop()))
		ev.out.WriteByte(' ')
		return nil

	case "dup":
		if err := in.need(1); err != nil {
			return TokenError{token, err}
		}
		val := in.pop()
		in.push(val, val)
		return nil

	case "swap":
		if err := in.need(2); err != nil {
			return TokenError{token, err}
		}
		a, b := in.pop2()
		in.push(a, b)
		return nil

	case "clear":
		in.stack = in.stack[:0]
		return nil

	case "bye":
		return ErrBye

	case ":":
		if err := in.define(&ev.cursor); err != nil {
			return TokenError{token, err}
		}
		ev.out.Reset()
		ev.out.WriteString(Defined)
		return nil

	case ";":
		// only meaningful as the end of a definition, which define consumes
		return nil
	}

	if body, defined := in.dict[token]; defined {
		return in.expand(ev, token, body)
	}
	return TokenError{token, ErrNameNotFound}
}

// literal parses a decimal integer token. A token made of a sign and digits
// that does not fit in an int is still a literal, just a bad one.
func literal(token string) (val int, isLiteral bool, err error) {
	n, err := strconv.ParseInt(token, 10, strconv.IntSize)
	if err == nil {
		return int(n), true, nil
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && numErr.Err == strconv.ErrRange {
		return 0, true, ErrBadNumberParse
	}
	return 0, false, nil
}

// binary pops a then b, pushing op(a, b). Nothing is popped on underflow,
// and both values are restored if op fails.
func (in *Interp) binary(token string, op func(a, b int) (int, error)) error {
	if err := in.need(2); err != nil {
		return TokenError{token, err}
	}
	a, b := in.pop2()
	val, err := op(a, b)
	if err != nil {
		in.push(b, a)
		return TokenError{token, err}
	}
	in.push(val)
	return nil
}

func add(a, b int) (int, error) { return b + a, nil }
func sub(a, b int) (int, error) { return b - a, nil }
func mul(a, b int) (int, error) { return b * a, nil }

func div(a, b int) (int, error) {
	if a == 0 {
		return 0, ErrDivisionByZero
	}
	return b / a, nil
}

func greater(a, b int) (int, error) { return boolInt(b > a), nil }
func less(a, b int) (int, error)    { return boolInt(b < a), nil }
func equal(a, b int) (int, error)   { return boolInt(a == b), nil }

// expand evaluates a word's body in place of the word.
func (in *Interp) expand(ev *evaluation, name, body string) error {
	if in.maxDepth > 0 && in.depth >= in.maxDepth {
		return depthError{name, in.depth}
	}
	in.depth++
	defer func() { in.depth-- }()
	if in.logfn != nil {
		in.logf(">", "expand %v %q", name, body)
		defer in.withLogPrefix("	")()
	}

	inner := evaluation{cursor: newCursor(body)}
	if err := in.eval(&inner); err != nil {
		return err
	}

	if in.expansion != AppendOutput {
		ev.out.Reset()
	}
	ev.out.WriteString(inner.out.String())
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
