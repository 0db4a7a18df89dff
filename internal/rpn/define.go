package rpn

import "strings"

// define reads the rest of a ": name body... ;" form from cur, which must be
// positioned just after the ":".
//
// The body is every token after the name up to, but not including, the ";".
// A line that ends before any ";" still defines the word with the body read
// so far. Only a missing name is an error; a ";" in the name position counts
// as missing.
func (in *Interp) define(cur *cursor) error {
	name, ok := cur.next()
	if !ok || name == ";" {
		return ErrBadWordDefinitionForm
	}

	var body strings.Builder
	terminated := false
	for {
		token, ok := cur.next()
		if !ok {
			break
		}
		if token == ";" {
			terminated = true
			break
		}
		body.WriteString(token)
		body.WriteByte(' ')
	}
	if !terminated {
		in.logf(":", "unterminated definition of %q", name)
	}

	in.Define(name, body.String())
	return nil
}
