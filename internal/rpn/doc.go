/* Package rpn implements the evaluator for a minimal postfix stack language.

A line of input is a sequence of space separated tokens, evaluated left to
right against a stack of ints:

	3 4 + .      prints "7 "
	10 3 - .     prints "7 "
	2 3 < .      prints "1 "

Integer literals are pushed. The operators + - * / pop two values and push
the result; the second value popped is the left hand operand, so "10 3 -"
computes 10 - 3. The comparisons > < = push 1 or 0. The keyword "." pops and
prints, "dup" copies the top value, "swap" exchanges the top two values, and
"clear" empties the stack. The keyword "bye" asks the host to end the
session; Eval reports it as ErrBye rather than exiting.

New words are defined inline:

	: squared dup * ;

A definition stores its body as raw text; using the word later re-evaluates
that text, so a body may reference words that do not exist yet. Keywords are
matched without regard to case ("DUP" is dup), while words are matched
exactly as they were defined.

Evaluation is strictly synchronous and an Interp is not safe for concurrent
use.
*/
package rpn
