/* Command gorpn: an interactive postfix stack language

gorpn reads lines of space separated tokens and evaluates each against a
stack of integers, printing what the line printed, then the stack:

	>>> 2 3 + dup .
	5
	Stack: [5]
	>>> : squared dup * ;
	defined
	Stack: [5]
	>>> squared .
	25
	Stack: []
	>>> bye
	Exiting...

The language itself is documented in internal/rpn. This command adds the
session around it: it seeds a small prelude of words (inc and squared),
accepts more with -d name=body, evaluates script files named as arguments
before standard input, and reports evaluation errors without ending the
session. When reading scripts, errors are prefixed with the file and line,
and the command exits non-zero if any line failed.

Words may be redefined freely, and a word's body is only looked at when the
word is used, so a word that uses itself is only caught by the expansion
depth limit (see --max-depth).
*/
package main
