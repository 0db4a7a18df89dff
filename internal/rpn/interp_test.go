package rpn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	in := New()
	assert.Equal(t, []int{}, in.Stack())
	assert.Equal(t, []string{}, in.Words())
	assert.Equal(t, defaultCapacity, cap(in.stack))
	assert.Equal(t, defaultMaxDepth, in.maxDepth)
	assert.Equal(t, ReplaceOutput, in.expansion)

	in = New(WithCapacity(64), WithMaxDepth(8), WithExpansion(AppendOutput))
	assert.Equal(t, 64, cap(in.stack))
	assert.Equal(t, 8, in.maxDepth)
	assert.Equal(t, AppendOutput, in.expansion)

	in = New(WithCapacity(-1), nil)
	assert.Equal(t, 0, cap(in.stack))
}

func TestInterp_Define(t *testing.T) {
	var logs []string
	in := New(WithLogf(func(mess string, args ...interface{}) {
		logs = append(logs, mess)
	}))

	in.Define("sq", "dup *")
	in.Define("inc", "1 +")
	in.Define("sq", "dup dup * *")

	assert.Equal(t, []string{"inc", "sq"}, in.Words())
	body, defined := in.Lookup("sq")
	assert.True(t, defined)
	assert.Equal(t, "dup dup * *", body)
	_, defined = in.Lookup("SQ")
	assert.False(t, defined, "expected lookup to be case sensitive")
	assert.Len(t, logs, 3, "expected a log per definition")
}

func TestInterp_Stack(t *testing.T) {
	in := New()
	in.push(1, 2, 3)
	stack := in.Stack()
	assert.Equal(t, []int{1, 2, 3}, stack, "expected bottom to top order")

	stack[0] = 99
	assert.Equal(t, []int{1, 2, 3}, in.Stack(), "expected a copy")
}

func TestExpansionMode_String(t *testing.T) {
	assert.Equal(t, "replace", ReplaceOutput.String())
	assert.Equal(t, "append", AppendOutput.String())
	assert.Equal(t, "invalid", ExpansionMode(7).String())
}
