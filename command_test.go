package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type commandResult struct {
	out, log string
	err      error
}

func runCommand(t *testing.T, stdin string, args ...string) (res commandResult) {
	var out, log bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&log)
	res.err = cmd.ExecuteContext(context.Background())
	res.out = out.String()
	res.log = log.String()
	if t.Failed() || res.err != nil {
		t.Logf("log:\n%v", res.log)
	}
	return res
}

func writeScript(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCommand_stdin(t *testing.T) {
	res := runCommand(t, "5 inc .\n2 squared\nbye\n")
	require.NoError(t, res.err)
	assert.Equal(t, lines(
		`6 `,
		`Stack: []`,
		``,
		`Stack: [4]`,
		`Exiting...`,
	), res.out)
	assert.Equal(t, "", res.log)
}

func TestCommand_noPrelude(t *testing.T) {
	res := runCommand(t, "5 inc\n", "--no-prelude")
	code, isCode := isExitCode(res.err)
	assert.True(t, isCode, "expected an exit code error, got %v", res.err)
	assert.Equal(t, 1, code)
	assert.Equal(t, lines(
		`<stdin>:1: Name not found: "inc"`,
		`Stack: [5]`,
	), res.out)
	assert.Contains(t, res.log, `ERROR: <stdin>:1 "5 inc": name not found: "inc"`)
}

func TestCommand_define(t *testing.T) {
	res := runCommand(t, "3 triple .\n2 inc .\n",
		"-d", "triple=3 *",
		"--define", "inc = 10 +")
	require.NoError(t, res.err)
	assert.Equal(t, lines(
		`9 `,
		`Stack: []`,
		`12 `,
		`Stack: []`,
	), res.out)

	res = runCommand(t, "", "-d", "nobody")
	assert.EqualError(t, res.err, `invalid word definition "nobody", want name=body`)
	res = runCommand(t, "", "-d", "two words=1")
	assert.Error(t, res.err)
}

func TestCommand_scripts(t *testing.T) {
	lib := writeScript(t, "lib.rpn", ": cube dup dup * * ;\n")
	prog := writeScript(t, "prog.rpn", "3 cube .\n")

	res := runCommand(t, "2 cube .\n", lib, "-", prog)
	require.NoError(t, res.err)
	assert.Equal(t, lines(
		`defined`,
		`Stack: []`,
		`8 `,
		`Stack: []`,
		`27 `,
		`Stack: []`,
	), res.out)

	res = runCommand(t, "1 .\n", lib)
	require.NoError(t, res.err)
	assert.Equal(t, lines(
		`defined`,
		`Stack: []`,
	), res.out, "expected stdin to be ignored when scripts are named")

	res = runCommand(t, "", filepath.Join(t.TempDir(), "missing.rpn"))
	assert.True(t, os.IsNotExist(res.err), "expected a not exist error, got %v", res.err)
}

func TestCommand_scriptErrorLocation(t *testing.T) {
	script := writeScript(t, "bad.rpn", "1 2 +\nfrob\n")
	res := runCommand(t, "", script)
	code, _ := isExitCode(res.err)
	assert.Equal(t, 1, code)
	assert.Contains(t, res.out, script+`:2: Name not found: "frob"`)
}

func TestCommand_options(t *testing.T) {
	res := runCommand(t, ": p 7 . ;\n1 . p\n", "--append-output")
	require.NoError(t, res.err)
	assert.Contains(t, res.out, "1 7 \n")

	res = runCommand(t, ": r r ;\nr\n", "--max-depth", "8")
	assert.Contains(t, res.out, "<stdin>:2: Word expansion too deep\n")

	res = runCommand(t, "1 2 +\n", "--trace")
	require.NoError(t, res.err)
	assert.Contains(t, res.log, `TRACE: # eval "1 2 +"`)

	res = runCommand(t, "1\n", "-i")
	require.NoError(t, res.err)
	assert.True(t, strings.HasPrefix(res.out, "gorpn dev\ntype 'bye' to exit\n>>> "), "expected banner and prompt, got %q", res.out)
}

func TestCommand_tee(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.log")
	res := runCommand(t, "4 4 = .\n", "--tee", path)
	require.NoError(t, res.err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1 \nStack: []\n", res.out)
	assert.Equal(t, res.out, string(data))
}

func TestCommand_listWords(t *testing.T) {
	res := runCommand(t, "", "--list-words", "-d", "nop=")
	require.NoError(t, res.err)
	assert.Equal(t, lines(
		`: inc 1 + ;`,
		`: nop ;`,
		`: squared dup * ;`,
	), res.out)
}

func TestCommand_version(t *testing.T) {
	res := runCommand(t, "", "--version")
	require.NoError(t, res.err)
	assert.Equal(t, "gorpn dev (commit: unknown, built: unknown)\n", res.out)
}

func TestEnvInt(t *testing.T) {
	t.Setenv("GORPN_TEST_INT", "42")
	assert.Equal(t, 42, envInt("GORPN_TEST_INT", 7))
	t.Setenv("GORPN_TEST_INT", "many")
	assert.Equal(t, 7, envInt("GORPN_TEST_INT", 7))
	assert.Equal(t, 7, envInt("GORPN_TEST_UNSET", 7))
}
