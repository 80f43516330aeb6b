package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, src string) string {
	name := filepath.Join(t.TempDir(), "main.lz")
	require.NoError(t, os.WriteFile(name, []byte(src), 0o644))
	return name
}

func TestPosition(t *testing.T) {
	src := []byte("ab\ncd\n\nef")

	testCases := []struct {
		Offset int
		Line   int
		Col    int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{2, 1, 3},
		{3, 2, 1},
		{7, 4, 1},
		{9, 4, 3},
		{100, 4, 3},
	}

	for _, tc := range testCases {
		line, col := position(src, tc.Offset)
		assert.Equal(t, tc.Line, line, "offset %d", tc.Offset)
		assert.Equal(t, tc.Col, col, "offset %d", tc.Offset)
	}
}

func TestCmdParse(t *testing.T) {
	name := writeSource(t, "| x : <a, b> = a\n")

	var stdout, stderr bytes.Buffer
	code := cmdParse([]string{name}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	expected := "(file)\n" +
		"    (definition): universal\n" +
		"        (tag): x\n" +
		"        (ordinal)\n" +
		"            (tag): a\n" +
		"            (tag): b\n" +
		"        (tag): a\n"
	assert.Equal(t, expected, stdout.String())
}

func TestCmdParseError(t *testing.T) {
	name := writeSource(t, "| x : t = v\n;")

	var stdout, stderr bytes.Buffer
	code := cmdParse([]string{name}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Equal(t, name+":2:1: expected Definition or Sentinel in file\n\tnear (:Semicolon @12)\n", stderr.String())
}

func TestCmdParseTrace(t *testing.T) {
	name := writeSource(t, "| x : t = v")

	var stdout, stderr bytes.Buffer
	code := cmdParse([]string{"-trace", name}, &stdout, &stderr)
	require.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "trace: consume (:Define @0)\n")
}

func TestCmdParseUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, cmdParse(nil, &stdout, &stderr))
	assert.Equal(t, "usage: lazy parse <file>\n", stderr.String())

	stderr.Reset()
	assert.Equal(t, 1, cmdParse([]string{filepath.Join(t.TempDir(), "missing")}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "cannot read")
}

func TestCmdFmt(t *testing.T) {
	name := writeSource(t, "|~f:{a->b}=$(|y:t=v;f.y)   |x:<a,b>=a")

	var stdout, stderr bytes.Buffer
	code := cmdFmt([]string{name}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Equal(t, "| ~ f : {a -> b} = $(| y : t = v; f.y)\n| x : <a, b> = a\n", stdout.String())
}

func TestCmdTokens(t *testing.T) {
	name := writeSource(t, "| x\n-")

	var stdout, stderr bytes.Buffer
	code := cmdTokens([]string{name}, &stdout, &stderr)
	require.Equal(t, 0, code)
	assert.Equal(t, "token[0] (:Define @0)\n"+
		"token[1] (:Tag \"x\" @2)\n"+
		"token[2] (:Invalid @4)\n"+
		"token[3] (:Sentinel @5)\n", stdout.String())

	stdout.Reset()
	code = cmdTokens([]string{"-offsets", name}, &stdout, &stderr)
	require.Equal(t, 0, code)
	assert.Equal(t, "token[0] (type: Define, line: 1, col: 1) \"\"\n"+
		"token[1] (type: Tag, line: 1, col: 3) \"x\"\n"+
		"token[2] (type: Invalid, line: 2, col: 1) \"\"\n"+
		"token[3] (type: Sentinel, line: 2, col: 2) \"\"\n", stdout.String())
}

func TestEvalLine(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, evalLine(&buf, "f.x", nil))
	assert.Equal(t, "(application)\n    (tag): f\n    (tag): x\n", buf.String())

	buf.Reset()
	require.NoError(t, evalLine(&buf, "| a : t = v | b : t = v", nil))
	assert.Equal(t, "(definition): universal\n    (tag): a\n    (tag): t\n    (tag): v\n"+
		"(definition): universal\n    (tag): b\n    (tag): t\n    (tag): v\n", buf.String())

	assert.Error(t, evalLine(&buf, "f.x.y", nil))
	assert.Error(t, evalLine(&buf, "| a : t", nil))
}
