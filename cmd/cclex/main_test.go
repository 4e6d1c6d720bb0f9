package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cc "github.com/lambdageek/language-c"
)

func TestDumpJSONShape(t *testing.T) {
	src := cc.LoadSource([]byte("int x = 42;"))
	toks, err := cc.Tokenize(src, "t.c")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, dumpJSON(&buf, src, toks))

	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 6)

	first := out[0]
	assert.Equal(t, "'int'", first["kind"])
	assert.Equal(t, "t.c", first["file"])
	assert.EqualValues(t, 1, first["line"])
	assert.EqualValues(t, 1, first["col"])
	assert.EqualValues(t, 0, first["off"])
	assert.EqualValues(t, 3, first["len"])

	x := out[1]
	assert.Equal(t, "identifier", x["kind"])
	assert.Equal(t, "x", x["value"])

	lit := out[3]
	assert.Equal(t, "42", lit["value"])
}

func TestDumpText(t *testing.T) {
	src := cc.LoadSource([]byte("x;"))
	toks, err := cc.Tokenize(src, "t.c")
	require.NoError(t, err)

	var buf bytes.Buffer
	dumpText(&buf, src, toks)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "t.c:1:1\t"))
	assert.Contains(t, lines[2], "EOF")
}
