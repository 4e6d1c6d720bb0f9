package cc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexErrorFormat(t *testing.T) {
	err := lexFail(t, "int @")
	lines := strings.Split(err.Error(), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "test.c:1:5: Lexical Error !", lines[0])
	assert.Equal(t, "  The character '@' does not fit here.", lines[1])
}

func TestRenderSnippetCaret(t *testing.T) {
	src := []byte("int x;\nint @;\n")
	_, err := Tokenize(src, "test.c")
	require.Error(t, err)

	out := RenderSnippet(src, err.(*LexError))
	assert.Equal(t,
		"test.c:2: Lexical Error !\n"+
			"int @;\n"+
			"    ^ The character '@' does not fit here.",
		out)
}

func TestCustomSinkSeesReport(t *testing.T) {
	var got *LexError
	sink := sinkFunc(func(e *LexError) { got = e })
	l := NewLexer([]byte("`"), "test.c", WithSink(sink))
	l.Next()
	require.NotNil(t, got)
	assert.Equal(t, "Lexical Error !", got.Summary)
}

type sinkFunc func(*LexError)

func (f sinkFunc) Report(e *LexError) { f(e) }
