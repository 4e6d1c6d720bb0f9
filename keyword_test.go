package cc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordVocabulary(t *testing.T) {
	// Every spelling in the vocabulary, alternates included, must lex to
	// its keyword kind rather than an identifier.
	for spelling, kind := range keywords {
		toks := lexAll(t, spelling)
		require.Len(t, toks, 2, spelling)
		assert.Equal(t, kind, toks[0].Kind, spelling)
		assert.Nil(t, toks[0].Name, spelling)
	}
}

func TestAlternateSpellingsShareKind(t *testing.T) {
	groups := [][]string{
		{"const", "__const", "__const__"},
		{"asm", "__asm", "__asm__"},
		{"alignof", "_Alignof", "__alignof", "__alignof__"},
		{"inline", "__inline", "__inline__"},
		{"restrict", "__restrict", "__restrict__"},
		{"signed", "__signed", "__signed__"},
		{"typeof", "__typeof", "__typeof__"},
		{"volatile", "__volatile", "__volatile__"},
		{"_Thread_local", "__thread"},
		{"_Complex", "__complex__"},
		{"_Nonnull", "__nonnull"},
		{"_Nullable", "__nullable"},
		{"__attribute", "__attribute__"},
		{"__real", "__real__"},
		{"__imag", "__imag__"},
	}
	for _, group := range groups {
		want := keywords[group[0]]
		for _, spelling := range group[1:] {
			tok := lexOne(t, spelling)
			assert.Equal(t, want, tok.Kind, spelling)
		}
	}
}

func TestNearMissesAreIdentifiers(t *testing.T) {
	for _, s := range []string{"Int", "constt", "__Const", "_bool", "iff", "___asm"} {
		tok := lexOne(t, s)
		assert.Equal(t, TK_IDENT, tok.Kind, s)
		require.NotNil(t, tok.Name, s)
		assert.Equal(t, s, tok.Name.Text, s)
	}
}

func TestKeywordBeatsTypeEnv(t *testing.T) {
	// A keyword spelling never consults the typedef environment.
	toks := lexAll(t, "int", WithEnv(NameSetEnv{"int": true}))
	assert.Equal(t, TK_INTKW, toks[0].Kind)
}

func TestGNUMarkers(t *testing.T) {
	toks := lexAll(t, "__extension__ __builtin_va_arg __builtin_offsetof __builtin_types_compatible_p")
	want := []Kind{TK_EXTENSION, TK_VA_ARG, TK_OFFSETOF, TK_TYPES_COMPAT}
	assert.Equal(t, want, kindsOf(toks))
}
