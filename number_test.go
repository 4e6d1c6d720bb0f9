package cc

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexOne(t *testing.T, src string) *Token {
	t.Helper()
	toks := lexAll(t, src)
	require.Len(t, toks, 2, "want exactly one token before EOF")
	return toks[0]
}

func TestIntegerBases(t *testing.T) {
	tests := []struct {
		src   string
		value int64
		rep   IntRep
	}{
		{"0", 0, DecRep},
		{"00", 0, OctRep},
		{"017", 15, OctRep},
		{"42", 42, DecRep},
		{"0x0", 0, HexRep},
		{"0xff", 255, HexRep},
		{"0XFF", 255, HexRep},
	}
	for _, tt := range tests {
		tok := lexOne(t, tt.src)
		require.Equal(t, TK_INT, tok.Kind, tt.src)
		assert.Equal(t, tt.value, tok.Int.Value.Int64(), tt.src)
		assert.Equal(t, tt.rep, tok.Int.Rep, tt.src)
	}
}

func TestIntegerSuffixLattice(t *testing.T) {
	tests := []struct {
		src                        string
		unsigned, long, longlong   bool
		imag                       bool
	}{
		{"1u", true, false, false, false},
		{"1U", true, false, false, false},
		{"1l", false, true, false, false},
		{"1ll", false, false, true, false},
		{"1LL", false, false, true, false},
		{"1ul", true, true, false, false},
		{"1lu", true, true, false, false},
		{"1ull", true, false, true, false},
		{"1LLU", true, false, true, false},
		{"1i", false, false, false, true},
		{"1j", false, false, false, true},
		{"1ui", true, false, false, true},
		{"1iul", true, true, false, true},
	}
	for _, tt := range tests {
		tok := lexOne(t, tt.src)
		require.Equal(t, TK_INT, tok.Kind, tt.src)
		assert.Equal(t, tt.unsigned, tok.Int.Unsigned, tt.src)
		assert.Equal(t, tt.long, tok.Int.Long, tt.src)
		assert.Equal(t, tt.longlong, tok.Int.LongLong, tt.src)
		assert.Equal(t, tt.imag, tok.Int.Imag, tt.src)
	}
}

func TestBadIntegerSuffix(t *testing.T) {
	for _, src := range []string{"1lL", "1Ll", "1uu", "1lul", "1llu u"} {
		_, err := Tokenize([]byte(src), "test.c")
		if src == "1llu u" {
			// Valid: "1llu" then identifier "u".
			require.NoError(t, err, src)
			continue
		}
		require.Error(t, err, src)
		assert.Equal(t, "Invalid integer constant suffix", err.(*LexError).Detail, src)
	}
}

func TestIntegerSuffixNotGreedy(t *testing.T) {
	// A trailing letter that is not an integer suffix is not absorbed
	// into the constant; it starts a new token.
	toks := lexAll(t, "1f")
	require.Equal(t, []Kind{TK_INT, TK_IDENT}, kindsOf(toks))
	assert.Equal(t, "f", toks[1].Name.Text)
}

func TestHugeIntegerKeepsMagnitude(t *testing.T) {
	tok := lexOne(t, "340282366920938463463374607431768211456")
	want := new(big.Int)
	want.SetString("340282366920938463463374607431768211456", 10)
	assert.Zero(t, tok.Int.Value.Cmp(want))
}

func TestFloatForms(t *testing.T) {
	for _, src := range []string{"1.", ".1", "1e0", "1.5", "1.5e-3", "0.5e+10", "1E9"} {
		tok := lexOne(t, src)
		assert.Equal(t, TK_FLOAT, tok.Kind, src)
	}
}

func TestFloatSuffixes(t *testing.T) {
	tests := []struct {
		src                       string
		isFloat, longDouble, imag bool
	}{
		{"1.5f", true, false, false},
		{"1.5F", true, false, false},
		{"1.5l", false, true, false},
		{"1.5i", false, false, true},
		{"1.5fi", true, false, true},
		{"1.5jf", true, false, true},
	}
	for _, tt := range tests {
		tok := lexOne(t, tt.src)
		require.Equal(t, TK_FLOAT, tok.Kind, tt.src)
		assert.Equal(t, tt.isFloat, tok.Float.IsFloat, tt.src)
		assert.Equal(t, tt.longDouble, tok.Float.LongDouble, tt.src)
		assert.Equal(t, tt.imag, tok.Float.Imag, tt.src)
		assert.Equal(t, "1.5", tok.Float.Text, tt.src)
	}
}

func TestHexFloat(t *testing.T) {
	tok := lexOne(t, "0x1p0")
	require.Equal(t, TK_FLOAT, tok.Kind)
	f, _ := tok.Float.Value.Float64()
	assert.Equal(t, 1.0, f)

	tok = lexOne(t, "0x1.8p1")
	f, _ = tok.Float.Value.Float64()
	assert.Equal(t, 3.0, f)

	// Without an exponent, "0x1" is an integer again.
	tok = lexOne(t, "0x1")
	assert.Equal(t, TK_INT, tok.Kind)
}

func TestHexFloatRequiresExponent(t *testing.T) {
	err := lexFail(t, "0x1.")
	assert.Equal(t, "Hexadecimal floating constant requires an exponent", err.Detail)
	assert.Equal(t, 1, err.Pos.Col)

	err = lexFail(t, "0x1.5")
	assert.Equal(t, "Hexadecimal floating constant requires an exponent", err.Detail)
}

func TestHexPrefixWithoutDigits(t *testing.T) {
	_, err := Tokenize([]byte("0x"), "test.c")
	require.Error(t, err)
	_, err = Tokenize([]byte("0x;"), "test.c")
	require.Error(t, err)
}

func TestLongDoublePrecision(t *testing.T) {
	tok := lexOne(t, "1.5l")
	assert.Equal(t, uint(64), tok.Float.Value.Prec())
	tok = lexOne(t, "1.5")
	assert.Equal(t, uint(53), tok.Float.Value.Prec())
}

func TestClangVersionLiteral(t *testing.T) {
	tok := lexOne(t, "4.2.1")
	require.Equal(t, TK_CLANGVER, tok.Kind)
	assert.Equal(t, ClangVersion{Major: 4, Minor: 2, Rev: 1}, tok.Version)
}

func TestClangVersionBeatsFloatByLength(t *testing.T) {
	toks := lexAll(t, "10.0.0 1.5")
	require.Equal(t, []Kind{TK_CLANGVER, TK_FLOAT}, kindsOf(toks))
}
