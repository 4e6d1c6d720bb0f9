package cc

import (
	"fmt"
	"io"
	"strings"
)

// The token printer renders a token stream back to C source text.
// Spacing is normalized to single spaces, keyword spellings to their
// canonical form; re-lexing printed output yields an equivalent stream
// up to whitespace and identifier classification.

// TokenText renders one token.
func TokenText(t *Token) string {
	switch t.Kind {
	case TK_EOF:
		return ""
	case TK_IDENT, TK_TYPEIDENT:
		return t.Name.Text
	case TK_INT:
		return intText(t.Int)
	case TK_FLOAT:
		return floatText(t.Float)
	case TK_CHAR:
		return charText(t.Char)
	case TK_STR:
		return strText(t.Str)
	case TK_CLANGVER:
		return fmt.Sprintf("%d.%d.%d", t.Version.Major, t.Version.Minor, t.Version.Rev)
	}
	if s, ok := punctSpellings[t.Kind]; ok {
		return s
	}
	if s, ok := keywordSpellings[t.Kind]; ok {
		return s
	}
	return ""
}

// Fprint writes the stream to w, tokens separated by single spaces.
func Fprint(w io.Writer, toks []*Token) error {
	sep := ""
	for _, t := range toks {
		if t.Kind == TK_EOF {
			break
		}
		if _, err := io.WriteString(w, sep+TokenText(t)); err != nil {
			return err
		}
		sep = " "
	}
	return nil
}

// Print renders the stream to a string.
func Print(toks []*Token) string {
	var b strings.Builder
	Fprint(&b, toks)
	return b.String()
}

func intText(c *IntConst) string {
	var b strings.Builder
	switch c.Rep {
	case HexRep:
		b.WriteString("0x")
		b.WriteString(c.Value.Text(16))
	case OctRep:
		b.WriteString("0")
		b.WriteString(c.Value.Text(8))
	default:
		b.WriteString(c.Value.Text(10))
	}
	if c.Unsigned {
		b.WriteByte('u')
	}
	if c.LongLong {
		b.WriteString("ll")
	} else if c.Long {
		b.WriteByte('l')
	}
	if c.Imag {
		b.WriteByte('i')
	}
	return b.String()
}

func floatText(c *FloatConst) string {
	var b strings.Builder
	b.WriteString(c.Text)
	if c.IsFloat {
		b.WriteByte('f')
	}
	if c.LongDouble {
		b.WriteByte('l')
	}
	if c.Imag {
		b.WriteByte('i')
	}
	return b.String()
}

func charText(c *CharConst) string {
	var b strings.Builder
	if c.Wide {
		b.WriteByte('L')
	}
	b.WriteByte('\'')
	for _, p := range c.Points {
		writeEscaped(&b, p, '\'')
	}
	b.WriteByte('\'')
	return b.String()
}

func strText(s *StrConst) string {
	var b strings.Builder
	if s.IsWide() {
		b.WriteByte('L')
	}
	b.WriteByte('"')
	if s.IsWide() {
		for _, p := range s.Wide {
			writeEscaped(&b, p, '"')
		}
	} else {
		for _, c := range s.Data {
			writeEscaped(&b, uint32(c), '"')
		}
	}
	b.WriteByte('"')
	return b.String()
}

// writeEscaped emits one code point inside a quoted literal. Octal
// escapes are fixed at three digits so a following digit can never be
// absorbed into the escape on re-lexing.
func writeEscaped(b *strings.Builder, v uint32, quote byte) {
	switch v {
	case uint32(quote):
		b.WriteByte('\\')
		b.WriteByte(quote)
		return
	case '\\':
		b.WriteString(`\\`)
		return
	case 7:
		b.WriteString(`\a`)
		return
	case 8:
		b.WriteString(`\b`)
		return
	case 9:
		b.WriteString(`\t`)
		return
	case 10:
		b.WriteString(`\n`)
		return
	case 11:
		b.WriteString(`\v`)
		return
	case 12:
		b.WriteString(`\f`)
		return
	case 13:
		b.WriteString(`\r`)
		return
	}
	if v >= 0x20 && v < 0x7F {
		b.WriteByte(byte(v))
		return
	}
	if v < 0x200 {
		fmt.Fprintf(b, "\\%03o", v)
		return
	}
	fmt.Fprintf(b, "\\x%x", v)
}
