package cc

import (
	"fmt"
	"math/big"
)

// Kind identifies the lexical class of a token. Punctuators and keywords
// each get their own kind so the parser can switch on Kind alone without
// re-inspecting lexemes.
type Kind int

const (
	TK_EOF Kind = iota

	// Identifiers. TK_TYPEIDENT is the same lexeme shape as TK_IDENT;
	// the classifier consults the parser's typedef environment to decide.
	TK_IDENT
	TK_TYPEIDENT

	// Literals
	TK_INT      // integer constant
	TK_FLOAT    // floating constant
	TK_CHAR     // character constant
	TK_STR      // string literal
	TK_CLANGVER // clang version literal (major.minor.rev)

	// Punctuators
	TK_LPAREN   // (
	TK_RPAREN   // )
	TK_LBRACKET // [
	TK_RBRACKET // ]
	TK_LBRACE   // {
	TK_RBRACE   // }
	TK_SEMI     // ;
	TK_COLON    // :
	TK_COMMA    // ,
	TK_DOT      // .
	TK_QUESTION // ?
	TK_TILDE    // ~
	TK_NOT      // !
	TK_PLUS     // +
	TK_MINUS    // -
	TK_STAR     // *
	TK_SLASH    // /
	TK_PERCENT  // %
	TK_AMP      // &
	TK_PIPE     // |
	TK_CARET    // ^
	TK_LT       // <
	TK_GT       // >
	TK_ASSIGN   // =
	TK_ARROW    // ->
	TK_INC      // ++
	TK_DEC      // --
	TK_SHL      // <<
	TK_SHR      // >>
	TK_LE       // <=
	TK_GE       // >=
	TK_EQ       // ==
	TK_NE       // !=
	TK_ANDAND   // &&
	TK_OROR     // ||
	TK_ADD_EQ   // +=
	TK_SUB_EQ   // -=
	TK_MUL_EQ   // *=
	TK_DIV_EQ   // /=
	TK_MOD_EQ   // %=
	TK_AND_EQ   // &=
	TK_OR_EQ    // |=
	TK_XOR_EQ   // ^=
	TK_SHL_EQ   // <<=
	TK_SHR_EQ   // >>=
	TK_ELLIPSIS // ...

	// Keywords
	TK_AUTO
	TK_BREAK
	TK_CASE
	TK_CHARKW
	TK_CONST
	TK_CONTINUE
	TK_DEFAULT
	TK_DO
	TK_DOUBLE
	TK_ELSE
	TK_ENUM
	TK_EXTERN
	TK_FLOATKW
	TK_FOR
	TK_GOTO
	TK_IF
	TK_INLINE
	TK_INTKW
	TK_LONG
	TK_REGISTER
	TK_RESTRICT
	TK_RETURN
	TK_SHORT
	TK_SIGNED
	TK_SIZEOF
	TK_STATIC
	TK_STRUCT
	TK_SWITCH
	TK_TYPEDEF
	TK_TYPEOF
	TK_UNION
	TK_UNSIGNED
	TK_VOID
	TK_VOLATILE
	TK_WHILE
	TK_ALIGNOF
	TK_ASM
	TK_BOOL
	TK_COMPLEX
	TK_NORETURN
	TK_ALIGNAS
	TK_ATOMIC
	TK_GENERIC
	TK_STATIC_ASSERT
	TK_THREAD_LOCAL
	TK_NULLABLE
	TK_NONNULL
	TK_INT128
	TK_LABEL

	// GNU extension markers
	TK_ATTRIBUTE    // __attribute__
	TK_EXTENSION    // __extension__
	TK_REAL         // __real__
	TK_IMAG         // __imag__
	TK_VA_ARG       // __builtin_va_arg
	TK_OFFSETOF     // __builtin_offsetof
	TK_TYPES_COMPAT // __builtin_types_compatible_p
)

// IntRep records which spelling family an integer constant used.
type IntRep int

const (
	DecRep IntRep = iota
	OctRep
	HexRep
)

// IntConst is the payload of a TK_INT token. The magnitude is kept in a
// big.Int so a constant that overflows every fixed-width C type still
// survives to type checking with its exact value.
type IntConst struct {
	Value    *big.Int
	Rep      IntRep
	Unsigned bool
	Long     bool
	LongLong bool
	Imag     bool
}

// FloatConst is the payload of a TK_FLOAT token. Text keeps the raw
// mantissa+exponent spelling (suffixes stripped); Value is the decoded
// binary value, carried at 53 bits of precision, or 64 when the constant
// is long double (the x87 extended significand).
type FloatConst struct {
	Text       string
	Value      *big.Float
	IsFloat    bool // f suffix
	LongDouble bool // l suffix
	Imag       bool
}

// CharConst is the payload of a TK_CHAR token. Multi-character constants
// carry one code point per source character.
type CharConst struct {
	Points []uint32
	Wide   bool
}

// StrConst is the payload of a TK_STR token. Narrow literals carry the
// decoded bytes; wide literals carry 32-bit code units.
type StrConst struct {
	Data []byte
	Wide []uint32
}

// IsWide reports whether the literal had the L prefix.
func (s *StrConst) IsWide() bool { return s.Wide != nil }

// ClangVersion is the payload of a TK_CLANGVER token.
type ClangVersion struct {
	Major, Minor, Rev int
}

// Token is one lexical token. Pos is the position of its first byte and
// Length the number of input bytes the token covers, so the lexeme is
// always recoverable from the original buffer.
type Token struct {
	Kind   Kind
	Pos    Pos
	Length int

	Name    *Name // TK_IDENT, TK_TYPEIDENT
	Int     *IntConst
	Float   *FloatConst
	Char    *CharConst
	Str     *StrConst
	Version ClangVersion
}

// Text returns the lexeme the token covers in src, which must be the
// buffer the token was lexed from.
func (t *Token) Text(src []byte) string {
	return string(src[t.Pos.Off : t.Pos.Off+t.Length])
}

func (t *Token) String() string {
	switch t.Kind {
	case TK_IDENT, TK_TYPEIDENT:
		return fmt.Sprintf("%s %s at %s", t.Kind, t.Name.Text, t.Pos)
	case TK_INT:
		return fmt.Sprintf("%s %s at %s", t.Kind, t.Int.Value, t.Pos)
	case TK_FLOAT:
		return fmt.Sprintf("%s %s at %s", t.Kind, t.Float.Text, t.Pos)
	default:
		return fmt.Sprintf("%s at %s", t.Kind, t.Pos)
	}
}

// punctSpellings maps punctuator kinds back to their source spelling.
// The scanner has its own, length-ordered match table; this one serves
// Kind.String and the token printer.
var punctSpellings = map[Kind]string{
	TK_LPAREN: "(", TK_RPAREN: ")", TK_LBRACKET: "[", TK_RBRACKET: "]",
	TK_LBRACE: "{", TK_RBRACE: "}", TK_SEMI: ";", TK_COLON: ":",
	TK_COMMA: ",", TK_DOT: ".", TK_QUESTION: "?", TK_TILDE: "~",
	TK_NOT: "!", TK_PLUS: "+", TK_MINUS: "-", TK_STAR: "*",
	TK_SLASH: "/", TK_PERCENT: "%", TK_AMP: "&", TK_PIPE: "|",
	TK_CARET: "^", TK_LT: "<", TK_GT: ">", TK_ASSIGN: "=",
	TK_ARROW: "->", TK_INC: "++", TK_DEC: "--", TK_SHL: "<<",
	TK_SHR: ">>", TK_LE: "<=", TK_GE: ">=", TK_EQ: "==",
	TK_NE: "!=", TK_ANDAND: "&&", TK_OROR: "||", TK_ADD_EQ: "+=",
	TK_SUB_EQ: "-=", TK_MUL_EQ: "*=", TK_DIV_EQ: "/=", TK_MOD_EQ: "%=",
	TK_AND_EQ: "&=", TK_OR_EQ: "|=", TK_XOR_EQ: "^=", TK_SHL_EQ: "<<=",
	TK_SHR_EQ: ">>=", TK_ELLIPSIS: "...",
}

// keywordSpellings maps keyword and marker kinds to their canonical
// spelling, used when rendering tokens back to source. Alternate GNU
// spellings normalize to these.
var keywordSpellings = map[Kind]string{
	TK_AUTO: "auto", TK_BREAK: "break", TK_CASE: "case", TK_CHARKW: "char",
	TK_CONST: "const", TK_CONTINUE: "continue", TK_DEFAULT: "default",
	TK_DO: "do", TK_DOUBLE: "double", TK_ELSE: "else", TK_ENUM: "enum",
	TK_EXTERN: "extern", TK_FLOATKW: "float", TK_FOR: "for",
	TK_GOTO: "goto", TK_IF: "if", TK_INLINE: "inline", TK_INTKW: "int",
	TK_LONG: "long", TK_REGISTER: "register", TK_RESTRICT: "restrict",
	TK_RETURN: "return", TK_SHORT: "short", TK_SIGNED: "signed",
	TK_SIZEOF: "sizeof", TK_STATIC: "static", TK_STRUCT: "struct",
	TK_SWITCH: "switch", TK_TYPEDEF: "typedef", TK_TYPEOF: "typeof",
	TK_UNION: "union", TK_UNSIGNED: "unsigned", TK_VOID: "void",
	TK_VOLATILE: "volatile", TK_WHILE: "while", TK_ALIGNOF: "alignof",
	TK_ASM: "asm", TK_BOOL: "_Bool", TK_COMPLEX: "_Complex",
	TK_NORETURN: "_Noreturn", TK_ALIGNAS: "_Alignas", TK_ATOMIC: "_Atomic",
	TK_GENERIC: "_Generic", TK_STATIC_ASSERT: "_Static_assert",
	TK_THREAD_LOCAL: "_Thread_local", TK_NULLABLE: "_Nullable",
	TK_NONNULL: "_Nonnull", TK_INT128: "__int128", TK_LABEL: "__label__",
	TK_ATTRIBUTE: "__attribute__", TK_EXTENSION: "__extension__",
	TK_REAL: "__real__", TK_IMAG: "__imag__", TK_VA_ARG: "__builtin_va_arg",
	TK_OFFSETOF:     "__builtin_offsetof",
	TK_TYPES_COMPAT: "__builtin_types_compatible_p",
}

func (k Kind) String() string {
	switch k {
	case TK_EOF:
		return "EOF"
	case TK_IDENT:
		return "identifier"
	case TK_TYPEIDENT:
		return "type identifier"
	case TK_INT:
		return "integer constant"
	case TK_FLOAT:
		return "floating constant"
	case TK_CHAR:
		return "character constant"
	case TK_STR:
		return "string literal"
	case TK_CLANGVER:
		return "clang version literal"
	}
	if s, ok := punctSpellings[k]; ok {
		return "'" + s + "'"
	}
	if s, ok := keywordSpellings[k]; ok {
		return "'" + s + "'"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}
