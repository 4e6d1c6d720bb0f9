package cc

// keywords is the closed keyword vocabulary: C89/C99, the supported C11
// subset, and the GNU alternate spellings that system headers rely on.
// Alternate spellings map onto the same kind as the plain keyword, so
// `__const` and `const` are indistinguishable past the lexer. Lookup is
// a single hash probe on the exact lexeme; identifiers containing '$'
// can never collide because no entry contains one.
var keywords = map[string]Kind{
	"auto":     TK_AUTO,
	"break":    TK_BREAK,
	"case":     TK_CASE,
	"char":     TK_CHARKW,
	"const":    TK_CONST,
	"continue": TK_CONTINUE,
	"default":  TK_DEFAULT,
	"do":       TK_DO,
	"double":   TK_DOUBLE,
	"else":     TK_ELSE,
	"enum":     TK_ENUM,
	"extern":   TK_EXTERN,
	"float":    TK_FLOATKW,
	"for":      TK_FOR,
	"goto":     TK_GOTO,
	"if":       TK_IF,
	"inline":   TK_INLINE,
	"int":      TK_INTKW,
	"long":     TK_LONG,
	"register": TK_REGISTER,
	"restrict": TK_RESTRICT,
	"return":   TK_RETURN,
	"short":    TK_SHORT,
	"signed":   TK_SIGNED,
	"sizeof":   TK_SIZEOF,
	"static":   TK_STATIC,
	"struct":   TK_STRUCT,
	"switch":   TK_SWITCH,
	"typedef":  TK_TYPEDEF,
	"typeof":   TK_TYPEOF,
	"union":    TK_UNION,
	"unsigned": TK_UNSIGNED,
	"void":     TK_VOID,
	"volatile": TK_VOLATILE,
	"while":    TK_WHILE,

	// C11 (supported subset)
	"_Alignas":       TK_ALIGNAS,
	"_Alignof":       TK_ALIGNOF,
	"_Atomic":        TK_ATOMIC,
	"_Bool":          TK_BOOL,
	"_Complex":       TK_COMPLEX,
	"_Generic":       TK_GENERIC,
	"_Noreturn":      TK_NORETURN,
	"_Static_assert": TK_STATIC_ASSERT,
	"_Thread_local":  TK_THREAD_LOCAL,
	"_Nullable":      TK_NULLABLE,
	"_Nonnull":       TK_NONNULL,

	// GNU alternate spellings
	"__alignof":    TK_ALIGNOF,
	"alignof":      TK_ALIGNOF,
	"__alignof__":  TK_ALIGNOF,
	"__asm":        TK_ASM,
	"asm":          TK_ASM,
	"__asm__":      TK_ASM,
	"__const":      TK_CONST,
	"__const__":    TK_CONST,
	"__complex__":  TK_COMPLEX,
	"__inline":     TK_INLINE,
	"__inline__":   TK_INLINE,
	"__int128":     TK_INT128,
	"__nonnull":    TK_NONNULL,
	"__nullable":   TK_NULLABLE,
	"__restrict":   TK_RESTRICT,
	"__restrict__": TK_RESTRICT,
	"__signed":     TK_SIGNED,
	"__signed__":   TK_SIGNED,
	"__thread":     TK_THREAD_LOCAL,
	"__typeof":     TK_TYPEOF,
	"__typeof__":   TK_TYPEOF,
	"__volatile":   TK_VOLATILE,
	"__volatile__": TK_VOLATILE,
	"__label__":    TK_LABEL,

	// GNU extension markers
	"__attribute":                  TK_ATTRIBUTE,
	"__attribute__":                TK_ATTRIBUTE,
	"__extension__":                TK_EXTENSION,
	"__real":                       TK_REAL,
	"__real__":                     TK_REAL,
	"__imag":                       TK_IMAG,
	"__imag__":                     TK_IMAG,
	"__builtin_va_arg":             TK_VA_ARG,
	"__builtin_offsetof":           TK_OFFSETOF,
	"__builtin_types_compatible_p": TK_TYPES_COMPAT,
}

// lookupKeyword classifies an identifier lexeme against the keyword
// vocabulary. Matching is exact string equality.
func lookupKeyword(s string) (Kind, bool) {
	k, ok := keywords[s]
	return k, ok
}
