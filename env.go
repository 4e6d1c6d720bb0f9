package cc

// Env is the lexer's view of the parser's symbol environment. It is the
// only semantic feedback channel between the two: on every identifier
// that is not a keyword, the lexer asks whether the name is currently
// bound as a typedef and emits TK_TYPEIDENT or TK_IDENT accordingly.
// The environment must be read-consistent at the moment of each call;
// lexer and parser run interleaved on one goroutine, so the parser can
// update its typedef scope between any two Next calls.
type Env interface {
	IsTypeIdent(name *Name) bool
}

// EnvFunc adapts a plain predicate to the Env interface.
type EnvFunc func(*Name) bool

func (f EnvFunc) IsTypeIdent(n *Name) bool { return f(n) }

// NameSetEnv is a ready-made environment over a set of typedef
// spellings, enough for tools and tests that have no real parser behind
// them.
type NameSetEnv map[string]bool

func (e NameSetEnv) IsTypeIdent(n *Name) bool { return e[n.Text] }
