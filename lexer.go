// Package cc lexes preprocessed C translation units (C11 plus the GNU
// extensions gcc and clang emit) into typed tokens with byte-accurate
// source positions. It is the first stage of a C parsing and
// pretty-printing pipeline: the parser drives Lexer.Next one token at a
// time and feeds typedef scope back through the Env callback, which is
// what decides identifier versus type-name classification.
package cc

import "fmt"

// Lexer carries all mutable state for lexing one translation unit: the
// input cursor, the interning table, the typedef-name predicate supplied
// by the parser, the diagnostic sink, and the most recent token. The
// state is threaded through method calls on this one record; there is no
// package-level mutable state, and a Lexer must not be shared between
// goroutines.
type Lexer struct {
	src     source
	names   *names
	env     Env
	sink    DiagSink
	collect collectSink
	last    *Token
	failed  bool
}

// Option configures a Lexer.
type Option func(*Lexer)

// WithEnv installs the parser's symbol environment. Without one, every
// non-keyword identifier is an ordinary TK_IDENT.
func WithEnv(env Env) Option {
	return func(l *Lexer) { l.env = env }
}

// WithSink installs an additional diagnostic sink. The lexer always
// records the first error internally (see Err); the sink sees every
// report and may choose to terminate the process.
func WithSink(sink DiagSink) Option {
	return func(l *Lexer) { l.sink = sink }
}

// WithFreshName overrides the name-id supply. The default hands out
// 0, 1, 2, ... per lexer; a parser that owns the id space can pass its
// own counter, as long as it never repeats a value.
func WithFreshName(fresh func() int) Option {
	return func(l *Lexer) { l.names = newNames(fresh) }
}

// NewLexer returns a lexer over buf, which must be preprocessed C text.
// Positions start at file:1:1, offset 0.
func NewLexer(buf []byte, file string, opts ...Option) *Lexer {
	l := &Lexer{src: newSource(buf, file)}
	next := 0
	l.names = newNames(func() int {
		id := next
		next++
		return id
	})
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Next returns the next token, or the EOF sentinel. This is the only
// entry point that updates the recent-token cache; the recursive re-lex
// after a #line directive goes through the internal lex and leaves the
// cache alone, so a token is never recorded twice.
func (l *Lexer) Next() *Token {
	t := l.lex()
	l.last = t
	return t
}

// Last returns the most recently emitted token, for error reporting.
func (l *Lexer) Last() *Token { return l.last }

// Err returns the first lexical error reported, if any.
func (l *Lexer) Err() error {
	if l.collect.err != nil {
		return l.collect.err
	}
	return nil
}

// Buf returns the input buffer the lexer was created over.
func (l *Lexer) Buf() []byte { return l.src.buf }

// SyntaxError formats a parser-side syntax diagnostic pointing at the
// most recently emitted token.
func (l *Lexer) SyntaxError() *LexError {
	if l.last == nil {
		return &LexError{
			Pos:     StartPos(l.src.pos.File),
			Summary: syntaxSummary,
			Detail:  "The input is empty.",
		}
	}
	return &LexError{
		Pos:     l.last.Pos,
		Summary: syntaxSummary,
		Detail:  fmt.Sprintf("The symbol %q does not fit here.", l.last.Text(l.src.buf)),
	}
}

func (l *Lexer) report(pos Pos, detail string) {
	e := &LexError{Pos: pos, Summary: lexSummary, Detail: detail}
	l.collect.Report(e)
	if l.sink != nil {
		l.sink.Report(e)
	}
	l.failed = true
}

func (l *Lexer) eofToken() *Token {
	return &Token{Kind: TK_EOF, Pos: l.src.pos}
}

// Tokenize lexes all of src in one call and returns the token stream,
// EOF sentinel included. The incremental Lexer.Next is the parser-facing
// surface; this driver serves tools and tests.
func Tokenize(src []byte, file string, opts ...Option) ([]*Token, error) {
	l := NewLexer(src, file, opts...)
	var toks []*Token
	for {
		t := l.Next()
		toks = append(toks, t)
		if t.Kind == TK_EOF {
			break
		}
	}
	return toks, l.Err()
}
