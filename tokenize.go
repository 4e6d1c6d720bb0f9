package cc

import "strconv"

// The scanner proper: a deterministic maximal-munch loop over the token
// grammar. Every rule either skips (whitespace, #pragma, #ident), emits
// a token, or raises a diagnostic; when several rules accept a prefix of
// the input the longest match wins, and ties go to the earlier rule.

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\v' || b == '\f' || b == '\n' || b == '\r'
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isOctDigit(b byte) bool { return b >= '0' && b <= '7' }

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// '$' is legal anywhere in an identifier as a GNU extension. No keyword
// spelling contains one, so a '$' lexeme can only classify as an
// identifier.
func isIdentStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' || b == '$'
}

func isIdentCont(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func isHSpace(b byte) bool { return b == ' ' || b == '\t' }

// lex scans forward to the next token. It is the internal loop below
// Next: callers that recurse through here (the line-directive processor)
// bypass the recent-token cache.
func (l *Lexer) lex() *Token {
	for {
		if l.failed {
			return l.eofToken()
		}

		for !l.src.empty() && isWhitespace(l.src.peek()) {
			l.src.advance(1)
		}
		if l.src.empty() {
			return l.eofToken()
		}

		b := l.src.peek()
		switch {
		case b == '#':
			if tok, done := l.scanDirective(); done {
				return tok
			}
			// #pragma or #ident: skipped, keep scanning.
			continue
		case isDigit(b) || (b == '.' && isDigit(l.src.peekAt(1))):
			return l.scanNumber()
		case b == '\'':
			return l.scanCharLiteral(false)
		case b == 'L' && l.src.peekAt(1) == '\'':
			return l.scanCharLiteral(true)
		case b == '"':
			return l.scanStringLiteral(false)
		case b == 'L' && l.src.peekAt(1) == '"':
			return l.scanStringLiteral(true)
		case isIdentStart(b):
			return l.scanIdent()
		default:
			if tok := l.scanPunct(); tok != nil {
				return tok
			}
			l.report(l.src.pos, msgCharNoFit(b))
			return l.eofToken()
		}
	}
}

// scanIdent reads an identifier, classifying it against the keyword
// vocabulary first and then against the parser's typedef environment.
func (l *Lexer) scanIdent() *Token {
	start := l.src.pos
	n := 1
	for isIdentCont(l.src.peekAt(n)) {
		n++
	}
	text := l.src.text(n)
	l.src.advance(n)

	if kw, ok := lookupKeyword(text); ok {
		return &Token{Kind: kw, Pos: start, Length: n}
	}

	name := l.names.intern(text, start)
	kind := TK_IDENT
	if l.env != nil && l.env.IsTypeIdent(name) {
		kind = TK_TYPEIDENT
	}
	return &Token{Kind: kind, Pos: start, Length: n, Name: name}
}

// puncts is the fixed punctuator vocabulary, longest spellings first so
// a linear probe realizes maximal munch ("<<=" before "<<" before "<").
var puncts = []struct {
	text string
	kind Kind
}{
	{"<<=", TK_SHL_EQ}, {">>=", TK_SHR_EQ}, {"...", TK_ELLIPSIS},

	{"->", TK_ARROW}, {"++", TK_INC}, {"--", TK_DEC},
	{"<<", TK_SHL}, {">>", TK_SHR}, {"<=", TK_LE}, {">=", TK_GE},
	{"==", TK_EQ}, {"!=", TK_NE}, {"&&", TK_ANDAND}, {"||", TK_OROR},
	{"+=", TK_ADD_EQ}, {"-=", TK_SUB_EQ}, {"*=", TK_MUL_EQ},
	{"/=", TK_DIV_EQ}, {"%=", TK_MOD_EQ}, {"&=", TK_AND_EQ},
	{"|=", TK_OR_EQ}, {"^=", TK_XOR_EQ},

	{"(", TK_LPAREN}, {")", TK_RPAREN}, {"[", TK_LBRACKET},
	{"]", TK_RBRACKET}, {"{", TK_LBRACE}, {"}", TK_RBRACE},
	{";", TK_SEMI}, {":", TK_COLON}, {",", TK_COMMA}, {".", TK_DOT},
	{"?", TK_QUESTION}, {"~", TK_TILDE}, {"!", TK_NOT}, {"+", TK_PLUS},
	{"-", TK_MINUS}, {"*", TK_STAR}, {"/", TK_SLASH}, {"%", TK_PERCENT},
	{"&", TK_AMP}, {"|", TK_PIPE}, {"^", TK_CARET}, {"<", TK_LT},
	{">", TK_GT}, {"=", TK_ASSIGN},
}

func (l *Lexer) scanPunct() *Token {
	for _, p := range puncts {
		if l.src.text(len(p.text)) == p.text {
			start := l.src.pos
			l.src.advance(len(p.text))
			return &Token{Kind: p.kind, Pos: start, Length: len(p.text)}
		}
	}
	return nil
}

// scanDirective handles the three preprocessor leftovers an upstream cpp
// emits: line markers ("# 42", "#line 42", both with an optional quoted
// filename and tolerated trailing integers), #pragma, and #ident.
//
// A line marker re-bases the position and recurses for the next real
// token; the returned done flag is true and the token is that next
// token. #pragma and #ident lines are skipped in place (done is false).
// Any other '#' form is a lexical error.
func (l *Lexer) scanDirective() (*Token, bool) {
	start := l.src.pos

	i := 1 // past '#'
	for isHSpace(l.src.peekAt(i)) {
		i++
	}

	if !isDigit(l.src.peekAt(i)) {
		// A directive keyword: line, pragma, or ident.
		w := i
		for isIdentCont(l.src.peekAt(w)) {
			w++
		}
		word := string(l.src.buf[start.Off+i : start.Off+w])
		switch word {
		case "pragma", "ident":
			l.skipToEOL()
			return nil, false
		case "line":
			i = w
			for isHSpace(l.src.peekAt(i)) {
				i++
			}
			if !isDigit(l.src.peekAt(i)) {
				l.report(start, msgCharNoFit('#'))
				return l.eofToken(), true
			}
		default:
			l.report(start, msgCharNoFit('#'))
			return l.eofToken(), true
		}
	}

	// Row number.
	d := i
	for isDigit(l.src.peekAt(d)) {
		d++
	}
	row, err := strconv.Atoi(string(l.src.buf[start.Off+i : start.Off+d]))
	if err != nil {
		l.report(start, msgCharNoFit('#'))
		return l.eofToken(), true
	}
	i = d
	for isHSpace(l.src.peekAt(i)) {
		i++
	}

	// Optional quoted filename, read up to the first closing quote.
	file := l.src.pos.File
	if l.src.peekAt(i) == '"' {
		i++
		f := i
		for {
			c := l.src.peekAt(f)
			if c == '"' {
				break
			}
			if c == 0 || c == '\n' {
				l.report(start, msgCharNoFit('#'))
				return l.eofToken(), true
			}
			f++
		}
		name := string(l.src.buf[start.Off+i : start.Off+f])
		// When the directive names the file we are already in, keep the
		// current reference so repeated markers share one string.
		if name != file {
			file = name
		}
		i = f + 1
		for isHSpace(l.src.peekAt(i)) {
			i++
		}
	}

	// GCC appends flag integers here; how many is undocumented, so any
	// run of them is tolerated and ignored.
	for isDigit(l.src.peekAt(i)) {
		for isDigit(l.src.peekAt(i)) {
			i++
		}
		for isHSpace(l.src.peekAt(i)) {
			i++
		}
	}

	// The directive's lexeme runs through its line terminator.
	switch {
	case l.src.peekAt(i) == '\n':
		i++
	case l.src.peekAt(i) == '\r' && l.src.peekAt(i+1) == '\n':
		i += 2
	case start.Off+i >= len(l.src.buf):
		// EOF terminates the directive.
	default:
		l.report(start, msgCharNoFit('#'))
		return l.eofToken(), true
	}

	l.src.skipRaw(i)
	l.src.pos.Line = row
	l.src.pos.Col = 1
	l.src.pos.File = file

	// Re-lex for the next real token. This recursion must not touch the
	// recent-token cache, which is why the cache update lives in Next.
	return l.lex(), true
}

func (l *Lexer) skipToEOL() {
	for !l.src.empty() && l.src.peek() != '\n' {
		l.src.advance(1)
	}
	if !l.src.empty() {
		l.src.advance(1)
	}
}
