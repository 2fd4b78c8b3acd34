package scanner

// Stream wraps a Scanner with one token of lookahead.
// Once the Eof token has been produced it is returned forever.
type Stream struct {
	s      *Scanner
	peeked bool
	next   Token
	eof    Token
}

func NewStream(s *Scanner) *Stream {
	return &Stream{s: s, eof: Token{Kind: Eof}}
}

// Peek returns the next token without consuming it.
func (st *Stream) Peek() Token {
	if !st.peeked {
		st.next = st.pull()
		st.peeked = true
	}
	return st.next
}

// Next consumes and returns the next token.
func (st *Stream) Next() Token {
	t := st.Peek()
	st.peeked = false
	return t
}

func (st *Stream) pull() Token {
	tok, ok := st.s.Next()
	if !ok {
		return st.eof
	}
	if tok.Kind == Eof {
		st.eof = tok
	}
	return tok
}
