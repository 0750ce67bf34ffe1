package lexer

// Stream owns the decoded source text and the scan cursor. The rune slice is
// shared with every lexeme slice taken from it, never copied.
type Stream struct {
	source []rune
	line   int
	col    int
	offset int
}

func NewStream(content string) *Stream {
	return &Stream{
		source: []rune(content),
		line:   1,
		col:    1,
	}
}

func (s *Stream) Source() []rune { return s.source }

func (s *Stream) AtEnd() bool { return s.offset >= len(s.source) }

// Pos returns the cursor position, ready to stamp on a token.
func (s *Stream) Pos() Position {
	return Position{Line: s.line, Col: s.col, Offset: s.offset}
}

// Advance moves the cursor forward n runes, keeping the line and column
// counters in step.
func (s *Stream) Advance(n int) {
	for i := 0; i < n && s.offset < len(s.source); i++ {
		if s.source[s.offset] == '\n' {
			s.line++
			s.col = 1
		} else {
			s.col++
		}
		s.offset++
	}
}

// Slice returns the text of the next n runes without moving the cursor.
func (s *Stream) Slice(n int) string {
	end := s.offset + n
	if end > len(s.source) {
		end = len(s.source)
	}
	return string(s.source[s.offset:end])
}
