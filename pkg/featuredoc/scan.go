package featuredoc

// strKind is the kind of TOML string literal the scanner is inside.
type strKind int

const (
	strNone strKind = iota
	strBasic
	strLiteral
	strMultiBasic
	strMultiLiteral
)

// scanner tracks just enough TOML lexical state to know where a logical
// line ends: open strings, open value brackets, and comment starts.
//
// Brackets only count once the top-level `=` of an entry has been seen,
// so a broken table header never swallows the rest of the file.
type scanner struct {
	str    strKind
	depth  int
	eq     int // byte offset of the top-level '=' in the logical line, or -1
	offset int // bytes consumed by previous physical lines
}

func newScanner() *scanner {
	return &scanner{eq: -1}
}

// open reports whether the current logical line continues on the next
// physical line.
func (s *scanner) open() bool {
	return s.str == strMultiBasic || s.str == strMultiLiteral || s.depth > 0
}

// feed advances the scanner over one physical line. It returns the byte
// offset in line where a comment starts, or -1.
func (s *scanner) feed(line string) int {
	comment := -1
	i := 0
	for i < len(line) {
		c := line[i]
		switch s.str {
		case strNone:
			switch {
			case c == '#':
				comment = i
				i = len(line)
				continue
			case c == '"':
				if hasPrefixAt(line, i, `"""`) {
					s.str = strMultiBasic
					i += 3
					continue
				}
				s.str = strBasic
			case c == '\'':
				if hasPrefixAt(line, i, "'''") {
					s.str = strMultiLiteral
					i += 3
					continue
				}
				s.str = strLiteral
			case c == '=' && s.eq < 0 && s.depth == 0:
				s.eq = s.offset + i
			case s.eq >= 0 && (c == '[' || c == '{'):
				s.depth++
			case s.eq >= 0 && (c == ']' || c == '}') && s.depth > 0:
				s.depth--
			}
		case strBasic:
			switch c {
			case '\\':
				i++
			case '"':
				s.str = strNone
			}
		case strLiteral:
			if c == '\'' {
				s.str = strNone
			}
		case strMultiBasic:
			if c == '\\' {
				i++
			} else if hasPrefixAt(line, i, `"""`) {
				s.str = strNone
				i = skipRun(line, i, '"')
				continue
			}
		case strMultiLiteral:
			if hasPrefixAt(line, i, "'''") {
				s.str = strNone
				i = skipRun(line, i, '\'')
				continue
			}
		}
		i++
	}

	// Single-line strings never span lines; leave malformed ones to the
	// value decoder.
	if s.str == strBasic || s.str == strLiteral {
		s.str = strNone
	}
	s.offset += len(line) + 1
	return comment
}

func hasPrefixAt(s string, i int, prefix string) bool {
	return len(s)-i >= len(prefix) && s[i:i+len(prefix)] == prefix
}

// skipRun consumes a closing triple quote plus up to two extra quotes that
// belong to the string content.
func skipRun(s string, i int, q byte) int {
	n := 0
	for i < len(s) && s[i] == q && n < 5 {
		i++
		n++
	}
	return i
}
