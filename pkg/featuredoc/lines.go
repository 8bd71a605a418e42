package featuredoc

import (
	"strings"

	"github.com/matzehuels/featuredoc/pkg/errors"
)

// RawLine is one physical line of the manifest.
type RawLine struct {
	Num  int    // 1-based line number
	Text string // line content without the line terminator
}

// LogicalLine is one or more consecutive raw lines that form a single TOML
// construct, such as an entry whose array value spans several lines.
type LogicalLine struct {
	Start int    // first physical line number
	End   int    // last physical line number
	Text  string // raw lines joined with "\n"

	// eq is the byte offset of the top-level '=' in Text, or -1.
	eq int
}

// splitLines breaks text into physical lines. Both "\n" and "\r\n"
// terminators are accepted; a final terminator does not produce an extra
// empty line.
func splitLines(text string) []RawLine {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	lines := make([]RawLine, len(parts))
	for i, p := range parts {
		lines[i] = RawLine{Num: i + 1, Text: strings.TrimSuffix(p, "\r")}
	}
	return lines
}

// joinLines merges raw lines that continue a multi-line string or an
// unclosed array/inline table into logical lines.
func joinLines(raw []RawLine) ([]LogicalLine, error) {
	out := make([]LogicalLine, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		start := raw[i]
		s := newScanner()
		s.feed(start.Text)

		var b strings.Builder
		b.WriteString(start.Text)
		end := start.Num
		for s.open() {
			i++
			if i >= len(raw) {
				return nil, errors.AtLine(errors.ErrCodeUnterminatedValue, start.Num,
					"unterminated multi-line value starting at line %d", start.Num)
			}
			s.feed(raw[i].Text)
			b.WriteByte('\n')
			b.WriteString(raw[i].Text)
			end = raw[i].Num
		}

		out = append(out, LogicalLine{
			Start: start.Num,
			End:   end,
			Text:  b.String(),
			eq:    s.eq,
		})
	}
	return out, nil
}
