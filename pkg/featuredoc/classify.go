package featuredoc

import (
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/featuredoc/pkg/errors"
)

// LineKind identifies what a logical line is.
type LineKind int

const (
	Blank        LineKind = iota // empty or whitespace only
	PlainComment                 // "# ..." and "###...", carries no documentation
	OuterComment                 // "#! ...", free-standing prose
	InnerComment                 // "## ...", documents the next entry
	TableHeader                  // "[path]" or "[[path]]"
	Entry                        // "key = value"
	Opaque                       // anything else
)

var lineKindNames = map[LineKind]string{
	Blank:        "blank",
	PlainComment: "plain-comment",
	OuterComment: "outer-comment",
	InnerComment: "inner-comment",
	TableHeader:  "table-header",
	Entry:        "entry",
	Opaque:       "opaque",
}

func (k LineKind) String() string {
	if s, ok := lineKindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ClassifiedLine is a logical line tagged with its kind and the parts
// relevant to that kind.
type ClassifiedLine struct {
	Kind LineKind
	Line LogicalLine

	Path    []string // TableHeader: table path segments
	Key     []string // Entry: key segments (more than one for dotted keys)
	Value   string   // Entry: raw value text, possibly spanning lines
	Comment string   // OuterComment, InnerComment: text after the marker
}

// Classify splits text into logical lines and classifies each one.
func Classify(text string) ([]ClassifiedLine, error) {
	logical, err := joinLines(splitLines(text))
	if err != nil {
		return nil, err
	}
	out := make([]ClassifiedLine, 0, len(logical))
	for _, l := range logical {
		cl, err := classifyLine(l)
		if err != nil {
			return nil, err
		}
		out = append(out, cl)
	}
	return out, nil
}

func classifyLine(l LogicalLine) (ClassifiedLine, error) {
	cl := ClassifiedLine{Line: l}
	trimmed := strings.TrimSpace(l.Text)

	switch {
	case trimmed == "":
		cl.Kind = Blank
	case strings.HasPrefix(trimmed, "#"):
		cl.Kind, cl.Comment = classifyComment(trimmed)
	case strings.HasPrefix(trimmed, "["):
		path, err := parseHeader(trimmed)
		if err != nil {
			return cl, errors.AtLine(errors.ErrCodeMalformedHeader, l.Start,
				"parse error while parsing line: %s", trimmed)
		}
		cl.Kind = TableHeader
		cl.Path = path
	case l.eq >= 0:
		cl.Kind = Entry
		cl.Key = parseKey(l.Text[:l.eq])
		cl.Value = strings.TrimSpace(l.Text[l.eq+1:])
	default:
		cl.Kind = Opaque
	}
	return cl, nil
}

// classifyComment handles a line starting with '#'. Doc markers must be
// followed by a space or the end of the line; "###" and "#!x" are plain.
func classifyComment(line string) (LineKind, string) {
	for _, m := range []struct {
		prefix string
		kind   LineKind
	}{
		{"#!", OuterComment},
		{"##", InnerComment},
	} {
		rest, ok := strings.CutPrefix(line, m.prefix)
		if !ok {
			continue
		}
		if rest == "" {
			return m.kind, ""
		}
		if rest[0] == ' ' {
			return m.kind, rest[1:]
		}
		return PlainComment, ""
	}
	return PlainComment, ""
}

// parseHeader decodes a table header with the TOML decoder and returns its
// path. Trailing text after the closing bracket must be a comment.
func parseHeader(line string) ([]string, error) {
	var m map[string]any
	if _, err := toml.Decode(line, &m); err != nil {
		return nil, err
	}
	path := keyPath(m)
	if len(path) == 0 {
		return nil, errors.New(errors.ErrCodeMalformedHeader, "empty table header")
	}
	return path, nil
}

// parseKey decodes a possibly quoted, possibly dotted key. Keys the TOML
// decoder rejects fall back to their trimmed text.
func parseKey(raw string) []string {
	raw = strings.TrimSpace(raw)
	var m map[string]any
	if _, err := toml.Decode(raw+" = 0", &m); err == nil {
		if path := keyPath(m); len(path) > 0 {
			return path
		}
	}
	return []string{strings.Trim(raw, `"'`)}
}

// keyPath walks a decoded single-key document and returns the key segments
// from the root to the leaf.
func keyPath(m map[string]any) []string {
	var path []string
	for len(m) == 1 {
		var next map[string]any
		for k, v := range m {
			path = append(path, k)
			switch v := v.(type) {
			case map[string]any:
				next = v
			case []map[string]any:
				if len(v) > 0 {
					next = v[len(v)-1]
				}
			}
		}
		if next == nil {
			break
		}
		m = next
	}
	return path
}
