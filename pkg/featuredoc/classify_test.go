package featuredoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/featuredoc/pkg/errors"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		kind    LineKind
		comment string
		path    []string
		key     []string
		value   string
	}{
		{name: "blank", line: "   ", kind: Blank},
		{name: "empty", line: "", kind: Blank},
		{name: "plain", line: "# note", kind: PlainComment},
		{name: "triple hash", line: "### heading", kind: PlainComment},
		{name: "outer without space", line: "#!x", kind: PlainComment},
		{name: "inner without space", line: "##x", kind: PlainComment},
		{name: "outer", line: "#! text", kind: OuterComment, comment: "text"},
		{name: "outer empty", line: "#!", kind: OuterComment},
		{name: "outer keeps indentation", line: "  #!   - item", kind: OuterComment, comment: "  - item"},
		{name: "inner", line: "## Enables fast mode", kind: InnerComment, comment: "Enables fast mode"},
		{name: "inner empty", line: "##", kind: InnerComment},
		{name: "header", line: "[features]", kind: TableHeader, path: []string{"features"}},
		{name: "header with comment", line: "[features] # all of them", kind: TableHeader, path: []string{"features"}},
		{name: "dotted header", line: "[dependencies.serde]", kind: TableHeader, path: []string{"dependencies", "serde"}},
		{name: "quoted header", line: "[target.'cfg(unix)'.dependencies]", kind: TableHeader, path: []string{"target", "cfg(unix)", "dependencies"}},
		{name: "array table", line: "[[bin]]", kind: TableHeader, path: []string{"bin"}},
		{name: "entry", line: "fast = []", kind: Entry, key: []string{"fast"}, value: "[]"},
		{name: "quoted key", line: `"a.b" = 1`, kind: Entry, key: []string{"a.b"}, value: "1"},
		{name: "dotted key", line: "serde.optional = true", kind: Entry, key: []string{"serde", "optional"}, value: "true"},
		{name: "equals in string", line: `name = "a = b" # c`, kind: Entry, key: []string{"name"}, value: `"a = b" # c`},
		{name: "opaque", line: "garbage", kind: Opaque},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := Classify(tt.line)
			if err != nil {
				t.Fatalf("Classify(%q) error = %v", tt.line, err)
			}
			if tt.line == "" {
				if len(lines) != 0 {
					t.Fatalf("Classify(\"\") = %d lines, want 0", len(lines))
				}
				return
			}
			if len(lines) != 1 {
				t.Fatalf("Classify(%q) = %d lines, want 1", tt.line, len(lines))
			}
			got := lines[0]
			if got.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", got.Kind, tt.kind)
			}
			if got.Comment != tt.comment {
				t.Errorf("Comment = %q, want %q", got.Comment, tt.comment)
			}
			if diff := cmp.Diff(tt.path, got.Path); diff != "" {
				t.Errorf("Path mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.key, got.Key); diff != "" {
				t.Errorf("Key mismatch (-want +got):\n%s", diff)
			}
			if got.Value != tt.value {
				t.Errorf("Value = %q, want %q", got.Value, tt.value)
			}
		})
	}
}

func TestClassifyJoinsContinuations(t *testing.T) {
	text := "a = [\n  \"x\", # ]\n  \"y\",\n]\nb = \"\"\"\n[not]\n\"\"\"\nc = { d = 1 }\n"
	lines, err := Classify(text)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}

	type span struct {
		Kind       LineKind
		Start, End int
	}
	var got []span
	for _, l := range lines {
		got = append(got, span{l.Kind, l.Line.Start, l.Line.End})
	}
	want := []span{
		{Entry, 1, 4},
		{Entry, 5, 7},
		{Entry, 8, 8},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("spans mismatch (-want +got):\n%s", diff)
	}
	if lines[0].Value != "[\n  \"x\", # ]\n  \"y\",\n]" {
		t.Errorf("Value = %q", lines[0].Value)
	}
}

func TestClassifyMalformedHeader(t *testing.T) {
	for _, line := range []string{"[abcd", "[]", "[a] b", "[a..b]"} {
		_, err := Classify(line)
		if !errors.Is(err, errors.ErrCodeMalformedHeader) {
			t.Errorf("Classify(%q) error = %v, want %v", line, err, errors.ErrCodeMalformedHeader)
		}
	}
}

func TestLineKindString(t *testing.T) {
	if got := InnerComment.String(); got != "inner-comment" {
		t.Errorf("String() = %q, want inner-comment", got)
	}
	if got := LineKind(99).String(); got != "unknown" {
		t.Errorf("String() = %q, want unknown", got)
	}
}
