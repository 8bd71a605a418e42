package markdown

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToHTML(t *testing.T) {
	got, err := ToHTML("* **`fast`** *(enabled by default)* — Go fast\n")
	if err != nil {
		t.Fatalf("ToHTML() error: %v", err)
	}
	for _, want := range []string{
		"<ul>",
		"<li><strong><code>fast</code></strong>",
		"<em>(enabled by default)</em>",
		"Go fast",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("ToHTML() = %q, missing %q", got, want)
		}
	}
}

func TestToHTMLKeepsInlineMarkup(t *testing.T) {
	got, err := ToHTML("* <span class=\"stab\">**`tls`**</span>\n")
	if err != nil {
		t.Fatalf("ToHTML() error: %v", err)
	}
	if !strings.Contains(got, `<span class="stab">`) {
		t.Errorf("ToHTML() = %q, raw HTML dropped", got)
	}
}

func TestToHTMLEmpty(t *testing.T) {
	got, err := ToHTML("")
	if err != nil {
		t.Fatalf("ToHTML() error: %v", err)
	}
	if got != "" {
		t.Errorf("ToHTML(\"\") = %q, want empty", got)
	}
}

func TestListedNames(t *testing.T) {
	md := "Intro prose\n\n" +
		"* **`fast`** *(enabled by default)* — Go fast\n" +
		"  * nested **`ignored`**\n" +
		"* Feature flag **`tls`** — TLS\n" +
		"* **`serde`**\n" +
		"\n" +
		"* plain item\n"

	want := []string{"fast", "tls", "serde"}
	if diff := cmp.Diff(want, ListedNames(md)); diff != "" {
		t.Errorf("ListedNames() mismatch (-want +got):\n%s", diff)
	}
}

func TestListedNamesEmpty(t *testing.T) {
	if got := ListedNames(""); len(got) != 0 {
		t.Errorf("ListedNames(\"\") = %v, want none", got)
	}
}
