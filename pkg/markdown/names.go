package markdown

import (
	"bytes"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ListedNames parses Markdown and returns, in order, the name of every
// top-level list item whose first strong span holds a code span. This is
// the shape "* **`name`** ..." rendered for features.
func ListedNames(markdown string) []string {
	src := []byte(markdown)
	doc := newEngine().Parser().Parse(text.NewReader(src))

	var names []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if n.Kind() != ast.KindListItem {
			return ast.WalkContinue, nil
		}
		if list := n.Parent(); list == nil || list.Parent() == nil || list.Parent().Kind() != ast.KindDocument {
			return ast.WalkSkipChildren, nil
		}
		if name, ok := itemName(n, src); ok {
			names = append(names, name)
		}
		return ast.WalkSkipChildren, nil
	})
	return names
}

// itemName finds the first strong emphasis in the item's leading block and
// returns the text of the code span inside it.
func itemName(item ast.Node, src []byte) (string, bool) {
	block := item.FirstChild()
	if block == nil {
		return "", false
	}
	for c := block.FirstChild(); c != nil; c = c.NextSibling() {
		em, ok := c.(*ast.Emphasis)
		if !ok || em.Level != 2 {
			continue
		}
		code := em.FirstChild()
		if code == nil || code.Kind() != ast.KindCodeSpan {
			return "", false
		}
		return nodeText(code, src), true
	}
	return "", false
}

func nodeText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(src))
		}
	}
	return buf.String()
}
