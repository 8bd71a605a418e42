package featuredoc

import "strings"

const (
	// DefaultFeatureLabel prefixes each feature name unless overridden.
	DefaultFeatureLabel = "Feature flag"

	// FeaturePlaceholder in a label is replaced by the feature name, and the
	// label then stands for the whole item head.
	FeaturePlaceholder = "{feature}"

	defaultAnnotation = " *(enabled by default)*"
	itemIndent        = "  "
)

// Markdown renders the document. Prose items are emitted verbatim and
// separated from what precedes them by a blank line; consecutive features
// form one list.
func (d *Document) Markdown() string {
	return renderItems(d.Items, d.opts.Label())
}

func renderItems(items []RenderItem, label string) string {
	var b strings.Builder
	for i, it := range items {
		if i > 0 && it.Kind == Prose {
			b.WriteByte('\n')
		}
		switch it.Kind {
		case Prose:
			b.WriteString(it.Text)
			b.WriteByte('\n')
		case FeatureDoc:
			writeFeature(&b, it, label)
		}
	}
	return b.String()
}

func writeFeature(b *strings.Builder, it RenderItem, label string) {
	b.WriteString("* ")
	b.WriteString(featureHead(label, it.Name))
	if it.Default {
		b.WriteString(defaultAnnotation)
	}

	var lines []string
	if it.Text != "" {
		lines = strings.Split(it.Text, "\n")
		b.WriteString(" — ")
		b.WriteString(lines[0])
	}
	b.WriteByte('\n')

	for _, l := range lines[min(1, len(lines)):] {
		if l != "" {
			b.WriteString(itemIndent)
			b.WriteString(l)
		}
		b.WriteByte('\n')
	}
}

// featureHead formats the part of a list item that names the feature.
func featureHead(label, name string) string {
	if strings.Contains(label, FeaturePlaceholder) {
		return strings.Replace(label, FeaturePlaceholder, name, 1)
	}
	code := "**`" + name + "`**"
	if label == "" {
		return code
	}
	return label + " " + code
}
