package pipeline

import (
	"bytes"

	"github.com/matzehuels/featuredoc/pkg/errors"
	"github.com/matzehuels/featuredoc/pkg/featuredoc"
	"github.com/matzehuels/featuredoc/pkg/io"
	"github.com/matzehuels/featuredoc/pkg/markdown"
)

// Render formats a parsed document. source names the manifest in JSON
// output.
func Render(doc *featuredoc.Document, source, format string) ([]byte, error) {
	switch format {
	case FormatMarkdown, "":
		return []byte(doc.Markdown()), nil
	case FormatHTML:
		html, err := markdown.ToHTML(doc.Markdown())
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render html")
		}
		return []byte(html), nil
	case FormatJSON:
		var buf bytes.Buffer
		if err := io.WriteJSON(doc, source, &buf); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render json")
		}
		return buf.Bytes(), nil
	}
	return nil, errors.ValidateFormat(format, ValidFormats)
}
