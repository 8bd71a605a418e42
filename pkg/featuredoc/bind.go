package featuredoc

import (
	"strings"

	"github.com/matzehuels/featuredoc/pkg/errors"
)

// commentBlock is a run of contiguous comment lines of one kind.
type commentBlock struct {
	start int
	lines []string
}

// docText returns the block with its common indentation removed and
// surrounding empty lines trimmed.
func (c *commentBlock) docText() string {
	if c == nil {
		return ""
	}
	return strings.Join(trimEmpty(dedent(c.lines)), "\n")
}

// proseText returns the block verbatim apart from surrounding empty lines.
func (c *commentBlock) proseText() string {
	return strings.Join(trimEmpty(c.lines), "\n")
}

// subtable is an open [dependencies.<name>] table waiting for its
// optional = true entry.
type subtable struct {
	table    []string
	name     string
	line     int
	doc      *commentBlock
	index    int
	optional bool
}

// binder walks classified lines once, attaching "##" blocks to the entry
// that immediately follows them and turning "#!" blocks into prose.
type binder struct {
	opts Options

	scope   []string
	pending *commentBlock // "##" lines not yet bound
	prose   *commentBlock // "#!" lines not yet emitted
	sub     *subtable

	items []RenderItem
	seen  map[string]int

	refs     map[string][]string // feature name -> referenced names
	defaults []string
}

func newBinder(opts Options) *binder {
	return &binder{
		opts: opts,
		seen: make(map[string]int),
		refs: make(map[string][]string),
	}
}

func (b *binder) line(cl ClassifiedLine) error {
	transparent := cl.Kind == OuterComment || (cl.Kind == PlainComment && !b.opts.PlainCommentBreaks)
	if !transparent {
		b.flushProse()
	}

	switch cl.Kind {
	case Blank, Opaque:
		b.pending = nil
	case PlainComment:
		if b.opts.PlainCommentBreaks {
			b.pending = nil
		}
	case OuterComment:
		b.pending = nil
		if b.prose == nil {
			b.prose = &commentBlock{start: cl.Line.Start}
		}
		b.prose.lines = append(b.prose.lines, cl.Comment)
	case InnerComment:
		if b.pending == nil {
			b.pending = &commentBlock{start: cl.Line.Start}
		}
		b.pending.lines = append(b.pending.lines, cl.Comment)
	case TableHeader:
		return b.header(cl)
	case Entry:
		return b.entry(cl)
	}
	return nil
}

// finish flushes trailing state. A "##" block left at the end of the input
// has nothing to document and is dropped.
func (b *binder) finish() error {
	b.flushProse()
	b.pending = nil
	return b.closeSubtable()
}

func (b *binder) take() *commentBlock {
	doc := b.pending
	b.pending = nil
	return doc
}

func (b *binder) flushProse() {
	if b.prose == nil {
		return
	}
	if text := b.prose.proseText(); text != "" {
		b.items = append(b.items, RenderItem{Kind: Prose, Text: text, Line: b.prose.start})
	}
	b.prose = nil
}

func (b *binder) header(cl ClassifiedLine) error {
	if err := b.closeSubtable(); err != nil {
		return err
	}
	b.scope = cl.Path
	doc := b.take()

	name, ok := dependencySubtable(cl.Path)
	if !ok {
		return nil
	}
	b.sub = &subtable{
		table: cl.Path[:len(cl.Path)-1],
		name:  name,
		line:  cl.Line.Start,
		doc:   doc,
		index: len(b.items),
	}
	b.items = append(b.items, RenderItem{
		Kind:   FeatureDoc,
		Source: SourceDependency,
		Name:   name,
		Text:   doc.docText(),
		Line:   cl.Line.Start,
	})
	return nil
}

// closeSubtable keeps the candidate item of the open dependency table when
// it turned out optional and removes it otherwise.
func (b *binder) closeSubtable() error {
	s := b.sub
	if s == nil {
		return nil
	}
	b.sub = nil
	if s.optional {
		return b.claim(s.table, s.name, s.line)
	}
	if s.doc != nil {
		return errors.AtLine(errors.ErrCodeNotOptional, s.line,
			"dependency %s is not an optional dependency", s.name)
	}
	b.items = append(b.items[:s.index], b.items[s.index+1:]...)
	return nil
}

func (b *binder) entry(cl ClassifiedLine) error {
	doc := b.take()
	table, name := effectiveTable(b.scope, cl.Key)

	switch {
	case isFeatures(table):
		return b.feature(cl, name, doc)
	case isDependencies(table):
		return b.dependency(cl, table, name, doc)
	}

	if dep, ok := dependencySubtable(table); ok && name == "optional" {
		return b.optionalKey(cl, table, dep, doc)
	}
	if doc != nil {
		return errors.AtLine(errors.ErrCodeNotAFeature, cl.Line.Start,
			"comment cannot be associated with a feature: %s", strings.Join(cl.Key, "."))
	}
	return nil
}

func (b *binder) feature(cl ClassifiedLine, name string, doc *commentBlock) error {
	refs, err := decodeFeatureRefs(cl.Value)
	if err != nil {
		return &errors.Error{
			Code:    errors.ErrCodeMalformedValue,
			Line:    cl.Line.Start,
			Message: "parse error while parsing feature " + name,
			Cause:   err,
		}
	}
	if err := b.claim([]string{"features"}, name, cl.Line.Start); err != nil {
		return err
	}
	b.refs[name] = refs

	if name == "default" {
		b.defaults = refs
		if doc == nil {
			return nil
		}
	}
	b.items = append(b.items, RenderItem{
		Kind:   FeatureDoc,
		Source: SourceFeature,
		Name:   name,
		Text:   doc.docText(),
		Line:   cl.Line.Start,
	})
	return nil
}

func (b *binder) dependency(cl ClassifiedLine, table []string, name string, doc *commentBlock) error {
	v, err := decodeValue(cl.Value)
	if err != nil {
		return &errors.Error{
			Code:    errors.ErrCodeMalformedValue,
			Line:    cl.Line.Start,
			Message: "parse error while parsing dependency " + name,
			Cause:   err,
		}
	}
	if !isOptional(v) {
		if doc != nil {
			return errors.AtLine(errors.ErrCodeNotOptional, cl.Line.Start,
				"dependency %s is not an optional dependency", name)
		}
		return nil
	}
	return b.addDependency(table, name, doc, cl.Line.Start)
}

// optionalKey handles "optional = ..." inside [dependencies.<name>] and the
// dotted form "<name>.optional = ..." inside [dependencies].
func (b *binder) optionalKey(cl ClassifiedLine, table []string, dep string, doc *commentBlock) error {
	v, err := decodeValue(cl.Value)
	if err != nil {
		return &errors.Error{
			Code:    errors.ErrCodeMalformedValue,
			Line:    cl.Line.Start,
			Message: "parse error while parsing dependency " + dep,
			Cause:   err,
		}
	}
	on, _ := v.(bool)

	if b.sub != nil && b.sub.name == dep && equalPath(b.sub.table, table[:len(table)-1]) {
		if doc != nil {
			return errors.AtLine(errors.ErrCodeNotAFeature, cl.Line.Start,
				"comment cannot be associated with a feature: optional")
		}
		b.sub.optional = on
		return nil
	}

	if !on {
		if doc != nil {
			return errors.AtLine(errors.ErrCodeNotOptional, cl.Line.Start,
				"dependency %s is not an optional dependency", dep)
		}
		return nil
	}
	return b.addDependency(table[:len(table)-1], dep, doc, cl.Line.Start)
}

func (b *binder) addDependency(table []string, name string, doc *commentBlock, line int) error {
	if err := b.claim(table, name, line); err != nil {
		return err
	}
	b.items = append(b.items, RenderItem{
		Kind:   FeatureDoc,
		Source: SourceDependency,
		Name:   name,
		Text:   doc.docText(),
		Line:   line,
	})
	return nil
}

// claim records name as declared in table, rejecting redeclarations.
func (b *binder) claim(table []string, name string, line int) error {
	key := tableKey(table, name)
	if prev, ok := b.seen[key]; ok {
		return errors.AtLine(errors.ErrCodeDuplicateEntry, line,
			"%s is already declared at line %d", name, prev)
	}
	b.seen[key] = line
	return nil
}

func equalPath(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// dedent strips the smallest leading-whitespace width shared by the
// non-empty lines. Whitespace-only lines become empty.
func dedent(lines []string) []string {
	width := -1
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		n := len(l) - len(strings.TrimLeft(l, " \t"))
		if width < 0 || n < width {
			width = n
		}
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		out[i] = strings.TrimRight(l[width:], " \t")
	}
	return out
}

func trimEmpty(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
