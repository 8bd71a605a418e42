package featuredoc

// ItemKind distinguishes the two kinds of rendered items.
type ItemKind int

const (
	Prose      ItemKind = iota // free-standing Markdown from "#!" lines
	FeatureDoc                 // one documented feature or optional dependency
)

func (k ItemKind) String() string {
	if k == Prose {
		return "prose"
	}
	return "feature"
}

// EntrySource tells where a FeatureDoc item was declared.
type EntrySource int

const (
	SourceFeature    EntrySource = iota // an entry of [features]
	SourceDependency                    // an optional dependency
)

func (s EntrySource) String() string {
	if s == SourceDependency {
		return "dependency"
	}
	return "feature"
}

// RenderItem is one unit of output, kept in manifest order.
type RenderItem struct {
	Kind    ItemKind
	Source  EntrySource // FeatureDoc only
	Name    string      // FeatureDoc only
	Default bool        // FeatureDoc only: reachable from the default feature
	Text    string      // prose, or the feature's documentation (may be empty)
	Line    int         // manifest line the item starts at
}

// Documented reports whether a FeatureDoc item carries documentation.
func (it RenderItem) Documented() bool {
	return it.Text != ""
}

// Document is the result of scanning one manifest.
type Document struct {
	Items    []RenderItem
	Defaults DefaultSet

	opts Options
}

// Parse scans manifest text and binds documentation comments to features
// and optional dependencies. Any structural problem aborts the scan and is
// returned as an *errors.Error carrying the offending line.
func Parse(text string, opts Options) (*Document, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	lines, err := Classify(text)
	if err != nil {
		return nil, err
	}

	b := newBinder(opts)
	for _, cl := range lines {
		if err := b.line(cl); err != nil {
			return nil, err
		}
	}
	if err := b.finish(); err != nil {
		return nil, err
	}

	defaults := resolveDefaults(b.defaults, b.refs)
	for i := range b.items {
		it := &b.items[i]
		if it.Kind == FeatureDoc {
			it.Default = defaults.Contains(it.Name)
		}
	}

	return &Document{Items: b.items, Defaults: defaults, opts: opts}, nil
}

// Generate scans manifest text and renders its feature documentation as
// Markdown. A manifest without features or prose yields "".
func Generate(text string, opts Options) (string, error) {
	doc, err := Parse(text, opts)
	if err != nil {
		return "", err
	}
	return doc.Markdown(), nil
}

// Features returns the FeatureDoc items in manifest order.
func (d *Document) Features() []RenderItem {
	var out []RenderItem
	for _, it := range d.Items {
		if it.Kind == FeatureDoc {
			out = append(out, it)
		}
	}
	return out
}

// Undocumented returns the names of features and optional dependencies
// that have no documentation comment.
func (d *Document) Undocumented() []string {
	var out []string
	for _, it := range d.Features() {
		if !it.Documented() {
			out = append(out, it.Name)
		}
	}
	return out
}

// Options returns the options the document was parsed with.
func (d *Document) Options() Options {
	return d.opts
}
