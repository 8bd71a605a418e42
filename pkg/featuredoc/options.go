package featuredoc

import (
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/featuredoc/pkg/errors"
)

// Options configures a scan. The zero value uses the defaults.
type Options struct {
	// FeatureLabel replaces DefaultFeatureLabel when set. An empty label
	// renders the bare name; a label containing FeaturePlaceholder is used
	// as a template for the whole item head.
	FeatureLabel *string `toml:"feature_label"`

	// PlainCommentBreaks makes a plain "#" comment between a "##" block and
	// its entry break the binding, the way a blank line does.
	PlainCommentBreaks bool `toml:"plain_comment_breaks"`
}

// Label returns the effective feature label.
func (o Options) Label() string {
	if o.FeatureLabel == nil {
		return DefaultFeatureLabel
	}
	return *o.FeatureLabel
}

// WithFeatureLabel returns a copy of o using label.
func (o Options) WithFeatureLabel(label string) Options {
	o.FeatureLabel = &label
	return o
}

// Validate checks option values.
func (o Options) Validate() error {
	if o.FeatureLabel == nil {
		return nil
	}
	return errors.ValidateFeatureLabel(*o.FeatureLabel)
}

// ParseOptions decodes options written as TOML key/value pairs, e.g.
//
//	feature_label = "<span class=\"stab portability\"><code>{feature}</code></span>"
//
// Unknown keys are rejected.
func ParseOptions(text string) (Options, error) {
	var o Options
	md, err := toml.Decode(text, &o)
	if err != nil {
		return Options{}, errors.Wrap(errors.ErrCodeInvalidOption, err, "parse options")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Options{}, errors.New(errors.ErrCodeInvalidOption, "unknown option(s): %s", strings.Join(keys, ", "))
	}
	if err := o.Validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}
