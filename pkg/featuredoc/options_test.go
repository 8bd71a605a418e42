package featuredoc

import (
	"testing"

	"github.com/matzehuels/featuredoc/pkg/errors"
)

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantLabel  string
		wantBreaks bool
		wantErr    bool
	}{
		{name: "empty", input: "", wantLabel: DefaultFeatureLabel},
		{name: "label", input: `feature_label = "Crate feature"`, wantLabel: "Crate feature"},
		{name: "empty label", input: `feature_label = ""`, wantLabel: ""},
		{name: "literal template", input: `feature_label = '<code>{feature}</code>'`, wantLabel: "<code>{feature}</code>"},
		{name: "plain comment breaks", input: "plain_comment_breaks = true", wantLabel: DefaultFeatureLabel, wantBreaks: true},
		{name: "unknown key", input: `feature_labels = "x"`, wantErr: true},
		{name: "wrong type", input: "feature_label = 3", wantErr: true},
		{name: "newline in label", input: `feature_label = "a\nb"`, wantErr: true},
		{name: "not toml", input: "feature_label", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := ParseOptions(tt.input)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidOption) {
					t.Fatalf("ParseOptions(%q) error = %v, want %v", tt.input, err, errors.ErrCodeInvalidOption)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOptions(%q) error = %v", tt.input, err)
			}
			if got := opts.Label(); got != tt.wantLabel {
				t.Errorf("Label() = %q, want %q", got, tt.wantLabel)
			}
			if opts.PlainCommentBreaks != tt.wantBreaks {
				t.Errorf("PlainCommentBreaks = %v, want %v", opts.PlainCommentBreaks, tt.wantBreaks)
			}
		})
	}
}

func TestWithFeatureLabel(t *testing.T) {
	base := Options{}
	custom := base.WithFeatureLabel("x")
	if base.FeatureLabel != nil {
		t.Error("WithFeatureLabel() modified the receiver")
	}
	if custom.Label() != "x" {
		t.Errorf("Label() = %q, want x", custom.Label())
	}
}

func TestFeatureHead(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{DefaultFeatureLabel, "Feature flag **`serde`**"},
		{"", "**`serde`**"},
		{"**`{feature}`**", "**`serde`**"},
		{"<code>{feature}</code>", "<code>serde</code>"},
	}
	for _, tt := range tests {
		if got := featureHead(tt.label, "serde"); got != tt.want {
			t.Errorf("featureHead(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}
