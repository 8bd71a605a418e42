package featuredoc

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolveDefaults(t *testing.T) {
	tests := []struct {
		name     string
		roots    []string
		features map[string][]string
		want     []string
	}{
		{
			name: "no default",
			want: []string{},
		},
		{
			name:     "transitive",
			roots:    []string{"a"},
			features: map[string][]string{"a": {"b"}, "b": {"c"}, "c": nil, "d": nil},
			want:     []string{"a", "b", "c"},
		},
		{
			name:     "self reference",
			roots:    []string{"default"},
			features: map[string][]string{"default": {"default"}},
			want:     []string{"default"},
		},
		{
			name:     "cycle",
			roots:    []string{"a"},
			features: map[string][]string{"a": {"b"}, "b": {"c"}, "c": {"a"}},
			want:     []string{"a", "b", "c"},
		},
		{
			name:     "dependency references are not expanded",
			roots:    []string{"dep:serde", "tokio/rt", "log?/std"},
			features: map[string][]string{"serde": {"never"}, "tokio": {"never"}},
			want:     []string{"log?/std", "serde", "tokio", "tokio/rt"},
		},
		{
			name:     "undeclared name",
			roots:    []string{"ghost"},
			features: map[string][]string{},
			want:     []string{"ghost"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveDefaults(tt.roots, tt.features).Names()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("resolveDefaults() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDeepChainTerminates(t *testing.T) {
	features := make(map[string][]string)
	const n = 10000
	for i := 0; i < n; i++ {
		features[fmt.Sprintf("f%d", i)] = []string{fmt.Sprintf("f%d", (i+1)%n)}
	}
	set := resolveDefaults([]string{"f0"}, features)
	if len(set) != n {
		t.Errorf("len(set) = %d, want %d", len(set), n)
	}
}
