package manifest

import (
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/featuredoc/pkg/errors"
)

// Package holds the [package] fields used for reporting.
type Package struct {
	Name    string
	Version string
}

// Info is what a full TOML decode says about features and optional
// dependencies.
type Info struct {
	Package              Package
	Features             map[string][]string
	OptionalDependencies []string // sorted, deduplicated
}

// FeatureNames returns the declared feature names, sorted, without default.
func (i *Info) FeatureNames() []string {
	names := make([]string, 0, len(i.Features))
	for name := range i.Features {
		if name != "default" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Decode fully decodes manifest text.
func Decode(text string) (*Info, error) {
	var cargo cargoFile
	if _, err := toml.Decode(text, &cargo); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode manifest")
	}

	seen := make(map[string]bool)
	var optional []string
	collect := func(deps map[string]any) {
		for name, spec := range deps {
			if isOptional(spec) && !seen[name] {
				seen[name] = true
				optional = append(optional, name)
			}
		}
	}
	collect(cargo.Dependencies)
	collect(cargo.DevDependencies)
	collect(cargo.BuildDependencies)
	for _, t := range cargo.Target {
		collect(t.Dependencies)
		collect(t.DevDependencies)
		collect(t.BuildDependencies)
	}
	sort.Strings(optional)

	features := cargo.Features
	if features == nil {
		features = map[string][]string{}
	}
	return &Info{
		Package:              Package{Name: cargo.Package.Name, Version: cargo.Package.Version},
		Features:             features,
		OptionalDependencies: optional,
	}, nil
}

func isOptional(spec any) bool {
	t, ok := spec.(map[string]any)
	if !ok {
		return false
	}
	b, ok := t["optional"].(bool)
	return ok && b
}

type cargoFile struct {
	Package struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"package"`
	Features          map[string][]string  `toml:"features"`
	Dependencies      map[string]any       `toml:"dependencies"`
	DevDependencies   map[string]any       `toml:"dev-dependencies"`
	BuildDependencies map[string]any       `toml:"build-dependencies"`
	Target            map[string]targetDeps `toml:"target"`
}

type targetDeps struct {
	Dependencies      map[string]any `toml:"dependencies"`
	DevDependencies   map[string]any `toml:"dev-dependencies"`
	BuildDependencies map[string]any `toml:"build-dependencies"`
}
