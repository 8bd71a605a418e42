package manifest

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/featuredoc/pkg/errors"
)

const sample = `
[package]
name = "demo"
version = "0.3.1"

[features]
default = ["fast"]
fast = []
tls = ["dep:rustls"]

[dependencies]
serde = { version = "1", optional = true }
log = "0.4"

[dependencies.rustls]
version = "0.23"
optional = true

[dev-dependencies]
criterion = { version = "0.5", optional = true }

[target.'cfg(unix)'.dependencies]
nix = { version = "0.29", optional = true }
serde = { version = "1", optional = true }
`

func TestDecode(t *testing.T) {
	info, err := Decode(sample)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}

	if info.Package.Name != "demo" || info.Package.Version != "0.3.1" {
		t.Errorf("Package = %+v, want demo 0.3.1", info.Package)
	}
	if diff := cmp.Diff([]string{"fast", "tls"}, info.FeatureNames()); diff != "" {
		t.Errorf("FeatureNames() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"fast"}, info.Features["default"]); diff != "" {
		t.Errorf("default mismatch (-want +got):\n%s", diff)
	}
	want := []string{"criterion", "nix", "rustls", "serde"}
	if diff := cmp.Diff(want, info.OptionalDependencies); diff != "" {
		t.Errorf("OptionalDependencies mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeEmpty(t *testing.T) {
	info, err := Decode("")
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if len(info.FeatureNames()) != 0 || len(info.OptionalDependencies) != 0 {
		t.Errorf("Decode(\"\") = %+v, want empty", info)
	}
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode("[features\nfoo = []")
	if !errors.Is(err, errors.ErrCodeInvalidManifest) {
		t.Errorf("Decode() error = %v, want %s", err, errors.ErrCodeInvalidManifest)
	}
}
