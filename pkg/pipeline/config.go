package pipeline

import (
	"os"
	"path/filepath"

	"github.com/matzehuels/featuredoc/pkg/errors"
	"github.com/matzehuels/featuredoc/pkg/featuredoc"
)

// ConfigFileName is the options file looked up next to a manifest.
const ConfigFileName = ".featuredoc.toml"

// LoadConfig reads an options file.
func LoadConfig(path string) (featuredoc.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return featuredoc.Options{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %s", path)
	}
	opts, err := featuredoc.ParseOptions(string(data))
	if err != nil {
		return featuredoc.Options{}, errors.New(errors.GetCode(err), "%s: %s", path, errors.UserMessage(err))
	}
	return opts, nil
}

// EngineOptions resolves the scan options for a manifest in dir: the
// explicit config file, else ConfigFileName in dir if it exists, with
// overrides applied on top. The second result names the file used, or is
// empty.
func EngineOptions(dir string, opts Options) (featuredoc.Options, string, error) {
	path := opts.ConfigFile
	if path == "" {
		path = filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(path); err != nil {
			return opts.Overrides.Apply(featuredoc.Options{}), "", nil
		}
	}
	base, err := LoadConfig(path)
	if err != nil {
		return featuredoc.Options{}, "", err
	}
	return opts.Overrides.Apply(base), path, nil
}
