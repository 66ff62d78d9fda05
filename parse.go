package netplan

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// Parse decodes the given YAML contents into a Config. Unknown keys are
// rejected so that typos surface as errors instead of silently dropped
// configuration.
func Parse(contents []byte) (*Config, error) {
	var config Config
	if err := yaml.UnmarshalStrict(contents, &config); err != nil {
		return nil, errors.Wrap(err, "error parsing")
	}
	return &config, nil
}

// Bytes renders the Config back to YAML.
func (c *Config) Bytes() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "error marshaling")
	}
	return out, nil
}

// FromFile reads the netplan file at the given path and returns a new Config
// with the data populated. The path may begin with a tilde, which is expanded
// to the home directory of the current user.
func FromFile(path string) (*Config, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to expand homedir")
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read file")
	}

	config, err := Parse(contents)
	if err != nil {
		return nil, errors.Wrapf(err, "error parsing %s", path)
	}
	return config, nil
}

// FromPath reads the netplan configuration at the given path. If the path is
// a file, it is parsed directly. If the path is a directory, every .yaml and
// .yml file in it is read in lexical order of the file names and merged into
// a Config: later files amend earlier ones, with mappings merged key by key and
// scalars and sequences replaced outright. This mirrors how netplan itself
// combines /{lib,etc,run}/netplan/*.yaml.
func FromPath(path string) (*Config, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to expand homedir")
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to stat")
	}
	if !stat.IsDir() {
		return FromFile(path)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list directory")
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), ".yaml") &&
			!strings.HasSuffix(entry.Name(), ".yml") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	if len(names) == 0 {
		return nil, errors.Errorf("no netplan files found in %s", path)
	}

	var merged map[interface{}]interface{}
	for _, name := range names {
		contents, err := os.ReadFile(filepath.Join(path, name))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", name)
		}

		var doc map[interface{}]interface{}
		if err := yaml.Unmarshal(contents, &doc); err != nil {
			return nil, errors.Wrapf(err, "error parsing %s", name)
		}
		merged = mergeDocs(merged, doc)
	}

	contents, err := yaml.Marshal(merged)
	if err != nil {
		return nil, errors.Wrap(err, "error marshaling merged documents")
	}
	return Parse(contents)
}

// WriteFile renders the Config and writes it to the given path with the given
// permissions.
func (c *Config) WriteFile(path string, perm os.FileMode) error {
	path, err := homedir.Expand(path)
	if err != nil {
		return errors.Wrap(err, "failed to expand homedir")
	}

	contents, err := c.Bytes()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, contents, perm); err != nil {
		return errors.Wrap(err, "failed to write file")
	}
	return nil
}

// mergeDocs merges b on top of a. Mappings merge recursively; any other
// value in b replaces the value in a.
func mergeDocs(a, b map[interface{}]interface{}) map[interface{}]interface{} {
	if a == nil {
		return b
	}
	for key, bv := range b {
		av, ok := a[key]
		if !ok {
			a[key] = bv
			continue
		}

		am, aOK := av.(map[interface{}]interface{})
		bm, bOK := bv.(map[interface{}]interface{})
		if aOK && bOK {
			a[key] = mergeDocs(am, bm)
			continue
		}
		a[key] = bv
	}
	return a
}
