package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

// SupportedFormat is the newest store format version this build understands.
// Stores declaring a higher major version are rejected.
const SupportedFormat = "1.0"

// Manifest is the parsed store.yaml, the optional self-description at the
// store root.
type Manifest struct {
	Name          string   `yaml:"name" json:"name"`
	Version       string   `yaml:"version" json:"version"`
	FormatVersion string   `yaml:"format_version" json:"format_version"`
	Description   string   `yaml:"description,omitempty" json:"description,omitempty"`
	Categories    []string `yaml:"categories,omitempty" json:"categories,omitempty"`
}

// LoadManifest reads store.yaml at the store root. Stores without a manifest
// are legal legacy layouts and return (nil, nil).
func LoadManifest(root string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(root, ManifestName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", ManifestName, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ManifestName, err)
	}
	return &m, nil
}

// CheckFormat rejects manifests whose format major version is newer than
// this build supports. Older formats stay readable. A missing
// format_version passes; LoadManifest-then-validate catches that case.
func (m *Manifest) CheckFormat() error {
	if m == nil || m.FormatVersion == "" {
		return nil
	}

	declared, err := parseVersion(m.FormatVersion)
	if err != nil {
		return fmt.Errorf("parsing store format_version %q: %w", m.FormatVersion, err)
	}
	supported, err := parseVersion(SupportedFormat)
	if err != nil {
		return fmt.Errorf("parsing supported format version: %w", err)
	}

	if declared.Major() > supported.Major() {
		return fmt.Errorf("store format %s is newer than this build supports (%s); upgrade the tool", m.FormatVersion, SupportedFormat)
	}
	return nil
}

func parseVersion(v string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(v, "v"))
}
