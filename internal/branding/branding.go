// Package branding centralizes product identity strings so the binary can be
// rebranded by editing one embedded YAML file. Nothing outside this package
// hardcodes the CLI name, home directory, or repository URLs.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var brandingYAML []byte

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	HomeDir      string `yaml:"home_dir"`
	EnvPrefix    string `yaml:"env_prefix"`
	GoModule     string `yaml:"go_module"`
	GithubRepo   string `yaml:"github_repo"`
	StoreRepoURL string `yaml:"store_repo_url"`
}

var (
	current  brand
	loadOnce sync.Once
)

// load parses the embedded branding file exactly once. Hard defaults are set
// first so a malformed file still yields a usable identity.
func load() {
	loadOnce.Do(func() {
		current = brand{
			CLIName:      "aidev",
			DisplayName:  "AI Dev Config",
			Description:  "Materialize shared AI assistant configuration into projects",
			HomeDir:      ".aidev",
			EnvPrefix:    "AIDEV",
			GoModule:     "github.com/aidev-labs/aidev",
			GithubRepo:   "aidev-labs/aidev",
			StoreRepoURL: "https://github.com/aidev-labs/ai-dev-config.git",
		}
		_ = yaml.Unmarshal(brandingYAML, &current)
	})
}

// CLIName returns the binary name, e.g. "aidev".
func CLIName() string {
	load()
	return current.CLIName
}

// DisplayName returns the human-readable product name.
func DisplayName() string {
	load()
	return current.DisplayName
}

// Description returns the one-line product description shown in help output.
func Description() string {
	load()
	return current.Description
}

// HomeDir returns the per-user data directory name under $HOME, e.g. ".aidev".
func HomeDir() string {
	load()
	return current.HomeDir
}

// EnvPrefix returns the prefix for environment variables, e.g. "AIDEV".
func EnvPrefix() string {
	load()
	return current.EnvPrefix
}

// GoModule returns the module path of this codebase.
func GoModule() string {
	load()
	return current.GoModule
}

// GithubRepo returns the owner/name slug of the product repository.
func GithubRepo() string {
	load()
	return current.GithubRepo
}

// StoreRepoURL returns the git URL of the default template store.
func StoreRepoURL() string {
	load()
	return current.StoreRepoURL
}

// EnvVar builds a namespaced environment variable name from a suffix,
// e.g. EnvVar("store") -> "AIDEV_STORE".
func EnvVar(suffix string) string {
	load()
	return current.EnvPrefix + "_" + strings.ToUpper(suffix)
}
