// Package config manages user-level settings stored at ~/.aidev/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the template store path and the color output mode.
package config
