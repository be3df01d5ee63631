package cli

import "github.com/fatih/color"

// applyColorMode maps the "color" config value onto the global color toggle.
// Any other value, including the empty default, keeps the library's own
// terminal detection.
func applyColorMode(mode string) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}
}

// okf prints a green success line.
func okf(format string, a ...interface{}) {
	color.Green("✓ "+format, a...)
}

// warnf prints a yellow warning line.
func warnf(format string, a ...interface{}) {
	color.Yellow("! "+format, a...)
}
