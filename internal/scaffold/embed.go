package scaffold

import "embed"

//go:embed all:templates
var templatesFS embed.FS
