// Package templates embeds the bundled report template so the engine works
// regardless of installation method. The CLI falls back to the embedded
// copy when the configured template path does not exist on disk.
package templates

import "embed"

// FS contains the bundled report template assets.
//
//go:embed *.tmpl
var FS embed.FS

// Report is the file name of the default report template inside FS.
const Report = "report.html.tmpl"
