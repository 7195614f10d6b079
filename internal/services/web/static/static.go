// Package static embeds the web service's static assets.
package static

import "embed"

// FS exposes static assets for HTTP serving.
//
//go:embed *.css
var FS embed.FS
