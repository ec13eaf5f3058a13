// Package static embeds the site stylesheet and script.
package static

import "embed"

// FS exposes site static assets for HTTP serving.
//
//go:embed *.css *.js
var FS embed.FS
