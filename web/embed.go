// Package web carries the embedded dashboard page.
package web

import "embed"

//go:embed templates/*.html
var FS embed.FS
