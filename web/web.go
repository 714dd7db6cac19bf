// Package web holds the single-page upload UI served at "/".
package web

import _ "embed"

// IndexHTML is the upload form; it posts to /upload and renders the JSON reply client-side.
//
//go:embed index.html
var IndexHTML []byte
