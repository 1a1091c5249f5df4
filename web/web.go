// Package web carries the server-rendered single page. The markup calls the
// /api endpoints directly; everything outside /api serves this document.
package web

import _ "embed"

//go:embed index.html
var IndexHTML []byte
