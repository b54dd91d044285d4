// Package templates embeds the page templates so the binary and the tests
// render the same markup regardless of working directory.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

func Must() *template.Template {
	return template.Must(template.ParseFS(files, "*.html"))
}
