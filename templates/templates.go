// Package templates embeds the HTML pages rendered by the handlers.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Load parses every page. Template names are the file names, e.g. "cart.html".
func Load() *template.Template {
	return template.Must(template.New("").ParseFS(files, "*.html"))
}
