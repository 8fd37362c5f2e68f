package core

import (
	"fmt"
	"html/template"
	"io"
)

const (
	DefaultTitle   = "Welcome"
	StylesheetPath = "/static/style.css"
)

type DocumentData struct {
	Title      string
	Stylesheet string
	Body       template.HTML
}

var documentTemplate = template.Must(template.New("document").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>{{.Title}}</title>
    {{- if .Stylesheet}}
    <link rel="stylesheet" href="{{.Stylesheet}}" />
    {{- end}}
  </head>
  <body>
    {{.Body}}
  </body>
</html>
`))

func RenderDocument(w io.Writer, title string, data PageData) error {
	if title == "" {
		title = DefaultTitle
	}

	if err := documentTemplate.Execute(w, DocumentData{
		Title:      title,
		Stylesheet: StylesheetPath,
		Body:       RenderFragment(data),
	}); err != nil {
		return fmt.Errorf("render document: %w", err)
	}
	return nil
}
