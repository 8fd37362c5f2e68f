package core

import (
	"html/template"
)

type ErrorData struct {
	Message     string
	IsDev       bool
	Environment string
	Stylesheet  string
}

func NewErrorData(message string, isDev bool, environment string) ErrorData {
	if environment == "" {
		environment = DefaultEnvironment
	}
	return ErrorData{
		Message:     message,
		IsDev:       isDev,
		Environment: environment,
		Stylesheet:  StylesheetPath,
	}
}

// ErrorTemplate reuses the page stylesheet and layout so failures still look
// like the deployment they came from.
var ErrorTemplate = template.Must(template.New("error").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>Error</title>
    <link rel="stylesheet" href="{{.Stylesheet}}" />
  </head>
  <body>
    <main class="container error">
      <h1>Internal Server Error</h1>
      {{- if .IsDev}}
      <pre>{{.Message}}</pre>
      {{- else}}
      <p>Something went wrong while rendering this page.</p>
      {{- end}}
      <div class="info">
        <p>Environment: {{.Environment}}</p>
      </div>
    </main>
  </body>
</html>
`))
