package core

import (
	"bytes"
	"html/template"
)

const (
	DefaultEnvironment = "development"
	EnvironmentVar     = "APP_ENV"

	Heading     = "Welcome to Next.js Frontend with some changes"
	Description = "This application is running on AWS ECS Fargate"
	Attribution = "Deployed via Bitbucket Pipelines"
)

type PageData struct {
	Environment string
}

// ResolveEnvironment applies the label fallback. An empty value counts as
// unset, so "" renders as the default rather than a blank label.
func ResolveEnvironment(value string, ok bool) string {
	if !ok || value == "" {
		return DefaultEnvironment
	}
	return value
}

func NewPageData(value string, ok bool) PageData {
	return PageData{Environment: ResolveEnvironment(value, ok)}
}

func (d PageData) EnvironmentLine() string {
	return "Environment: " + d.Environment
}

var fragmentTemplate = template.Must(template.New("fragment").Parse(`<main class="container">
  <h1>{{.Heading}}</h1>
  <p>{{.Description}}</p>
  <div class="info">
    <p>{{.EnvironmentLine}}</p>
    <p>{{.Attribution}}</p>
  </div>
</main>`))

type fragmentData struct {
	Heading         string
	Description     string
	EnvironmentLine string
	Attribution     string
}

// RenderFragment never fails: the template is parsed at init and only
// receives strings, so execution errors cannot occur.
func RenderFragment(data PageData) template.HTML {
	var buf bytes.Buffer
	if err := fragmentTemplate.Execute(&buf, fragmentData{
		Heading:         Heading,
		Description:     Description,
		EnvironmentLine: data.EnvironmentLine(),
		Attribution:     Attribution,
	}); err != nil {
		panic("core: fragment template: " + err.Error())
	}
	return template.HTML(buf.String())
}
