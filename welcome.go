package welcome

import (
	"html/template"
	"io"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/3-lines-studio/welcome/internal/adapters/env"
	adapthttp "github.com/3-lines-studio/welcome/internal/adapters/http"
	"github.com/3-lines-studio/welcome/internal/assets"
	"github.com/3-lines-studio/welcome/internal/core"
)

const (
	DefaultEnvironment = core.DefaultEnvironment
	EnvironmentVar     = core.EnvironmentVar
	HealthPath         = adapthttp.HealthPath
)

type LookupFunc = env.LookupFunc

type Option func(*App)

type App struct {
	lookup LookupFunc
	title  string
	isDev  bool
	logger logrus.FieldLogger
}

func New(opts ...Option) *App {
	app := &App{
		lookup: os.LookupEnv,
		title:  core.DefaultTitle,
		logger: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

// WithLookup replaces the environment lookup used for the label.
func WithLookup(lookup LookupFunc) Option {
	return func(a *App) {
		if lookup != nil {
			a.lookup = lookup
		}
	}
}

// WithEnvironment pins the label. An empty value still falls back to the default.
func WithEnvironment(value string) Option {
	return func(a *App) {
		a.lookup = func(key string) (string, bool) {
			if key == core.EnvironmentVar {
				return value, true
			}
			return "", false
		}
	}
}

func WithTitle(title string) Option {
	return func(a *App) {
		a.title = title
	}
}

func WithDev(isDev bool) Option {
	return func(a *App) {
		a.isDev = isDev
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

func (a *App) Environment() string {
	return core.ResolveEnvironment(a.lookup(core.EnvironmentVar))
}

func (a *App) pageData() core.PageData {
	return core.NewPageData(a.lookup(core.EnvironmentVar))
}

func (a *App) Fragment() template.HTML {
	return core.RenderFragment(a.pageData())
}

func (a *App) Render(w io.Writer) error {
	return core.RenderDocument(w, a.title, a.pageData())
}

// Wrap mounts the page, health and asset routes on r alongside the caller's
// own routes and returns r behind the logging, recovery and header middleware.
// The mounted routes answer GET and HEAD only; chi replies 405 to other methods.
func (a *App) Wrap(r chi.Router) http.Handler {
	if r == nil {
		panic("welcome: nil router passed to Wrap; use app.Handler()")
	}

	errPage := adapthttp.ErrorPage{IsDev: a.isDev, Environment: a.Environment}

	routes := map[string]http.Handler{
		"/":                  adapthttp.NewPageHandler(a.Render, errPage),
		adapthttp.HealthPath: adapthttp.HealthHandler(),
		assets.Prefix + "*":  assets.Handler(),
	}
	for pattern, handler := range routes {
		r.Method(http.MethodGet, pattern, handler)
		r.Method(http.MethodHead, pattern, handler)
	}

	var h http.Handler = r
	h = adapthttp.SecurityHeaders(h)
	h = adapthttp.Recover(a.logger, errPage)(h)
	h = adapthttp.AccessLog(a.logger)(h)
	return h
}

func (a *App) Handler() http.Handler {
	return a.Wrap(chi.NewRouter())
}
