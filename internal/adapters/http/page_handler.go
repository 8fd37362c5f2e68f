package http

import (
	"bytes"
	"html"
	"io"
	"net/http"

	"github.com/3-lines-studio/welcome/internal/core"
)

type RenderFunc func(w io.Writer) error

// ErrorPage renders failures. Environment is called per error so the page
// shows the same label the failed render would have.
type ErrorPage struct {
	IsDev       bool
	Environment func() string
}

func (p ErrorPage) Serve(w http.ResponseWriter, err error) {
	environment := ""
	if p.Environment != nil {
		environment = p.Environment()
	}
	data := core.NewErrorData(err.Error(), p.IsDev, environment)

	var buf bytes.Buffer
	if err := core.ErrorTemplate.Execute(&buf, data); err != nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<!doctype html><html><body><pre>" + html.EscapeString(data.Message) + "</pre></body></html>"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(buf.Bytes())
}

type PageHandler struct {
	render  RenderFunc
	errPage ErrorPage
}

// NewPageHandler serves GET and HEAD; method filtering is left to the router.
func NewPageHandler(render RenderFunc, errPage ErrorPage) http.Handler {
	return &PageHandler{
		render:  render,
		errPage: errPage,
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	// Render into a buffer so a failure can still produce the error page.
	var buf bytes.Buffer
	if err := h.render(&buf); err != nil {
		h.errPage.Serve(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if req.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(buf.Bytes())
}
