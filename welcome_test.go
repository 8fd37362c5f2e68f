package welcome

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietApp(opts ...Option) *App {
	logger, _ := logtest.NewNullLogger()
	return New(append([]Option{WithLogger(logger)}, opts...)...)
}

func get(t *testing.T, h http.Handler, path string) (*http.Response, string) {
	t.Helper()

	srv := httptest.NewServer(h)
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(body)
}

func TestEnvironmentLabel(t *testing.T) {
	t.Run("config unset", func(t *testing.T) {
		app := quietApp(WithLookup(func(string) (string, bool) { return "", false }))
		assert.Equal(t, "development", app.Environment())
		assert.Contains(t, string(app.Fragment()), "Environment: development")
	})

	t.Run("config production", func(t *testing.T) {
		app := quietApp(WithEnvironment("production"))
		assert.Equal(t, "production", app.Environment())
		assert.Contains(t, string(app.Fragment()), "Environment: production")
	})

	t.Run("config empty string", func(t *testing.T) {
		app := quietApp(WithEnvironment(""))
		assert.Equal(t, "development", app.Environment())
		assert.NotContains(t, string(app.Fragment()), "Environment: <")
	})

	t.Run("process environment", func(t *testing.T) {
		t.Setenv(EnvironmentVar, "staging")
		app := quietApp()
		assert.Contains(t, string(app.Fragment()), "Environment: staging")
	})
}

func TestRenderReadsLabelPerCall(t *testing.T) {
	label := "blue"
	app := quietApp(WithLookup(func(key string) (string, bool) {
		return label, key == EnvironmentVar
	}))

	var first, second bytes.Buffer
	require.NoError(t, app.Render(&first))
	label = "green"
	require.NoError(t, app.Render(&second))

	assert.Contains(t, first.String(), "Environment: blue")
	assert.Contains(t, second.String(), "Environment: green")
}

func TestRenderTitle(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, quietApp(WithTitle("Frontend")).Render(&buf))
	assert.Contains(t, buf.String(), "<title>Frontend</title>")
}

func TestHandlerServesPage(t *testing.T) {
	app := quietApp(WithEnvironment("production"))

	resp, body := get(t, app.Handler(), "/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Contains(t, body, `<main class="container">`)
	assert.Contains(t, body, "<p>Environment: production</p>")
	assert.Contains(t, body, "<p>Deployed via Bitbucket Pipelines</p>")
}

func TestHandlerRoutes(t *testing.T) {
	h := quietApp().Handler()

	resp, body := get(t, h, HealthPath)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", body)

	resp, body = get(t, h, "/static/style.css")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/css"))
	assert.Contains(t, body, ".info")

	resp, _ = get(t, h, "/missing")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = get(t, h, "/static/missing.css")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandlerRejectsOtherMethods(t *testing.T) {
	h := quietApp().Handler()

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		for _, path := range []string{"/", HealthPath, "/static/style.css"} {
			req := httptest.NewRequest(method, path, nil)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, "%s %s", method, path)
			assert.Contains(t, rec.Header().Values("Allow"), http.MethodGet, "%s %s", method, path)
		}
	}
}

func TestHandlerHead(t *testing.T) {
	h := quietApp().Handler()

	for _, path := range []string{"/", HealthPath, "/static/style.css"} {
		req := httptest.NewRequest(http.MethodHead, path, nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Empty(t, rec.Body.String(), path)
	}
}

func TestWrapRecoversWithErrorPage(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/boom", func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	})

	h := quietApp(WithEnvironment("production"), WithDev(true)).Wrap(r)

	req := httptest.NewRequest(http.MethodGet, "/api/boom", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "panic: kaboom")
	assert.Contains(t, rec.Body.String(), "<p>Environment: production</p>")
}

func TestWrapKeepsCallerRoutes(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/ping", func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})

	h := quietApp(WithEnvironment("")).Wrap(r)

	resp, body := get(t, h, "/api/ping")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", body)
	assert.Equal(t, "SAMEORIGIN", resp.Header.Get("X-Frame-Options"))

	resp, body = get(t, h, "/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Environment: development")
}

func TestWrapNilRouterPanics(t *testing.T) {
	assert.Panics(t, func() {
		quietApp().Wrap(nil)
	})
}
