package assets

import (
	"bytes"
	"embed"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/3-lines-studio/welcome/internal/core"
)

const Prefix = "/static/"

//go:embed static
var staticFS embed.FS

// Files lists the embedded asset paths relative to the static root.
func Files() ([]string, error) {
	var files []string
	err := fs.WalkDir(staticFS, "static", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		files = append(files, strings.TrimPrefix(p, "static/"))
		return nil
	})
	return files, err
}

func ReadFile(name string) ([]byte, error) {
	return staticFS.ReadFile(path.Join("static", name))
}

func Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		name := strings.TrimPrefix(req.URL.Path, Prefix)
		name = path.Clean("/" + name)[1:]
		if name == "" {
			http.NotFound(w, req)
			return
		}

		data, err := ReadFile(name)
		if err != nil {
			http.NotFound(w, req)
			return
		}

		// ServeContent answers conditional (If-None-Match, including "*" and
		// tag lists), HEAD and range requests from the headers set here.
		w.Header().Set("ETag", core.ETag(data))
		w.Header().Set("Cache-Control", "public, max-age=31536000")
		w.Header().Set("Content-Type", core.GetContentType(name))
		http.ServeContent(w, req, name, time.Time{}, bytes.NewReader(data))
	})
}
