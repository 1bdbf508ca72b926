package http

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/katcast/naep-dashboard/internal/storage"
)

// MountAssets serves the local image assets (logo, percentile legend strip).
// Read-only; there is no upload surface.
func MountAssets(r chi.Router, store storage.AssetStore) {
	// GET /assets/* -> the asset at whatever follows /assets/
	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
		rc, err := store.Open(key)
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer rc.Close()

		ctype := mime.TypeByExtension(filepath.Ext(key))
		if ctype == "" {
			ctype = "application/octet-stream"
		}
		w.Header().Set("Content-Type", ctype)
		_, _ = io.Copy(w, rc)
	})
}
