package http

import (
	"context"
	"net/http"
)

type Reloader interface {
	Load(ctx context.Context) error
}

// RefreshHandler re-fetches the dataset. On failure the previous snapshot
// stays in place and the error is reported.
func RefreshHandler(loader Reloader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := loader.Load(r.Context()); err != nil {
			http.Error(w, "refresh failed: "+err.Error(), http.StatusBadGateway)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
