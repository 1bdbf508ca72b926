package http

import (
	"encoding/json"
	"net/http"

	"github.com/katcast/naep-dashboard/internal/naep"
)

// DatasetProvider yields the current in-memory snapshot; ok is false until
// the first successful load.
type DatasetProvider interface {
	Dataset() (*naep.Dataset, bool)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
