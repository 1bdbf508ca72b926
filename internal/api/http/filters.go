package http

import (
	"net/http"

	"github.com/katcast/naep-dashboard/internal/chart"
	"github.com/katcast/naep-dashboard/internal/naep"
)

// FiltersHandler exposes the sidebar domains: sorted subjects, grades and
// states, plus the derived color and marker mappings.
func FiltersHandler(prov DatasetProvider, renderer chart.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, ok := prov.Dataset()
		if !ok {
			http.Error(w, "dataset not loaded", http.StatusServiceUnavailable)
			return
		}

		markers := map[int]string{}
		for _, p := range naep.Percentiles {
			if renderer == chart.RendererHighcharts {
				markers[p] = naep.HighchartsMarker(p)
			} else {
				markers[p] = naep.PlotlyMarker(p)
			}
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"subjects": d.Subjects(),
			"grades":   d.Grades(),
			"states":   d.States(),
			"colors":   d.Colors(),
			"markers":  markers,
		})
	}
}
