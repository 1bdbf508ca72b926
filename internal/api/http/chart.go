package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/katcast/naep-dashboard/internal/chart"
	"github.com/katcast/naep-dashboard/internal/config"
	"github.com/katcast/naep-dashboard/internal/metrics"
)

// ChartHandler answers one sidebar interaction with renderer-ready options.
// GET /api/chart?subject=&grade=&mode=all|selected&states=a,b
func ChartHandler(prov DatasetProvider, renderer chart.Renderer, settings config.Settings, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, ok := prov.Dataset()
		if !ok {
			m.RecordChartRequest(string(renderer), "unavailable")
			http.Error(w, "dataset not loaded", http.StatusServiceUnavailable)
			return
		}

		q := r.URL.Query()

		// An absent grade falls back to the default; a present but
		// unparsable one is the caller's mistake.
		grade := settings.DefaultGrade
		if s := q.Get("grade"); s != "" {
			g, err := strconv.Atoi(s)
			if err != nil {
				m.RecordChartRequest(string(renderer), "bad_request")
				http.Error(w, fmt.Sprintf("bad grade %q", s), http.StatusBadRequest)
				return
			}
			grade = g
		}

		req := chart.Request{
			Subject: q.Get("subject"),
			Grade:   grade,
			Mode:    chart.Mode(q.Get("mode")),
		}
		if req.Subject == "" {
			req.Subject = settings.DefaultSubject
		}
		if req.Mode == "" {
			req.Mode = chart.ModeAll
		}
		if s := strings.TrimSpace(q.Get("states")); s != "" {
			for _, part := range strings.Split(s, ",") {
				if st := strings.TrimSpace(part); st != "" {
					req.States = append(req.States, st)
				}
			}
		}

		if req.Mode == chart.ModeSelected && len(req.States) == 0 {
			m.RecordChartRequest(string(renderer), "empty_selection")
			writeJSON(w, http.StatusOK, map[string]string{"warning": chart.EmptySelectionWarning})
			return
		}

		options, err := chart.Build(renderer, d, req)
		if err != nil {
			m.RecordChartRequest(string(renderer), "bad_request")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		m.RecordChartRequest(string(renderer), "ok")
		writeJSON(w, http.StatusOK, map[string]any{
			"renderer": renderer,
			"options":  options,
		})
	}
}
