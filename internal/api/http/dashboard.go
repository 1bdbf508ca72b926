package http

import (
	"html/template"
	"log"
	"net/http"

	"github.com/katcast/naep-dashboard/internal/chart"
	"github.com/katcast/naep-dashboard/internal/config"
	"github.com/katcast/naep-dashboard/internal/naep"
	"github.com/katcast/naep-dashboard/internal/storage"
	"github.com/katcast/naep-dashboard/web"
)

var dashboardTmpl = template.Must(template.ParseFS(web.FS, "templates/dashboard.html"))

type dashboardPage struct {
	Title          string
	About          string
	HowTo          string
	Renderer       string
	Subjects       []string
	Grades         []int
	States         []string
	DefaultSubject string
	DefaultGrade   int
	AllLabel       string
	SelectedLabel  string
	Percentiles    []int
}

// DashboardHandler renders the page shell. The chart itself is drawn
// client-side from /api/chart.
func DashboardHandler(prov DatasetProvider, copyText storage.Copy, settings config.Settings, renderer chart.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, ok := prov.Dataset()
		if !ok {
			http.Error(w, "dataset not loaded", http.StatusServiceUnavailable)
			return
		}

		page := dashboardPage{
			Title:          copyText.Title,
			About:          copyText.About,
			HowTo:          copyText.HowTo,
			Renderer:       string(renderer),
			Subjects:       d.Subjects(),
			Grades:         d.Grades(),
			States:         d.States(),
			DefaultSubject: settings.DefaultSubject,
			DefaultGrade:   settings.DefaultGrade,
			AllLabel:       settings.AllLabel,
			SelectedLabel:  settings.SelectedLabel,
			Percentiles:    naep.Percentiles,
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := dashboardTmpl.Execute(w, page); err != nil {
			log.Printf("render dashboard: %v", err)
		}
	}
}
