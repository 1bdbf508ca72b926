package chart

import (
	"fmt"

	"github.com/katcast/naep-dashboard/internal/naep"
)

// Renderer selects which charting library the options JSON targets.
type Renderer string

const (
	RendererPlotly     Renderer = "plotly"
	RendererHighcharts Renderer = "highcharts"
)

func ParseRenderer(s string) (Renderer, error) {
	switch Renderer(s) {
	case RendererPlotly, RendererHighcharts:
		return Renderer(s), nil
	default:
		return "", fmt.Errorf("unknown renderer %q", s)
	}
}

type Mode string

const (
	ModeAll      Mode = "all"
	ModeSelected Mode = "selected"
)

// EmptySelectionWarning is shown when selected mode has no states picked.
const EmptySelectionWarning = "Select one or more states to view data."

// Request is one chart interaction: the sidebar state at render time.
type Request struct {
	Subject string
	Grade   int
	Mode    Mode
	States  []string // selected states; ignored in ModeAll
}

func (r Request) validate(d *naep.Dataset) error {
	if !d.HasSubject(r.Subject) {
		return fmt.Errorf("unknown subject %q", r.Subject)
	}
	if !d.HasGrade(r.Grade) {
		return fmt.Errorf("unknown grade %d", r.Grade)
	}
	if r.Mode != ModeAll && r.Mode != ModeSelected {
		return fmt.Errorf("unknown display mode %q", r.Mode)
	}
	return nil
}

// statesToShow resolves the display list: every dataset state for ModeAll,
// the user's picks (in pick order) for ModeSelected.
func (r Request) statesToShow(d *naep.Dataset) []string {
	if r.Mode == ModeSelected {
		return r.States
	}
	return d.States()
}

func (r Request) isSelected(state string) bool {
	for _, s := range r.States {
		if s == state {
			return true
		}
	}
	return false
}

// Build assembles the options payload for the given renderer.
func Build(renderer Renderer, d *naep.Dataset, req Request) (any, error) {
	switch renderer {
	case RendererPlotly:
		return BuildPlotly(d, req)
	case RendererHighcharts:
		return BuildHighcharts(d, req)
	default:
		return nil, fmt.Errorf("unknown renderer %q", renderer)
	}
}

// bounds over the subject/grade subset. Ranges follow the whole subset, not
// just the displayed states, so the viewport is stable across selections.
type bounds struct {
	xMin, xMax float64
	yMin, yMax float64
	ok         bool
}

func subsetBounds(rows []naep.ScoreRecord) bounds {
	if len(rows) == 0 {
		return bounds{}
	}
	b := bounds{
		xMin: rows[0].Score2019, xMax: rows[0].Score2019,
		yMin: rows[0].ScoreChange, yMax: rows[0].ScoreChange,
		ok: true,
	}
	for _, r := range rows[1:] {
		if r.Score2019 < b.xMin {
			b.xMin = r.Score2019
		}
		if r.Score2019 > b.xMax {
			b.xMax = r.Score2019
		}
		if r.ScoreChange < b.yMin {
			b.yMin = r.ScoreChange
		}
		if r.ScoreChange > b.yMax {
			b.yMax = r.ScoreChange
		}
	}
	return b
}
