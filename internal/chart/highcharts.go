package chart

import (
	"fmt"
	"math"

	"github.com/katcast/naep-dashboard/internal/naep"
)

// Highcharts option structs, marshalled for Highcharts.chart on the page.

type HCPointCustom struct {
	State      string `json:"state"` // "*" suffix when significant
	Percentile int    `json:"percentile"`
	Score2019  int    `json:"score2019"`
	Score2024  int    `json:"score2024"`
	Change     int    `json:"change"`
}

type HCMarker struct {
	Symbol    string `json:"symbol,omitempty"`
	Radius    int    `json:"radius,omitempty"`
	LineColor string `json:"lineColor,omitempty"`
	LineWidth int    `json:"lineWidth,omitempty"`
	FillColor string `json:"fillColor,omitempty"`
	Enabled   bool   `json:"enabled,omitempty"`
}

type HCPoint struct {
	X      float64       `json:"x"`
	Y      float64       `json:"y"`
	Marker HCMarker      `json:"marker"`
	Color  string        `json:"color"`
	Custom HCPointCustom `json:"custom"`
}

type HCSeries struct {
	Type         string         `json:"type"`
	Name         string         `json:"name"`
	Data         []HCPoint      `json:"data"`
	Color        string         `json:"color"`
	LineWidth    int            `json:"lineWidth"`
	Marker       HCMarker       `json:"marker"`
	States       map[string]any `json:"states,omitempty"`
	ShowInLegend bool           `json:"showInLegend"`
}

type HCAxis struct {
	Title         map[string]string `json:"title"`
	Min           float64           `json:"min"`
	Max           float64           `json:"max"`
	GridLineWidth int               `json:"gridLineWidth"`
	TickLength    int               `json:"tickLength,omitempty"`
	PlotLines     []HCPlotLine      `json:"plotLines,omitempty"`
}

type HCPlotLine struct {
	Value  float64 `json:"value"`
	Width  int     `json:"width"`
	Color  string  `json:"color"`
	ZIndex int     `json:"zIndex"`
}

type HCTooltip struct {
	UseHTML      bool   `json:"useHTML"`
	PointFormat  string `json:"pointFormat"`
	HeaderFormat string `json:"headerFormat"`
	Shared       bool   `json:"shared"`
}

type HighchartsOptions struct {
	Chart       map[string]any `json:"chart"`
	Title       map[string]any `json:"title"`
	Legend      map[string]any `json:"legend"`
	XAxis       HCAxis         `json:"xAxis"`
	YAxis       HCAxis         `json:"yAxis"`
	Tooltip     HCTooltip      `json:"tooltip"`
	PlotOptions map[string]any `json:"plotOptions"`
	Series      []HCSeries     `json:"series"`
	Credits     map[string]any `json:"credits"`
	Exporting   map[string]any `json:"exporting"`
}

const hcPointFormat = "<b>{point.custom.state}</b><br/>" +
	"Percentile: {point.custom.percentile}th<br/>" +
	"2019 Score: {point.custom.score2019}<br/>" +
	"2024 Score: {point.custom.score2024}<br/>" +
	"Change: {point.custom.change} points"

// BuildHighcharts emits one line series per state with per-point markers.
// Explicitly selected states get thicker lines and larger markers.
func BuildHighcharts(d *naep.Dataset, req Request) (*HighchartsOptions, error) {
	if err := req.validate(d); err != nil {
		return nil, err
	}
	subset := d.Filter(req.Subject, req.Grade)
	colors := d.Colors()

	var series []HCSeries
	for _, state := range req.statesToShow(d) {
		rows := naep.ByState(subset, state)
		if len(rows) == 0 {
			continue
		}
		color := colors[state]
		selected := req.isSelected(state)

		points := make([]HCPoint, 0, len(rows))
		for _, row := range rows {
			points = append(points, makePoint(row, color, selected))
		}

		lineWidth := 1
		if selected {
			lineWidth = 3
		}
		series = append(series, HCSeries{
			Type:         "line",
			Name:         naep.LineLabel(state, rows),
			Data:         points,
			Color:        color,
			LineWidth:    lineWidth,
			Marker:       HCMarker{Enabled: true},
			States:       map[string]any{"hover": map[string]any{"enabled": true}},
			ShowInLegend: true,
		})
	}

	opts := &HighchartsOptions{
		Chart:  map[string]any{"type": "line", "height": 850},
		Title:  map[string]any{"text": fmt.Sprintf("%s Scores for Grade %d", req.Subject, req.Grade)},
		Legend: map[string]any{"enabled": true},
		XAxis: HCAxis{
			Title:         map[string]string{"text": "2019 Score (Baseline)"},
			GridLineWidth: 1,
		},
		YAxis: HCAxis{
			Title:         map[string]string{"text": "Change (2024 Score Minus 2019 Score)"},
			GridLineWidth: 1,
			PlotLines: []HCPlotLine{
				{Value: 0, Width: 2, Color: "black", ZIndex: 5},
			},
		},
		Tooltip: HCTooltip{
			UseHTML:     true,
			PointFormat: hcPointFormat,
		},
		PlotOptions: map[string]any{
			"series": map[string]any{
				"animation":      true,
				"stickyTracking": true,
				"states":         map[string]any{"inactive": map[string]any{"opacity": 0.3}},
			},
		},
		Series:    series,
		Credits:   map[string]any{"enabled": false},
		Exporting: map[string]any{"enabled": true},
	}
	if b := subsetBounds(subset); b.ok {
		opts.XAxis.Min = math.Floor(b.xMin - 2)
		opts.XAxis.Max = math.Ceil(b.xMax + 2)
		opts.YAxis.Min = math.Floor(b.yMin - 1)
		opts.YAxis.Max = math.Ceil(b.yMax + 1)
	}
	return opts, nil
}

func makePoint(row naep.ScoreRecord, color string, selected bool) HCPoint {
	tip := naep.TooltipFor(row)
	radius := 4
	if selected {
		radius = 6
	}
	return HCPoint{
		X:     naep.Rint(row.Score2019),
		Y:     naep.Rint(row.ScoreChange),
		Color: color,
		Marker: HCMarker{
			Symbol:    naep.HighchartsMarker(row.Percentile),
			Radius:    radius,
			LineColor: "black",
			LineWidth: 1,
			FillColor: color,
		},
		Custom: HCPointCustom{
			State:      tip.Label,
			Percentile: tip.Percentile,
			Score2019:  tip.Score2019,
			Score2024:  tip.Score2024,
			Change:     tip.Change,
		},
	}
}
