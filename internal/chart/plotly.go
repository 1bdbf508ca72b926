package chart

import (
	"fmt"

	"github.com/katcast/naep-dashboard/internal/naep"
)

// Plotly option structs, marshalled for Plotly.newPlot on the page.

type PlotlyMarkerSpec struct {
	Symbol string `json:"symbol"`
	Color  string `json:"color"`
	Size   int    `json:"size"`
}

type PlotlyLineSpec struct {
	Color string `json:"color"`
	Width int    `json:"width"`
}

type PlotlyTrace struct {
	X             []float64         `json:"x"`
	Y             []float64         `json:"y"`
	Mode          string            `json:"mode"`
	Name          string            `json:"name,omitempty"`
	ShowLegend    bool              `json:"showlegend"`
	LegendGroup   string            `json:"legendgroup"`
	HoverInfo     string            `json:"hoverinfo,omitempty"`
	HoverTemplate string            `json:"hovertemplate,omitempty"`
	CustomData    [][]any           `json:"customdata,omitempty"`
	Marker        *PlotlyMarkerSpec `json:"marker,omitempty"`
	Line          *PlotlyLineSpec   `json:"line,omitempty"`
}

type plotlyFont struct {
	Size int `json:"size"`
}

type plotlyAxisTitle struct {
	Text string     `json:"text"`
	Font plotlyFont `json:"font"`
}

type PlotlyAxis struct {
	Range         []float64        `json:"range,omitempty"`
	Title         *plotlyAxisTitle `json:"title,omitempty"`
	TickFont      plotlyFont       `json:"tickfont"`
	ShowGrid      bool             `json:"showgrid"`
	ZeroLine      bool             `json:"zeroline,omitempty"`
	ZeroLineColor string           `json:"zerolinecolor,omitempty"`
	ZeroLineWidth int              `json:"zerolinewidth,omitempty"`
}

type PlotlyLayout struct {
	XAxis      PlotlyAxis      `json:"xaxis"`
	YAxis      PlotlyAxis      `json:"yaxis"`
	Title      plotlyAxisTitle `json:"title"`
	Legend     map[string]any  `json:"legend"`
	Margin     map[string]int  `json:"margin"`
	Height     int             `json:"height"`
	HoverLabel map[string]any  `json:"hoverlabel"`
	PlotBG     string          `json:"plot_bgcolor"`
	PaperBG    string          `json:"paper_bgcolor"`
}

type PlotlyFigure struct {
	Data   []PlotlyTrace `json:"data"`
	Layout PlotlyLayout  `json:"layout"`
}

// Matches the marker customdata layout: label, percentile, 2019, 2024, change.
const plotlyHoverTemplate = "<b>%{customdata[0]}</b><br>" +
	"Percentile: %{customdata[1]}th<br>" +
	"2019 Score: %{customdata[2]:.0f}<br>" +
	"2024 Score: %{customdata[3]:.0f}<br>" +
	"Change: %{customdata[4]:.0f} points<br>" +
	"<extra></extra>"

// BuildPlotly emits one marker trace per record and one legend-bearing line
// trace per state, percentile-ordered.
func BuildPlotly(d *naep.Dataset, req Request) (*PlotlyFigure, error) {
	if err := req.validate(d); err != nil {
		return nil, err
	}
	subset := d.Filter(req.Subject, req.Grade)
	colors := d.Colors()

	fig := &PlotlyFigure{}
	for _, state := range req.statesToShow(d) {
		rows := naep.ByState(subset, state)
		if len(rows) == 0 {
			continue
		}
		color := colors[state]

		for _, row := range rows {
			tip := naep.TooltipFor(row)
			fig.Data = append(fig.Data, PlotlyTrace{
				X:             []float64{row.Score2019},
				Y:             []float64{row.ScoreChange},
				Mode:          "markers",
				ShowLegend:    false,
				LegendGroup:   state,
				HoverTemplate: plotlyHoverTemplate,
				CustomData: [][]any{{
					tip.Label, tip.Percentile, tip.Score2019, tip.Score2024, tip.Change,
				}},
				Marker: &PlotlyMarkerSpec{
					Symbol: naep.PlotlyMarker(row.Percentile),
					Color:  color,
					Size:   14,
				},
			})
		}

		lineTrace := PlotlyTrace{
			Mode:        "lines",
			Name:        naep.LineLabel(state, rows),
			ShowLegend:  true,
			LegendGroup: state,
			HoverInfo:   "skip",
			Line:        &PlotlyLineSpec{Color: color, Width: 3},
		}
		for _, row := range rows {
			lineTrace.X = append(lineTrace.X, row.Score2019)
			lineTrace.Y = append(lineTrace.Y, row.ScoreChange)
		}
		fig.Data = append(fig.Data, lineTrace)
	}

	fig.Layout = PlotlyLayout{
		XAxis: PlotlyAxis{
			Title:    &plotlyAxisTitle{Text: "2019 Score", Font: plotlyFont{Size: 18}},
			TickFont: plotlyFont{Size: 16},
			ShowGrid: true,
		},
		YAxis: PlotlyAxis{
			Title:         &plotlyAxisTitle{Text: "Change (2024 - 2019)", Font: plotlyFont{Size: 18}},
			TickFont:      plotlyFont{Size: 16},
			ShowGrid:      true,
			ZeroLine:      true,
			ZeroLineColor: "black",
			ZeroLineWidth: 2,
		},
		Title: plotlyAxisTitle{
			Text: fmt.Sprintf("%s Scores for Grade %d", req.Subject, req.Grade),
			Font: plotlyFont{Size: 28},
		},
		Legend:     map[string]any{"font": plotlyFont{Size: 16}},
		Margin:     map[string]int{"t": 60},
		Height:     750,
		HoverLabel: map[string]any{"font_size": 16},
		PlotBG:     "white",
		PaperBG:    "white",
	}
	if b := subsetBounds(subset); b.ok {
		fig.Layout.XAxis.Range = []float64{b.xMin - 2, b.xMax + 2}
		fig.Layout.YAxis.Range = []float64{b.yMin - 0.2, b.yMax + 0.2}
	}
	return fig, nil
}
