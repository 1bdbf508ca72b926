package chart_test

import (
	"testing"

	"github.com/katcast/naep-dashboard/internal/chart"
	"github.com/katcast/naep-dashboard/internal/naep"
)

func testDataset() *naep.Dataset {
	return naep.NewDataset([]naep.ScoreRecord{
		{Subject: "Mathematics", Grade: 8, State: "Alabama", Percentile: 50, Score2019: 268.9, Score2024: 267.2, ScoreChange: -1.7, Significant: true},
		{Subject: "Mathematics", Grade: 8, State: "Alabama", Percentile: 10, Score2019: 230.4, Score2024: 226.1, ScoreChange: -4.3},
		{Subject: "Mathematics", Grade: 8, State: "Texas", Percentile: 90, Score2019: 310.2, Score2024: 312.0, ScoreChange: 1.8},
		{Subject: "Mathematics", Grade: 8, State: "Texas", Percentile: 10, Score2019: 228.0, Score2024: 229.5, ScoreChange: 1.5},
		{Subject: "Mathematics", Grade: 8, State: "Texas", Percentile: 25, Score2019: 247.7, Score2024: 248.1, ScoreChange: 0.4},
		{Subject: "Reading", Grade: 4, State: "Alabama", Percentile: 50, Score2019: 212.0, Score2024: 208.0, ScoreChange: -4.0},
	})
}

func TestBuildPlotlyAllStates(t *testing.T) {
	d := testDataset()
	fig, err := chart.BuildPlotly(d, chart.Request{Subject: "Mathematics", Grade: 8, Mode: chart.ModeAll})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 2 Alabama markers + line, 3 Texas markers + line
	if len(fig.Data) != 7 {
		t.Fatalf("expected 7 traces, got %d", len(fig.Data))
	}

	var lines []chart.PlotlyTrace
	for _, tr := range fig.Data {
		if tr.Mode == "lines" {
			lines = append(lines, tr)
		}
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 line traces, got %d", len(lines))
	}
	if lines[0].Name != "Alabama*" {
		t.Fatalf("Alabama line name: got %q, want Alabama*", lines[0].Name)
	}
	if lines[1].Name != "Texas" {
		t.Fatalf("Texas line name: got %q", lines[1].Name)
	}

	// Texas line points come out percentile-ordered: 10, 25, 90
	tx := lines[1]
	if len(tx.X) != 3 || tx.X[0] != 228.0 || tx.X[1] != 247.7 || tx.X[2] != 310.2 {
		t.Fatalf("Texas line x not percentile-ordered: %v", tx.X)
	}
	if !tx.ShowLegend || tx.HoverInfo != "skip" || tx.Line.Width != 3 {
		t.Fatalf("bad Texas line trace: %+v", tx)
	}

	// Marker traces carry the tooltip payload and stay out of the legend.
	m := fig.Data[0]
	if m.Mode != "markers" || m.ShowLegend || m.Marker == nil {
		t.Fatalf("bad marker trace: %+v", m)
	}
	if m.Marker.Size != 14 || m.Marker.Symbol != "circle" { // Alabama P10
		t.Fatalf("bad marker spec: %+v", m.Marker)
	}
	if len(m.CustomData) != 1 || m.CustomData[0][0] != "Alabama" {
		t.Fatalf("bad customdata: %+v", m.CustomData)
	}
	if m.HoverTemplate == "" {
		t.Fatalf("marker trace missing hovertemplate")
	}

	// Axis ranges pad the subject/grade subset.
	if got := fig.Layout.XAxis.Range; got[0] != 228.0-2 || got[1] != 310.2+2 {
		t.Fatalf("x range: %v", got)
	}
	if got := fig.Layout.YAxis.Range; got[0] != -4.3-0.2 || got[1] != 1.8+0.2 {
		t.Fatalf("y range: %v", got)
	}
	if !fig.Layout.YAxis.ZeroLine || fig.Layout.YAxis.ZeroLineColor != "black" {
		t.Fatalf("missing zero line: %+v", fig.Layout.YAxis)
	}
	if fig.Layout.Title.Text != "Mathematics Scores for Grade 8" {
		t.Fatalf("title: %q", fig.Layout.Title.Text)
	}
}

func TestBuildPlotlySelectedStates(t *testing.T) {
	d := testDataset()
	fig, err := chart.BuildPlotly(d, chart.Request{
		Subject: "Mathematics", Grade: 8, Mode: chart.ModeSelected, States: []string{"Texas"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fig.Data) != 4 { // 3 markers + 1 line
		t.Fatalf("expected 4 traces, got %d", len(fig.Data))
	}
	for _, tr := range fig.Data {
		if tr.LegendGroup != "Texas" {
			t.Fatalf("unexpected state in output: %q", tr.LegendGroup)
		}
	}
}

func TestBuildPlotlyValidation(t *testing.T) {
	d := testDataset()
	if _, err := chart.BuildPlotly(d, chart.Request{Subject: "Science", Grade: 8, Mode: chart.ModeAll}); err == nil {
		t.Fatalf("expected error for unknown subject")
	}
	if _, err := chart.BuildPlotly(d, chart.Request{Subject: "Mathematics", Grade: 12, Mode: chart.ModeAll}); err == nil {
		t.Fatalf("expected error for unknown grade")
	}
	if _, err := chart.BuildPlotly(d, chart.Request{Subject: "Mathematics", Grade: 8, Mode: "weird"}); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}

func TestParseRenderer(t *testing.T) {
	if _, err := chart.ParseRenderer("plotly"); err != nil {
		t.Fatalf("plotly: %v", err)
	}
	if _, err := chart.ParseRenderer("highcharts"); err != nil {
		t.Fatalf("highcharts: %v", err)
	}
	if _, err := chart.ParseRenderer("d3"); err == nil {
		t.Fatalf("expected error for unknown renderer")
	}
}
