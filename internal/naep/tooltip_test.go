package naep_test

import (
	"testing"

	"github.com/katcast/naep-dashboard/internal/naep"
)

func TestTooltipRounding(t *testing.T) {
	r := naep.ScoreRecord{
		State: "Vermont", Percentile: 75,
		Score2019: 512.4, Score2024: 508.7, ScoreChange: -3.7,
	}
	tip := naep.TooltipFor(r)
	if tip.Score2019 != 512 {
		t.Fatalf("Score2019: got %d, want 512", tip.Score2019)
	}
	if tip.Score2024 != 509 {
		t.Fatalf("Score2024: got %d, want 509", tip.Score2024)
	}
	if tip.Change != -4 {
		t.Fatalf("Change: got %d, want -4", tip.Change)
	}
	if tip.Percentile != 75 {
		t.Fatalf("Percentile: got %d", tip.Percentile)
	}
}

func TestSignificanceLabel(t *testing.T) {
	if got := naep.SignificanceLabel("Texas", true); got != "Texas*" {
		t.Fatalf("got %q, want Texas*", got)
	}
	if got := naep.SignificanceLabel("Texas", false); got != "Texas" {
		t.Fatalf("got %q, want Texas", got)
	}
}

func TestLineLabel(t *testing.T) {
	rows := []naep.ScoreRecord{
		{State: "Ohio", Percentile: 10, Significant: false},
		{State: "Ohio", Percentile: 50, Significant: true},
	}
	if got := naep.LineLabel("Ohio", rows); got != "Ohio*" {
		t.Fatalf("got %q, want Ohio*", got)
	}
	rows[1].Significant = false
	if got := naep.LineLabel("Ohio", rows); got != "Ohio" {
		t.Fatalf("got %q, want Ohio", got)
	}
}

func TestStateColorsCycle(t *testing.T) {
	states := make([]string, 30)
	for i := range states {
		states[i] = string(rune('A' + i))
	}
	colors := naep.StateColors(states)
	if len(colors) != 30 {
		t.Fatalf("expected 30 assignments, got %d", len(colors))
	}
	if colors[states[0]] != naep.Light24[0] {
		t.Fatalf("first state: got %s", colors[states[0]])
	}
	// 25th state wraps back to the first palette color
	if colors[states[24]] != naep.Light24[0] {
		t.Fatalf("cycled state: got %s, want %s", colors[states[24]], naep.Light24[0])
	}
	// stable across calls
	again := naep.StateColors(states)
	for s, c := range colors {
		if again[s] != c {
			t.Fatalf("color for %s changed between calls", s)
		}
	}
}

func TestMarkerFallback(t *testing.T) {
	for _, p := range naep.Percentiles {
		if naep.PlotlyMarker(p) == "" || naep.HighchartsMarker(p) == "" {
			t.Fatalf("missing marker for percentile %d", p)
		}
	}
	if got := naep.PlotlyMarker(33); got != "circle" {
		t.Fatalf("plotly fallback: got %q", got)
	}
	if got := naep.HighchartsMarker(33); got != "circle" {
		t.Fatalf("highcharts fallback: got %q", got)
	}
	if got := naep.PlotlyMarker(90); got != "star" {
		t.Fatalf("plotly 90: got %q", got)
	}
	if got := naep.HighchartsMarker(90); got != "triangle-down" {
		t.Fatalf("highcharts 90: got %q", got)
	}
}
