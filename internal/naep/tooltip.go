package naep

import "math"

// Tooltip is the per-point payload shown on marker hover. Scores are
// rounded to the nearest integer for display (half-to-even, matching the
// upstream data pipeline).
type Tooltip struct {
	Label      string `json:"label"` // state name, "*" suffix when significant
	Percentile int    `json:"percentile"`
	Score2019  int    `json:"score_2019"`
	Score2024  int    `json:"score_2024"`
	Change     int    `json:"change"`
}

func TooltipFor(r ScoreRecord) Tooltip {
	return Tooltip{
		Label:      SignificanceLabel(r.State, r.Significant),
		Percentile: r.Percentile,
		Score2019:  rint(r.Score2019),
		Score2024:  rint(r.Score2024),
		Change:     rint(r.ScoreChange),
	}
}

// SignificanceLabel suffixes the state name with "*" iff the significance
// flag is set.
func SignificanceLabel(state string, significant bool) string {
	if significant {
		return state + "*"
	}
	return state
}

// LineLabel is the legend entry for a state's line: starred when any of its
// rows carries a significant change.
func LineLabel(state string, rows []ScoreRecord) string {
	for _, r := range rows {
		if r.Significant {
			return state + "*"
		}
	}
	return state
}

func rint(v float64) int { return int(math.RoundToEven(v)) }

// Rint rounds to the nearest integer, ties to even.
func Rint(v float64) float64 { return math.RoundToEven(v) }
