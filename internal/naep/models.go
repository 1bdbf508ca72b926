package naep

// ScoreRecord is one row of the NAEP extract: a (subject, grade, state,
// percentile) cell with its 2019 baseline score and 2024 follow-up.
type ScoreRecord struct {
	Subject     string  `json:"subject"`
	Grade       int     `json:"grade"`
	State       string  `json:"state"`
	Percentile  int     `json:"percentile"` // 10|25|50|75|90
	Score2019   float64 `json:"score_2019"`
	Score2024   float64 `json:"score_2024"`
	ScoreChange float64 `json:"score_change"` // 2024 - 2019
	Significant bool    `json:"significant"`  // change is statistically significant
}

// Percentiles is the fixed set of NAEP reporting percentiles, in display order.
var Percentiles = []int{10, 25, 50, 75, 90}
