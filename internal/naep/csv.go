package naep

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Required column names, as published in the upstream CSV.
var requiredColumns = []string{
	"Subject", "Grade", "State", "Percentile",
	"Score.2019", "Score.2024", "Score.Change", "significant",
}

// ParseCSV decodes the score extract. Columns are matched by header name;
// extra columns are ignored, a missing required column is an error.
func ParseCSV(r io.Reader) ([]ScoreRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx := map[string]int{}
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	var out []ScoreRecord
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line+1, err)
		}
		line++

		rec, err := parseRow(row, idx)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func parseRow(row []string, idx map[string]int) (ScoreRecord, error) {
	field := func(name string) string { return strings.TrimSpace(row[idx[name]]) }

	grade, err := strconv.Atoi(field("Grade"))
	if err != nil {
		return ScoreRecord{}, fmt.Errorf("grade %q: %w", field("Grade"), err)
	}
	pct, err := strconv.Atoi(field("Percentile"))
	if err != nil {
		return ScoreRecord{}, fmt.Errorf("percentile %q: %w", field("Percentile"), err)
	}
	s19, err := strconv.ParseFloat(field("Score.2019"), 64)
	if err != nil {
		return ScoreRecord{}, fmt.Errorf("Score.2019 %q: %w", field("Score.2019"), err)
	}
	s24, err := strconv.ParseFloat(field("Score.2024"), 64)
	if err != nil {
		return ScoreRecord{}, fmt.Errorf("Score.2024 %q: %w", field("Score.2024"), err)
	}
	chg, err := strconv.ParseFloat(field("Score.Change"), 64)
	if err != nil {
		return ScoreRecord{}, fmt.Errorf("Score.Change %q: %w", field("Score.Change"), err)
	}
	sig, err := parseBool(field("significant"))
	if err != nil {
		return ScoreRecord{}, err
	}

	return ScoreRecord{
		Subject:     field("Subject"),
		Grade:       grade,
		State:       field("State"),
		Percentile:  pct,
		Score2019:   s19,
		Score2024:   s24,
		ScoreChange: chg,
		Significant: sig,
	}, nil
}

// parseBool accepts the pandas export spelling (True/False) alongside the
// usual Go forms.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no", "":
		return false, nil
	default:
		return false, fmt.Errorf("significant %q: not a boolean", s)
	}
}
