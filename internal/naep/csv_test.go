package naep_test

import (
	"strings"
	"testing"

	"github.com/katcast/naep-dashboard/internal/naep"
)

const sampleCSV = `Subject,Grade,State,Percentile,Score.2019,Score.2024,Score.Change,significant
Mathematics,8,Alabama,10,230.4,226.1,-4.3,True
Mathematics,8,Alabama,50,268.9,267.2,-1.7,False
Reading,4,Alaska,25,200.5,198.0,-2.5,false
`

func TestParseCSV(t *testing.T) {
	recs, err := naep.ParseCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}

	first := recs[0]
	if first.Subject != "Mathematics" || first.Grade != 8 || first.State != "Alabama" {
		t.Fatalf("bad first record: %+v", first)
	}
	if first.Percentile != 10 || first.Score2019 != 230.4 || first.Score2024 != 226.1 {
		t.Fatalf("bad first record values: %+v", first)
	}
	if !first.Significant {
		t.Fatalf("expected pandas-style True to parse as significant")
	}
	if recs[1].Significant || recs[2].Significant {
		t.Fatalf("expected False/false to parse as not significant")
	}
}

func TestParseCSV_ExtraColumnsIgnored(t *testing.T) {
	csv := "Note,Subject,Grade,State,Percentile,Score.2019,Score.2024,Score.Change,significant\n" +
		"x,Mathematics,8,Alabama,10,230,226,-4,True\n"
	recs, err := naep.ParseCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 || recs[0].State != "Alabama" {
		t.Fatalf("bad records: %+v", recs)
	}
}

func TestParseCSV_MissingColumn(t *testing.T) {
	csv := "Subject,Grade,State,Percentile,Score.2019,Score.2024\n"
	if _, err := naep.ParseCSV(strings.NewReader(csv)); err == nil {
		t.Fatalf("expected error for missing columns")
	}
}

func TestParseCSV_BadValue(t *testing.T) {
	csv := "Subject,Grade,State,Percentile,Score.2019,Score.2024,Score.Change,significant\n" +
		"Mathematics,eight,Alabama,10,230,226,-4,True\n"
	if _, err := naep.ParseCSV(strings.NewReader(csv)); err == nil {
		t.Fatalf("expected error for non-numeric grade")
	}
}
