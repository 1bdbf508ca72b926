package naep

import "sort"

// Dataset is an immutable view over the loaded score records. Derived
// domains are computed once at construction.
type Dataset struct {
	records  []ScoreRecord
	subjects []string
	grades   []int
	states   []string
	colors   map[string]string
}

func NewDataset(records []ScoreRecord) *Dataset {
	return NewDatasetWithPalette(records, nil)
}

// NewDatasetWithPalette overrides the state color palette (empty = Light24).
func NewDatasetWithPalette(records []ScoreRecord, palette []string) *Dataset {
	subjSet := map[string]struct{}{}
	gradeSet := map[int]struct{}{}
	stateSet := map[string]struct{}{}
	for _, r := range records {
		subjSet[r.Subject] = struct{}{}
		gradeSet[r.Grade] = struct{}{}
		stateSet[r.State] = struct{}{}
	}

	d := &Dataset{records: records}
	for s := range subjSet {
		d.subjects = append(d.subjects, s)
	}
	sort.Strings(d.subjects)
	for g := range gradeSet {
		d.grades = append(d.grades, g)
	}
	sort.Ints(d.grades)
	for s := range stateSet {
		d.states = append(d.states, s)
	}
	sort.Strings(d.states)
	d.colors = StateColorsFrom(d.states, palette)
	return d
}

func (d *Dataset) Len() int           { return len(d.records) }
func (d *Dataset) Subjects() []string { return d.subjects }
func (d *Dataset) Grades() []int      { return d.grades }
func (d *Dataset) States() []string   { return d.states }

// Colors returns the deterministic state→color assignment for this dataset.
func (d *Dataset) Colors() map[string]string { return d.colors }

func (d *Dataset) HasSubject(s string) bool {
	for _, v := range d.subjects {
		if v == s {
			return true
		}
	}
	return false
}

func (d *Dataset) HasGrade(g int) bool {
	for _, v := range d.grades {
		if v == g {
			return true
		}
	}
	return false
}

// Filter returns exactly the records matching both subject and grade.
func (d *Dataset) Filter(subject string, grade int) []ScoreRecord {
	var out []ScoreRecord
	for _, r := range d.records {
		if r.Subject == subject && r.Grade == grade {
			out = append(out, r)
		}
	}
	return out
}

// ByState extracts one state's rows from a filtered subset, ordered by
// percentile ascending.
func ByState(records []ScoreRecord, state string) []ScoreRecord {
	var out []ScoreRecord
	for _, r := range records {
		if r.State == state {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Percentile < out[j].Percentile })
	return out
}
