package naep

// Light24 is the 24-color qualitative palette used for state lines
// (plotly.express Light24).
var Light24 = []string{
	"#FD3216", "#00FE35", "#6A76FC", "#FED4C4", "#FE00CE", "#0DF9FF",
	"#F6F926", "#FF9616", "#479B55", "#EEA6FB", "#DC587D", "#D626FF",
	"#6E899C", "#00B5F7", "#B68E00", "#C9FBE5", "#FF0092", "#22FFA7",
	"#E3EE9E", "#86CE00", "#BC7196", "#7E7DCD", "#FC6955", "#E48F72",
}

// StateColors assigns each state a palette color by its position in the
// given list, cycling when there are more states than colors.
func StateColors(states []string) map[string]string {
	return StateColorsFrom(states, Light24)
}

// StateColorsFrom is StateColors over a custom palette. An empty palette
// falls back to Light24.
func StateColorsFrom(states, palette []string) map[string]string {
	if len(palette) == 0 {
		palette = Light24
	}
	out := make(map[string]string, len(states))
	for i, s := range states {
		out[s] = palette[i%len(palette)]
	}
	return out
}
