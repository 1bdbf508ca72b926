package naep

// Marker-symbol vocabularies per charting library. Both fall back to a
// circle for an unexpected percentile value.

var plotlyMarkers = map[int]string{
	10: "circle",
	25: "square",
	50: "diamond",
	75: "x",
	90: "star",
}

var highchartsMarkers = map[int]string{
	10: "circle",
	25: "square",
	50: "diamond",
	75: "triangle",
	90: "triangle-down",
}

func PlotlyMarker(percentile int) string {
	if m, ok := plotlyMarkers[percentile]; ok {
		return m
	}
	return "circle"
}

func HighchartsMarker(percentile int) string {
	if m, ok := highchartsMarkers[percentile]; ok {
		return m
	}
	return "circle"
}
