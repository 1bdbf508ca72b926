package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultDataURL is the published NAEP extract the dashboard renders.
const DefaultDataURL = "https://raw.githubusercontent.com/katcast/DataProject/main/Data_for_App_v2.csv"

type Config struct {
	HTTPAddr string

	// DataURL is an http(s) URL, or a local file path for offline use.
	DataURL      string
	FetchTimeout time.Duration

	AssetBasePath string // logo, percentile legend images, copy text
	Renderer      string // plotly|highcharts
	SettingsPath  string // optional YAML display settings

	CORSOrigins []string
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		HTTPAddr:      addr,
		DataURL:       envOr("DATA_URL", DefaultDataURL),
		FetchTimeout:  time.Duration(envInt("FETCH_TIMEOUT_SEC", 30)) * time.Second,
		AssetBasePath: envOr("ASSET_BASE_PATH", "./data"),
		Renderer:      envOr("CHART_RENDERER", "plotly"),
		SettingsPath:  os.Getenv("SETTINGS_PATH"),
		CORSOrigins:   csvOr("CORS_ORIGINS", "http://localhost:3000,http://localhost:8080"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(k)); err == nil && v > 0 {
		return v
	}
	return def
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
