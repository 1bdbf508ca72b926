package dataset

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/katcast/naep-dashboard/internal/metrics"
	"github.com/katcast/naep-dashboard/internal/naep"
)

// Loader fetches the score CSV and holds the current in-memory snapshot.
// The snapshot is swapped atomically on reload; a failed reload keeps the
// previous one. Nothing is persisted.
type Loader struct {
	url     string
	client  *http.Client
	palette []string // optional state color override
	metrics *metrics.Metrics

	mu      sync.RWMutex
	current *naep.Dataset
}

func NewLoader(url string, timeout time.Duration, palette []string, m *metrics.Metrics) *Loader {
	return &Loader{
		url:     url,
		client:  &http.Client{Timeout: timeout},
		palette: palette,
		metrics: m,
	}
}

// Dataset returns the current snapshot; ok is false before the first
// successful Load.
func (l *Loader) Dataset() (*naep.Dataset, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current, l.current != nil
}

// Load fetches, parses, and swaps in a new snapshot.
func (l *Loader) Load(ctx context.Context) error {
	start := time.Now()
	records, err := l.fetch(ctx)
	if err != nil {
		l.metrics.ObserveFetch("error", time.Since(start))
		return err
	}
	l.metrics.ObserveFetch("ok", time.Since(start))
	l.metrics.SetRecordsLoaded(len(records))

	d := naep.NewDatasetWithPalette(records, l.palette)
	l.mu.Lock()
	l.current = d
	l.mu.Unlock()
	return nil
}

func (l *Loader) fetch(ctx context.Context) ([]naep.ScoreRecord, error) {
	// A plain path (no scheme) is read from disk for offline use.
	if !strings.Contains(l.url, "://") {
		f, err := os.Open(l.url)
		if err != nil {
			return nil, fmt.Errorf("open dataset file: %w", err)
		}
		defer f.Close()
		return naep.ParseCSV(f)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch dataset: unexpected status %s", resp.Status)
	}
	records, err := naep.ParseCSV(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	return records, nil
}
