package dataset

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Snapshot is one cached load of the dataset, already cleaned.
type Snapshot struct {
	ID       string
	Records  []Record
	LoadedAt time.Time
}

// Cache memoizes a single dataset load. Load fetches at most once until
// Invalidate is called; concurrent callers share the same fetch result.
type Cache struct {
	src    Source
	logger *slog.Logger

	mu   sync.Mutex
	snap *Snapshot
}

// NewCache creates a cache for the given source.
func NewCache(src Source, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Cache{src: src, logger: logger}
}

// Load returns the cached snapshot, fetching and cleaning the dataset on the
// first call (or the first call after Invalidate).
func (c *Cache) Load(ctx context.Context) (*Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snap != nil {
		return c.snap, nil
	}

	start := time.Now()
	records, err := Fetch(ctx, c.src)
	if err != nil {
		return nil, err
	}

	cleaned := Clean(records)
	snap := &Snapshot{
		ID:       uuid.NewString(),
		Records:  cleaned,
		LoadedAt: time.Now(),
	}
	c.snap = snap

	c.logger.Info("dataset loaded",
		"load_id", snap.ID,
		"rows", len(cleaned),
		"dropped", len(records)-len(cleaned),
		"elapsed", time.Since(start))

	return snap, nil
}

// Invalidate drops the cached snapshot so the next Load fetches again.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.snap = nil
	c.mu.Unlock()
}
