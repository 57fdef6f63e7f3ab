package recommender

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vyron-fashion/storefront/internal/config"
	"github.com/vyron-fashion/storefront/pkg/models"
)

// Snapshotter supplies the full active catalog in one read. The Postgres
// store implements it; tests inject fixtures.
type Snapshotter interface {
	ListActiveItems(ctx context.Context) ([]models.CatalogItem, error)
}

// Engine owns the live recommendation index. Reads go through an atomically
// swapped pointer and never block; Fit is the only writer and is serialized.
// The fitted flag turns false on catalog changes (MarkDirty) and failed fits,
// while the last good index keeps serving until a rebuild replaces it.
type Engine struct {
	catalog Snapshotter
	config  *config.RecommenderConfig
	logger  *logrus.Logger

	fitMu  sync.Mutex
	index  atomic.Pointer[Index]
	fitted atomic.Bool
}

func NewEngine(catalog Snapshotter, cfg *config.RecommenderConfig, logger *logrus.Logger) *Engine {
	return &Engine{
		catalog: catalog,
		config:  cfg,
		logger:  logger,
	}
}

// Fit builds a fresh index from the snapshot and swaps it in. A fit arriving
// while another is running is rejected rather than queued; the caller retries
// on the next trigger. On failure the previous index stays live but the
// fitted flag drops, so callers can see results may be stale.
func (e *Engine) Fit(items []models.CatalogItem) bool {
	if !e.fitMu.TryLock() {
		e.logger.Warn("Recommender rebuild already in progress, skipping")
		return false
	}
	defer e.fitMu.Unlock()

	start := time.Now()
	e.logger.WithField("products", len(items)).Info("Fitting recommender")

	itemIDs := make([]string, 0, len(items))
	metadata := make(map[string]models.ItemSummary, len(items))
	docs := make([]string, 0, len(items))

	for _, item := range items {
		// Items without an explicit status default to active.
		if item.Status != "" && item.Status != "active" {
			continue
		}
		if item.ID == "" {
			continue
		}
		profile, ok := BuildProfile(item)
		if !ok {
			continue
		}
		itemIDs = append(itemIDs, profile.ItemID)
		metadata[profile.ItemID] = item.Summary()
		docs = append(docs, profile.Text)
	}

	if len(docs) < 2 {
		e.logger.WithField("usable_products", len(docs)).
			Warn("Not enough products with content to fit recommender")
		e.fitted.Store(false)
		rebuildsTotal.WithLabelValues("failure").Inc()
		return false
	}

	model, vectors, err := fitTermModel(docs)
	if err != nil {
		e.logger.WithError(err).Warn("Recommender fit failed")
		e.fitted.Store(false)
		rebuildsTotal.WithLabelValues("failure").Inc()
		return false
	}

	positions := make(map[string]int, len(itemIDs))
	for i, id := range itemIDs {
		positions[id] = i
	}

	ix := &Index{
		itemIDs:    itemIDs,
		positions:  positions,
		metadata:   metadata,
		model:      model,
		vectors:    vectors,
		similarity: buildSimilarityMatrix(vectors),
		fittedAt:   time.Now(),
	}

	e.index.Store(ix)
	e.fitted.Store(true)

	elapsed := time.Since(start)
	rebuildsTotal.WithLabelValues("success").Inc()
	rebuildDuration.Observe(elapsed.Seconds())
	indexedProducts.Set(float64(ix.itemCount()))
	indexedFeatures.Set(float64(model.featureCount()))

	e.logger.WithFields(logrus.Fields{
		"products": ix.itemCount(),
		"features": model.featureCount(),
		"duration": elapsed,
	}).Info("Recommender fitted")

	return true
}

// Rebuild wraps Fit with a fresh catalog snapshot.
func (e *Engine) Rebuild(ctx context.Context) bool {
	items, err := e.catalog.ListActiveItems(ctx)
	if err != nil {
		e.logger.WithError(err).Error("Failed to load catalog snapshot for rebuild")
		rebuildsTotal.WithLabelValues("failure").Inc()
		return false
	}
	return e.Fit(items)
}

// MarkDirty flags the index as stale after a catalog write. It is a cheap
// signal only; the rebuild itself is driven by the scheduler.
func (e *Engine) MarkDirty() {
	e.fitted.Store(false)
	e.logger.Info("Recommender marked dirty, needs rebuild")
}

// Dirty reports whether a rebuild is due.
func (e *Engine) Dirty() bool {
	return !e.fitted.Load()
}

// Recommend returns the top-n precomputed neighbors of itemID. n <= 0 and
// negative thresholds fall back to configured defaults. Before the first
// successful fit there is no index and the result is empty.
func (e *Engine) Recommend(itemID string, n int, minSimilarity float64) []models.RecommendationResult {
	ix := e.index.Load()
	if ix == nil {
		return nil
	}
	if n <= 0 {
		n = e.config.DefaultCount
	}
	if minSimilarity < 0 {
		minSimilarity = e.config.MinSimilarity
	}
	queriesTotal.WithLabelValues("item").Inc()
	return ix.Recommend(itemID, n, minSimilarity)
}

// RecommendByText scores free text against every fitted vector. The default
// threshold is lower than the item one; free text is noisier.
func (e *Engine) RecommendByText(text string, n int, excludeIDs []string) []models.RecommendationResult {
	ix := e.index.Load()
	if ix == nil {
		return nil
	}
	if n <= 0 {
		n = e.config.DefaultCount
	}
	queriesTotal.WithLabelValues("text").Inc()
	return ix.RecommendByText(text, n, e.config.TextMinSimilarity, excludeIDs)
}

// Stats reports the live index shape for the admin dashboard.
func (e *Engine) Stats() models.RecommenderStats {
	stats := models.RecommenderStats{
		IsFitted: e.fitted.Load(),
	}
	if ix := e.index.Load(); ix != nil {
		stats.TotalProducts = ix.itemCount()
		stats.TotalFeatures = ix.model.featureCount()
		fittedAt := ix.fittedAt
		stats.LastUpdated = &fittedAt
	}
	return stats
}
