package recommender

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/vyron-fashion/storefront/pkg/models"
)

// Index is a fitted, queryable snapshot: the item ordering, the metadata
// cache, the term model and the precomputed similarity matrix. An Index is
// never mutated after construction; rebuilds produce a fresh one and swap it
// in, so readers are lock-free.
type Index struct {
	itemIDs    []string
	positions  map[string]int
	metadata   map[string]models.ItemSummary
	model      *TermModel
	vectors    []FeatureVector
	similarity *mat.SymDense
	fittedAt   time.Time
}

func (ix *Index) itemCount() int {
	return len(ix.itemIDs)
}

// Recommend returns up to n items most similar to itemID, highest score
// first, ties broken by original catalog position. Unknown ids yield an empty
// list, indistinguishable from "nothing similar enough".
func (ix *Index) Recommend(itemID string, n int, minSimilarity float64) []models.RecommendationResult {
	idx, ok := ix.positions[itemID]
	if !ok {
		return nil
	}

	scores := make([]float64, ix.itemCount())
	mat.Row(scores, idx, ix.similarity)

	return ix.rank(scores, n, minSimilarity, func(i int) bool {
		return i == idx
	})
}

// RecommendByText projects free text through the term model and scores it
// against every fitted vector directly; the query is not a catalog row so the
// precomputed matrix does not apply.
func (ix *Index) RecommendByText(text string, n int, minSimilarity float64, excludeIDs []string) []models.RecommendationResult {
	query := ix.model.transform(text)

	scores := make([]float64, ix.itemCount())
	for i, vec := range ix.vectors {
		scores[i] = query.dot(vec)
	}

	excluded := make(map[string]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}

	return ix.rank(scores, n, minSimilarity, func(i int) bool {
		_, skip := excluded[ix.itemIDs[i]]
		return skip
	})
}

// rank sorts positions by score descending with a stable tie-break on the
// original index, then filters and truncates.
func (ix *Index) rank(scores []float64, n int, minSimilarity float64, skip func(int) bool) []models.RecommendationResult {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	var results []models.RecommendationResult
	for _, i := range order {
		if skip(i) {
			continue
		}
		if scores[i] < minSimilarity {
			continue
		}
		results = append(results, models.RecommendationResult{
			ItemSummary:     ix.metadata[ix.itemIDs[i]],
			SimilarityScore: roundScore(scores[i]),
		})
		if len(results) >= n {
			break
		}
	}
	return results
}

// Scores are rounded to 4 decimal places for API stability.
func roundScore(s float64) float64 {
	return math.Round(s*10000) / 10000
}
