package recommender

import "gonum.org/v1/gonum/mat"

// buildSimilarityMatrix computes pairwise cosine similarity over the fitted
// vectors. Vectors arrive L2-normalized, so cosine reduces to the sparse dot
// product; a zero-norm vector scores 0 against everything. Only the upper
// triangle is computed, SymDense mirrors it.
func buildSimilarityMatrix(vectors []FeatureVector) *mat.SymDense {
	n := len(vectors)
	sim := mat.NewSymDense(n, nil)

	for i := 0; i < n; i++ {
		// Self-similarity is 1.0 by definition, not computed.
		sim.SetSym(i, i, 1.0)
		for j := i + 1; j < n; j++ {
			sim.SetSym(i, j, vectors[i].dot(vectors[j]))
		}
	}

	return sim
}
