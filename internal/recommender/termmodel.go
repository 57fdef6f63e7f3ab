package recommender

import (
	"errors"
	"math"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"gonum.org/v1/gonum/floats"
)

// Document frequency bounds for vocabulary inclusion. Terms present in more
// than maxDocFreq of the corpus carry no signal and are pruned.
const (
	minDocFreq = 1
	maxDocFreq = 0.95
)

// ErrInsufficientCorpus is returned by fit when fewer than two usable
// documents remain; cosine similarity is meaningless below that.
var ErrInsufficientCorpus = errors.New("insufficient corpus for similarity model")

// FeatureVector is a sparse, L2-normalized mapping from vocabulary index to
// term weight.
type FeatureVector map[int]float64

func (v FeatureVector) dot(other FeatureVector) float64 {
	// Iterate the smaller side
	if len(other) < len(v) {
		v, other = other, v
	}
	var sum float64
	for i, w := range v {
		sum += w * other[i]
	}
	return sum
}

// TermModel is the fitted vocabulary plus per-term inverse document frequency
// weights. It is immutable once fitted, so transform is safe for concurrent use.
type TermModel struct {
	vocabulary map[string]int
	idf        []float64
}

func (m *TermModel) featureCount() int {
	return len(m.vocabulary)
}

// fitTermModel builds the unigram+bigram vocabulary over the corpus, prunes
// terms above the document frequency ceiling, and returns the per-document
// feature vectors alongside the model.
func fitTermModel(docs []string) (*TermModel, []FeatureVector, error) {
	if len(docs) < 2 {
		return nil, nil, ErrInsufficientCorpus
	}

	docCounts := make([]map[string]int, len(docs))
	docFreq := make(map[string]int)

	for i, doc := range docs {
		counts := countTerms(tokenize(doc))
		docCounts[i] = counts
		for term := range counts {
			docFreq[term]++
		}
	}

	// Vocabulary is sorted so column order is deterministic across rebuilds.
	total := float64(len(docs))
	terms := make([]string, 0, len(docFreq))
	for term, df := range docFreq {
		if df < minDocFreq || float64(df)/total > maxDocFreq {
			continue
		}
		terms = append(terms, term)
	}
	if len(terms) == 0 {
		return nil, nil, ErrInsufficientCorpus
	}
	sort.Strings(terms)

	model := &TermModel{
		vocabulary: make(map[string]int, len(terms)),
		idf:        make([]float64, len(terms)),
	}
	for i, term := range terms {
		model.vocabulary[term] = i
		// Smoothed IDF; +1 keeps corpus-wide terms from zeroing out entirely.
		model.idf[i] = math.Log((1+total)/float64(1+docFreq[term])) + 1
	}

	vectors := make([]FeatureVector, len(docs))
	usable := 0
	for i, counts := range docCounts {
		vectors[i] = model.vectorize(counts)
		if len(vectors[i]) > 0 {
			usable++
		}
	}
	if usable < 2 {
		return nil, nil, ErrInsufficientCorpus
	}

	return model, vectors, nil
}

// transform projects free text into the fitted feature space. Out-of-vocabulary
// terms map to nothing; the result may be empty but transform never fails.
func (m *TermModel) transform(text string) FeatureVector {
	return m.vectorize(countTerms(tokenize(text)))
}

func (m *TermModel) vectorize(counts map[string]int) FeatureVector {
	vec := make(FeatureVector)
	for term, count := range counts {
		if i, ok := m.vocabulary[term]; ok {
			vec[i] = float64(count) * m.idf[i]
		}
	}
	if len(vec) == 0 {
		return vec
	}

	weights := make([]float64, 0, len(vec))
	for _, w := range vec {
		weights = append(weights, w)
	}
	n := floats.Norm(weights, 2)
	for i, w := range vec {
		vec[i] = w / n
	}
	return vec
}

// tokenize splits on Unicode word boundaries, case-folded, accents preserved.
// A word is a run of letters, digits or underscores.
func tokenize(text string) []string {
	text = strings.ToLower(norm.NFC.String(text))

	var tokens []string
	var sb strings.Builder
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			sb.WriteRune(r)
			continue
		}
		if sb.Len() > 0 {
			tokens = append(tokens, sb.String())
			sb.Reset()
		}
	}
	if sb.Len() > 0 {
		tokens = append(tokens, sb.String())
	}
	return tokens
}

// countTerms produces raw frequencies for unigrams and contiguous bigrams.
func countTerms(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens)*2)
	for i, token := range tokens {
		counts[token]++
		if i+1 < len(tokens) {
			counts[token+" "+tokens[i+1]]++
		}
	}
	return counts
}
