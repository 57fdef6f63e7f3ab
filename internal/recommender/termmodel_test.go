package recommender

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "lowercases and splits on punctuation",
			text:     "Red, Cotton-Shirt!",
			expected: []string{"red", "cotton", "shirt"},
		},
		{
			name:     "keeps accented characters",
			text:     "Áo thun đen",
			expected: []string{"áo", "thun", "đen"},
		},
		{
			name:     "digits and underscores are word characters",
			text:     "model_x 2024",
			expected: []string{"model_x", "2024"},
		},
		{
			name: "empty input",
			text: "   ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tokenize(tt.text))
		})
	}
}

func TestCountTerms_Bigrams(t *testing.T) {
	counts := countTerms([]string{"cotton", "shirt", "cotton", "shirt"})

	assert.Equal(t, 2, counts["cotton"])
	assert.Equal(t, 2, counts["shirt"])
	assert.Equal(t, 2, counts["cotton shirt"])
	assert.Equal(t, 1, counts["shirt cotton"])
}

func TestFitTermModel_InsufficientCorpus(t *testing.T) {
	for _, docs := range [][]string{nil, {"cotton shirt"}} {
		_, _, err := fitTermModel(docs)
		assert.ErrorIs(t, err, ErrInsufficientCorpus)
	}
}

func TestFitTermModel_VectorsAreNormalized(t *testing.T) {
	_, vectors, err := fitTermModel([]string{
		"red cotton shirt",
		"blue cotton shirt",
		"leather wallet",
	})
	require.NoError(t, err)
	require.Len(t, vectors, 3)

	for _, vec := range vectors {
		var sum float64
		for _, w := range vec {
			sum += w * w
		}
		assert.InDelta(t, 1.0, math.Sqrt(sum), 1e-9)
	}
}

func TestFitTermModel_RareTermsWeighMore(t *testing.T) {
	model, _, err := fitTermModel([]string{
		"red cotton shirt",
		"blue cotton shirt",
		"green cotton shirt",
		"leather wallet",
	})
	require.NoError(t, err)

	// "cotton" appears in 3 of 4 documents, "leather" in 1.
	common := model.idf[model.vocabulary["cotton"]]
	rare := model.idf[model.vocabulary["leather"]]
	assert.Greater(t, rare, common)
}

func TestFitTermModel_PrunesUbiquitousTerms(t *testing.T) {
	// A term in every document exceeds the 95% document frequency ceiling.
	docs := make([]string, 25)
	for i := range docs {
		docs[i] = "vyron"
	}
	docs[0] = "vyron shirt"
	docs[1] = "vyron wallet"

	model, _, err := fitTermModel(docs)
	require.NoError(t, err)

	_, ok := model.vocabulary["vyron"]
	assert.False(t, ok)
	_, ok = model.vocabulary["shirt"]
	assert.True(t, ok)
}

func TestFitTermModel_EmptyVocabularyFails(t *testing.T) {
	// Identical two-document corpus: every term sits at 100% document
	// frequency and gets pruned, leaving nothing to compare.
	_, _, err := fitTermModel([]string{"cotton shirt", "cotton shirt"})
	assert.ErrorIs(t, err, ErrInsufficientCorpus)
}

func TestTransform_IgnoresUnknownTerms(t *testing.T) {
	model, _, err := fitTermModel([]string{
		"red cotton shirt",
		"leather wallet",
	})
	require.NoError(t, err)

	assert.Empty(t, model.transform("spaceship engine"))
	assert.NotEmpty(t, model.transform("cotton spaceship"))
	assert.Empty(t, model.transform(""))
}
