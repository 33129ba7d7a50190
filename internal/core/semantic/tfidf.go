package semantic

import (
	"math"
	"sort"

	"github.com/agenthands/termgraph/internal/core/links"
)

// Vectorize turns documents into L2-normalized TF-IDF vectors over a shared
// vocabulary. Tokens are lowercased word runs of at least two characters
// with English stop words removed. The second return value is the sorted
// vocabulary; row order matches the input document order.
func Vectorize(documents []string) ([][]float64, []string) {
	tokenized := make([][]string, len(documents))
	df := make(map[string]int)
	for i, doc := range documents {
		var kept []string
		seen := make(map[string]struct{})
		for _, tok := range links.Tokenize(doc) {
			if len(tok) < 2 || IsStopWord(tok) {
				continue
			}
			kept = append(kept, tok)
			if _, ok := seen[tok]; !ok {
				seen[tok] = struct{}{}
				df[tok]++
			}
		}
		tokenized[i] = kept
	}

	vocab := make([]string, 0, len(df))
	for tok := range df {
		vocab = append(vocab, tok)
	}
	sort.Strings(vocab)

	index := make(map[string]int, len(vocab))
	for i, tok := range vocab {
		index[tok] = i
	}

	// Smooth idf: ln((1+n)/(1+df)) + 1, then L2 row normalization.
	n := float64(len(documents))
	idf := make([]float64, len(vocab))
	for i, tok := range vocab {
		idf[i] = math.Log((1+n)/(1+float64(df[tok]))) + 1
	}

	vectors := make([][]float64, len(documents))
	for i, tokens := range tokenized {
		vec := make([]float64, len(vocab))
		for _, tok := range tokens {
			vec[index[tok]] += 1
		}
		var norm float64
		for j := range vec {
			vec[j] *= idf[j]
			norm += vec[j] * vec[j]
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for j := range vec {
				vec[j] /= norm
			}
		}
		vectors[i] = vec
	}
	return vectors, vocab
}
