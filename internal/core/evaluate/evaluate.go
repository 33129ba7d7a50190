package evaluate

import (
	"sort"

	"github.com/agenthands/termgraph/internal/core/model"
)

// Compare aligns two assignments on their common term set and scores their
// agreement. Terms present in only one assignment are excluded. The raw
// ratio only means anything when the two algorithms happen to share id
// numbering; the adjusted Rand index is the authoritative metric because it
// is invariant to relabeling.
func Compare(a, b model.Assignment) model.AgreementResult {
	var common []string
	for term := range a {
		if _, ok := b[term]; ok {
			common = append(common, term)
		}
	}
	if len(common) == 0 {
		return model.AgreementResult{NoOverlap: true}
	}
	sort.Strings(common)

	labelsA := make([]int, len(common))
	labelsB := make([]int, len(common))
	equal := 0
	for i, term := range common {
		labelsA[i] = a[term]
		labelsB[i] = b[term]
		if labelsA[i] == labelsB[i] {
			equal++
		}
	}

	return model.AgreementResult{
		ComparedTerms:     len(common),
		RawAgreement:      float64(equal) / float64(len(common)),
		AdjustedRandIndex: AdjustedRandIndex(labelsA, labelsB),
	}
}

// AdjustedRandIndex computes the chance-corrected pairwise agreement between
// two labelings of the same elements. Result is in [-1, 1]; 1.0 means the
// partitions are identical up to relabeling.
func AdjustedRandIndex(labelsA, labelsB []int) float64 {
	n := len(labelsA)
	if n == 0 {
		return 0
	}
	if n == 1 {
		// A single shared element forms identical partitions trivially.
		return 1.0
	}

	// Contingency table and marginals.
	type cell struct{ a, b int }
	contingency := make(map[cell]int)
	rowSums := make(map[int]int)
	colSums := make(map[int]int)
	for i := 0; i < n; i++ {
		contingency[cell{labelsA[i], labelsB[i]}]++
		rowSums[labelsA[i]]++
		colSums[labelsB[i]]++
	}

	var sumComb, rowComb, colComb float64
	for _, count := range contingency {
		sumComb += comb2(count)
	}
	for _, count := range rowSums {
		rowComb += comb2(count)
	}
	for _, count := range colSums {
		colComb += comb2(count)
	}

	expected := rowComb * colComb / comb2(n)
	maxIndex := (rowComb + colComb) / 2

	// Both partitions trivial in pair structure (all singletons, or one
	// cluster each): they agree perfectly by construction.
	if maxIndex == expected {
		return 1.0
	}
	return (sumComb - expected) / (maxIndex - expected)
}

func comb2(n int) float64 {
	return float64(n) * float64(n-1) / 2
}
