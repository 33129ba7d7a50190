package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkDictionaryCoverage(t *testing.T) {
	dict := LinkDictionary{
		"AI":    {"ML"},
		"ML":    {"AI"},
		"Alone": {},
		"Also":  nil,
	}

	assert.Equal(t, 2, dict.CoveredTerms())
	// Every extracted term keeps a dictionary entry, so an unlinked term is
	// one whose entry is empty, not one whose entry is missing.
	assert.Equal(t, []string{"Alone", "Also"}, dict.UncoveredTerms())
}

func TestAssignment(t *testing.T) {
	a := Assignment{"B": 1, "A": 0, "C": 1}

	assert.Equal(t, []string{"A", "B", "C"}, a.Terms())
	assert.Equal(t, 2, a.ClusterCount())
	assert.Equal(t, map[int][]string{0: {"A"}, 1: {"B", "C"}}, a.Clusters())
}
