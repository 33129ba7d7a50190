package model

import "sort"

// Assignment maps each term to a cluster id. Cluster ids are only stable
// within one run of one algorithm; they are labels, not identities.
type Assignment map[string]int

// Terms returns the assigned terms in sorted order.
func (a Assignment) Terms() []string {
	terms := make([]string, 0, len(a))
	for t := range a {
		terms = append(terms, t)
	}
	sort.Strings(terms)
	return terms
}

// ClusterCount returns the number of distinct cluster ids in use.
func (a Assignment) ClusterCount() int {
	seen := make(map[int]struct{}, len(a))
	for _, c := range a {
		seen[c] = struct{}{}
	}
	return len(seen)
}

// Clusters groups terms by cluster id. Member lists are sorted.
func (a Assignment) Clusters() map[int][]string {
	groups := make(map[int][]string)
	for term, c := range a {
		groups[c] = append(groups[c], term)
	}
	for _, members := range groups {
		sort.Strings(members)
	}
	return groups
}

// LinkDictionary maps each term to the sorted set of other terms its
// definition references. Self-references are never present.
type LinkDictionary map[string][]string

// CoveredTerms counts terms with at least one link.
func (ld LinkDictionary) CoveredTerms() int {
	n := 0
	for _, links := range ld {
		if len(links) > 0 {
			n++
		}
	}
	return n
}

// UncoveredTerms returns the sorted terms with an empty link set. Extraction
// gives every term a dictionary entry, so emptiness is the only signal that
// a term is unlinked.
func (ld LinkDictionary) UncoveredTerms() []string {
	var out []string
	for term, links := range ld {
		if len(links) == 0 {
			out = append(out, term)
		}
	}
	sort.Strings(out)
	return out
}
