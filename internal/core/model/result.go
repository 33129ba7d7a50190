package model

// AgreementResult compares two cluster assignments over their common term set.
type AgreementResult struct {
	ComparedTerms     int     `json:"compared_term_count"`
	RawAgreement      float64 `json:"raw_agreement_ratio"`
	AdjustedRandIndex float64 `json:"adjusted_rand_index"`
	// NoOverlap is set when the two assignments share no terms, so the zero
	// scores are not mistaken for strong disagreement.
	NoOverlap bool `json:"no_overlap"`
}

// CoverageReport summarizes how many glossary terms have at least one link.
type CoverageReport struct {
	TotalTerms      int     `json:"total_terms"`
	CoveredTerms    int     `json:"covered_terms"`
	CoveragePercent float64 `json:"coverage_percent"`
}

// PipelineResult is the immutable output of one full pipeline run.
type PipelineResult struct {
	Links      LinkDictionary  `json:"links"`
	Structural Assignment      `json:"structural_clusters"`
	Semantic   Assignment      `json:"semantic_clusters"`
	Agreement  AgreementResult `json:"agreement"`
	Coverage   CoverageReport  `json:"coverage"`
	NodeCount  int             `json:"node_count"`
	EdgeCount  int             `json:"edge_count"`
	SemanticK  int             `json:"semantic_k"`
}
