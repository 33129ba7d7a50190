package driver

const (
	SaveTermNodeQuery = `
		MERGE (t:Term {name: $name})
		SET t.definition = $definition,
			t.structural_cluster = $structural_cluster,
			t.semantic_cluster = $semantic_cluster,
			t.run_id = $run_id,
			t.updated_at = $updated_at
		RETURN t.name AS name
	`

	SaveReferenceEdgeQuery = `
		MATCH (a:Term {name: $source})
		MATCH (b:Term {name: $target})
		MERGE (a)-[e:REFERENCES]->(b)
		SET e.run_id = $run_id
		RETURN $source AS source
	`

	ClearRunQuery = `
		MATCH (t:Term)
		WHERE t.run_id <> $run_id
		DETACH DELETE t
	`

	CountTermsQuery = `
		MATCH (t:Term)
		RETURN count(t) AS terms
	`

	GetClusterMembersQuery = `
		MATCH (t:Term {structural_cluster: $cluster})
		RETURN t.name AS name, t.definition AS definition
		ORDER BY t.name
	`
)
