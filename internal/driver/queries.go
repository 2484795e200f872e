package driver

const (
	FindEntityByNameQuery = `
		MATCH (n)
		WHERE toLower(n.name) = toLower($name)
		RETURN n, labels(n) AS labels
		LIMIT 1
	`

	EntityNeighborsQuery = `
		MATCH (n)-[r]-(m)
		WHERE toLower(n.name) = toLower($name)
		RETURN n, r, m, labels(m) AS target_labels
		LIMIT $limit
	`

	CompanyContextQuery = `
		MATCH (n)
		WHERE n.name CONTAINS 'Nestlé' OR n.name CONTAINS 'Nestle'
		   OR 'Company' IN labels(n) OR 'Brand' IN labels(n)
		RETURN n, labels(n) AS labels
		LIMIT 5
	`

	SustainabilityContextQuery = `
		MATCH (n)
		WHERE toLower(n.name) CONTAINS 'sustainability'
		   OR toLower(n.name) CONTAINS 'cocoa'
		   OR toLower(n.name) CONTAINS 'environment'
		   OR 'Topic' IN labels(n)
		RETURN n, labels(n) AS labels
		LIMIT 5
	`

	ProductContextQuery = `
		MATCH (n)
		WHERE 'Product' IN labels(n) OR 'Category' IN labels(n)
		RETURN n, labels(n) AS labels
		LIMIT 8
	`

	KeywordSearchQuery = `
		MATCH (n)
		WHERE toLower(n.name) CONTAINS toLower($keyword)
		   OR toLower(n.description) CONTAINS toLower($keyword)
		RETURN n, labels(n) AS labels
		LIMIT 3
	`

	PathsBetweenQuery = `
		MATCH path = (a)-[*1..3]-(b)
		WHERE toLower(a.name) = toLower($start)
		  AND toLower(b.name) = toLower($end)
		RETURN path
		LIMIT 3
	`

	NodeCountsQuery = `
		MATCH (n)
		UNWIND labels(n) AS label
		WITH label, count(*) AS count
		RETURN label, count
		ORDER BY count DESC
	`

	RelationshipCountsQuery = `
		MATCH ()-[r]->()
		RETURN type(r) AS relationship_type, count(r) AS count
		ORDER BY count DESC
	`

	TotalNodeCountQuery = `
		MATCH (n) RETURN count(n) AS count
	`
)
