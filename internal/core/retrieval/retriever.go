package retrieval

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/agenthands/praline/internal/core/intent"
	"github.com/agenthands/praline/internal/core/model"
	"github.com/agenthands/praline/internal/driver"
)

const (
	neighborLimit = 10
	keywordLimit  = 3
)

// Retriever gathers a ContextBundle for a query by running several
// independent lookup strategies against the graph store and merging
// their partial results. A failing strategy contributes an empty
// partial; it never aborts the whole retrieval.
type Retriever struct {
	store driver.GraphDriver
}

func New(store driver.GraphDriver) *Retriever {
	return &Retriever{store: store}
}

// Retrieve runs the strategies in priority order: direct entity lookup
// first, then intent-scoped and keyword lookups, then path discovery.
// Deduplication keeps the first occurrence, so direct matches win ties.
// The returned error joins store failures seen along the way; the
// bundle is valid (possibly empty) even when it is non-nil.
func (r *Retriever) Retrieve(ctx context.Context, query, intentCategory string, entities []string) (model.ContextBundle, error) {
	bundle := model.ContextBundle{}
	var errs []error

	if len(entities) > 0 {
		nodes, rels := r.entityContext(ctx, entities, &errs)
		bundle.Nodes = append(bundle.Nodes, nodes...)
		bundle.Relationships = append(bundle.Relationships, rels...)
	}

	bundle.Nodes = append(bundle.Nodes, r.intentContext(ctx, intentCategory, &errs)...)
	bundle.Nodes = append(bundle.Nodes, r.keywordContext(ctx, query, &errs)...)

	dedupe(&bundle)

	if len(bundle.Nodes) >= 2 {
		bundle.Paths = r.relationshipPaths(ctx, bundle.Nodes[0].Name, bundle.Nodes[1].Name, &errs)
	}

	bundle.Summary = summarize(&bundle)
	return bundle, errors.Join(errs...)
}

// entityContext finds each entity's node by exact case-insensitive
// name match, then expands to its immediate neighbors.
func (r *Retriever) entityContext(ctx context.Context, entities []string, errs *[]error) ([]model.GraphNode, []model.Relationship) {
	var nodes []model.GraphNode
	var rels []model.Relationship

	for _, entity := range entities {
		result, err := r.store.ExecuteQuery(ctx, driver.FindEntityByNameQuery, map[string]interface{}{
			"name": entity,
		})
		if err != nil {
			log.Warn().Err(err).Str("entity", entity).Msg("entity lookup failed")
			*errs = append(*errs, err)
			continue
		}

		found := driver.CollectNodes(result, "n", "labels")
		if len(found) == 0 {
			continue
		}

		node := found[0]
		node.Relevance = model.RelevanceDirectMatch
		nodes = append(nodes, node)

		neighborResult, err := r.store.ExecuteQuery(ctx, driver.EntityNeighborsQuery, map[string]interface{}{
			"name":  entity,
			"limit": neighborLimit,
		})
		if err != nil {
			log.Warn().Err(err).Str("entity", entity).Msg("neighbor expansion failed")
			*errs = append(*errs, err)
			continue
		}

		for _, nb := range driver.CollectNeighbors(neighborResult, node.Name) {
			rels = append(rels, nb.Relationship)
			target := nb.Target
			target.Relevance = model.RelevanceConnected
			nodes = append(nodes, target)
		}
	}

	return nodes, rels
}

// intentContext runs a broader label/name scan for intents that have
// a well-known slice of the graph.
func (r *Retriever) intentContext(ctx context.Context, intentCategory string, errs *[]error) []model.GraphNode {
	var cypher string
	switch intentCategory {
	case intent.CategoryCompany, intent.CategoryCEO:
		cypher = driver.CompanyContextQuery
	case intent.CategorySustainability:
		cypher = driver.SustainabilityContextQuery
	case intent.CategoryProductInfo:
		cypher = driver.ProductContextQuery
	default:
		return nil
	}

	result, err := r.store.ExecuteQuery(ctx, cypher, nil)
	if err != nil {
		log.Warn().Err(err).Str("intent", intentCategory).Msg("intent-scoped lookup failed")
		*errs = append(*errs, err)
		return nil
	}

	nodes := driver.CollectNodes(result, "n", "labels")
	relevance := model.IntentRelevance(intentCategory)
	for i := range nodes {
		nodes[i].Relevance = relevance
	}
	return nodes
}

// keywordContext matches salient query tokens against node names and
// descriptions.
func (r *Retriever) keywordContext(ctx context.Context, query string, errs *[]error) []model.GraphNode {
	var nodes []model.GraphNode

	for _, keyword := range Keywords(query, keywordLimit) {
		result, err := r.store.ExecuteQuery(ctx, driver.KeywordSearchQuery, map[string]interface{}{
			"keyword": keyword,
		})
		if err != nil {
			log.Warn().Err(err).Str("keyword", keyword).Msg("keyword lookup failed")
			*errs = append(*errs, err)
			continue
		}

		found := driver.CollectNodes(result, "n", "labels")
		relevance := model.KeywordRelevance(keyword)
		for i := range found {
			found[i].Relevance = relevance
		}
		nodes = append(nodes, found...)
	}

	return nodes
}

// relationshipPaths looks for short paths (1-3 hops) between the two
// highest-priority nodes found so far.
func (r *Retriever) relationshipPaths(ctx context.Context, start, end string, errs *[]error) []model.Path {
	if strings.EqualFold(start, end) {
		return nil
	}

	result, err := r.store.ExecuteQuery(ctx, driver.PathsBetweenQuery, map[string]interface{}{
		"start": start,
		"end":   end,
	})
	if err != nil {
		log.Warn().Err(err).Str("start", start).Str("end", end).Msg("path discovery failed")
		*errs = append(*errs, err)
		return nil
	}

	return driver.CollectPaths(result, start, end)
}

// dedupe removes repeated nodes by (name, type) and repeated
// relationships by (from, to, type), keeping first occurrences. A node
// re-encountered under a different relevance tag is ignored.
func dedupe(bundle *model.ContextBundle) {
	seenNodes := make(map[string]bool)
	nodes := bundle.Nodes[:0]
	for _, n := range bundle.Nodes {
		if !seenNodes[n.Key()] {
			seenNodes[n.Key()] = true
			nodes = append(nodes, n)
		}
	}
	bundle.Nodes = nodes

	seenRels := make(map[string]bool)
	rels := bundle.Relationships[:0]
	for _, rel := range bundle.Relationships {
		if !seenRels[rel.Key()] {
			seenRels[rel.Key()] = true
			rels = append(rels, rel)
		}
	}
	bundle.Relationships = rels
}
