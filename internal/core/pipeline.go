package core

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/agenthands/praline/internal/core/compose"
	"github.com/agenthands/praline/internal/core/dynamic"
	"github.com/agenthands/praline/internal/core/intent"
	"github.com/agenthands/praline/internal/core/model"
	"github.com/agenthands/praline/internal/core/retrieval"
	"github.com/agenthands/praline/internal/core/sources"
	"github.com/agenthands/praline/internal/driver"
	"github.com/agenthands/praline/internal/llm"
	"github.com/agenthands/praline/internal/scrape"
)

const (
	graphTimeout  = 5 * time.Second
	scrapeTimeout = 10 * time.Second
	llmTimeout    = 30 * time.Second
)

const (
	methodGenerative    = "graph_rag_generative"
	methodDeterministic = "graph_rag_deterministic"
	methodErrorFallback = "error_fallback"
)

const apologyAnswer = "I apologize, but I'm having trouble processing your question right now. " +
	"Please try again, or visit https://www.madewithnestle.ca for information about " +
	"Nestlé products."

// Pipeline orchestrates one question through intent analysis, graph
// retrieval, dynamic supplementation, and response composition.
type Pipeline struct {
	store        driver.GraphDriver
	retriever    *retrieval.Retriever
	supplementer *dynamic.Supplementer
	composer     *compose.Composer
	now          func() time.Time
}

// NewPipeline wires the stages together. llmClient may be nil, in
// which case every answer uses the deterministic composer path.
func NewPipeline(store driver.GraphDriver, llmClient llm.Client, fetcher scrape.Fetcher, cache *dynamic.Cache) *Pipeline {
	return &Pipeline{
		store:        store,
		retriever:    retrieval.New(store),
		supplementer: dynamic.NewSupplementer(fetcher, cache),
		composer:     compose.New(llmClient),
		now:          time.Now,
	}
}

// Ask answers a single question. It never returns an error: any stage
// failure or panic degrades to a fixed apology answer with the failure
// recorded in metadata.
func (p *Pipeline) Ask(ctx context.Context, query string) (answer model.Answer) {
	requestID := uuid.New().String()

	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("request_id", requestID).Interface("panic", r).Msg("query processing panicked")
			answer = p.errorAnswer(requestID, fmt.Sprintf("%v", r))
		}
	}()

	entities := intent.Extract(query)
	res := intent.Classify(query, entities)

	log.Info().
		Str("request_id", requestID).
		Str("intent", res.Category).
		Strs("entities", entities).
		Float64("confidence", res.Confidence).
		Msg("processing query")

	graphCtx, cancelGraph := context.WithTimeout(ctx, graphTimeout)
	bundle, retrieveErr := p.retriever.Retrieve(graphCtx, query, res.Category, entities)
	cancelGraph()

	if p.supplementer.Needed(query, res.Category) {
		scrapeCtx, cancelScrape := context.WithTimeout(ctx, scrapeTimeout)
		info := p.supplementer.Supplement(scrapeCtx, query, res.Category, entities)
		cancelScrape()
		mergeDynamicInfo(&bundle, info)
	}

	if retrieveErr != nil && bundle.Empty() {
		log.Error().Err(retrieveErr).Str("request_id", requestID).Msg("graph store unavailable")
		return p.errorAnswer(requestID, retrieveErr.Error())
	}

	srcs := sources.Relevant(query, entities)

	llmCtx, cancelLLM := context.WithTimeout(ctx, llmTimeout)
	text, generated := p.composer.Compose(llmCtx, query, res, entities, &bundle, srcs)
	cancelLLM()

	method := methodDeterministic
	if generated {
		method = methodGenerative
	}

	metadata := map[string]interface{}{
		"intent":            res.Category,
		"entities":          entities,
		"confidence":        res.Confidence,
		"graph_nodes_used":  len(bundle.Nodes),
		"processing_method": method,
		"request_id":        requestID,
		"timestamp":         model.Timestamp(p.now()),
	}
	if res.SpecificRequest != "" {
		metadata["specific_request"] = res.SpecificRequest
	}
	if len(bundle.DynamicInfo) > 0 {
		metadata["dynamic_info_types"] = dynamicInfoTypes(bundle.DynamicInfo)
	}

	return model.Answer{
		Answer:   text,
		Sources:  srcs,
		Metadata: metadata,
	}
}

// Stats reports node and relationship counts from the graph store.
func (p *Pipeline) Stats(ctx context.Context) (map[string]interface{}, error) {
	graphCtx, cancel := context.WithTimeout(ctx, graphTimeout)
	defer cancel()

	nodeResult, err := p.store.ExecuteQuery(graphCtx, driver.NodeCountsQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("counting nodes: %w", err)
	}
	nodeCounts := driver.CollectCounts(nodeResult, "label", "count")

	relResult, err := p.store.ExecuteQuery(graphCtx, driver.RelationshipCountsQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("counting relationships: %w", err)
	}
	relCounts := driver.CollectCounts(relResult, "relationship_type", "count")

	var totalNodes, totalRels int64
	for _, c := range nodeCounts {
		totalNodes += c
	}
	for _, c := range relCounts {
		totalRels += c
	}

	return map[string]interface{}{
		"node_counts":         nodeCounts,
		"relationship_counts": relCounts,
		"total_nodes":         totalNodes,
		"total_relationships": totalRels,
		"timestamp":           model.Timestamp(p.now()),
	}, nil
}

// Ping verifies the graph store answers at all.
func (p *Pipeline) Ping(ctx context.Context) error {
	graphCtx, cancel := context.WithTimeout(ctx, graphTimeout)
	defer cancel()
	_, err := p.store.ExecuteQuery(graphCtx, driver.TotalNodeCountQuery, nil)
	return err
}

func (p *Pipeline) errorAnswer(requestID, errMsg string) model.Answer {
	return model.Answer{
		Answer:  apologyAnswer,
		Sources: []string{sources.MainSite},
		Metadata: map[string]interface{}{
			"error":             errMsg,
			"processing_method": methodErrorFallback,
			"request_id":        requestID,
			"timestamp":         model.Timestamp(p.now()),
		},
	}
}

// mergeDynamicInfo attaches fetched dynamic records to the bundle and
// notes their presence in the summary so the composer's context text
// reflects them.
func mergeDynamicInfo(bundle *model.ContextBundle, info model.DynamicInfo) {
	if len(info) == 0 {
		return
	}
	bundle.DynamicInfo = info

	types := dynamicInfoTypes(info)
	note := "Current information available: " + strings.Join(types, ", ")
	if bundle.Summary == "" {
		bundle.Summary = note
	} else {
		bundle.Summary += "; " + note
	}
}

func dynamicInfoTypes(info model.DynamicInfo) []string {
	types := make([]string, 0, len(info))
	for category := range info {
		types = append(types, category)
	}
	sort.Strings(types)
	return types
}
