package retrieval

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mocks.go -package=mocks helpdesk-ai/internal/retrieval Embedder

import (
	"context"
	"fmt"

	"helpdesk-ai/internal/contextutil"
	"helpdesk-ai/internal/vectorstore"
)

// Embedder turns text into fixed-dimension vectors.
// This interface is defined from the retriever's perspective (consumer-first).
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Retriever performs threshold-filtered nearest-neighbor retrieval against
// the vector store. It is stateless with respect to requests and safe for
// concurrent use.
type Retriever struct {
	embedder    Embedder
	vectorStore vectorstore.VectorStore
	collection  string
	threshold   float64
	topK        int
}

// NewRetriever creates a Retriever. threshold is exclusive: only hits with
// score strictly greater than it survive. topK is the raw search width.
func NewRetriever(embedder Embedder, vectorStore vectorstore.VectorStore, collection string, threshold float64, topK int) *Retriever {
	return &Retriever{
		embedder:    embedder,
		vectorStore: vectorStore,
		collection:  collection,
		threshold:   threshold,
		topK:        topK,
	}
}

// Retrieve embeds the query, searches the collection and filters the hits by
// the similarity threshold. An empty Result (no hits, or none above the
// threshold) is not an error; callers map it to the refusal path.
func (r *Retriever) Retrieve(ctx context.Context, query string) (Result, error) {
	logger := contextutil.LoggerFromContext(ctx)

	embeddings, err := r.embedder.EmbedTexts(ctx, []string{query})
	if err != nil {
		return Result{}, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(embeddings) == 0 {
		return Result{}, fmt.Errorf("no embedding returned for query")
	}

	hits, err := r.vectorStore.Search(ctx, r.collection, embeddings[0], r.topK)
	if err != nil {
		return Result{}, fmt.Errorf("failed to search vector store: %w", err)
	}

	var docs []ScoredDocument
	var sum float64
	for _, hit := range hits {
		score := float64(hit.Score)
		if score <= r.threshold {
			continue
		}
		docs = append(docs, ScoredDocument{
			Text:  hit.Text(),
			Score: score,
		})
		sum += score
	}

	result := Result{Documents: docs}
	if len(docs) > 0 {
		result.MeanScore = sum / float64(len(docs))
	}

	logger.InfoContext(ctx, "retrieval completed",
		"raw_hits", len(hits),
		"passing", len(docs),
		"threshold", r.threshold,
		"mean_score", result.MeanScore,
	)

	return result, nil
}
