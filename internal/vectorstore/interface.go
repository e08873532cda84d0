package vectorstore

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_vector_store.go -package=mocks helpdesk-ai/internal/vectorstore VectorStore

import "context"

// Point represents a vector point with metadata. The chunk text travels in
// Meta under the "text" key so retrieval does not need a secondary store.
type Point struct {
	ID   string
	Vec  []float32
	Meta map[string]any
}

// SearchResult represents a single nearest-neighbor search hit.
type SearchResult struct {
	PointID string
	Score   float32
	Meta    map[string]any
}

// VectorStore defines the interface for vector storage operations.
type VectorStore interface {
	// Upsert inserts or updates points in the collection.
	Upsert(ctx context.Context, collection string, points []Point) error

	// Search performs a k-nearest-neighbor similarity search.
	Search(ctx context.Context, collection string, query []float32, k int) ([]SearchResult, error)

	// EnsureCollection ensures a collection exists with the specified vector size.
	EnsureCollection(ctx context.Context, collection string, vectorSize int) error

	// RecreateCollection drops the collection if it exists and creates it empty.
	// Used by ingestion for replace-on-load semantics.
	RecreateCollection(ctx context.Context, collection string, vectorSize int) error

	// CollectionExists reports whether the collection exists.
	CollectionExists(ctx context.Context, collection string) (bool, error)
}

// Text returns the chunk text stored in the result payload, if any.
func (r SearchResult) Text() string {
	if t, ok := r.Meta["text"].(string); ok {
		return t
	}
	return ""
}
