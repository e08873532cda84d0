package ingest

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mocks.go -package=mocks helpdesk-ai/internal/ingest Embedder,RunRecorder

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"helpdesk-ai/internal/contextutil"
	"helpdesk-ai/internal/storage"
	"helpdesk-ai/internal/vectorstore"
)

// embedBatchSize bounds how many chunks go to the embeddings API per call.
const embedBatchSize = 32

// Embedder generates vector embeddings for a batch of texts.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// RunRecorder persists completed ingestion runs.
type RunRecorder interface {
	RecordRun(ctx context.Context, run *storage.IngestionRun) error
}

// Pipeline loads a knowledge base document, chunks it, embeds the chunks,
// and replaces the vector collection contents with the result. A run only
// succeeds as a whole: any failure leaves the ledger without a new entry.
type Pipeline struct {
	embedder    Embedder
	vectorStore vectorstore.VectorStore
	recorder    RunRecorder
	collection  string
	vectorSize  int
	chunker     *Chunker
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	embedder Embedder,
	vectorStore vectorstore.VectorStore,
	recorder RunRecorder,
	collection string,
	vectorSize int,
	chunker *Chunker,
) *Pipeline {
	return &Pipeline{
		embedder:    embedder,
		vectorStore: vectorStore,
		recorder:    recorder,
		collection:  collection,
		vectorSize:  vectorSize,
		chunker:     chunker,
	}
}

// Run ingests the document at path into the configured collection.
// The collection is recreated, so a successful run fully replaces any
// previously ingested content.
func (p *Pipeline) Run(ctx context.Context, path string) (*storage.IngestionRun, error) {
	logger := contextutil.LoggerFromContext(ctx)

	// Read file content
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	// Compute SHA256 hash
	hash := sha256.Sum256(content)
	hashHex := fmt.Sprintf("%x", hash)

	text := string(content)
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".md" || ext == ".markdown" {
		text = MarkdownToPlainText(content)
	}

	chunks := p.chunker.Split(text)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("document %s produced no chunks", path)
	}

	logger.InfoContext(ctx, "document chunked", "path", path, "chunks", len(chunks))

	// Recreate the collection so stale points from earlier runs do not
	// leak into retrieval.
	if err := p.vectorStore.RecreateCollection(ctx, p.collection, p.vectorSize); err != nil {
		return nil, fmt.Errorf("failed to recreate collection: %w", err)
	}

	for start := 0; start < len(chunks); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		texts := make([]string, len(batch))
		for i, chunk := range batch {
			texts[i] = chunk.Text
		}

		embeddings, err := p.embedder.EmbedTexts(ctx, texts)
		if err != nil {
			return nil, fmt.Errorf("failed to generate embeddings: %w", err)
		}
		if len(embeddings) != len(batch) {
			return nil, fmt.Errorf("embedding count mismatch: expected %d, got %d", len(batch), len(embeddings))
		}

		points := make([]vectorstore.Point, len(batch))
		for i, chunk := range batch {
			points[i] = vectorstore.Point{
				ID:  uuid.New().String(),
				Vec: embeddings[i],
				Meta: map[string]any{
					"text":        chunk.Text,
					"chunk_index": chunk.Index,
					"source":      filepath.Base(path),
				},
			}
		}

		if err := p.vectorStore.Upsert(ctx, p.collection, points); err != nil {
			return nil, fmt.Errorf("failed to upsert vectors: %w", err)
		}

		logger.DebugContext(ctx, "batch upserted", "from", start, "to", end)
	}

	run := &storage.IngestionRun{
		ID:         uuid.New().String(),
		SourcePath: path,
		SourceHash: hashHex,
		Collection: p.collection,
		ChunkCount: len(chunks),
		IngestedAt: time.Now().UTC(),
	}
	if err := p.recorder.RecordRun(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to record ingestion run: %w", err)
	}

	logger.InfoContext(ctx, "ingestion completed",
		"path", path,
		"collection", p.collection,
		"chunks", len(chunks),
		"hash", hashHex,
	)

	return run, nil
}
