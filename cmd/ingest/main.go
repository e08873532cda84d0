package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"helpdesk-ai/internal/config"
	"helpdesk-ai/internal/ingest"
	"helpdesk-ai/internal/llm"
	"helpdesk-ai/internal/storage"
	"helpdesk-ai/internal/vectorstore"
)

func main() {
	docPath := flag.String("doc", "", "path to the knowledge base document (defaults to DOCUMENT_PATH)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))

	path := cfg.DocumentPath
	if *docPath != "" {
		path = *docPath
	}

	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	vectorStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL)
	if err != nil {
		log.Fatalf("Failed to create Qdrant client: %v", err)
	}

	embedder := llm.NewEmbeddingsClient(cfg.EmbeddingBaseURL, cfg.LLMAPIKey, cfg.EmbeddingModelName, cfg.QdrantVectorSize)

	chunker, err := ingest.NewChunker(cfg.ChunkSize, cfg.ChunkOverlap)
	if err != nil {
		log.Fatalf("Invalid chunker settings: %v", err)
	}

	pipeline := ingest.NewPipeline(
		embedder,
		vectorStore,
		storage.NewIngestionRepo(db),
		cfg.QdrantCollection,
		cfg.QdrantVectorSize,
		chunker,
	)

	slog.Info("Starting ingestion", "path", path, "collection", cfg.QdrantCollection)
	run, err := pipeline.Run(ctx, path)
	if err != nil {
		log.Fatalf("Ingestion failed: %v", err)
	}
	slog.Info("Ingestion finished", "run_id", run.ID, "chunks", run.ChunkCount)
}
