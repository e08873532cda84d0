package handlers

import (
	"errors"
	"net/http"
	"time"

	"helpdesk-ai/internal/contextutil"
	"helpdesk-ai/internal/storage"
)

// StatusHandler reports the latest ingestion run for the knowledge base.
type StatusHandler struct {
	ingestionStore storage.IngestionStore
	collectionName string
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(ingestionStore storage.IngestionStore, collectionName string) *StatusHandler {
	return &StatusHandler{
		ingestionStore: ingestionStore,
		collectionName: collectionName,
	}
}

// StatusResponse represents the ingestion status response.
type StatusResponse struct {
	Collection string `json:"collection"`
	Ingested   bool   `json:"ingested"`
	SourcePath string `json:"source_path,omitempty"`
	SourceHash string `json:"source_hash,omitempty"`
	ChunkCount int    `json:"chunk_count,omitempty"`
	IngestedAt string `json:"ingested_at,omitempty"`
}

// ServeHTTP handles HTTP requests for ingestion status.
func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	run, err := h.ingestionStore.LatestRun(ctx, h.collectionName)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeJSON(w, http.StatusOK, StatusResponse{
				Collection: h.collectionName,
				Ingested:   false,
			})
			return
		}
		logger.ErrorContext(ctx, "failed to load latest ingestion run", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load ingestion status")
		return
	}

	writeJSON(w, http.StatusOK, StatusResponse{
		Collection: h.collectionName,
		Ingested:   true,
		SourcePath: run.SourcePath,
		SourceHash: run.SourceHash,
		ChunkCount: run.ChunkCount,
		IngestedAt: run.IngestedAt.UTC().Format(time.RFC3339),
	})
}
