package storage

import "time"

// IngestionRun records one completed ingestion of a knowledge base document.
// The vector collection is fully replaced per run, so the most recent row
// describes the live collection contents.
type IngestionRun struct {
	ID         string // UUID
	SourcePath string // Path of the ingested document
	SourceHash string // SHA256 hex string of the document content
	Collection string // Vector store collection that was (re)loaded
	ChunkCount int    // Number of chunks written
	IngestedAt time.Time
}
