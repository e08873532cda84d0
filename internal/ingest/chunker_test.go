package ingest

import (
	"strings"
	"testing"
)

func TestNewChunker(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		overlap int
		wantErr bool
	}{
		{name: "valid", size: 500, overlap: 80, wantErr: false},
		{name: "zero overlap", size: 100, overlap: 0, wantErr: false},
		{name: "zero size", size: 0, overlap: 0, wantErr: true},
		{name: "negative size", size: -1, overlap: 0, wantErr: true},
		{name: "negative overlap", size: 100, overlap: -1, wantErr: true},
		{name: "overlap equals size", size: 100, overlap: 100, wantErr: true},
		{name: "overlap exceeds size", size: 100, overlap: 150, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewChunker(tt.size, tt.overlap)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewChunker(%d, %d) error = %v, wantErr %v", tt.size, tt.overlap, err, tt.wantErr)
			}
		})
	}
}

func TestChunker_Split_Count(t *testing.T) {
	chunker, err := NewChunker(500, 80)
	if err != nil {
		t.Fatalf("NewChunker() failed: %v", err)
	}

	tests := []struct {
		name       string
		length     int
		wantChunks int
	}{
		{name: "empty", length: 0, wantChunks: 0},
		{name: "single rune", length: 1, wantChunks: 1},
		{name: "just under one window", length: 499, wantChunks: 1},
		{name: "exactly one window", length: 500, wantChunks: 1},
		{name: "one over", length: 501, wantChunks: 2},
		{name: "two windows", length: 920, wantChunks: 2},
		{name: "three windows", length: 1340, wantChunks: 3},
		{name: "large document", length: 10000, wantChunks: 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := chunker.Split(strings.Repeat("a", tt.length))
			if len(chunks) != tt.wantChunks {
				t.Errorf("Split() returned %d chunks, want %d", len(chunks), tt.wantChunks)
			}
		})
	}
}

func TestChunker_Split_Overlap(t *testing.T) {
	chunker, err := NewChunker(10, 4)
	if err != nil {
		t.Fatalf("NewChunker() failed: %v", err)
	}

	text := "abcdefghijklmnopqrstuvwxyz"
	chunks := chunker.Split(text)

	if len(chunks) != 4 {
		t.Fatalf("Split() returned %d chunks, want 4", len(chunks))
	}
	if chunks[0].Text != "abcdefghij" {
		t.Errorf("chunk 0 = %q, want abcdefghij", chunks[0].Text)
	}
	if chunks[1].Text != "ghijklmnop" {
		t.Errorf("chunk 1 = %q, want ghijklmnop", chunks[1].Text)
	}
	if chunks[2].Text != "mnopqrstuv" {
		t.Errorf("chunk 2 = %q, want mnopqrstuv", chunks[2].Text)
	}
	if chunks[3].Text != "stuvwxyz" {
		t.Errorf("chunk 3 = %q, want stuvwxyz", chunks[3].Text)
	}

	for i, chunk := range chunks {
		if chunk.Index != i {
			t.Errorf("chunk %d Index = %d, want %d", i, chunk.Index, i)
		}
	}
}

func TestChunker_Split_MultiByte(t *testing.T) {
	chunker, err := NewChunker(5, 2)
	if err != nil {
		t.Fatalf("NewChunker() failed: %v", err)
	}

	// Runes, not bytes: each character below is 3 bytes in UTF-8.
	text := "日本語のテキストです"
	chunks := chunker.Split(text)

	if len(chunks) != 3 {
		t.Fatalf("Split() returned %d chunks, want 3", len(chunks))
	}
	if chunks[0].Text != "日本語のテ" {
		t.Errorf("chunk 0 = %q, want 日本語のテ", chunks[0].Text)
	}
	if chunks[1].Text != "のテキスト" {
		t.Errorf("chunk 1 = %q, want のテキスト", chunks[1].Text)
	}
	if chunks[2].Text != "ストです" {
		t.Errorf("chunk 2 = %q, want ストです", chunks[2].Text)
	}
}

func TestChunker_Split_ReassemblesDocument(t *testing.T) {
	chunker, err := NewChunker(50, 10)
	if err != nil {
		t.Fatalf("NewChunker() failed: %v", err)
	}

	text := strings.Repeat("the quick brown fox jumps over the lazy dog. ", 20)
	chunks := chunker.Split(text)

	// Dropping each chunk's leading overlap reconstructs the original.
	var rebuilt strings.Builder
	for i, chunk := range chunks {
		runes := []rune(chunk.Text)
		if i == 0 {
			rebuilt.WriteString(chunk.Text)
			continue
		}
		rebuilt.WriteString(string(runes[10:]))
	}
	if rebuilt.String() != text {
		t.Error("Split() chunks do not reassemble into the original document")
	}
}
