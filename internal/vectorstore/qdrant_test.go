package vectorstore

import (
	"context"
	"testing"

	"github.com/qdrant/go-client/qdrant"
)

func TestNewQdrantStore_URLParsing(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{
			name: "standard http url",
			url:  "http://localhost:6333",
		},
		{
			name: "host without port",
			url:  "http://qdrant.internal",
		},
		{
			name: "https url",
			url:  "https://qdrant.example.com:6333",
		},
		{
			name:    "garbage url",
			url:     "://not-a-url",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewQdrantStore(tt.url)
			if tt.wantErr {
				if err == nil {
					t.Errorf("NewQdrantStore(%q) expected error, got nil", tt.url)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewQdrantStore(%q) unexpected error: %v", tt.url, err)
			}
			if store == nil || store.client == nil {
				t.Error("NewQdrantStore() returned nil store or client")
			}
		})
	}
}

func TestQdrantStore_Upsert_EmptyPoints(t *testing.T) {
	store := &QdrantStore{}
	// Empty input is a no-op and must not touch the client.
	if err := store.Upsert(context.Background(), "documents", nil); err != nil {
		t.Errorf("Upsert() with no points should not error, got: %v", err)
	}
}

func TestQdrantStore_Search_InvalidK(t *testing.T) {
	store := &QdrantStore{}
	for _, k := range []int{0, -1} {
		if _, err := store.Search(context.Background(), "documents", []float32{0.1}, k); err == nil {
			t.Errorf("Search() with k=%d expected error, got nil", k)
		}
	}
}

func TestSearchResult_Text(t *testing.T) {
	tests := []struct {
		name   string
		result SearchResult
		want   string
	}{
		{
			name:   "text present",
			result: SearchResult{Meta: map[string]any{"text": "password reset policy"}},
			want:   "password reset policy",
		},
		{
			name:   "text missing",
			result: SearchResult{Meta: map[string]any{"chunk_index": int64(2)}},
			want:   "",
		},
		{
			name:   "nil meta",
			result: SearchResult{},
			want:   "",
		},
		{
			name:   "text wrong type",
			result: SearchResult{Meta: map[string]any{"text": int64(42)}},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConvertPayloadToMap(t *testing.T) {
	payload := map[string]*qdrant.Value{
		"text":        {Kind: &qdrant.Value_StringValue{StringValue: "VPN access rules"}},
		"chunk_index": {Kind: &qdrant.Value_IntegerValue{IntegerValue: 3}},
		"score":       {Kind: &qdrant.Value_DoubleValue{DoubleValue: 0.7}},
		"flagged":     {Kind: &qdrant.Value_BoolValue{BoolValue: true}},
		"nil-value":   nil,
	}

	result := convertPayloadToMap(payload)

	if result["text"] != "VPN access rules" {
		t.Errorf("text = %v, want VPN access rules", result["text"])
	}
	if result["chunk_index"] != int64(3) {
		t.Errorf("chunk_index = %v, want 3", result["chunk_index"])
	}
	if result["score"] != 0.7 {
		t.Errorf("score = %v, want 0.7", result["score"])
	}
	if result["flagged"] != true {
		t.Errorf("flagged = %v, want true", result["flagged"])
	}
	if _, ok := result["nil-value"]; ok {
		t.Error("nil values should be skipped")
	}
}
