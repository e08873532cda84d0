package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewEmbeddingsClient(t *testing.T) {
	client := NewEmbeddingsClient("http://localhost:8081", "key", "model", 384)
	if client == nil {
		t.Fatal("NewEmbeddingsClient() returned nil")
	}
	if client.ExpectedSize != 384 {
		t.Errorf("ExpectedSize = %d, want 384", client.ExpectedSize)
	}
}

func TestEmbeddingsClient_EmbedTexts(t *testing.T) {
	tests := []struct {
		name       string
		texts      []string
		size       int
		serverResp func(t *testing.T, w http.ResponseWriter, r *http.Request)
		wantCount  int
		wantErr    bool
	}{
		{
			name:  "successful embedding",
			texts: []string{"password reset", "vpn access"},
			size:  3,
			serverResp: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/v1/embeddings" {
					t.Errorf("expected /v1/embeddings, got %s", r.URL.Path)
				}
				var req EmbeddingsRequest
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					t.Fatalf("failed to decode request: %v", err)
				}
				if len(req.Input) != 2 {
					t.Errorf("expected 2 inputs, got %d", len(req.Input))
				}
				_ = json.NewEncoder(w).Encode(EmbeddingsResponse{
					Data: []EmbeddingData{
						{Embedding: []float64{0.1, 0.2, 0.3}},
						{Embedding: []float64{0.4, 0.5, 0.6}},
					},
				})
			},
			wantCount: 2,
		},
		{
			name:    "empty input",
			texts:   nil,
			size:    3,
			wantErr: true,
		},
		{
			name:  "count mismatch",
			texts: []string{"a", "b"},
			size:  3,
			serverResp: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(EmbeddingsResponse{
					Data: []EmbeddingData{{Embedding: []float64{0.1, 0.2, 0.3}}},
				})
			},
			wantErr: true,
		},
		{
			name:  "size mismatch",
			texts: []string{"a"},
			size:  3,
			serverResp: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(EmbeddingsResponse{
					Data: []EmbeddingData{{Embedding: []float64{0.1, 0.2}}},
				})
			},
			wantErr: true,
		},
		{
			name:  "server error",
			texts: []string{"a"},
			size:  3,
			serverResp: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := tt.serverResp
			if handler == nil {
				handler = func(t *testing.T, w http.ResponseWriter, r *http.Request) {
					t.Error("server should not be called")
				}
			}
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handler(t, w, r)
			}))
			defer server.Close()

			client := NewEmbeddingsClient(server.URL, "key", "model", tt.size)
			vecs, err := client.EmbedTexts(context.Background(), tt.texts)

			if tt.wantErr {
				if err == nil {
					t.Errorf("EmbedTexts() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("EmbedTexts() unexpected error: %v", err)
			}
			if len(vecs) != tt.wantCount {
				t.Errorf("EmbedTexts() returned %d vectors, want %d", len(vecs), tt.wantCount)
			}
			for i, vec := range vecs {
				if len(vec) != tt.size {
					t.Errorf("vector %d has size %d, want %d", i, len(vec), tt.size)
				}
			}
		})
	}
}
