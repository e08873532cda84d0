package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	vectorstore_mocks "helpdesk-ai/internal/vectorstore/mocks"
)

func TestHealthHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		mockSetup  func(*vectorstore_mocks.MockVectorStore)
		wantStatus int
		wantHealth string
	}{
		{
			name:   "healthy",
			method: http.MethodGet,
			mockSetup: func(m *vectorstore_mocks.MockVectorStore) {
				m.EXPECT().CollectionExists(gomock.Any(), "documents").Return(true, nil)
			},
			wantStatus: http.StatusOK,
			wantHealth: "healthy",
		},
		{
			name:   "collection missing",
			method: http.MethodGet,
			mockSetup: func(m *vectorstore_mocks.MockVectorStore) {
				m.EXPECT().CollectionExists(gomock.Any(), "documents").Return(false, nil)
			},
			wantStatus: http.StatusServiceUnavailable,
			wantHealth: "unhealthy",
		},
		{
			name:   "vector store unreachable",
			method: http.MethodGet,
			mockSetup: func(m *vectorstore_mocks.MockVectorStore) {
				m.EXPECT().CollectionExists(gomock.Any(), "documents").Return(false, errors.New("connection refused"))
			},
			wantStatus: http.StatusServiceUnavailable,
			wantHealth: "unhealthy",
		},
		{
			name:       "method not allowed",
			method:     http.MethodPost,
			mockSetup:  func(m *vectorstore_mocks.MockVectorStore) {},
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := vectorstore_mocks.NewMockVectorStore(ctrl)
			tt.mockSetup(mockStore)
			handler := NewHealthHandler(mockStore, "documents")

			req := httptest.NewRequest(tt.method, "/healthz", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantHealth == "" {
				return
			}

			var resp HealthResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Status != tt.wantHealth {
				t.Errorf("Status = %q, want %q", resp.Status, tt.wantHealth)
			}
		})
	}
}
