package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORS(t *testing.T) {
	tests := []struct {
		name        string
		allowed     []string
		method      string
		origin      string
		wantStatus  int
		wantOrigin  string
		wantExposed string
	}{
		{
			name:        "configured origin echoed",
			allowed:     []string{"https://propchart.app"},
			method:      http.MethodGet,
			origin:      "https://propchart.app",
			wantStatus:  http.StatusOK,
			wantOrigin:  "https://propchart.app",
			wantExposed: requestIDHeader,
		},
		{
			name:        "wildcard preflight",
			allowed:     []string{" * "},
			method:      http.MethodOptions,
			origin:      "https://propchart.app",
			wantStatus:  http.StatusNoContent,
			wantOrigin:  "*",
			wantExposed: requestIDHeader,
		},
		{
			name:       "unknown origin gets no headers",
			allowed:    []string{"https://propchart.app"},
			method:     http.MethodGet,
			origin:     "https://elsewhere.example.com",
			wantStatus: http.StatusOK,
		},
		{
			name:       "no origin passes through",
			allowed:    []string{"*"},
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			req := httptest.NewRequest(tt.method, "/v1/sports", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()

			CORS(tt.allowed, next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status=%d want=%d", rec.Code, tt.wantStatus)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Fatalf("Access-Control-Allow-Origin=%q want=%q", got, tt.wantOrigin)
			}
			if got := rec.Header().Get("Access-Control-Expose-Headers"); got != tt.wantExposed {
				t.Fatalf("Access-Control-Expose-Headers=%q want=%q", got, tt.wantExposed)
			}
		})
	}
}
