package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newWiredRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	fixedClock(t)

	h := NewHandler(&mockService{})
	diag := NewDiagnosticsHandler(func() error { return nil }, &tablesOnlyRepo{})
	return NewRouter(h, diag)
}

func TestRouter_Routes(t *testing.T) {
	r := newWiredRouter(t)

	cases := []struct {
		path string
		want int
	}{
		{"/", http.StatusOK},
		{"/tables", http.StatusOK},
		{"/api/market", http.StatusOK},
		{"/api/stock/NOPE", http.StatusNotFound}, // unknown ticker, not unknown route
		{"/nope", http.StatusNotFound},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if w.Code != tc.want {
			t.Fatalf("GET %s: code=%d want %d", tc.path, w.Code, tc.want)
		}
	}
}

func TestRouter_RequestIDHeader(t *testing.T) {
	r := newWiredRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/market", nil))
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("missing X-Request-ID header")
	}
}

func TestRouter_RecoversFromPanic(t *testing.T) {
	r := newWiredRouter(t)
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("code=%d", w.Code)
	}
}
