package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/minakianandclaude/LifeTracker/pkg/log"
)

func newEngine(mw Middleware, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, log.RequestIDFromContext(c.Request.Context()))
	})
	return r
}

func TestAuth(t *testing.T) {
	mw := New(log.NewNop(), Config{APIKey: "secret"})
	r := newEngine(mw, mw.Auth())

	tests := []struct {
		name   string
		key    string
		status int
	}{
		{name: "valid key", key: "secret", status: http.StatusOK},
		{name: "missing key", key: "", status: http.StatusUnauthorized},
		{name: "wrong key", key: "nope", status: http.StatusUnauthorized},
		{name: "prefix of key", key: "sec", status: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.key != "" {
				req.Header.Set(APIKeyHeader, tt.key)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Errorf("expected %d, got %d", tt.status, w.Code)
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	mw := New(log.NewNop(), Config{RateLimitEnabled: true, RequestsPerMin: 1, Burst: 2})
	r := newEngine(mw, mw.RateLimit())

	codes := make([]int, 3)
	for i := range codes {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes[i] = w.Code
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Errorf("burst requests should pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("expected 429 after burst, got %d", codes[2])
	}

	// other clients have their own bucket
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 for a new client, got %d", w.Code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	mw := New(log.NewNop(), Config{})
	r := newEngine(mw, mw.RateLimit())

	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, w.Code)
		}
	}
}

func TestRequestID(t *testing.T) {
	mw := New(log.NewNop(), Config{})
	r := newEngine(mw, mw.RequestID())

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get(RequestIDHeader)
		if id == "" {
			t.Fatal("expected a generated request id")
		}
		if w.Body.String() != id {
			t.Errorf("context id %q does not match header %q", w.Body.String(), id)
		}
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "shortcut-42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Header().Get(RequestIDHeader) != "shortcut-42" || w.Body.String() != "shortcut-42" {
			t.Errorf("incoming id not reused: header=%q body=%q", w.Header().Get(RequestIDHeader), w.Body.String())
		}
	})
}

func TestAccessLog(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	mw := New(log.NewWithCore(core), Config{APIKey: "secret"})
	r := newEngine(mw, mw.RequestID(), mw.AccessLog(), mw.Auth())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	var found bool
	for _, e := range logs.All() {
		if e.Message == "" || e.Level != zapcore.WarnLevel {
			continue
		}
		if _, ok := e.ContextMap()["request_id"]; ok && w.Code == http.StatusUnauthorized {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a warn access log line with request_id, got %+v", logs.All())
	}
}

func TestCORS(t *testing.T) {
	mw := New(log.NewNop(), Config{AllowedOrigins: []string{"https://app.example"}})
	r := newEngine(mw, mw.CORS())

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example" {
		t.Errorf("expected allowed origin echoed, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for unknown origin, got %d", w.Code)
	}
}
