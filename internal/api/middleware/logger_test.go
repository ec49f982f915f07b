package middleware

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	captureLog := func(t *testing.T) *bytes.Buffer {
		t.Helper()
		var buf bytes.Buffer
		log.SetOutput(&buf)
		t.Cleanup(func() { log.SetOutput(os.Stderr) })
		return &buf
	}

	t.Run("logs method, path and the handler's status", func(t *testing.T) {
		buf := captureLog(t)

		handler := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/securities/NOPE", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("Expected wrapped status 404, got %d", w.Code)
		}
		if line := buf.String(); !strings.Contains(line, "GET /api/securities/NOPE 404") {
			t.Errorf("Expected method/path/status in log line, got %q", line)
		}
	})

	t.Run("defaults to 200 when the handler never calls WriteHeader", func(t *testing.T) {
		buf := captureLog(t)

		handler := Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			//nolint:errcheck // Test handler - write failure is irrelevant here
			w.Write([]byte("ok"))
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/system/health", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)

		if line := buf.String(); !strings.Contains(line, "GET /api/system/health 200") {
			t.Errorf("Expected implicit 200 in log line, got %q", line)
		}
	})
}
