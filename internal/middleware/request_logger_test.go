package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-care-companion/internal/platform/logger"
)

type entry struct {
	level  string
	msg    string
	fields map[string]any
}

type recLogger struct {
	entries []entry
}

func (l *recLogger) With(map[string]any) logger.Logger { return l }

func (l *recLogger) Debug(msg string, f map[string]any) { l.add("debug", msg, f) }
func (l *recLogger) Info(msg string, f map[string]any)  { l.add("info", msg, f) }
func (l *recLogger) Warn(msg string, f map[string]any)  { l.add("warn", msg, f) }
func (l *recLogger) Error(msg string, f map[string]any) { l.add("error", msg, f) }

func (l *recLogger) add(level, msg string, f map[string]any) {
	l.entries = append(l.entries, entry{level: level, msg: msg, fields: f})
}

func TestRequestLogger(t *testing.T) {
	cases := []struct {
		name   string
		status int
		level  string
	}{
		{"ok", http.StatusOK, "info"},
		{"not found", http.StatusNotFound, "warn"},
		{"boom", http.StatusInternalServerError, "error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			log := &recLogger{}
			h := chimw.RequestID(RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
			})))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tasks", nil))

			require.Len(t, log.entries, 1)
			e := log.entries[0]
			assert.Equal(t, tc.level, e.level)
			assert.Equal(t, tc.status, e.fields["status"])
			assert.Equal(t, "/tasks", e.fields["path"])
			assert.NotEmpty(t, e.fields["request_id"])
		})
	}
}

func TestRequestLogger_ImplicitOK(t *testing.T) {
	log := &recLogger{}
	h := RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Len(t, log.entries, 1)
	assert.Equal(t, http.StatusOK, log.entries[0].fields["status"])
	assert.Equal(t, 2, log.entries[0].fields["bytes"])
}
