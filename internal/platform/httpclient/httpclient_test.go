package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsBadBaseURL(t *testing.T) {
	_, err := New("", 0, nil)
	assert.Error(t, err)

	_, err = New("not a url", 0, nil)
	assert.Error(t, err)
}

func TestDoJSON_RoundTrip(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/tasks", r.URL.Path)
		assert.Equal(t, "Rex", r.URL.Query().Get("pet"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"title": in["title"]})
	}))
	defer ts.Close()

	c, err := New(ts.URL+"/", 0, nil)
	require.NoError(t, err)

	var out map[string]string
	err = c.DoJSON(context.Background(), http.MethodPost, "tasks", url.Values{"pet": {"Rex"}}, map[string]string{"title": "Feed Rex"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "Feed Rex", out["title"])
}

func TestDoJSON_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "task not found", http.StatusNotFound)
	}))
	defer ts.Close()

	c, err := New(ts.URL, 0, nil)
	require.NoError(t, err)

	err = c.DoJSON(context.Background(), http.MethodGet, "/tasks/x", nil, nil, nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, StatusCode(err))
	assert.Contains(t, err.Error(), "task not found")

	assert.Equal(t, 0, StatusCode(assert.AnError))
}
