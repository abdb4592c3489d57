package omdb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupNoAPIKey(t *testing.T) {
	client := NewClient(Config{})

	_, err := client.Lookup(context.Background(), "Breaking Bad")

	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestLookupReturnsTitle(t *testing.T) {
	var gotAPIKey, gotTitle, gotType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotAPIKey = q.Get("apikey")
		gotTitle = q.Get("t")
		gotType = q.Get("type")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Title{
			Title:    "Breaking Bad",
			Year:     "2008",
			Type:     "series",
			Response: "True",
		})
	}))
	t.Cleanup(server.Close)

	client := NewClient(Config{APIKey: "secret-key", BaseURL: server.URL, HTTPClient: server.Client()})

	title, err := client.Lookup(context.Background(), "Breaking Bad")

	require.NoError(t, err)
	require.NotNil(t, title)
	assert.Equal(t, "Breaking Bad", title.Title)
	assert.Equal(t, "2008", title.Year)
	assert.Equal(t, "secret-key", gotAPIKey)
	assert.Equal(t, "Breaking Bad", gotTitle)
	assert.Equal(t, "series", gotType)
}

func TestLookupNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Title{
			Response: "False",
			Error:    "Series not found!",
		})
	}))
	t.Cleanup(server.Close)

	client := NewClient(Config{APIKey: "secret-key", BaseURL: server.URL, HTTPClient: server.Client()})

	_, err := client.Lookup(context.Background(), "Not A Real Show")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Series not found!")
}

func TestLookupUnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	client := NewClient(Config{APIKey: "secret-key", BaseURL: server.URL, HTTPClient: server.Client()})

	_, err := client.Lookup(context.Background(), "Breaking Bad")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestLookupRedactsAPIKeyOnTransportError(t *testing.T) {
	client := NewClient(Config{APIKey: "secret-key", BaseURL: "http://127.0.0.1:0"})

	_, err := client.Lookup(context.Background(), "Breaking Bad")

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret-key")
}
