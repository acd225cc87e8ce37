package social

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestApifyCollect(t *testing.T) {
	var gotAuth string
	var gotPayload map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotPayload)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"hashtag": "허쉬컷", "postsCount": 12000}, {"hashtag": "울프컷", "postsCount": 8000}]`))
	}))
	defer srv.Close()

	client := &ApifyClient{
		apiKey:     "test-key",
		baseURL:    srv.URL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}

	records, err := client.Collect(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(records))
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "hashtag", gotPayload["searchType"])
	assert.Equal(t, float64(1000), gotPayload["resultsLimit"])

	var first map[string]interface{}
	json.Unmarshal(records[0], &first)
	assert.Equal(t, "허쉬컷", first["hashtag"])
}

func TestApifyCollect_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := &ApifyClient{
		apiKey:     "test-key",
		baseURL:    srv.URL,
		httpClient: srv.Client(),
	}

	_, err := client.Collect(context.Background())
	assert.NotEqual(t, nil, err)
}

func TestApifyCollect_BadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := &ApifyClient{
		apiKey:     "test-key",
		baseURL:    srv.URL,
		httpClient: srv.Client(),
	}

	_, err := client.Collect(context.Background())
	assert.NotEqual(t, nil, err)
}
