package serpapiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/app-rank-notifier/internal/config"
)

func newTestConfig(baseURL string) *config.Config {
	return &config.Config{
		Chart: config.Chart{
			APIKey:      "test-key",
			BaseURL:     baseURL,
			ResultsPath: "charts.free_applications.results",
			Timeout:     5 * time.Second,
		},
	}
}

var defaultParams = ChartParams{
	Engine:   "apple_app_store_charts",
	Chart:    "top_free_applications",
	Category: "6015",
	Country:  "us",
}

func TestSerpApiClient_GetChart(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		expected    []ChartEntry
		expectedErr error
		wantErr     bool
	}{
		{
			name:   "Lista de resultados válida",
			status: http.StatusOK,
			body: `{"charts":{"free_applications":{"results":[
				{"id":886427730,"rank":1,"title":"Coinbase"},
				{"id":"1260755201","rank":2},
				{"rank":3}
			]}}}`,
			expected: []ChartEntry{
				{ID: "886427730", Rank: 1},
				{ID: "1260755201", Rank: 2},
				{ID: "", Rank: 3},
			},
		},
		{
			name:     "Lista vazia",
			status:   http.StatusOK,
			body:     `{"charts":{"free_applications":{"results":[]}}}`,
			expected: []ChartEntry{},
		},
		{
			name:    "Status diferente de 200",
			status:  http.StatusUnauthorized,
			body:    `{"error":"Invalid API key."}`,
			wantErr: true,
		},
		{
			name:        "JSON malformado",
			status:      http.StatusOK,
			body:        `{"charts":`,
			expectedErr: ErrInvalidPayload,
			wantErr:     true,
		},
		{
			name:        "Caminho de resultados ausente",
			status:      http.StatusOK,
			body:        `{"charts":{}}`,
			expectedErr: ErrResultsNotList,
			wantErr:     true,
		},
		{
			name:    "Erro reportado no corpo com status 200",
			status:  http.StatusOK,
			body:    `{"error":"Your account has run out of searches."}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/search.json", r.URL.Path)
				assert.Equal(t, "apple_app_store_charts", r.URL.Query().Get("engine"))
				assert.Equal(t, "top_free_applications", r.URL.Query().Get("chart"))
				assert.Equal(t, "6015", r.URL.Query().Get("category"))
				assert.Equal(t, "us", r.URL.Query().Get("country"))
				assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))

				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(newTestConfig(server.URL))
			entries, err := client.GetChart(context.Background(), defaultParams)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.expectedErr != nil {
					assert.True(t, errors.Is(err, tt.expectedErr))
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, entries)
		})
	}
}

func TestSerpApiClient_GetChart_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	client := NewClient(newTestConfig(server.URL))
	_, err := client.GetChart(ctx, defaultParams)
	assert.Error(t, err)
}
