package serpapiclient

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/app-rank-notifier/internal/config"
)

type Client interface {
	GetChart(ctx context.Context, params ChartParams) ([]ChartEntry, error)
}

type SerpApiClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente da SerpApi
func NewClient(cfg *config.Config) Client {
	timeout := cfg.Chart.Timeout
	if timeout <= 0 {
		timeout = 45 * time.Second
	}

	return &SerpApiClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}
