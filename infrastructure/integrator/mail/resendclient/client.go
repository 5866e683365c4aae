package resendclient

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/app-rank-notifier/internal/config"
)

type Client interface {
	SendEmail(ctx context.Context, params SendEmailRequest) (SendEmailResponse, error)
}

type ResendClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &ResendClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
