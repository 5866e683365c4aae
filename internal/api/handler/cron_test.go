package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/vfg2006/app-rank-notifier/internal/api/handler/mocks"
	"github.com/vfg2006/app-rank-notifier/internal/domain"
	"github.com/vfg2006/app-rank-notifier/internal/scheduler"
	"github.com/vfg2006/app-rank-notifier/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestRunRankDigest(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		setup          func(m *mocks.MockRankDigestRunner)
		expectedStatus int
		validate       func(t *testing.T, body string)
	}{
		{
			name:   "Execução concluída com falhas parciais",
			target: "/v1/cron/rank-digest/run",
			setup: func(m *mocks.MockRankDigestRunner) {
				m.EXPECT().RunNow(gomock.Any()).Return(domain.RunSummary{
					RunID:      "run_abc",
					State:      domain.RunStateDone,
					EmailsSent: 1,
					Errors:     1,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, body string) {
				assert.Equal(t, "Cron job completed. Emails sent: 1. Errors: 1.", gjson.Get(body, "message").String())
				assert.Equal(t, int64(1), gjson.Get(body, "emails_sent").Int())
				assert.Equal(t, int64(1), gjson.Get(body, "errors").Int())
				assert.Equal(t, "run_abc", gjson.Get(body, "run_id").String())
				assert.Equal(t, "done", gjson.Get(body, "state").String())
			},
		},
		{
			name:   "Ranking vazio aborta com 500",
			target: "/v1/cron/rank-digest/run",
			setup: func(m *mocks.MockRankDigestRunner) {
				m.EXPECT().RunNow(gomock.Any()).Return(domain.RunSummary{
					State:       domain.RunStateAborted,
					AbortReason: domain.AbortReasonEmptySnapshot,
				}, nil)
			},
			expectedStatus: http.StatusInternalServerError,
			validate: func(t *testing.T, body string) {
				assert.Equal(t, "Failed to fetch chart ranks", gjson.Get(body, "message").String())
				assert.Equal(t, "empty_snapshot", gjson.Get(body, "abort_reason").String())
			},
		},
		{
			name:   "Execução já em andamento",
			target: "/v1/cron/rank-digest/run",
			setup: func(m *mocks.MockRankDigestRunner) {
				m.EXPECT().RunNow(gomock.Any()).Return(domain.RunSummary{}, scheduler.ErrRunInProgress)
			},
			expectedStatus: http.StatusConflict,
			validate: func(t *testing.T, body string) {
				assert.Equal(t, apiErrors.ErrRunInProgress, gjson.Get(body, "code").String())
			},
		},
		{
			name:   "Erro inesperado não expõe detalhes",
			target: "/v1/cron/rank-digest/run",
			setup: func(m *mocks.MockRankDigestRunner) {
				m.EXPECT().RunNow(gomock.Any()).Return(domain.RunSummary{}, errors.New("pq: connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			validate: func(t *testing.T, body string) {
				assert.NotContains(t, body, "connection refused")
			},
		},
		{
			name:   "Execução assíncrona",
			target: "/v1/cron/rank-digest/run?async=true",
			setup: func(m *mocks.MockRankDigestRunner) {
				m.EXPECT().TriggerManualSync()
			},
			expectedStatus: http.StatusAccepted,
			validate: func(t *testing.T, body string) {
				assert.Equal(t, "Cron job started", gjson.Get(body, "message").String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			runner := mocks.NewMockRankDigestRunner(ctrl)
			tt.setup(runner)

			rec := httptest.NewRecorder()
			RunRankDigest(runner).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, tt.target, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			require.True(t, gjson.Valid(rec.Body.String()))
			tt.validate(t, rec.Body.String())
		})
	}
}

func TestRunRankDigest_IgnoresClientCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRankDigestRunner(ctrl)

	runner.EXPECT().RunNow(gomock.Any()).DoAndReturn(func(ctx context.Context) (domain.RunSummary, error) {
		assert.NoError(t, ctx.Err())
		return domain.RunSummary{State: domain.RunStateDone}, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/cron/rank-digest/run", nil).WithContext(ctx)
	RunRankDigest(runner).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetCronStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockRankDigestRunner(ctrl)
	runner.EXPECT().GetStatus().Return(map[string]any{"sync_running": true})

	rec := httptest.NewRecorder()
	GetCronStatus(runner).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, gjson.Get(rec.Body.String(), "rank-digest.sync_running").Bool())
}
