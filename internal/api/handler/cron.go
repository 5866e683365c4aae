package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/vfg2006/app-rank-notifier/internal/domain"
	"github.com/vfg2006/app-rank-notifier/internal/scheduler"
	"github.com/vfg2006/app-rank-notifier/pkg/apiErrors"
	"github.com/vfg2006/app-rank-notifier/pkg/log"
)

// RankDigestRunner é implementado por scheduler.RankDigestService
type RankDigestRunner interface {
	RunNow(ctx context.Context) (domain.RunSummary, error)
	TriggerManualSync()
	GetStatus() map[string]any
}

type runResponse struct {
	Message string `json:"message"`
	domain.RunSummary
}

// RunRankDigest executa o pipeline e responde com o resumo.
// Com ?async=true a execução segue em segundo plano e a resposta é 202.
func RunRankDigest(runner RankDigestRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if r.URL.Query().Get("async") == "true" {
			logger.Info("cron: disparando digest de ranking em segundo plano")
			runner.TriggerManualSync()
			writeJSON(w, http.StatusAccepted, map[string]any{
				"message": "Cron job started",
			})
			return
		}

		logger.Info("cron: executando digest de ranking")

		// A execução não é interrompida se o cliente desconectar
		summary, err := runner.RunNow(context.WithoutCancel(r.Context()))
		if err != nil {
			if errors.Is(err, scheduler.ErrRunInProgress) {
				apiErrors.WriteError(w, apiErrors.ErrRunInProgress, "Cron job already running", nil)
				return
			}
			logger.WithError(err).Error("cron: erro ao executar digest de ranking")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Cron job failed", nil)
			return
		}

		writeJSON(w, summary.StatusCode(), runResponse{
			Message:    summary.Message(),
			RunSummary: summary,
		})
	}
}

// GetCronStatus retorna o status do agendador do digest
func GetCronStatus(runner RankDigestRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"rank-digest": runner.GetStatus(),
		})
	}
}
