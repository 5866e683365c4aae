package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/app-rank-notifier/internal/usecases/ranking"
	"github.com/vfg2006/app-rank-notifier/pkg/apiErrors"
	"github.com/vfg2006/app-rank-notifier/pkg/log"
	"github.com/vfg2006/app-rank-notifier/pkg/utils"
)

// GetRankingHistory retorna o histórico de posições de um app no período
func GetRankingHistory(service ranking.HistoryService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		appID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"app_id": appID,
				"error":  err.Error(),
			}).Warn("ranking: start_date inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date must be YYYY-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"app_id": appID,
				"error":  err.Error(),
			}).Warn("ranking: end_date inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date must be YYYY-MM-DD", nil)
			return
		}

		history, err := service.GetHistory(r.Context(), appID, *startDate, *endDate)
		if err != nil {
			switch {
			case errors.Is(err, ranking.ErrAppIDRequired):
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
			case errors.Is(err, ranking.ErrInvalidPeriod), errors.Is(err, ranking.ErrPeriodTooLong):
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), map[string]string{
					"start_date": startDate.Format(time.DateOnly),
					"end_date":   endDate.Format(time.DateOnly),
				})
			default:
				logger.WithFields(log.Fields{
					"app_id": appID,
					"error":  err.Error(),
				}).Error("ranking: erro ao buscar histórico")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error fetching ranking history", nil)
			}
			return
		}

		writeJSON(w, http.StatusOK, history)
	})
}
