package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const healthcheckTimeout = 2 * time.Second

// Pinger é satisfeito por postgres.Connection
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthcheckHandler responde 200 com o horário atual, ou 503 quando o banco não responde
func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response := map[string]any{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		}

		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthcheckTimeout)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				logrus.WithError(err).Warn("healthcheck: banco de dados indisponível")
				response["status"] = "degraded"
				response["database"] = "unreachable"
				writeJSON(w, http.StatusServiceUnavailable, response)
				return
			}
			response["database"] = "ok"
		}

		writeJSON(w, http.StatusOK, response)
	})
}
