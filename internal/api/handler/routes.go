package handler

import (
	"net/http"

	"github.com/vfg2006/app-rank-notifier/internal/api/handler/router"
	"github.com/vfg2006/app-rank-notifier/internal/metrics"
	"github.com/vfg2006/app-rank-notifier/internal/usecases/ranking"
	"github.com/vfg2006/app-rank-notifier/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func RankingHistory(service ranking.HistoryService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/apps/:id/ranking",
			Method:      http.MethodGet,
			Handler:     GetRankingHistory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.RankingReader()},
		},
	}
}

func CronJobs(runner RankDigestRunner) []router.Route {
	return []router.Route{
		{
			// Agendadores externos (ex: Vercel Cron) disparam com GET
			Path:        "/v1/cron/rank-digest/run",
			Method:      http.MethodGet,
			Handler:     RunRankDigest(runner),
			Middlewares: []func(http.Handler) http.Handler{middleware.CronRunner()},
		},
		{
			Path:        "/v1/cron/rank-digest/run",
			Method:      http.MethodPost,
			Handler:     RunRankDigest(runner),
			Middlewares: []func(http.Handler) http.Handler{middleware.CronRunner()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(runner),
			Middlewares: []func(http.Handler) http.Handler{middleware.CronRunner()},
		},
	}
}
