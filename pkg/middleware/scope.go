package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-rank-notifier/internal/domain"
	"github.com/vfg2006/app-rank-notifier/internal/usecases/authenticating"
	"github.com/vfg2006/app-rank-notifier/pkg/apiErrors"
)

// ScopeMiddleware restringe a rota a tokens que tenham ao menos um dos escopos informados
func ScopeMiddleware(allowedScopes ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token não informado", nil)
				return
			}

			if err := authenticating.Authorize(claims, allowedScopes...); err != nil {
				logrus.WithError(err).Warningf("Acesso negado para %s (escopos: %q)", claims.Subject, claims.Scope)
				apiErrors.WriteError(w, authenticating.CodeOf(err, apiErrors.ErrInsufficientPrivilege), "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// CronRunner permite disparar e consultar o digest de ranking
func CronRunner() func(http.Handler) http.Handler {
	return ScopeMiddleware(domain.ScopeCronRun)
}

// RankingReader permite consultar o histórico de ranking
func RankingReader() func(http.Handler) http.Handler {
	return ScopeMiddleware(domain.ScopeRankingRead, domain.ScopeCronRun)
}
