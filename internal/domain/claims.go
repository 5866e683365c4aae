package domain

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Escopos aceitos nos tokens de acesso
const (
	ScopeCronRun     = "cron:run"
	ScopeRankingRead = "ranking:read"
)

// Claims identifica quem chama a API. Scope segue o formato OAuth (escopos separados por espaço).
type Claims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

func (c *Claims) Scopes() []string {
	return strings.Fields(c.Scope)
}

func (c *Claims) HasScope(scope string) bool {
	for _, s := range c.Scopes() {
		if s == scope {
			return true
		}
	}
	return false
}
