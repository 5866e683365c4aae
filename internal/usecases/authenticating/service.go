package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/app-rank-notifier/internal/config"
	"github.com/vfg2006/app-rank-notifier/internal/domain"
	"github.com/vfg2006/app-rank-notifier/pkg/apiErrors"
)

const defaultTokenTTL = 30 * 24 * time.Hour

type Authenticator interface {
	GenerateToken(subject string, scopes []string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

func NewService(cfg *config.Config) Authenticator {
	ttl := cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &Service{
		secret:   []byte(cfg.Auth.Secret),
		tokenTTL: ttl,
		now:      time.Now,
	}
}

// GenerateToken emite um token HS256 para um chamador (ex: o agendador externo)
func (s *Service) GenerateToken(subject string, scopes []string) (string, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" || len(scopes) == 0 {
		return "", newAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "subject e escopos são obrigatórios")
	}

	for _, scope := range scopes {
		if !isKnownScope(scope) {
			return "", newAuthError(ErrUnknownScope, apiErrors.ErrInvalidRequest, scope)
		}
	}

	if len(s.secret) == 0 {
		return "", newAuthError(ErrMissingSecret, apiErrors.ErrInternalServer, "AUTH_SECRET não configurado")
	}

	now := s.now()
	claims := domain.Claims{
		Scope: strings.Join(scopes, " "),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", newAuthError(err, apiErrors.ErrInternalServer, "erro ao assinar token")
	}

	logrus.WithFields(logrus.Fields{
		"subject": subject,
		"scope":   claims.Scope,
	}).Info("Token de acesso emitido")

	return signed, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, newAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, newAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, newAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
}

func isKnownScope(scope string) bool {
	switch scope {
	case domain.ScopeCronRun, domain.ScopeRankingRead:
		return true
	default:
		return false
	}
}
