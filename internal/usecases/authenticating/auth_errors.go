package authenticating

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vfg2006/app-rank-notifier/internal/domain"
	"github.com/vfg2006/app-rank-notifier/pkg/apiErrors"
)

var (
	ErrInvalidToken          = errors.New("token inválido")
	ErrExpiredToken          = errors.New("token expirado")
	ErrInsufficientPrivilege = errors.New("privilégios insuficientes")
	ErrUnknownScope          = errors.New("escopo desconhecido")
	ErrMissingSecret         = errors.New("segredo de assinatura ausente")
	ErrMissingRequiredData   = errors.New("dados obrigatórios ausentes")
)

// AuthError carrega o código da API que deve ser devolvido ao cliente
type AuthError struct {
	Err     error
	Code    string
	Details string
}

func (e *AuthError) Error() string {
	if e.Details == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Details)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func newAuthError(err error, code, details string) *AuthError {
	return &AuthError{Err: err, Code: code, Details: details}
}

// IsTokenError indica se o token foi rejeitado (inválido ou expirado)
func IsTokenError(err error) bool {
	return errors.Is(err, ErrInvalidToken) || errors.Is(err, ErrExpiredToken)
}

// CodeOf retorna o código de API associado ao erro, ou fallback
func CodeOf(err error, fallback string) string {
	var authErr *AuthError
	if errors.As(err, &authErr) && authErr.Code != "" {
		return authErr.Code
	}
	return fallback
}

// Authorize exige que as claims tenham ao menos um dos escopos
func Authorize(claims *domain.Claims, scopes ...string) error {
	if claims == nil {
		return newAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "claims ausentes")
	}
	for _, scope := range scopes {
		if claims.HasScope(scope) {
			return nil
		}
	}
	return newAuthError(ErrInsufficientPrivilege, apiErrors.ErrInsufficientPrivilege,
		fmt.Sprintf("exige um de [%s]", strings.Join(scopes, " ")))
}
