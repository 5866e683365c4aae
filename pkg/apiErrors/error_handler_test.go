package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name           string
		code           string
		message        string
		details        any
		expectedStatus int
	}{
		{"Token inválido", ErrInvalidToken, "Token inválido", nil, http.StatusUnauthorized},
		{"Sem permissão", ErrInsufficientPrivilege, "sem escopo", nil, http.StatusForbidden},
		{"Execução em andamento", ErrRunInProgress, "em andamento", nil, http.StatusConflict},
		{"Requisição inválida com detalhes", ErrInvalidFormat, "data inválida", map[string]string{"field": "start_date"}, http.StatusBadRequest},
		{"Código desconhecido", "XYZ_999", "?", nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, tt.message, tt.details)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			body := rec.Body.Bytes()
			require.True(t, gjson.ValidBytes(body))
			assert.Equal(t, tt.code, gjson.GetBytes(body, "code").String())
			assert.Equal(t, tt.message, gjson.GetBytes(body, "message").String())
			assert.Equal(t, tt.details != nil, gjson.GetBytes(body, "details").Exists())
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrDatabaseOperation).Code)

	apiErr := FromError(errors.New("falhou"), ErrDatabaseOperation)
	assert.Equal(t, ErrDatabaseOperation, apiErr.Code)
	assert.Equal(t, "falhou", apiErr.Message)
}
