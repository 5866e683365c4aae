package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
	"github.com/vfg2006/app-rank-notifier/pkg/apiErrors"
)

func tagMiddleware(tag string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Chain", tag)
			next.ServeHTTP(w, r)
		})
	}
}

func TestRouter(t *testing.T) {
	rt := New(WithRoutes(Route{
		Path:   "/v1/apps/:id/ranking",
		Method: http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(httprouter.ParamsFromContext(r.Context()).ByName("id")))
		}),
		Middlewares: []func(http.Handler) http.Handler{tagMiddleware("first"), tagMiddleware("second")},
	}))

	tests := []struct {
		name           string
		method         string
		target         string
		expectedStatus int
		validate       func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:           "Parâmetro de rota e ordem dos middlewares",
			method:         http.MethodGet,
			target:         "/v1/apps/123/ranking",
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "123", rec.Body.String())
				assert.Equal(t, []string{"first", "second"}, rec.Header().Values("X-Chain"))
			},
		},
		{
			name:           "Rota inexistente",
			method:         http.MethodGet,
			target:         "/v1/unknown",
			expectedStatus: http.StatusNotFound,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrNotFound, gjson.Get(rec.Body.String(), "code").String())
			},
		},
		{
			name:           "Método não permitido",
			method:         http.MethodDelete,
			target:         "/v1/apps/123/ranking",
			expectedStatus: http.StatusMethodNotAllowed,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, apiErrors.ErrMethodNotAllowed, gjson.Get(rec.Body.String(), "code").String())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.validate(t, rec)
		})
	}
}
