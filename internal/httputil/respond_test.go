package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appErrors "github.com/sebuszqo/FinanceTracker/internal/errors"
)

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{appErrors.NewValidationError("x"), http.StatusBadRequest},
		{appErrors.NewConflictError("x"), http.StatusBadRequest},
		{appErrors.NewNotFoundError("x"), http.StatusNotFound},
		{appErrors.NewAuthError("x"), http.StatusUnauthorized},
		{appErrors.NewPersistenceError("x", errors.New("boom")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.err), tt.err.Error())
	}
}

func TestResponder_ErrorEnvelope(t *testing.T) {
	rs := NewResponder(zap.NewNop())

	w := httptest.NewRecorder()
	rs.Error(w, appErrors.NewConflictError("Email já cadastrado"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	body := decodeBody(t, w)
	assert.Equal(t, false, body["sucesso"])
	assert.Equal(t, "Email já cadastrado", body["erro"])
	assert.NotContains(t, body, "detalhes")
}

func TestResponder_PersistenceErrorCarriesDetails(t *testing.T) {
	rs := NewResponder(zap.NewNop())

	w := httptest.NewRecorder()
	rs.Error(w, appErrors.NewPersistenceError("Erro ao buscar usuários", errors.New("connection refused")))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Erro ao buscar usuários", body["erro"])
	assert.Equal(t, "connection refused", body["detalhes"])
}

func TestResponder_UntaggedErrorIsHidden(t *testing.T) {
	rs := NewResponder(zap.NewNop())

	w := httptest.NewRecorder()
	rs.Error(w, errors.New("secret internals"))

	body := decodeBody(t, w)
	assert.Equal(t, "Erro interno do servidor", body["erro"])
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Nome string `json:"nome"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nome":"Ana"}`))
	require.NoError(t, DecodeJSON(req, &dst))
	assert.Equal(t, "Ana", dst.Nome)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{nome`))
	err := DecodeJSON(req, &dst)
	assert.True(t, appErrors.IsValidationError(err))
}
