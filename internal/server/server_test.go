package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sebuszqo/FinanceTracker/internal/account"
	"github.com/sebuszqo/FinanceTracker/internal/category"
	"github.com/sebuszqo/FinanceTracker/internal/currency"
	"github.com/sebuszqo/FinanceTracker/internal/httputil"
	"github.com/sebuszqo/FinanceTracker/internal/metrics"
	"github.com/sebuszqo/FinanceTracker/internal/models"
	"github.com/sebuszqo/FinanceTracker/internal/user"
)

type fakeHealth struct {
	status string
}

func (f fakeHealth) Health(_ context.Context) map[string]string {
	return map[string]string{"status": f.status}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	log := zap.NewNop()
	responder := httputil.NewResponder(log)

	accountRepo := account.NewMockRepository()
	currencyRepo := &currency.MockRepository{Currencies: []models.Currency{
		{ID: uuid.NewString(), Code: "USD", Name: "Dólar Americano", Symbol: "$"},
		{ID: uuid.NewString(), Code: "BRL", Name: "Real Brasileiro", Symbol: "R$", Primary: true},
	}}

	handlers := Handlers{
		User:     user.NewHandler(user.NewUserService(user.NewMockRepository(), log), responder.JSON, responder.Error),
		Category: category.NewCategoryHandler(category.NewCategoryService(&category.MockCategoryRepository{}, log), responder.JSON, responder.Error),
		Account:  account.NewAccountHandler(account.NewAccountService(accountRepo, log), responder.JSON, responder.Error),
		Currency: currency.NewCurrencyHandler(currency.NewCurrencyService(currencyRepo, log), responder.JSON, responder.Error),
	}

	s := NewServer(log, fakeHealth{status: "up"}, metrics.New(), responder, []string{"*"}, handlers)
	s.RegisterRoutes()
	return s
}

func do(t *testing.T, s http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)

	var response map[string]interface{}
	if w.Body.Len() > 0 && w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	}
	return w, response
}

func TestRoot(t *testing.T) {
	s := newTestServer(t)

	w, response := do(t, s, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, Version, response["versao"])
	assert.Equal(t, "OK", response["status"])
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w, response := do(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "up", response["status"])

	s.db = fakeHealth{status: "down"}
	w, _ = do(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(t)

	w, response := do(t, s, http.MethodGet, "/transacoes", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, response["sucesso"])
	assert.Equal(t, "Rota não encontrada", response["erro"])
	assert.Equal(t, "/transacoes", response["rota_solicitada"])
}

func TestMethodNotAllowed(t *testing.T) {
	s := newTestServer(t)

	w, response := do(t, s, http.MethodDelete, "/moedas", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, false, response["sucesso"])
}

func TestUserLifecycle(t *testing.T) {
	s := newTestServer(t)

	w, response := do(t, s, http.MethodPost, "/usuarios", map[string]string{"nome": "Ana", "email": "ana@x.com", "senha": "s3nha123"})
	require.Equal(t, http.StatusCreated, w.Code)
	data := response["dados"].(map[string]interface{})
	id := data["id"].(string)
	assert.Equal(t, "comum", data["tipo_usuario"])
	assert.NotContains(t, data, "senha")

	w, response = do(t, s, http.MethodPost, "/usuarios", map[string]string{"nome": "Outra", "email": "ana@x.com", "senha": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, user.ErrEmailAlreadyExists.Error(), response["erro"])

	w, response = do(t, s, http.MethodPut, "/usuarios/"+id, map[string]string{"nome": "Ana Maria"})
	require.Equal(t, http.StatusOK, w.Code)
	data = response["dados"].(map[string]interface{})
	assert.Equal(t, "Ana Maria", data["nome"])
	assert.Equal(t, "ana@x.com", data["email"])

	w, _ = do(t, s, http.MethodPost, "/usuarios/"+id+"/alterar-senha", map[string]string{"senhaAtual": "errada", "novaSenha": "nova123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = do(t, s, http.MethodPost, "/usuarios/"+id+"/alterar-senha", map[string]string{"senhaAtual": "s3nha123", "novaSenha": "nova123"})
	assert.Equal(t, http.StatusOK, w.Code)

	w, response = do(t, s, http.MethodGet, "/usuarios/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data = response["dados"].(map[string]interface{})
	assert.Contains(t, data, "contas")
	assert.Contains(t, data, "categorias")

	w, response = do(t, s, http.MethodGet, "/usuarios", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), response["total"])

	w, _ = do(t, s, http.MethodDelete, "/usuarios/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, s, http.MethodGet, "/usuarios/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetUser_NonexistentAndMalformedIDs(t *testing.T) {
	s := newTestServer(t)

	for _, id := range []string{uuid.NewString(), "nao-existe"} {
		w, response := do(t, s, http.MethodGet, "/usuarios/"+id, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, id)
		assert.Equal(t, false, response["sucesso"])
	}
}

func TestCategoriesRoutes(t *testing.T) {
	s := newTestServer(t)

	w, _ := do(t, s, http.MethodPost, "/categorias", map[string]string{"nome": "Mercado", "tipo": "investimento", "usuario_id": uuid.NewString()})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, s, http.MethodPost, "/categorias", map[string]string{"nome": "Mercado", "tipo": "despesa", "usuario_id": uuid.NewString()})
	assert.Equal(t, http.StatusCreated, w.Code)

	w, response := do(t, s, http.MethodGet, "/categorias", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), response["total"])
}

func TestCurrenciesPrimaryFirst(t *testing.T) {
	s := newTestServer(t)

	w, response := do(t, s, http.MethodGet, "/moedas", nil)
	require.Equal(t, http.StatusOK, w.Code)
	first := response["dados"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "BRL", first["codigo"])
}

func TestAccountsMissingFields(t *testing.T) {
	s := newTestServer(t)

	w, response := do(t, s, http.MethodPost, "/contas", map[string]string{"tipo": "corrente"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, account.ErrMissingRequiredFields.Error(), response["erro"])

	w, response = do(t, s, http.MethodGet, "/contas", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), response["total"])
}

func TestMalformedBody(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/usuarios", bytes.NewBufferString(`{"nome":`))
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	do(t, s, http.MethodGet, "/moedas", nil)

	w := httptest.NewRecorder()
	s.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `finance_tracker_http_requests_total{method="GET",route="/moedas",status="200"} 1`)
}

func TestRecoverMiddleware(t *testing.T) {
	s := newTestServer(t)
	h := s.recoverMiddleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Erro interno do servidor")
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/usuarios", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
