package account

import (
	"net/http"

	"github.com/sebuszqo/FinanceTracker/internal/httputil"
)

type Handler struct {
	service      Service
	respondJSON  httputil.RespondJSONFunc
	respondError httputil.RespondErrorFunc
}

func NewAccountHandler(service Service, respondJSON httputil.RespondJSONFunc, respondError httputil.RespondErrorFunc) *Handler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &Handler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *Handler) GetAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.List(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"sucesso": true,
		"total":   len(accounts),
		"dados":   accounts,
	})
}

func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req CreateInput
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.respondError(w, err)
		return
	}

	account, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"sucesso":  true,
		"mensagem": "Conta criada com sucesso",
		"dados":    account,
	})
}
