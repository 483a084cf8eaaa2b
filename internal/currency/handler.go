package currency

import (
	"net/http"

	"github.com/sebuszqo/FinanceTracker/internal/httputil"
)

type Handler struct {
	service      Service
	respondJSON  httputil.RespondJSONFunc
	respondError httputil.RespondErrorFunc
}

func NewCurrencyHandler(service Service, respondJSON httputil.RespondJSONFunc, respondError httputil.RespondErrorFunc) *Handler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &Handler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *Handler) GetCurrencies(w http.ResponseWriter, r *http.Request) {
	currencies, err := h.service.List(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"sucesso": true,
		"total":   len(currencies),
		"dados":   currencies,
	})
}
