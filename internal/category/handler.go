package category

import (
	"net/http"

	"github.com/sebuszqo/FinanceTracker/internal/httputil"
)

type CategoryHandler struct {
	service      Service
	respondJSON  httputil.RespondJSONFunc
	respondError httputil.RespondErrorFunc
}

func NewCategoryHandler(service Service, respondJSON httputil.RespondJSONFunc, respondError httputil.RespondErrorFunc) *CategoryHandler {
	if service == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &CategoryHandler{
		service:      service,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.List(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"sucesso": true,
		"total":   len(categories),
		"dados":   categories,
	})
}

func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name   string `json:"nome"`
		Type   string `json:"tipo"`
		UserID string `json:"usuario_id"`
	}
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.respondError(w, err)
		return
	}

	category, err := h.service.Create(r.Context(), req.Name, req.Type, req.UserID)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"sucesso":  true,
		"mensagem": "Categoria criada com sucesso",
		"dados":    category,
	})
}
