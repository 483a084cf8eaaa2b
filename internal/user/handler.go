package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sebuszqo/FinanceTracker/internal/httputil"
)

type Handler struct {
	userService  Service
	respondJSON  httputil.RespondJSONFunc
	respondError httputil.RespondErrorFunc
}

func NewHandler(userService Service, respondJSON httputil.RespondJSONFunc, respondError httputil.RespondErrorFunc) *Handler {
	if userService == nil || respondJSON == nil || respondError == nil {
		panic("Service and response functions must not be nil")
	}
	return &Handler{
		userService:  userService,
		respondJSON:  respondJSON,
		respondError: respondError,
	}
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"sucesso": true,
		"total":   len(users),
		"dados":   users,
	})
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"sucesso": true,
		"dados":   user,
	})
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"nome"`
		Email    string `json:"email"`
		Password string `json:"senha"`
		UserType string `json:"tipo_usuario"`
	}
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.respondError(w, err)
		return
	}

	user, err := h.userService.Create(r.Context(), req.Name, req.Email, req.Password, req.UserType)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, map[string]interface{}{
		"sucesso":  true,
		"mensagem": "Usuário criado com sucesso",
		"dados":    user,
	})
}

func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req UpdateInput
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.respondError(w, err)
		return
	}

	user, err := h.userService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"sucesso":  true,
		"mensagem": "Usuário atualizado com sucesso",
		"dados":    user,
	})
}

func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"sucesso":  true,
		"mensagem": "Usuário deletado com sucesso",
	})
}

func (h *Handler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CurrentPassword string `json:"senhaAtual"`
		NewPassword     string `json:"novaSenha"`
	}
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.respondError(w, err)
		return
	}

	err := h.userService.ChangePassword(r.Context(), chi.URLParam(r, "id"), req.CurrentPassword, req.NewPassword)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"sucesso":  true,
		"mensagem": "Senha alterada com sucesso",
	})
}
