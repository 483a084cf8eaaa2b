package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	appErrors "github.com/sebuszqo/FinanceTracker/internal/errors"
)

type (
	RespondJSONFunc  func(w http.ResponseWriter, status int, payload interface{})
	RespondErrorFunc func(w http.ResponseWriter, err error)
)

// Responder writes the {sucesso, dados|erro} envelope and logs server-side
// failures.
type Responder struct {
	log *zap.Logger
}

func NewResponder(log *zap.Logger) *Responder {
	return &Responder{log: log}
}

func (rs *Responder) JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		rs.log.Error("json encoding error", zap.Error(err))
	}
}

// Error maps a tagged error onto its status code and writes the failure
// envelope. Untagged errors are treated as internal failures.
func (rs *Responder) Error(w http.ResponseWriter, err error) {
	status := StatusFor(err)
	payload := map[string]interface{}{
		"sucesso": false,
		"erro":    err.Error(),
	}

	var persistenceError *appErrors.PersistenceError
	switch {
	case errors.As(err, &persistenceError):
		payload["erro"] = persistenceError.Msg
		if persistenceError.Err != nil {
			payload["detalhes"] = persistenceError.Err.Error()
		}
		rs.log.Error("persistence failure", zap.String("msg", persistenceError.Msg), zap.Error(persistenceError.Err))
	case status == http.StatusInternalServerError:
		payload["erro"] = "Erro interno do servidor"
		rs.log.Error("unhandled error", zap.Error(err))
	}

	rs.JSON(w, status, payload)
}

func StatusFor(err error) int {
	switch {
	case appErrors.IsValidationError(err), appErrors.IsConflictError(err):
		return http.StatusBadRequest
	case appErrors.IsNotFoundError(err):
		return http.StatusNotFound
	case appErrors.IsAuthError(err):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// DecodeJSON decodes the request body into dst, reporting malformed input as a
// ValidationError.
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return appErrors.NewValidationError("Corpo da requisição inválido")
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return appErrors.NewValidationError("Corpo da requisição inválido")
	}
	return nil
}
