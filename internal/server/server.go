package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/sebuszqo/FinanceTracker/internal/account"
	"github.com/sebuszqo/FinanceTracker/internal/category"
	"github.com/sebuszqo/FinanceTracker/internal/currency"
	"github.com/sebuszqo/FinanceTracker/internal/httputil"
	"github.com/sebuszqo/FinanceTracker/internal/metrics"
	"github.com/sebuszqo/FinanceTracker/internal/user"
)

const Version = "1.0.0"

// HealthChecker reports the state of the database.
type HealthChecker interface {
	Health(ctx context.Context) map[string]string
}

type Handlers struct {
	User     *user.Handler
	Category *category.CategoryHandler
	Account  *account.Handler
	Currency *currency.Handler
}

type Server struct {
	router         *chi.Mux
	log            *zap.Logger
	db             HealthChecker
	metrics        *metrics.Metrics
	responder      *httputil.Responder
	handlers       Handlers
	allowedOrigins []string
}

func NewServer(log *zap.Logger, db HealthChecker, m *metrics.Metrics, responder *httputil.Responder, allowedOrigins []string, handlers Handlers) *Server {
	return &Server{
		router:         chi.NewRouter(),
		log:            log,
		db:             db,
		metrics:        m,
		responder:      responder,
		handlers:       handlers,
		allowedOrigins: allowedOrigins,
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) RegisterRoutes() {
	r := s.router

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoverMiddleware)
	r.Use(s.metrics.Instrument)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.NotFound(s.handleNotFound)
	r.MethodNotAllowed(s.handleMethodNotAllowed)

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/usuarios", func(r chi.Router) {
		r.Get("/", s.handlers.User.HandleList)
		r.Post("/", s.handlers.User.HandleCreate)
		r.Get("/{id}", s.handlers.User.HandleGet)
		r.Put("/{id}", s.handlers.User.HandleUpdate)
		r.Delete("/{id}", s.handlers.User.HandleDelete)
		r.Post("/{id}/alterar-senha", s.handlers.User.HandleChangePassword)
	})

	r.Get("/categorias", s.handlers.Category.GetCategories)
	r.Post("/categorias", s.handlers.Category.CreateCategory)

	r.Get("/contas", s.handlers.Account.GetAccounts)
	r.Post("/contas", s.handlers.Account.CreateAccount)

	r.Get("/moedas", s.handlers.Currency.GetCurrencies)
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.responder.JSON(w, http.StatusOK, map[string]string{
		"mensagem": "API de Controle Financeiro está online!",
		"versao":   Version,
		"status":   "OK",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := s.db.Health(r.Context())
	status := http.StatusOK
	if health["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	s.responder.JSON(w, status, health)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.responder.JSON(w, http.StatusNotFound, map[string]interface{}{
		"sucesso":         false,
		"erro":            "Rota não encontrada",
		"rota_solicitada": r.URL.Path,
	})
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.responder.JSON(w, http.StatusMethodNotAllowed, map[string]interface{}{
		"sucesso": false,
		"erro":    "Método " + r.Method + " não permitido para " + r.URL.Path,
	})
}
