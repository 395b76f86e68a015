package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"employee-api/internal/employee/models"
	"employee-api/internal/platform/metrics"
	"employee-api/internal/platform/middleware"
	dErrors "employee-api/pkg/domain-errors"
	"employee-api/pkg/platform/httputil"
)

// BasePath is the mount point of the employee routes.
const BasePath = "/api/v1/employees"

// requestTimeout leaves room for every upstream retry of a single request.
const requestTimeout = 45 * time.Second

// Service defines the interface for employee operations.
type Service interface {
	GetAllEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployeesByNameSearch(ctx context.Context, fragment string) ([]models.Employee, error)
	GetEmployeeByID(ctx context.Context, id string) (models.Employee, bool, error)
	GetHighestSalaryOfEmployees(ctx context.Context) (int, error)
	GetTopTenHighestEarningEmployeeNames(ctx context.Context) ([]string, error)
	CreateEmployee(ctx context.Context, in models.Input) (models.Employee, bool, error)
	DeleteEmployeeByID(ctx context.Context, id string) (string, bool, error)
}

// Handler handles the employee endpoints.
type Handler struct {
	logger   *slog.Logger
	employee Service
	metrics  *metrics.Metrics
}

// New creates a new employee Handler.
func New(employee Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		logger:   logger,
		employee: employee,
		metrics:  metrics,
	}
}

// Register registers the employee routes with the chi router. Static paths
// win over /{id} in chi, so /highestSalary never reaches UUID validation.
func (h *Handler) Register(r chi.Router) {
	r.Route(BasePath, func(r chi.Router) {
		r.Use(middleware.Recovery(h.logger))
		r.Use(middleware.RequestID)
		r.Use(middleware.Logger(h.logger))
		r.Use(middleware.Timeout(requestTimeout))
		r.Use(middleware.ContentTypeJSON)
		r.Use(middleware.LatencyMiddleware(h.metrics))

		r.Get("/", h.handleGetAll)
		r.Post("/", h.handleCreate)
		r.Get("/search/", h.handleSearch)
		r.Get("/search/{fragment}", h.handleSearch)
		r.Get("/highestSalary", h.handleHighestSalary)
		r.Get("/topTenHighestEarningEmployeeNames", h.handleTopTenNames)
		r.Get("/{id}", h.handleGetByID)
		r.Delete("/{id}", h.handleDelete)
	})
}

func (h *Handler) handleGetAll(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employee.GetAllEmployees(r.Context())
	if err != nil {
		h.writeError(w, r, "failed to list employees", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, employees)
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	fragment := pathParam(r, "fragment")
	if err := validateSearch(fragment); err != nil {
		h.writeError(w, r, "invalid search request", err)
		return
	}

	employees, err := h.employee.GetEmployeesByNameSearch(r.Context(), fragment)
	if err != nil {
		h.writeError(w, r, "failed to search employees", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, employees)
}

func (h *Handler) handleGetByID(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")
	if err := validateID(id); err != nil {
		h.writeError(w, r, "invalid employee id", err)
		return
	}

	employee, found, err := h.employee.GetEmployeeByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "failed to fetch employee", err)
		return
	}
	if !found {
		h.writeError(w, r, "employee not found", dErrors.New(dErrors.CodeNotFound, "employee not found"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, employee)
}

func (h *Handler) handleHighestSalary(w http.ResponseWriter, r *http.Request) {
	salary, err := h.employee.GetHighestSalaryOfEmployees(r.Context())
	if err != nil {
		h.writeError(w, r, "failed to compute highest salary", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, salary)
}

func (h *Handler) handleTopTenNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.employee.GetTopTenHighestEarningEmployeeNames(r.Context())
	if err != nil {
		h.writeError(w, r, "failed to compute top earners", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, names)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	in, err := httputil.DecodeJSON[models.Input](r)
	if err != nil {
		h.writeError(w, r, "invalid create employee request", err)
		return
	}
	if err := validateInput(in); err != nil {
		h.writeError(w, r, "invalid create employee request", err)
		return
	}

	created, ok, err := h.employee.CreateEmployee(r.Context(), in)
	if err != nil {
		h.writeError(w, r, "failed to create employee", err)
		return
	}
	if !ok {
		httputil.WriteJSON(w, http.StatusOK, nil)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, created)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")
	if err := validateID(id); err != nil {
		h.writeError(w, r, "invalid employee id", err)
		return
	}

	name, found, err := h.employee.DeleteEmployeeByID(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "failed to delete employee", err)
		return
	}
	if !found {
		h.writeError(w, r, "employee not found", dErrors.New(dErrors.CodeNotFound, "employee not found"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, name)
}

// writeError logs client mistakes at warn and everything else at error
// before handing the response to httputil.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()
	level := slog.LevelError
	switch dErrors.CodeOf(err) {
	case dErrors.CodeBadRequest, dErrors.CodeValidation, dErrors.CodeNotFound:
		level = slog.LevelWarn
	}
	h.logger.Log(ctx, level, msg,
		"error", err.Error(),
		"request_id", middleware.GetRequestID(ctx),
	)
	httputil.WriteError(w, err)
}

// pathParam returns the decoded value of a chi URL parameter. chi matches on
// RawPath when it is set, so only then is the parameter still escaped.
func pathParam(r *http.Request, key string) string {
	param := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return param
	}
	if decoded, err := url.PathUnescape(param); err == nil {
		return decoded
	}
	return param
}
