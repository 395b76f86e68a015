package service

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"

	"employee-api/internal/employee/models"
	"employee-api/internal/platform/metrics"
	"employee-api/pkg/requestcontext"
)

const topEarnersLimit = 10

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks Upstream
type Upstream interface {
	List(ctx context.Context) ([]models.Employee, error)
	Fetch(ctx context.Context, id string) (models.Employee, bool, error)
	Create(ctx context.Context, in models.Input) (models.Employee, bool, error)
	Delete(ctx context.Context, id string) (string, bool, error)
}

// Service delegates storage to the upstream API and derives name search,
// highest salary and top earners from the full list.
type Service struct {
	upstream Upstream
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func New(upstream Upstream, opts ...Option) *Service {
	s := &Service{
		upstream: upstream,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) GetAllEmployees(ctx context.Context) ([]models.Employee, error) {
	s.logger.InfoContext(ctx, "fetching all employees", "request_id", requestcontext.RequestID(ctx))
	employees, err := s.upstream.List(ctx)
	if err != nil {
		return nil, err
	}
	if employees == nil {
		employees = []models.Employee{}
	}
	return employees, nil
}

// GetEmployeesByNameSearch returns employees whose name contains fragment,
// ignoring case, in upstream order.
func (s *Service) GetEmployeesByNameSearch(ctx context.Context, fragment string) ([]models.Employee, error) {
	s.logger.InfoContext(ctx, "searching employees by name",
		"fragment", fragment,
		"request_id", requestcontext.RequestID(ctx),
	)
	employees, err := s.GetAllEmployees(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(fragment)
	matches := make([]models.Employee, 0, len(employees))
	for _, e := range employees {
		if strings.Contains(strings.ToLower(e.Name), needle) {
			matches = append(matches, e)
		}
	}
	return matches, nil
}

func (s *Service) GetEmployeeByID(ctx context.Context, id string) (models.Employee, bool, error) {
	s.logger.InfoContext(ctx, "fetching employee",
		"employee_id", id,
		"request_id", requestcontext.RequestID(ctx),
	)
	return s.upstream.Fetch(ctx, id)
}

// GetHighestSalaryOfEmployees returns 0 when there are no employees.
func (s *Service) GetHighestSalaryOfEmployees(ctx context.Context) (int, error) {
	employees, err := s.GetAllEmployees(ctx)
	if err != nil {
		return 0, err
	}
	if len(employees) == 0 {
		return 0, nil
	}
	highest := slices.MaxFunc(employees, func(a, b models.Employee) int {
		return cmp.Compare(a.Salary, b.Salary)
	})
	return highest.Salary, nil
}

// GetTopTenHighestEarningEmployeeNames ranks by salary descending. Equal
// salaries keep their upstream order.
func (s *Service) GetTopTenHighestEarningEmployeeNames(ctx context.Context) ([]string, error) {
	employees, err := s.GetAllEmployees(ctx)
	if err != nil {
		return nil, err
	}

	ranked := slices.Clone(employees)
	slices.SortStableFunc(ranked, func(a, b models.Employee) int {
		return cmp.Compare(b.Salary, a.Salary)
	})

	names := make([]string, 0, min(len(ranked), topEarnersLimit))
	for _, e := range ranked[:min(len(ranked), topEarnersLimit)] {
		names = append(names, e.Name)
	}
	return names, nil
}

// CreateEmployee returns the created employee. ok is false when the upstream
// accepted the request but returned no employee.
func (s *Service) CreateEmployee(ctx context.Context, in models.Input) (models.Employee, bool, error) {
	s.logger.InfoContext(ctx, "creating employee",
		"name", in.Name,
		"request_id", requestcontext.RequestID(ctx),
	)
	created, ok, err := s.upstream.Create(ctx, in)
	if err != nil || !ok {
		return models.Employee{}, false, err
	}
	s.metrics.IncrementEmployeesCreated()
	s.logger.InfoContext(ctx, "employee created",
		"employee_id", created.ID,
		"request_id", requestcontext.RequestID(ctx),
	)
	return created, true, nil
}

// DeleteEmployeeByID returns the deleted employee's name. found is false when
// the upstream has no such employee.
func (s *Service) DeleteEmployeeByID(ctx context.Context, id string) (string, bool, error) {
	s.logger.InfoContext(ctx, "deleting employee",
		"employee_id", id,
		"request_id", requestcontext.RequestID(ctx),
	)
	name, found, err := s.upstream.Delete(ctx, id)
	if err != nil || !found {
		return "", found, err
	}
	s.metrics.IncrementEmployeesDeleted()
	return name, true, nil
}
