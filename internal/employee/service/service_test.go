package service

import (
	"context"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"employee-api/internal/employee/models"
	"employee-api/internal/employee/service/mocks"
	"employee-api/internal/platform/metrics"
	dErrors "employee-api/pkg/domain-errors"
)

type ServiceSuite struct {
	suite.Suite
	ctx      context.Context
	ctrl     *gomock.Controller
	upstream *mocks.MockUpstream
	metrics  *metrics.Metrics
	service  *Service
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.upstream = mocks.NewMockUpstream(s.ctrl)
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.service = New(s.upstream,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithMetrics(s.metrics),
	)
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func employee(name string, salary int) models.Employee {
	return models.Employee{ID: name + "-id", Name: name, Salary: salary}
}

func (s *ServiceSuite) TestGetAllEmployees() {
	s.Run("passes the upstream list through", func() {
		list := []models.Employee{employee("Alice", 100), employee("Bob", 50)}
		s.upstream.EXPECT().List(gomock.Any()).Return(list, nil)

		got, err := s.service.GetAllEmployees(s.ctx)
		s.Require().NoError(err)
		s.Equal(list, got)
	})

	s.Run("nil list becomes empty", func() {
		s.upstream.EXPECT().List(gomock.Any()).Return(nil, nil)

		got, err := s.service.GetAllEmployees(s.ctx)
		s.Require().NoError(err)
		s.NotNil(got)
		s.Empty(got)
	})

	s.Run("propagates upstream errors", func() {
		s.upstream.EXPECT().List(gomock.Any()).Return(nil, dErrors.New(dErrors.CodeUnavailable, "down"))

		_, err := s.service.GetAllEmployees(s.ctx)
		s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
	})
}

func (s *ServiceSuite) TestGetEmployeesByNameSearch() {
	list := []models.Employee{
		employee("Alice", 100),
		employee("Bob", 50),
		employee("ALINA", 70),
		employee("Carl", 10),
	}

	s.Run("case-insensitive substring in upstream order", func() {
		s.upstream.EXPECT().List(gomock.Any()).Return(list, nil)

		got, err := s.service.GetEmployeesByNameSearch(s.ctx, "lI")
		s.Require().NoError(err)
		s.Equal([]models.Employee{list[0], list[2]}, got)
	})

	s.Run("no matches is an empty list", func() {
		s.upstream.EXPECT().List(gomock.Any()).Return(list, nil)

		got, err := s.service.GetEmployeesByNameSearch(s.ctx, "zed")
		s.Require().NoError(err)
		s.NotNil(got)
		s.Empty(got)
	})

	s.Run("folds non-ascii names", func() {
		s.upstream.EXPECT().List(gomock.Any()).Return([]models.Employee{employee("ÉLODIE", 1)}, nil)

		got, err := s.service.GetEmployeesByNameSearch(s.ctx, "élo")
		s.Require().NoError(err)
		s.Len(got, 1)
	})

	s.Run("propagates upstream errors", func() {
		s.upstream.EXPECT().List(gomock.Any()).Return(nil, dErrors.New(dErrors.CodeTooManyRequests, "slow down"))

		_, err := s.service.GetEmployeesByNameSearch(s.ctx, "a")
		s.True(dErrors.HasCode(err, dErrors.CodeTooManyRequests))
	})
}

func (s *ServiceSuite) TestGetEmployeeByID() {
	s.Run("found", func() {
		s.upstream.EXPECT().Fetch(gomock.Any(), "id-1").Return(employee("Alice", 1), true, nil)

		got, found, err := s.service.GetEmployeeByID(s.ctx, "id-1")
		s.Require().NoError(err)
		s.True(found)
		s.Equal("Alice", got.Name)
	})

	s.Run("absent", func() {
		s.upstream.EXPECT().Fetch(gomock.Any(), "id-2").Return(models.Employee{}, false, nil)

		_, found, err := s.service.GetEmployeeByID(s.ctx, "id-2")
		s.Require().NoError(err)
		s.False(found)
	})
}

func (s *ServiceSuite) TestGetHighestSalaryOfEmployees() {
	s.Run("maximum salary", func() {
		s.upstream.EXPECT().List(gomock.Any()).Return([]models.Employee{
			employee("a", 100), employee("b", 300), employee("c", 200),
		}, nil)

		got, err := s.service.GetHighestSalaryOfEmployees(s.ctx)
		s.Require().NoError(err)
		s.Equal(300, got)
	})

	s.Run("zero when empty", func() {
		s.upstream.EXPECT().List(gomock.Any()).Return([]models.Employee{}, nil)

		got, err := s.service.GetHighestSalaryOfEmployees(s.ctx)
		s.Require().NoError(err)
		s.Equal(0, got)
	})

	s.Run("extreme salaries compare without overflow", func() {
		s.upstream.EXPECT().List(gomock.Any()).Return([]models.Employee{
			employee("low", math.MinInt), employee("high", math.MaxInt),
		}, nil)

		got, err := s.service.GetHighestSalaryOfEmployees(s.ctx)
		s.Require().NoError(err)
		s.Equal(math.MaxInt, got)
	})

	s.Run("propagates upstream errors", func() {
		s.upstream.EXPECT().List(gomock.Any()).Return(nil, dErrors.New(dErrors.CodeUnavailable, "down"))

		_, err := s.service.GetHighestSalaryOfEmployees(s.ctx)
		s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
	})
}

func (s *ServiceSuite) TestGetTopTenHighestEarningEmployeeNames() {
	s.Run("at most ten names by salary descending", func() {
		var list []models.Employee
		for i := 1; i <= 12; i++ {
			list = append(list, employee(string(rune('a'+i-1)), i*10))
		}
		s.upstream.EXPECT().List(gomock.Any()).Return(list, nil)

		got, err := s.service.GetTopTenHighestEarningEmployeeNames(s.ctx)
		s.Require().NoError(err)
		s.Equal([]string{"l", "k", "j", "i", "h", "g", "f", "e", "d", "c"}, got)
	})

	s.Run("equal salaries keep upstream order", func() {
		list := []models.Employee{
			employee("first", 100),
			employee("low", 10),
			employee("second", 100),
			employee("top", 500),
			employee("third", 100),
		}
		s.upstream.EXPECT().List(gomock.Any()).Return(list, nil)

		got, err := s.service.GetTopTenHighestEarningEmployeeNames(s.ctx)
		s.Require().NoError(err)
		s.Equal([]string{"top", "first", "second", "third", "low"}, got)
		s.Equal("first", list[0].Name, "input must not be reordered")
	})

	s.Run("extreme salaries rank without overflow", func() {
		s.upstream.EXPECT().List(gomock.Any()).Return([]models.Employee{
			employee("low", math.MinInt), employee("zero", 0), employee("high", math.MaxInt),
		}, nil)

		got, err := s.service.GetTopTenHighestEarningEmployeeNames(s.ctx)
		s.Require().NoError(err)
		s.Equal([]string{"high", "zero", "low"}, got)
	})

	s.Run("empty list", func() {
		s.upstream.EXPECT().List(gomock.Any()).Return([]models.Employee{}, nil)

		got, err := s.service.GetTopTenHighestEarningEmployeeNames(s.ctx)
		s.Require().NoError(err)
		s.NotNil(got)
		s.Empty(got)
	})
}

func (s *ServiceSuite) TestCreateEmployee() {
	salary, age := 1000, 30
	in := models.Input{Name: "Dana", Salary: &salary, Age: &age, Title: "Dev"}

	s.Run("returns the created employee and counts it", func() {
		s.upstream.EXPECT().Create(gomock.Any(), in).Return(employee("Dana", 1000), true, nil)

		got, ok, err := s.service.CreateEmployee(s.ctx, in)
		s.Require().NoError(err)
		s.True(ok)
		s.Equal("Dana", got.Name)
		s.Equal(1.0, testutil.ToFloat64(s.metrics.EmployeesCreated))
	})

	s.Run("failure is not counted", func() {
		s.upstream.EXPECT().Create(gomock.Any(), in).Return(models.Employee{}, false, dErrors.New(dErrors.CodeUnavailable, "down"))

		_, ok, err := s.service.CreateEmployee(s.ctx, in)
		s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
		s.False(ok)
		s.Equal(1.0, testutil.ToFloat64(s.metrics.EmployeesCreated))
	})

	s.Run("empty upstream result is passed on and not counted", func() {
		s.upstream.EXPECT().Create(gomock.Any(), in).Return(models.Employee{}, false, nil)

		got, ok, err := s.service.CreateEmployee(s.ctx, in)
		s.Require().NoError(err)
		s.False(ok)
		s.Equal(models.Employee{}, got)
		s.Equal(1.0, testutil.ToFloat64(s.metrics.EmployeesCreated))
	})
}

func (s *ServiceSuite) TestDeleteEmployeeByID() {
	s.Run("returns the deleted name", func() {
		s.upstream.EXPECT().Delete(gomock.Any(), "id-1").Return("Eve", true, nil)

		name, found, err := s.service.DeleteEmployeeByID(s.ctx, "id-1")
		s.Require().NoError(err)
		s.True(found)
		s.Equal("Eve", name)
		s.Equal(1.0, testutil.ToFloat64(s.metrics.EmployeesDeleted))
	})

	s.Run("absent", func() {
		s.upstream.EXPECT().Delete(gomock.Any(), "id-2").Return("", false, nil)

		_, found, err := s.service.DeleteEmployeeByID(s.ctx, "id-2")
		s.Require().NoError(err)
		s.False(found)
		s.Equal(1.0, testutil.ToFloat64(s.metrics.EmployeesDeleted))
	})

	s.Run("propagates upstream errors", func() {
		s.upstream.EXPECT().Delete(gomock.Any(), "id-3").Return("", false, dErrors.New(dErrors.CodeBadUpstreamRequest, "bad"))

		_, _, err := s.service.DeleteEmployeeByID(s.ctx, "id-3")
		s.True(dErrors.HasCode(err, dErrors.CodeBadUpstreamRequest))
	})
}
