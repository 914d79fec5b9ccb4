package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/peoplecore/hris-api/internal/core/domain"
	"github.com/peoplecore/hris-api/internal/core/ports"
)

const defaultEmployeeListLimit = 50

type employeeService struct {
	repo ports.EmployeeRepository
	log  zerolog.Logger
}

// NewEmployeeService returns the directory use-case implementation.
func NewEmployeeService(repo ports.EmployeeRepository, log zerolog.Logger) ports.EmployeeService {
	return &employeeService{repo: repo, log: log}
}

// CreateEmployee registers a new employee record. Admin/HR only.
func (s *employeeService) CreateEmployee(ctx context.Context, input ports.CreateEmployeeInput) (*domain.Employee, error) {
	if err := requirePrivileged(input.Principal); err != nil {
		return nil, err
	}
	if input.EmployeeNumber == "" || input.WorkEmail == "" || input.FirstName == "" || input.LastName == "" {
		return nil, domain.ErrInvalidEmployee
	}

	hireDate := input.HireDate
	if hireDate.IsZero() {
		hireDate = time.Now().UTC()
	}

	now := time.Now().UTC()
	employee := &domain.Employee{
		EmployeeNumber: input.EmployeeNumber,
		WorkEmail:      input.WorkEmail,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Department:     input.Department,
		Position:       input.Position,
		ManagerID:      input.ManagerID,
		HireDate:       hireDate,
		Status:         domain.EmploymentActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Create(ctx, employee)
	if err != nil {
		s.log.Error().Err(err).Str("employee_number", input.EmployeeNumber).Msg("failed to create employee")
		return nil, err
	}

	s.log.Info().Str("employee_id", created.ID).Str("employee_number", created.EmployeeNumber).Msg("employee created")
	return created, nil
}

// GetEmployee returns one record; access is the exact union of "own
// record" and "privileged role".
func (s *employeeService) GetEmployee(ctx context.Context, input ports.GetEmployeeInput) (*domain.Employee, error) {
	if err := requireSelfOrPrivileged(input.Principal, input.EmployeeID); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, input.EmployeeID)
}

// ListEmployees returns a directory page. Admin/HR only.
func (s *employeeService) ListEmployees(ctx context.Context, input ports.ListEmployeesInput) (*ports.ListEmployeesResult, error) {
	if err := requirePrivileged(input.Principal); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultEmployeeListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	items, total, err := s.repo.List(ctx, ports.ListEmployeesFilter{
		Status:     input.Status,
		Department: input.Department,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, err
	}

	return &ports.ListEmployeesResult{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}
