package ports

import (
	"context"
	"time"

	"github.com/peoplecore/hris-api/internal/core/domain"
)

// CreateEmployeeInput carries the data needed to create an employee record.
type CreateEmployeeInput struct {
	Principal      *domain.User
	EmployeeNumber string
	WorkEmail      string
	FirstName      string
	LastName       string
	Department     string
	Position       string
	ManagerID      string
	HireDate       time.Time
}

// GetEmployeeInput identifies a record and the caller asking for it.
// Access is granted to the record's own employee or a privileged role.
type GetEmployeeInput struct {
	Principal  *domain.User
	EmployeeID string
}

// ListEmployeesInput carries all parameters for the list endpoint.
type ListEmployeesInput struct {
	Principal  *domain.User
	Status     string
	Department string
	Limit      int
	Offset     int
}

// ListEmployeesResult is returned by ListEmployees.
type ListEmployeesResult struct {
	Items  []*domain.Employee
	Total  int64
	Limit  int
	Offset int
}

// EmployeeService defines the directory use-cases.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, input CreateEmployeeInput) (*domain.Employee, error)
	GetEmployee(ctx context.Context, input GetEmployeeInput) (*domain.Employee, error)
	ListEmployees(ctx context.Context, input ListEmployeesInput) (*ListEmployeesResult, error)
}
