package ports

import (
	"context"

	"github.com/peoplecore/hris-api/internal/core/domain"
)

// ListEmployeesFilter carries all query parameters for listing employees.
type ListEmployeesFilter struct {
	Status     string // optional: filter by employment status
	Department string // optional: filter by department
	Limit      int    // max rows per page
	Offset     int    // rows to skip
}

// EmployeeRecord is the narrow contract the change-request engine depends
// on: a keyed store of text-valued fields. Any storage engine satisfying
// it is sufficient; the engine never sees the full employee schema.
type EmployeeRecord interface {
	// ReadField returns the current value of an allow-listed storage
	// column. Returns domain.ErrEmployeeNotFound for unknown ids.
	ReadField(ctx context.Context, employeeID, column string) (string, error)
	// WriteField sets an allow-listed storage column. Returns
	// domain.ErrEmployeeNotFound for unknown ids; on error the record is
	// unchanged.
	WriteField(ctx context.Context, employeeID, column, value string) error
}

// EmployeeRepository defines persistence operations for employee records.
type EmployeeRepository interface {
	EmployeeRecord

	Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error)
	FindByID(ctx context.Context, id string) (*domain.Employee, error)
	// List returns a page of employees matching filter and the total count.
	List(ctx context.Context, filter ListEmployeesFilter) ([]*domain.Employee, int64, error)
}
