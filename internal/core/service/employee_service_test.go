package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/peoplecore/hris-api/internal/core/domain"
	"github.com/peoplecore/hris-api/internal/core/ports"
)

type stubEmployeeRepo struct {
	*stubRecord
	seq int
}

func newStubEmployeeRepo(employees ...*domain.Employee) *stubEmployeeRepo {
	return &stubEmployeeRepo{stubRecord: newStubRecord(employees...)}
}

func (r *stubEmployeeRepo) Create(_ context.Context, e *domain.Employee) (*domain.Employee, error) {
	for _, existing := range r.employees {
		if existing.EmployeeNumber == e.EmployeeNumber {
			return nil, domain.ErrEmployeeExists
		}
	}
	r.seq++
	clone := *e
	clone.ID = fmt.Sprintf("emp_%d", r.seq)
	r.employees[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubEmployeeRepo) FindByID(_ context.Context, id string) (*domain.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *stubEmployeeRepo) List(_ context.Context, f ports.ListEmployeesFilter) ([]*domain.Employee, int64, error) {
	var matched []*domain.Employee
	for _, e := range r.employees {
		if f.Status != "" && string(e.Status) != f.Status {
			continue
		}
		if f.Department != "" && e.Department != f.Department {
			continue
		}
		clone := *e
		matched = append(matched, &clone)
	}
	total := int64(len(matched))
	if f.Limit > 0 && f.Limit < len(matched) {
		matched = matched[:f.Limit]
	}
	return matched, total, nil
}

func TestEmployeeService_Create_Success(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := NewEmployeeService(repo, discardLogger)

	created, err := svc.CreateEmployee(context.Background(), ports.CreateEmployeeInput{
		Principal:      hrUser(),
		EmployeeNumber: "E-1001",
		WorkEmail:      "sana@corp.example",
		FirstName:      "Sana",
		LastName:       "Iqbal",
		Department:     "engineering",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == "" {
		t.Error("id must be assigned")
	}
	if created.Status != domain.EmploymentActive {
		t.Errorf("new employees must start active, got %q", created.Status)
	}
	if created.HireDate.IsZero() {
		t.Error("hire date must default to now")
	}
}

func TestEmployeeService_Create_RequiresPrivilegedRole(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := NewEmployeeService(repo, discardLogger)

	_, err := svc.CreateEmployee(context.Background(), ports.CreateEmployeeInput{
		Principal:      employeeUser("emp1"),
		EmployeeNumber: "E-1001",
		WorkEmail:      "x@corp.example",
		FirstName:      "X",
		LastName:       "Y",
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestEmployeeService_Create_Validation(t *testing.T) {
	repo := newStubEmployeeRepo()
	svc := NewEmployeeService(repo, discardLogger)

	_, err := svc.CreateEmployee(context.Background(), ports.CreateEmployeeInput{
		Principal: hrUser(),
		WorkEmail: "x@corp.example",
	})
	if !errors.Is(err, domain.ErrInvalidEmployee) {
		t.Fatalf("expected ErrInvalidEmployee, got %v", err)
	}
}

func TestEmployeeService_Get_SelfOrPrivileged(t *testing.T) {
	repo := newStubEmployeeRepo(testEmployee("emp1"), testEmployee("emp2"))
	svc := NewEmployeeService(repo, discardLogger)

	// Own record.
	if _, err := svc.GetEmployee(context.Background(), ports.GetEmployeeInput{
		Principal:  employeeUser("emp1"),
		EmployeeID: "emp1",
	}); err != nil {
		t.Fatalf("self access must be allowed: %v", err)
	}

	// Someone else's record.
	_, err := svc.GetEmployee(context.Background(), ports.GetEmployeeInput{
		Principal:  employeeUser("emp1"),
		EmployeeID: "emp2",
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// Privileged access to any record.
	if _, err := svc.GetEmployee(context.Background(), ports.GetEmployeeInput{
		Principal:  hrUser(),
		EmployeeID: "emp2",
	}); err != nil {
		t.Fatalf("hr access must be allowed: %v", err)
	}
}

func TestEmployeeService_List_PrivilegedOnly(t *testing.T) {
	repo := newStubEmployeeRepo(testEmployee("emp1"))
	svc := NewEmployeeService(repo, discardLogger)

	if _, err := svc.ListEmployees(context.Background(), ports.ListEmployeesInput{
		Principal: employeeUser("emp1"),
	}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	result, err := svc.ListEmployees(context.Background(), ports.ListEmployeesInput{Principal: hrUser()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 1 {
		t.Errorf("expected 1 employee, got %d", result.Total)
	}
	if result.Limit != defaultEmployeeListLimit {
		t.Errorf("expected default limit %d, got %d", defaultEmployeeListLimit, result.Limit)
	}
}
