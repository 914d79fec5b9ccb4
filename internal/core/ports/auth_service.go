package ports

import (
	"context"

	"github.com/peoplecore/hris-api/internal/core/domain"
)

// RegisterInput carries the data needed to create a user account.
// Role and Roles are normalized by the service; unrecognized values fall
// back to the employee role rather than being rejected.
type RegisterInput struct {
	Email      string
	Password   string
	Role       string
	Roles      []string
	EmployeeID string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
