package ports

import (
	"context"

	"github.com/appforge/appforge-api/internal/core/domain"
)

// AuthService implements registration and login. Both return a signed
// identity token alongside the user so the transport layer can set the
// auth cookie in one pass.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
