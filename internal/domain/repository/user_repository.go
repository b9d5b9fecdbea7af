package repository

import (
	"context"

	"github.com/jhoicas/reportes-api/internal/domain/entity"
)

// UserRepository persistencia de usuarios (auth).
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByEmailAndCompany(ctx context.Context, email, companyID string) (*entity.User, error)
}
