package usecases

import (
	"context"
	"errors"

	"insurance-server/internal/shared_kernel/domain"
)

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/shared_kernel/usecases/repository_port_mock.go -package=usecases -mock_names=UserRepository=MockUserRepository

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	Create(context.Context, domain.User) error
	GetByID(context.Context, domain.ID) (domain.User, error)
	GetByUsername(context.Context, domain.Username) (domain.User, error)
}
