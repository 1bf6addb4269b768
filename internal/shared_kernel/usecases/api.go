package usecases

import (
	"context"

	"insurance-server/internal/shared_kernel/domain"
)

//go:generate mockgen -source=./api.go -destination=../../../test/unit/doubles/shared_kernel/usecases/api_mock.go -package=usecases

type UserService interface {
	CreateUser(context.Context, domain.User) error
	GetUser(context.Context, domain.ID) (domain.User, error)
}
