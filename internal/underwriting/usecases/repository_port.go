package usecases

import (
	"context"
	"errors"

	shareddomain "insurance-server/internal/shared_kernel/domain"
	sharedusecases "insurance-server/internal/shared_kernel/usecases"
	"insurance-server/internal/underwriting/domain"
)

//go:generate mockgen -source=repository_port.go -destination=../../../test/unit/doubles/underwriting/usecases/repository_port_mock.go -package=usecases -mock_names=RiskTypeRepository=MockRiskTypeRepository,AccountRepository=MockAccountRepository

var (
	ErrRiskTypeNotFound        = errors.New("risk type not found")
	ErrAccountNotFound         = errors.New("account not found")
	ErrFieldDefinitionNotFound = errors.New("field definition not found")
	ErrFieldNotInRiskType      = errors.New("field does not belong to the account's risk type")
	ErrUserNotFound            = sharedusecases.ErrUserNotFound
)

const (
	RiskTypesTopic = "risk_types"
	AccountsTopic  = "accounts"
)

type Pagination struct {
	Limit  int
	Offset int
}

type RiskTypeRepository interface {
	Create(context.Context, domain.RiskType) error
	GetByID(context.Context, shareddomain.ID) (domain.RiskType, error)
	FindAll(context.Context) ([]domain.RiskType, error)
	AddField(context.Context, domain.RiskType, domain.FieldDefinition) error
	Delete(context.Context, shareddomain.ID) error
}

type AccountRepository interface {
	Create(context.Context, domain.Account) error
	GetByID(context.Context, shareddomain.ID) (domain.Account, error)
	FindAllByUser(context.Context, shareddomain.ID, Pagination) ([]domain.Account, int, error)
	SaveFieldValue(context.Context, domain.Account, domain.FieldValue) error
	Delete(context.Context, shareddomain.ID) error
}
