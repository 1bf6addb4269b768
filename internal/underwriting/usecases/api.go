package usecases

import (
	"context"

	shareddomain "insurance-server/internal/shared_kernel/domain"
	"insurance-server/internal/underwriting/domain"
)

//go:generate mockgen -source=./api.go -destination=../../../test/unit/doubles/underwriting/usecases/api_mock.go -package=usecases

type RiskTypeService interface {
	CreateRiskType(context.Context, domain.RiskType) error
	GetRiskType(context.Context, shareddomain.ID) (domain.RiskType, error)
	ListRiskTypes(context.Context) ([]domain.RiskType, error)
	AddFieldDefinition(context.Context, shareddomain.ID, domain.FieldDefinition) (domain.FieldDefinition, error)
	ValidateFieldValue(ctx context.Context, riskTypeID, fieldID shareddomain.ID, value string) (bool, error)
	DeleteRiskType(context.Context, shareddomain.ID) error
	InvalidateRiskType(context.Context, shareddomain.ID) error
}

type AccountService interface {
	OpenAccount(context.Context, domain.Account) error
	GetAccount(context.Context, shareddomain.ID) (domain.Account, error)
	ListAccountsByUser(context.Context, shareddomain.ID, Pagination) ([]domain.Account, int, error)
	SetFieldValue(ctx context.Context, accountID, fieldID shareddomain.ID, value string) (RenderedFieldValue, error)
	RenderAccount(context.Context, shareddomain.ID) (RenderedAccount, error)
	CloseAccount(context.Context, shareddomain.ID) error
}

// UserProvider is the part of the user service accounts depend on.
type UserProvider interface {
	GetUser(context.Context, shareddomain.ID) (shareddomain.User, error)
}
