package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	shareddomain "insurance-server/internal/shared_kernel/domain"
	"insurance-server/internal/underwriting/domain"
)

func NewAccountService(
	repository AccountRepository,
	riskTypes RiskTypeService,
	users UserProvider,
) *SimpleAccountService {
	return &SimpleAccountService{
		repository: repository,
		riskTypes:  riskTypes,
		users:      users,
	}
}

var _ AccountService = (*SimpleAccountService)(nil)

type SimpleAccountService struct {
	repository AccountRepository
	riskTypes  RiskTypeService
	users      UserProvider
}

// OpenAccount stores account once its user and risk type are known to exist.
func (s *SimpleAccountService) OpenAccount(ctx context.Context, account domain.Account) error {
	if _, err := s.users.GetUser(ctx, account.UserID); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("getting account owner: %w", err)
	}

	if _, err := s.riskTypes.GetRiskType(ctx, account.RiskTypeID); err != nil {
		if errors.Is(err, ErrRiskTypeNotFound) {
			return ErrRiskTypeNotFound
		}
		return fmt.Errorf("getting account risk type: %w", err)
	}

	if err := s.repository.Create(ctx, account); err != nil {
		slog.Error("creating account", slog.String("error", err.Error()))
		return fmt.Errorf("creating account: %w", err)
	}

	slog.Info("account opened",
		slog.String("account_id", account.ID.String()),
		slog.String("user_id", account.UserID.String()),
		slog.String("risk_type_id", account.RiskTypeID.String()))

	return nil
}

func (s *SimpleAccountService) GetAccount(ctx context.Context, id shareddomain.ID) (domain.Account, error) {
	account, err := s.repository.GetByID(ctx, id)
	if errors.Is(err, ErrAccountNotFound) {
		slog.Warn("account not found", slog.String("account_id", id.String()))
		return domain.Account{}, ErrAccountNotFound
	}
	if err != nil {
		slog.Error("getting account", slog.String("error", err.Error()))
		return domain.Account{}, fmt.Errorf("getting account: %w", err)
	}

	return account, nil
}

func (s *SimpleAccountService) ListAccountsByUser(
	ctx context.Context,
	userID shareddomain.ID,
	pagination Pagination,
) ([]domain.Account, int, error) {
	if _, err := s.users.GetUser(ctx, userID); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, 0, ErrUserNotFound
		}
		return nil, 0, fmt.Errorf("getting user: %w", err)
	}

	accounts, total, err := s.repository.FindAllByUser(ctx, userID, pagination)
	if err != nil {
		slog.Error("listing accounts", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing accounts: %w", err)
	}

	return accounts, total, nil
}

// SetFieldValue stores value for the field whether or not it validates and reports the
// validation outcome with the rendered markup.
func (s *SimpleAccountService) SetFieldValue(
	ctx context.Context,
	accountID, fieldID shareddomain.ID,
	value string,
) (RenderedFieldValue, error) {
	account, err := s.GetAccount(ctx, accountID)
	if err != nil {
		return RenderedFieldValue{}, err
	}

	riskType, err := s.riskTypes.GetRiskType(ctx, account.RiskTypeID)
	if err != nil {
		return RenderedFieldValue{}, err
	}

	field, found := riskType.FieldByID(fieldID)
	if !found {
		return RenderedFieldValue{}, ErrFieldNotInRiskType
	}

	if _, err := field.Behavior(); err != nil {
		return RenderedFieldValue{}, err
	}

	stored := account.SetFieldValue(field, value)
	if err := s.repository.SaveFieldValue(ctx, account, stored); err != nil {
		slog.Error("saving field value", slog.String("error", err.Error()))
		return RenderedFieldValue{}, fmt.Errorf("saving field value: %w", err)
	}

	rendered, err := renderFieldValue(stored)
	if err != nil {
		return RenderedFieldValue{}, fmt.Errorf("rendering field value: %w", err)
	}

	if !rendered.Valid {
		slog.Debug("stored value that does not validate",
			slog.String("account_id", accountID.String()),
			slog.String("field_id", fieldID.String()))
	}

	return rendered, nil
}

// RenderAccount renders every stored value of the account in storage order.
func (s *SimpleAccountService) RenderAccount(ctx context.Context, id shareddomain.ID) (RenderedAccount, error) {
	account, err := s.GetAccount(ctx, id)
	if err != nil {
		return RenderedAccount{}, err
	}

	values := make([]RenderedFieldValue, 0, len(account.Values))
	for _, value := range account.Values {
		rendered, err := renderFieldValue(value)
		if err != nil {
			slog.Error("rendering field value",
				slog.String("account_id", id.String()),
				slog.String("field_value_id", value.ID.String()),
				slog.String("error", err.Error()))
			return RenderedAccount{}, fmt.Errorf("rendering account: %w", err)
		}
		values = append(values, rendered)
	}

	return RenderedAccount{
		Account: account,
		Values:  values,
	}, nil
}

func (s *SimpleAccountService) CloseAccount(ctx context.Context, id shareddomain.ID) error {
	err := s.repository.Delete(ctx, id)
	if errors.Is(err, ErrAccountNotFound) {
		return ErrAccountNotFound
	}
	if err != nil {
		slog.Error("deleting account", slog.String("error", err.Error()))
		return fmt.Errorf("deleting account: %w", err)
	}

	return nil
}
