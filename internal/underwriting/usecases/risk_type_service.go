package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"insurance-server/internal/infra/cache"
	shareddomain "insurance-server/internal/shared_kernel/domain"
	"insurance-server/internal/underwriting/domain"
)

const (
	_riskTypeCacheKeyPrefix = "risk_type:"
	_riskTypesCacheKey      = "risk_types:all"
)

func riskTypeCacheKey(id shareddomain.ID) string {
	return _riskTypeCacheKeyPrefix + id.String()
}

func NewRiskTypeService(repository RiskTypeRepository, riskTypeCache cache.Cache, ttl time.Duration) *SimpleRiskTypeService {
	return &SimpleRiskTypeService{
		repository: repository,
		cache:      riskTypeCache,
		ttl:        ttl,
	}
}

var _ RiskTypeService = (*SimpleRiskTypeService)(nil)

type SimpleRiskTypeService struct {
	repository RiskTypeRepository
	cache      cache.Cache
	ttl        time.Duration
}

func (s *SimpleRiskTypeService) CreateRiskType(ctx context.Context, riskType domain.RiskType) error {
	if err := s.repository.Create(ctx, riskType); err != nil {
		slog.Error("creating risk type", slog.String("error", err.Error()))
		return fmt.Errorf("creating risk type: %w", err)
	}

	s.cache.Delete(ctx, _riskTypesCacheKey)
	return nil
}

func (s *SimpleRiskTypeService) GetRiskType(ctx context.Context, id shareddomain.ID) (domain.RiskType, error) {
	riskType, err := cache.GetOrLoad(ctx, s.cache, riskTypeCacheKey(id), s.ttl, func() (domain.RiskType, error) {
		return s.repository.GetByID(ctx, id)
	})
	if errors.Is(err, ErrRiskTypeNotFound) {
		return domain.RiskType{}, ErrRiskTypeNotFound
	}
	if err != nil {
		slog.Error("getting risk type", slog.String("risk_type_id", id.String()), slog.String("error", err.Error()))
		return domain.RiskType{}, fmt.Errorf("getting risk type: %w", err)
	}

	return riskType, nil
}

// ListRiskTypes returns every risk type in creation order.
func (s *SimpleRiskTypeService) ListRiskTypes(ctx context.Context) ([]domain.RiskType, error) {
	riskTypes, err := cache.GetOrLoad(ctx, s.cache, _riskTypesCacheKey, s.ttl, func() ([]domain.RiskType, error) {
		return s.repository.FindAll(ctx)
	})
	if err != nil {
		slog.Error("listing risk types", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing risk types: %w", err)
	}

	return riskTypes, nil
}

// AddFieldDefinition appends field to the risk type. The stored definition carries the
// position it was given.
func (s *SimpleRiskTypeService) AddFieldDefinition(
	ctx context.Context,
	riskTypeID shareddomain.ID,
	field domain.FieldDefinition,
) (domain.FieldDefinition, error) {
	if _, err := domain.ResolveBehavior(field.Format); err != nil {
		return domain.FieldDefinition{}, err
	}

	riskType, err := s.repository.GetByID(ctx, riskTypeID)
	if errors.Is(err, ErrRiskTypeNotFound) {
		return domain.FieldDefinition{}, ErrRiskTypeNotFound
	}
	if err != nil {
		slog.Error("getting risk type", slog.String("error", err.Error()))
		return domain.FieldDefinition{}, fmt.Errorf("getting risk type: %w", err)
	}

	added := riskType.AddField(field)
	if err := s.repository.AddField(ctx, riskType, added); err != nil {
		slog.Error("adding field definition", slog.String("error", err.Error()))
		return domain.FieldDefinition{}, fmt.Errorf("adding field definition: %w", err)
	}

	s.evict(ctx, riskTypeID)

	slog.Info("field definition added",
		slog.String("risk_type_id", riskTypeID.String()),
		slog.String("field_id", added.ID.String()),
		slog.String("format", string(added.Format)))

	return added, nil
}

// ValidateFieldValue checks value against one field of a risk type without storing anything.
func (s *SimpleRiskTypeService) ValidateFieldValue(
	ctx context.Context,
	riskTypeID, fieldID shareddomain.ID,
	value string,
) (bool, error) {
	riskType, err := s.GetRiskType(ctx, riskTypeID)
	if err != nil {
		return false, err
	}

	field, found := riskType.FieldByID(fieldID)
	if !found {
		return false, ErrFieldDefinitionNotFound
	}

	return field.Validate(value)
}

func (s *SimpleRiskTypeService) DeleteRiskType(ctx context.Context, id shareddomain.ID) error {
	err := s.repository.Delete(ctx, id)
	if errors.Is(err, ErrRiskTypeNotFound) {
		return ErrRiskTypeNotFound
	}
	if err != nil {
		slog.Error("deleting risk type", slog.String("error", err.Error()))
		return fmt.Errorf("deleting risk type: %w", err)
	}

	s.evict(ctx, id)
	return nil
}

// InvalidateRiskType drops the cached representations of one risk type and of the list.
func (s *SimpleRiskTypeService) InvalidateRiskType(ctx context.Context, id shareddomain.ID) error {
	s.evict(ctx, id)
	return nil
}

func (s *SimpleRiskTypeService) evict(ctx context.Context, id shareddomain.ID) {
	s.cache.Delete(ctx, riskTypeCacheKey(id))
	s.cache.Delete(ctx, _riskTypesCacheKey)
}
