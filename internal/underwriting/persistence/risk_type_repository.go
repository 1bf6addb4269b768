package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"insurance-server/internal/infra/pubsub"
	"insurance-server/internal/infra/sql"
	"insurance-server/internal/shared_kernel/avro"
	shareddomain "insurance-server/internal/shared_kernel/domain"
	"insurance-server/internal/underwriting/domain"
	"insurance-server/internal/underwriting/persistence/internal"
	"insurance-server/internal/underwriting/usecases"
)

func NewRiskTypeRepository(
	publisherFactory pubsub.PublisherFactory,
	orm sql.ORM,
) (*SimpleRiskTypeRepository, error) {
	publisher, err := publisherFactory.New(usecases.RiskTypesTopic, &avro.AvroRiskType{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	if err := migrate(orm); err != nil {
		return nil, err
	}

	return &SimpleRiskTypeRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.RiskTypeRepository = (*SimpleRiskTypeRepository)(nil)

type SimpleRiskTypeRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

func (r *SimpleRiskTypeRepository) Create(ctx context.Context, riskType domain.RiskType) error {
	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		entity := internal.FromRiskType(riskType)
		if err := tx.Create(&entity).Error(); err != nil {
			return fmt.Errorf("creating risk type in database: %w", err)
		}

		for _, field := range riskType.Fields {
			fieldEntity := internal.FromFieldDefinition(field)
			fieldEntity.RiskTypeID = entity.ID
			if err := tx.Create(&fieldEntity).Error(); err != nil {
				return fmt.Errorf("creating field definition in database: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	return r.publish(ctx, avro.ToAvroRiskType(riskType))
}

func (r *SimpleRiskTypeRepository) GetByID(ctx context.Context, id shareddomain.ID) (domain.RiskType, error) {
	var entity internal.RiskType
	err := r.orm.
		WithContext(ctx).
		Preload("Fields").
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.RiskType{}, usecases.ErrRiskTypeNotFound
	}

	if err != nil {
		return domain.RiskType{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

// FindAll returns every risk type in creation order.
func (r *SimpleRiskTypeRepository) FindAll(ctx context.Context) ([]domain.RiskType, error) {
	var entities []internal.RiskType
	err := r.orm.
		WithContext(ctx).
		Preload("Fields").
		Order("created_at ASC, id ASC").
		Find(&entities).
		Error()

	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.RiskType, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}

// AddField stores field and the risk type's new version in one transaction.
func (r *SimpleRiskTypeRepository) AddField(ctx context.Context, riskType domain.RiskType, field domain.FieldDefinition) error {
	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		var existing internal.RiskType
		err := tx.First(&existing, "id = ?", riskType.ID.String()).Error()
		if errors.Is(err, sql.ErrRecordNotFound) {
			return usecases.ErrRiskTypeNotFound
		}
		if err != nil {
			return fmt.Errorf("database query: %w", err)
		}

		fieldEntity := internal.FromFieldDefinition(field)
		fieldEntity.RiskTypeID = existing.ID
		if err := tx.Create(&fieldEntity).Error(); err != nil {
			return fmt.Errorf("creating field definition in database: %w", err)
		}

		entity := internal.FromRiskType(riskType)
		entity.CreatedAt = existing.CreatedAt
		if err := tx.Save(&entity).Error(); err != nil {
			return fmt.Errorf("updating risk type in database: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	return r.publish(ctx, avro.ToAvroRiskType(riskType))
}

// Delete removes the risk type with its field definitions, its accounts and their values.
func (r *SimpleRiskTypeRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	riskType, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		err := tx.
			Where("account_id IN (SELECT id FROM accounts WHERE risk_type_id = ?)", id.String()).
			Delete(&internal.FieldValue{}).
			Error()
		if err != nil {
			return fmt.Errorf("deleting field values: %w", err)
		}

		err = tx.
			Where("field_definition_id IN (SELECT id FROM field_definitions WHERE risk_type_id = ?)", id.String()).
			Delete(&internal.FieldValue{}).
			Error()
		if err != nil {
			return fmt.Errorf("deleting field values: %w", err)
		}

		if err := tx.Where("risk_type_id = ?", id.String()).Delete(&internal.Account{}).Error(); err != nil {
			return fmt.Errorf("deleting accounts: %w", err)
		}

		if err := tx.Where("risk_type_id = ?", id.String()).Delete(&internal.FieldDefinition{}).Error(); err != nil {
			return fmt.Errorf("deleting field definitions: %w", err)
		}

		if err := tx.Where("id = ?", id.String()).Delete(&internal.RiskType{}).Error(); err != nil {
			return fmt.Errorf("deleting risk type: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	message := avro.ToAvroRiskType(riskType)
	message.Deleted = true
	return r.publish(ctx, message)
}

func (r *SimpleRiskTypeRepository) publish(ctx context.Context, message *avro.AvroRiskType) error {
	slog.Debug("publishing risk type to pubsub", slog.String("risk_type_id", message.ID))
	if err := r.publisher.Publish(ctx, pubsub.Key(message.ID), message); err != nil {
		return fmt.Errorf("publishing to kafka: %w", err)
	}
	return nil
}
