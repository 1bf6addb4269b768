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

func NewAccountRepository(
	publisherFactory pubsub.PublisherFactory,
	orm sql.ORM,
) (*SimpleAccountRepository, error) {
	publisher, err := publisherFactory.New(usecases.AccountsTopic, &avro.AvroAccount{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	if err := migrate(orm); err != nil {
		return nil, err
	}

	return &SimpleAccountRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.AccountRepository = (*SimpleAccountRepository)(nil)

type SimpleAccountRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

func (r *SimpleAccountRepository) Create(ctx context.Context, account domain.Account) error {
	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		entity := internal.FromAccount(account)
		if err := tx.Create(&entity).Error(); err != nil {
			return fmt.Errorf("creating account in database: %w", err)
		}

		for i, value := range account.Values {
			valueEntity := internal.FromFieldValue(value, i)
			if err := tx.Create(&valueEntity).Error(); err != nil {
				return fmt.Errorf("creating field value in database: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	return r.publish(ctx, avro.ToAvroAccount(account))
}

func (r *SimpleAccountRepository) GetByID(ctx context.Context, id shareddomain.ID) (domain.Account, error) {
	var entity internal.Account
	err := r.orm.
		WithContext(ctx).
		Preload("Values.FieldDefinition").
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Account{}, usecases.ErrAccountNotFound
	}

	if err != nil {
		return domain.Account{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleAccountRepository) FindAllByUser(
	ctx context.Context,
	userID shareddomain.ID,
	pagination usecases.Pagination,
) ([]domain.Account, int, error) {
	var total int64
	err := r.orm.
		WithContext(ctx).
		Model(&internal.Account{}).
		Where("user_id = ?", userID.String()).
		Count(&total).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("count query: %w", err)
	}

	var entities []internal.Account
	err = r.orm.
		WithContext(ctx).
		Preload("Values.FieldDefinition").
		Where("user_id = ?", userID.String()).
		Order("created_at ASC, id ASC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Account, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

// SaveFieldValue upserts value and stores the account's new version.
func (r *SimpleAccountRepository) SaveFieldValue(ctx context.Context, account domain.Account, value domain.FieldValue) error {
	sequence := len(account.Values)
	for i, existing := range account.Values {
		if existing.ID == value.ID {
			sequence = i
			break
		}
	}

	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		var existing internal.Account
		err := tx.First(&existing, "id = ?", account.ID.String()).Error()
		if errors.Is(err, sql.ErrRecordNotFound) {
			return usecases.ErrAccountNotFound
		}
		if err != nil {
			return fmt.Errorf("database query: %w", err)
		}

		valueEntity := internal.FromFieldValue(value, sequence)
		valueEntity.AccountID = existing.ID
		if err := tx.Save(&valueEntity).Error(); err != nil {
			return fmt.Errorf("saving field value in database: %w", err)
		}

		entity := internal.FromAccount(account)
		entity.CreatedAt = existing.CreatedAt
		if err := tx.Save(&entity).Error(); err != nil {
			return fmt.Errorf("updating account in database: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	return r.publish(ctx, avro.ToAvroAccount(account))
}

// Delete removes the account and its values.
func (r *SimpleAccountRepository) Delete(ctx context.Context, id shareddomain.ID) error {
	account, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		if err := tx.Where("account_id = ?", id.String()).Delete(&internal.FieldValue{}).Error(); err != nil {
			return fmt.Errorf("deleting field values: %w", err)
		}

		if err := tx.Where("id = ?", id.String()).Delete(&internal.Account{}).Error(); err != nil {
			return fmt.Errorf("deleting account: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	message := avro.ToAvroAccount(account)
	message.Deleted = true
	return r.publish(ctx, message)
}

func (r *SimpleAccountRepository) publish(ctx context.Context, message *avro.AvroAccount) error {
	slog.Debug("publishing account to pubsub", slog.String("account_id", message.ID))
	if err := r.publisher.Publish(ctx, pubsub.Key(message.ID), message); err != nil {
		return fmt.Errorf("publishing to kafka: %w", err)
	}
	return nil
}
