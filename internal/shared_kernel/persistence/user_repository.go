package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"insurance-server/internal/infra/pubsub"
	"insurance-server/internal/infra/sql"
	"insurance-server/internal/shared_kernel/avro"
	"insurance-server/internal/shared_kernel/domain"
	"insurance-server/internal/shared_kernel/persistence/internal"
	"insurance-server/internal/shared_kernel/usecases"
)

const (
	_usersTopic = "users"
)

func NewUserRepository(publisherFactory pubsub.PublisherFactory, orm sql.ORM) (*SimpleUserRepository, error) {
	publisher, err := publisherFactory.New(_usersTopic, &avro.AvroUser{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	err = orm.AutoMigrate(&internal.User{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleUserRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.UserRepository = (*SimpleUserRepository)(nil)

type SimpleUserRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

func (r *SimpleUserRepository) Create(ctx context.Context, user domain.User) error {
	entity := internal.FromUser(user)

	err := r.orm.WithContext(ctx).Create(&entity).Error()
	if err != nil {
		return fmt.Errorf("creating user in database: %w", err)
	}

	slog.Debug("publishing user to pubsub", slog.String("user_id", user.ID.String()))
	err = r.publisher.Publish(ctx, pubsub.Key(user.ID), avro.ToAvroUser(entity.ToDomain()))
	if err != nil {
		return fmt.Errorf("publishing to kafka: %w", err)
	}

	return nil
}

func (r *SimpleUserRepository) GetByID(ctx context.Context, id domain.ID) (domain.User, error) {
	var entity internal.User
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.User{}, usecases.ErrUserNotFound
	}

	if err != nil {
		slog.Error("database query error", slog.String("error", err.Error()))
		return domain.User{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleUserRepository) GetByUsername(ctx context.Context, username domain.Username) (domain.User, error) {
	var entity internal.User
	err := r.orm.
		WithContext(ctx).
		First(&entity, "username = ?", string(username)).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.User{}, usecases.ErrUserNotFound
	}

	if err != nil {
		return domain.User{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}
