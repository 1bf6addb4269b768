package internal

import (
	"time"

	"insurance-server/internal/infra/utils"
	"insurance-server/internal/shared_kernel/domain"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (s User) ToDomain() domain.User {
	return domain.User{
		ID:        domain.ID(s.ID),
		Username:  domain.Username(s.Username),
		CreatedAt: utils.Time{Time: s.CreatedAt},
	}
}

func FromUser(value domain.User) User {
	createdAt := value.CreatedAt.Time
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	return User{
		ID:        value.ID.String(),
		Username:  string(value.Username),
		CreatedAt: createdAt,
		UpdatedAt: time.Now(),
	}
}
