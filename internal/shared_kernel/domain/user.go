package domain

import (
	"errors"

	"insurance-server/internal/infra/utils"
)

var ErrUsernameRequired = errors.New("username is required")

// User is the identity that owns accounts. Credentials live elsewhere.
type User struct {
	ID        ID
	Username  Username
	CreatedAt utils.Time
}

func NewUserBuilder() *userBuilder {
	return &userBuilder{}
}

type userBuilder struct {
	actions []userHandler
}

type userHandler func(v *User) error

func (b *userBuilder) WithUsername(value string) *userBuilder {
	b.actions = append(b.actions, func(d *User) error {
		d.Username = Username(value)
		return nil
	})
	return b
}

func (b *userBuilder) Build() (User, error) {
	result := User{
		ID:        ID(utils.GenerateUUID()),
		CreatedAt: utils.Now(),
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return User{}, err
		}
	}

	if result.Username == "" {
		return User{}, ErrUsernameRequired
	}

	return result, nil
}
