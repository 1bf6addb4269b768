package domain

import (
	"insurance-server/internal/infra/utils"
	shareddomain "insurance-server/internal/shared_kernel/domain"
)

type Account struct {
	ID         shareddomain.ID
	Version    shareddomain.Version
	UserID     shareddomain.ID
	RiskTypeID shareddomain.ID
	Values     []FieldValue
	CreatedAt  utils.Time
	UpdatedAt  utils.Time
}

// AddFieldValue always appends, so an account can end up holding several values for the same field.
func (a *Account) AddFieldValue(field FieldDefinition, value string) FieldValue {
	fieldValue := FieldValue{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		AccountID: a.ID,
		Field:     field,
		Value:     value,
	}
	a.Values = append(a.Values, fieldValue)
	a.touch()
	return fieldValue
}

// SetFieldValue replaces the first value stored for field, or appends one if there is none.
func (a *Account) SetFieldValue(field FieldDefinition, value string) FieldValue {
	for i := range a.Values {
		if a.Values[i].Field.ID == field.ID {
			a.Values[i].SetValue(value)
			a.touch()
			return a.Values[i]
		}
	}
	return a.AddFieldValue(field, value)
}

func (a Account) ValuesForField(fieldID shareddomain.ID) []FieldValue {
	result := make([]FieldValue, 0)
	for _, value := range a.Values {
		if value.Field.ID == fieldID {
			result = append(result, value)
		}
	}
	return result
}

func (a *Account) touch() {
	a.Version++
	a.UpdatedAt = utils.Now()
}

func NewAccountBuilder() *accountBuilder {
	return &accountBuilder{}
}

type accountBuilder struct {
	actions []accountHandler
}

type accountHandler func(v *Account) error

func (b *accountBuilder) WithUserID(value shareddomain.ID) *accountBuilder {
	b.actions = append(b.actions, func(d *Account) error {
		d.UserID = value
		return nil
	})
	return b
}

func (b *accountBuilder) WithRiskTypeID(value shareddomain.ID) *accountBuilder {
	b.actions = append(b.actions, func(d *Account) error {
		d.RiskTypeID = value
		return nil
	})
	return b
}

func (b *accountBuilder) Build() (Account, error) {
	now := utils.Now()
	result := Account{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		Version:   1,
		Values:    make([]FieldValue, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return Account{}, err
		}
	}

	if result.UserID == "" {
		return Account{}, ErrUserIDRequired
	}

	if result.RiskTypeID == "" {
		return Account{}, ErrRiskTypeIDRequired
	}

	return result, nil
}
