package internal

import (
	"sort"
	"time"

	"insurance-server/internal/infra/utils"
	shareddomain "insurance-server/internal/shared_kernel/domain"
	"insurance-server/internal/underwriting/domain"
)

type Account struct {
	ID         string       `json:"id" gorm:"primaryKey"`
	Version    int          `json:"version"`
	UserID     string       `json:"user_id" gorm:"index;not null"`
	RiskTypeID string       `json:"risk_type_id" gorm:"index;not null"`
	RiskType   RiskType     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Values     []FieldValue `json:"values" gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time    `json:"created_at" gorm:"index"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

func (Account) TableName() string {
	return "accounts"
}

// ToDomain expects Values and Values.FieldDefinition to be preloaded.
func (s Account) ToDomain() domain.Account {
	values := make([]FieldValue, len(s.Values))
	copy(values, s.Values)
	sort.SliceStable(values, func(i, j int) bool {
		return values[i].Sequence < values[j].Sequence
	})

	result := make([]domain.FieldValue, len(values))
	for i, value := range values {
		result[i] = value.ToDomain()
	}

	return domain.Account{
		ID:         shareddomain.ID(s.ID),
		Version:    shareddomain.Version(s.Version),
		UserID:     shareddomain.ID(s.UserID),
		RiskTypeID: shareddomain.ID(s.RiskTypeID),
		Values:     result,
		CreatedAt:  utils.Time{Time: s.CreatedAt},
		UpdatedAt:  utils.Time{Time: s.UpdatedAt},
	}
}

// FromAccount maps the account row only. Values are written separately.
func FromAccount(value domain.Account) Account {
	return Account{
		ID:         value.ID.String(),
		Version:    int(value.Version),
		UserID:     value.UserID.String(),
		RiskTypeID: value.RiskTypeID.String(),
		CreatedAt:  value.CreatedAt.Time,
		UpdatedAt:  value.UpdatedAt.Time,
	}
}

type FieldValue struct {
	ID                string          `json:"id" gorm:"primaryKey"`
	AccountID         string          `json:"account_id" gorm:"index;not null"`
	FieldDefinitionID string          `json:"field_definition_id" gorm:"index;not null"`
	FieldDefinition   FieldDefinition `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Value             string          `json:"value"`
	Sequence          int             `json:"sequence"`
}

func (FieldValue) TableName() string {
	return "field_values"
}

func (s FieldValue) ToDomain() domain.FieldValue {
	return domain.FieldValue{
		ID:        shareddomain.ID(s.ID),
		AccountID: shareddomain.ID(s.AccountID),
		Field:     s.FieldDefinition.ToDomain(),
		Value:     s.Value,
	}
}

func FromFieldValue(value domain.FieldValue, sequence int) FieldValue {
	return FieldValue{
		ID:                value.ID.String(),
		AccountID:         value.AccountID.String(),
		FieldDefinitionID: value.Field.ID.String(),
		Value:             value.Value,
		Sequence:          sequence,
	}
}
