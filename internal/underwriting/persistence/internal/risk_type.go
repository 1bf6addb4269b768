package internal

import (
	"sort"
	"time"

	"insurance-server/internal/infra/utils"
	shareddomain "insurance-server/internal/shared_kernel/domain"
	"insurance-server/internal/underwriting/domain"
)

type RiskType struct {
	ID        string            `json:"id" gorm:"primaryKey"`
	Version   int               `json:"version"`
	Name      string            `json:"name" gorm:"not null"`
	Fields    []FieldDefinition `json:"fields" gorm:"foreignKey:RiskTypeID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time         `json:"created_at" gorm:"index"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func (RiskType) TableName() string {
	return "risk_types"
}

// ToDomain returns the risk type with its fields ordered by position.
func (s RiskType) ToDomain() domain.RiskType {
	fields := make([]FieldDefinition, len(s.Fields))
	copy(fields, s.Fields)
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Position < fields[j].Position
	})

	result := make([]domain.FieldDefinition, len(fields))
	for i, field := range fields {
		result[i] = field.ToDomain()
	}

	return domain.RiskType{
		ID:        shareddomain.ID(s.ID),
		Version:   shareddomain.Version(s.Version),
		Name:      shareddomain.Name(s.Name),
		Fields:    result,
		CreatedAt: utils.Time{Time: s.CreatedAt},
		UpdatedAt: utils.Time{Time: s.UpdatedAt},
	}
}

// FromRiskType maps the risk type row only. Fields are written separately.
func FromRiskType(value domain.RiskType) RiskType {
	return RiskType{
		ID:        value.ID.String(),
		Version:   int(value.Version),
		Name:      string(value.Name),
		CreatedAt: value.CreatedAt.Time,
		UpdatedAt: value.UpdatedAt.Time,
	}
}

type FieldDefinition struct {
	ID         string `json:"id" gorm:"primaryKey"`
	RiskTypeID string `json:"risk_type_id" gorm:"index;not null"`
	Name       string `json:"name" gorm:"not null"`
	Format     string `json:"format" gorm:"not null"`
	RawValues  string `json:"raw_values"`
	Position   int    `json:"position"`
}

func (FieldDefinition) TableName() string {
	return "field_definitions"
}

// ToDomain keeps the stored format string as is, so a corrupt row surfaces when it is rendered.
func (s FieldDefinition) ToDomain() domain.FieldDefinition {
	return domain.FieldDefinition{
		ID:         shareddomain.ID(s.ID),
		RiskTypeID: shareddomain.ID(s.RiskTypeID),
		Name:       shareddomain.Name(s.Name),
		Format:     domain.FieldFormat(s.Format),
		RawValues:  s.RawValues,
		Position:   s.Position,
	}
}

func FromFieldDefinition(value domain.FieldDefinition) FieldDefinition {
	return FieldDefinition{
		ID:         value.ID.String(),
		RiskTypeID: value.RiskTypeID.String(),
		Name:       string(value.Name),
		Format:     value.Format.String(),
		RawValues:  value.RawValues,
		Position:   value.Position,
	}
}
