package domain

import (
	"insurance-server/internal/infra/utils"
	shareddomain "insurance-server/internal/shared_kernel/domain"
)

type RiskType struct {
	ID        shareddomain.ID
	Version   shareddomain.Version
	Name      shareddomain.Name
	Fields    []FieldDefinition
	CreatedAt utils.Time
	UpdatedAt utils.Time
}

// AddField attaches field at the end of the field list. Fields keep the order they were added in.
func (rt *RiskType) AddField(field FieldDefinition) FieldDefinition {
	field.RiskTypeID = rt.ID
	field.Position = len(rt.Fields)
	rt.Fields = append(rt.Fields, field)
	rt.Version++
	rt.UpdatedAt = utils.Now()
	return field
}

func (rt RiskType) FieldByID(id shareddomain.ID) (FieldDefinition, bool) {
	for _, field := range rt.Fields {
		if field.ID == id {
			return field, true
		}
	}
	return FieldDefinition{}, false
}

func NewRiskTypeBuilder() *riskTypeBuilder {
	return &riskTypeBuilder{}
}

type riskTypeBuilder struct {
	actions []riskTypeHandler
}

type riskTypeHandler func(v *RiskType) error

func (b *riskTypeBuilder) WithName(value string) *riskTypeBuilder {
	b.actions = append(b.actions, func(d *RiskType) error {
		d.Name = shareddomain.Name(value)
		return nil
	})
	return b
}

func (b *riskTypeBuilder) WithFields(value []FieldDefinition) *riskTypeBuilder {
	b.actions = append(b.actions, func(d *RiskType) error {
		for _, field := range value {
			d.AddField(field)
		}
		return nil
	})
	return b
}

func (b *riskTypeBuilder) Build() (RiskType, error) {
	now := utils.Now()
	result := RiskType{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		Fields:    make([]FieldDefinition, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return RiskType{}, err
		}
	}

	if result.Name == "" {
		return RiskType{}, ErrRiskTypeNameRequired
	}

	result.Version = 1
	return result, nil
}
