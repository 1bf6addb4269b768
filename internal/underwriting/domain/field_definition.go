package domain

import (
	"fmt"
	"strings"

	"insurance-server/internal/infra/utils"
	shareddomain "insurance-server/internal/shared_kernel/domain"
)

const allowedValuesSeparator = "\n"

type FieldDefinition struct {
	ID         shareddomain.ID
	RiskTypeID shareddomain.ID
	Name       shareddomain.Name
	Format     FieldFormat
	RawValues  string
	Position   int
}

// AllowedValues splits RawValues on newlines, keeping order and empty entries.
// Only the Enum format reads it.
func (fd FieldDefinition) AllowedValues() []string {
	return strings.Split(fd.RawValues, allowedValuesSeparator)
}

func (fd FieldDefinition) Behavior() (FieldBehavior, error) {
	behavior, err := ResolveBehavior(fd.Format)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", string(fd.Name), err)
	}
	return behavior, nil
}

// Validate reports whether value is acceptable for this field. A false result is not an error;
// the only error is a format with no registered behavior.
func (fd FieldDefinition) Validate(value string) (bool, error) {
	behavior, err := fd.Behavior()
	if err != nil {
		return false, err
	}

	return behavior.Validate(FieldContext{
		Value:         value,
		AllowedValues: fd.AllowedValues(),
	}), nil
}

func JoinAllowedValues(values []string) string {
	return strings.Join(values, allowedValuesSeparator)
}

func NewFieldDefinitionBuilder() *fieldDefinitionBuilder {
	return &fieldDefinitionBuilder{}
}

type fieldDefinitionBuilder struct {
	actions []fieldDefinitionHandler
}

type fieldDefinitionHandler func(v *FieldDefinition) error

func (b *fieldDefinitionBuilder) WithRiskTypeID(value shareddomain.ID) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		d.RiskTypeID = value
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithName(value string) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		d.Name = shareddomain.Name(value)
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithFormat(value string) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		format, err := ParseFieldFormat(value)
		if err != nil {
			return err
		}
		d.Format = format
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithRawValues(value string) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		d.RawValues = value
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) WithAllowedValues(values ...string) *fieldDefinitionBuilder {
	b.actions = append(b.actions, func(d *FieldDefinition) error {
		d.RawValues = JoinAllowedValues(values)
		return nil
	})
	return b
}

func (b *fieldDefinitionBuilder) Build() (FieldDefinition, error) {
	result := FieldDefinition{
		ID: shareddomain.ID(utils.GenerateUUID()),
	}

	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return FieldDefinition{}, err
		}
	}

	if result.Name == "" {
		return FieldDefinition{}, ErrFieldNameRequired
	}

	if result.Format == "" {
		return FieldDefinition{}, unknownFormatError(result.Format)
	}

	return result, nil
}
