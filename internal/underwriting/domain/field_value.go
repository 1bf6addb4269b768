package domain

import (
	shareddomain "insurance-server/internal/shared_kernel/domain"
)

// FieldValue is the raw string stored for one field of one account. Nothing checks it
// against Field on the way in; callers validate first if they care.
type FieldValue struct {
	ID        shareddomain.ID
	AccountID shareddomain.ID
	Field     FieldDefinition
	Value     string
}

func (fv *FieldValue) SetValue(value string) {
	fv.Value = value
}

func (fv FieldValue) RenderEdit() (string, error) {
	behavior, err := fv.Field.Behavior()
	if err != nil {
		return "", err
	}
	return behavior.RenderEdit(fv.context()), nil
}

func (fv FieldValue) RenderDisplay() (string, error) {
	behavior, err := fv.Field.Behavior()
	if err != nil {
		return "", err
	}
	return behavior.RenderDisplay(fv.context()), nil
}

// IsValid runs the definition's validation against the stored value.
func (fv FieldValue) IsValid() (bool, error) {
	return fv.Field.Validate(fv.Value)
}

func (fv FieldValue) context() FieldContext {
	return FieldContext{
		Value:         fv.Value,
		AllowedValues: fv.Field.AllowedValues(),
	}
}
