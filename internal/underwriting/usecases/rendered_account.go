package usecases

import (
	shareddomain "insurance-server/internal/shared_kernel/domain"
	"insurance-server/internal/underwriting/domain"
)

type RenderedFieldValue struct {
	ID        shareddomain.ID
	FieldID   shareddomain.ID
	FieldName shareddomain.Name
	Format    domain.FieldFormat
	Value     string
	Edit      string
	Display   string
	Valid     bool
}

type RenderedAccount struct {
	Account domain.Account
	Values  []RenderedFieldValue
}

func renderFieldValue(value domain.FieldValue) (RenderedFieldValue, error) {
	edit, err := value.RenderEdit()
	if err != nil {
		return RenderedFieldValue{}, err
	}

	display, err := value.RenderDisplay()
	if err != nil {
		return RenderedFieldValue{}, err
	}

	valid, err := value.IsValid()
	if err != nil {
		return RenderedFieldValue{}, err
	}

	return RenderedFieldValue{
		ID:        value.ID,
		FieldID:   value.Field.ID,
		FieldName: value.Field.Name,
		Format:    value.Field.Format,
		Value:     value.Value,
		Edit:      edit,
		Display:   display,
		Valid:     valid,
	}, nil
}
