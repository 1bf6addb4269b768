package internal

import (
	"insurance-server/internal/underwriting/domain"
)

type RiskTypeResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	CustomFields []CustomFieldResponse `json:"custom_fields"`
}

type CustomFieldResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Format    string `json:"format"`
	RawValues string `json:"raw_values"`
}

type RiskTypeCreateRequest struct {
	Name string `json:"name"`
}

type CustomFieldCreateRequest struct {
	Name      string `json:"name"`
	Format    string `json:"format"`
	RawValues string `json:"raw_values"`
}

type ValidateValueRequest struct {
	Value string `json:"value"`
}

type ValidateValueResponse struct {
	Valid bool `json:"valid"`
}

func ToRiskTypeResponse(riskType domain.RiskType) RiskTypeResponse {
	fields := make([]CustomFieldResponse, len(riskType.Fields))
	for i, field := range riskType.Fields {
		fields[i] = ToCustomFieldResponse(field)
	}

	return RiskTypeResponse{
		ID:           riskType.ID.String(),
		Name:         string(riskType.Name),
		CustomFields: fields,
	}
}

func ToCustomFieldResponse(field domain.FieldDefinition) CustomFieldResponse {
	return CustomFieldResponse{
		ID:        field.ID.String(),
		Name:      string(field.Name),
		Format:    field.Format.String(),
		RawValues: field.RawValues,
	}
}
