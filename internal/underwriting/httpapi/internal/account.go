package internal

import (
	"time"

	"insurance-server/internal/underwriting/domain"
	"insurance-server/internal/underwriting/usecases"
)

type AccountCreateRequest struct {
	UserID     string `json:"user_id"`
	RiskTypeID string `json:"risk_type_id"`
}

type AccountResponse struct {
	ID           string                `json:"id"`
	Version      int                   `json:"version"`
	UserID       string                `json:"user_id"`
	RiskTypeID   string                `json:"risk_type_id"`
	CustomValues []CustomValueResponse `json:"custom_values"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// AccountSummaryResponse leaves the values out, for listings.
type AccountSummaryResponse struct {
	ID         string    `json:"id"`
	Version    int       `json:"version"`
	UserID     string    `json:"user_id"`
	RiskTypeID string    `json:"risk_type_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type CustomValueResponse struct {
	ID        string `json:"id"`
	FieldID   string `json:"field_id"`
	FieldName string `json:"field_name"`
	Format    string `json:"format"`
	Value     string `json:"value"`
	Edit      string `json:"edit"`
	Display   string `json:"display"`
	Valid     bool   `json:"valid"`
}

type SetCustomValueRequest struct {
	Value string `json:"value"`
}

type SetCustomValueResponse struct {
	Valid   bool   `json:"valid"`
	Edit    string `json:"edit"`
	Display string `json:"display"`
}

func ToAccountResponse(rendered usecases.RenderedAccount) AccountResponse {
	values := make([]CustomValueResponse, len(rendered.Values))
	for i, value := range rendered.Values {
		values[i] = ToCustomValueResponse(value)
	}

	return AccountResponse{
		ID:           rendered.Account.ID.String(),
		Version:      int(rendered.Account.Version),
		UserID:       rendered.Account.UserID.String(),
		RiskTypeID:   rendered.Account.RiskTypeID.String(),
		CustomValues: values,
		CreatedAt:    rendered.Account.CreatedAt.Time,
		UpdatedAt:    rendered.Account.UpdatedAt.Time,
	}
}

func ToAccountSummaryResponse(account domain.Account) AccountSummaryResponse {
	return AccountSummaryResponse{
		ID:         account.ID.String(),
		Version:    int(account.Version),
		UserID:     account.UserID.String(),
		RiskTypeID: account.RiskTypeID.String(),
		CreatedAt:  account.CreatedAt.Time,
	}
}

func ToCustomValueResponse(value usecases.RenderedFieldValue) CustomValueResponse {
	return CustomValueResponse{
		ID:        value.ID.String(),
		FieldID:   value.FieldID.String(),
		FieldName: string(value.FieldName),
		Format:    value.Format.String(),
		Value:     value.Value,
		Edit:      value.Edit,
		Display:   value.Display,
		Valid:     value.Valid,
	}
}

func ToSetCustomValueResponse(value usecases.RenderedFieldValue) SetCustomValueResponse {
	return SetCustomValueResponse{
		Valid:   value.Valid,
		Edit:    value.Edit,
		Display: value.Display,
	}
}
