package avro

import (
	"time"

	shareddomain "insurance-server/internal/shared_kernel/domain"
	underwriting "insurance-server/internal/underwriting/domain"
)

// Avro-compatible message structs that match the Avro schemas

type AvroFieldDefinition struct {
	ID        string `avro:"id"`
	Name      string `avro:"name"`
	Format    string `avro:"format"`
	RawValues string `avro:"raw_values"`
	Position  int    `avro:"position"`
}

type AvroRiskType struct {
	ID        string                `avro:"id"`
	Version   int64                 `avro:"version"`
	Name      string                `avro:"name"`
	Fields    []AvroFieldDefinition `avro:"fields"`
	Deleted   bool                  `avro:"deleted"`
	CreatedAt time.Time             `avro:"created_at"`
	UpdatedAt time.Time             `avro:"updated_at"`
}

type AvroFieldValue struct {
	ID      string `avro:"id"`
	FieldID string `avro:"field_id"`
	Value   string `avro:"value"`
}

type AvroAccount struct {
	ID         string           `avro:"id"`
	Version    int64            `avro:"version"`
	UserID     string           `avro:"user_id"`
	RiskTypeID string           `avro:"risk_type_id"`
	Values     []AvroFieldValue `avro:"values"`
	Deleted    bool             `avro:"deleted"`
	CreatedAt  time.Time        `avro:"created_at"`
	UpdatedAt  time.Time        `avro:"updated_at"`
}

type AvroUser struct {
	ID        string    `avro:"id"`
	Username  string    `avro:"username"`
	CreatedAt time.Time `avro:"created_at"`
}

func ToAvroRiskType(riskType underwriting.RiskType) *AvroRiskType {
	fields := make([]AvroFieldDefinition, len(riskType.Fields))
	for i, field := range riskType.Fields {
		fields[i] = AvroFieldDefinition{
			ID:        field.ID.String(),
			Name:      string(field.Name),
			Format:    field.Format.String(),
			RawValues: field.RawValues,
			Position:  field.Position,
		}
	}

	return &AvroRiskType{
		ID:        riskType.ID.String(),
		Version:   int64(riskType.Version),
		Name:      string(riskType.Name),
		Fields:    fields,
		CreatedAt: riskType.CreatedAt.Time,
		UpdatedAt: riskType.UpdatedAt.Time,
	}
}

func ToAvroAccount(account underwriting.Account) *AvroAccount {
	values := make([]AvroFieldValue, len(account.Values))
	for i, value := range account.Values {
		values[i] = AvroFieldValue{
			ID:      value.ID.String(),
			FieldID: value.Field.ID.String(),
			Value:   value.Value,
		}
	}

	return &AvroAccount{
		ID:         account.ID.String(),
		Version:    int64(account.Version),
		UserID:     account.UserID.String(),
		RiskTypeID: account.RiskTypeID.String(),
		Values:     values,
		CreatedAt:  account.CreatedAt.Time,
		UpdatedAt:  account.UpdatedAt.Time,
	}
}

func ToAvroUser(user shareddomain.User) *AvroUser {
	return &AvroUser{
		ID:        user.ID.String(),
		Username:  string(user.Username),
		CreatedAt: user.CreatedAt.Time,
	}
}
