package avro

import (
	"fmt"
	"reflect"

	shareddomain "insurance-server/internal/shared_kernel/domain"
	underwriting "insurance-server/internal/underwriting/domain"

	"github.com/hamba/avro/v2"
)

const (
	riskTypeSchemaName = "RiskType"
	accountSchemaName  = "Account"
	userSchemaName     = "User"
)

// Static Avro schemas for all message types
const (
	riskTypeSchema = `{
		"type": "record",
		"name": "RiskType",
		"namespace": "insurance.underwriting",
		"fields": [
			{"name": "id", "type": "string"},
			{"name": "version", "type": "long"},
			{"name": "name", "type": "string"},
			{"name": "fields", "type": {"type": "array", "items": {
				"type": "record",
				"name": "FieldDefinition",
				"fields": [
					{"name": "id", "type": "string"},
					{"name": "name", "type": "string"},
					{"name": "format", "type": "string"},
					{"name": "raw_values", "type": "string"},
					{"name": "position", "type": "int"}
				]
			}}},
			{"name": "deleted", "type": "boolean", "default": false},
			{"name": "created_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "updated_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
		]
	}`

	accountSchema = `{
		"type": "record",
		"name": "Account",
		"namespace": "insurance.underwriting",
		"fields": [
			{"name": "id", "type": "string"},
			{"name": "version", "type": "long"},
			{"name": "user_id", "type": "string"},
			{"name": "risk_type_id", "type": "string"},
			{"name": "values", "type": {"type": "array", "items": {
				"type": "record",
				"name": "FieldValue",
				"fields": [
					{"name": "id", "type": "string"},
					{"name": "field_id", "type": "string"},
					{"name": "value", "type": "string"}
				]
			}}},
			{"name": "deleted", "type": "boolean", "default": false},
			{"name": "created_at", "type": {"type": "long", "logicalType": "timestamp-millis"}},
			{"name": "updated_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
		]
	}`

	userSchema = `{
		"type": "record",
		"name": "User",
		"namespace": "insurance.identity",
		"fields": [
			{"name": "id", "type": "string"},
			{"name": "username", "type": "string"},
			{"name": "created_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
		]
	}`
)

var schemaDefinitions = map[string]string{
	riskTypeSchemaName: riskTypeSchema,
	accountSchemaName:  accountSchema,
	userSchemaName:     userSchema,
}

// schemaNameFor maps a domain value, its Avro struct, or a pointer to either onto a schema name.
func schemaNameFor(value any) (string, error) {
	if value == nil {
		return "", fmt.Errorf("no Avro schema for nil value")
	}

	valueType := reflect.TypeOf(value)
	if valueType.Kind() == reflect.Ptr {
		valueType = valueType.Elem()
	}

	switch valueType {
	case reflect.TypeOf(AvroRiskType{}), reflect.TypeOf(underwriting.RiskType{}):
		return riskTypeSchemaName, nil
	case reflect.TypeOf(AvroAccount{}), reflect.TypeOf(underwriting.Account{}):
		return accountSchemaName, nil
	case reflect.TypeOf(AvroUser{}), reflect.TypeOf(shareddomain.User{}):
		return userSchemaName, nil
	default:
		return "", fmt.Errorf("no Avro schema found for message type: %s", valueType.Name())
	}
}

// toAvroStruct converts domain values to their Avro struct and passes Avro structs through.
func toAvroStruct(value any) (any, error) {
	switch v := value.(type) {
	case *AvroRiskType, *AvroAccount, *AvroUser:
		return v, nil
	case AvroRiskType:
		return &v, nil
	case AvroAccount:
		return &v, nil
	case AvroUser:
		return &v, nil
	case underwriting.RiskType:
		return ToAvroRiskType(v), nil
	case *underwriting.RiskType:
		return ToAvroRiskType(*v), nil
	case underwriting.Account:
		return ToAvroAccount(v), nil
	case *underwriting.Account:
		return ToAvroAccount(*v), nil
	case shareddomain.User:
		return ToAvroUser(v), nil
	case *shareddomain.User:
		return ToAvroUser(*v), nil
	default:
		return nil, fmt.Errorf("unsupported message type for Avro conversion: %T", value)
	}
}

func newAvroInstance(schemaName string) any {
	switch schemaName {
	case riskTypeSchemaName:
		return &AvroRiskType{}
	case accountSchemaName:
		return &AvroAccount{}
	default:
		return &AvroUser{}
	}
}

// AvroCodec implements goka.Codec using static Avro schemas
type AvroCodec struct {
	schemaName string
	schemas    map[string]avro.Schema
}

// NewAvroCodec creates a codec that decodes into the Avro struct matching prototype.
func NewAvroCodec(prototype any) *AvroCodec {
	schemas := make(map[string]avro.Schema, len(schemaDefinitions))
	for name, definition := range schemaDefinitions {
		schemas[name] = avro.MustParse(definition)
	}

	schemaName, _ := schemaNameFor(prototype)

	return &AvroCodec{
		schemaName: schemaName,
		schemas:    schemas,
	}
}

func (c *AvroCodec) Encode(value any) ([]byte, error) {
	schemaName, err := schemaNameFor(value)
	if err != nil {
		return nil, fmt.Errorf("getting schema: %w", err)
	}

	avroValue, err := toAvroStruct(value)
	if err != nil {
		return nil, fmt.Errorf("converting to Avro struct: %w", err)
	}

	data, err := avro.Marshal(c.schemas[schemaName], avroValue)
	if err != nil {
		return nil, fmt.Errorf("marshaling to Avro: %w", err)
	}

	return data, nil
}

// Decode returns a pointer to the Avro struct of the codec's prototype.
func (c *AvroCodec) Decode(data []byte) (any, error) {
	schema, exists := c.schemas[c.schemaName]
	if !exists {
		return nil, fmt.Errorf("no Avro schema found for prototype %q", c.schemaName)
	}

	instance := newAvroInstance(c.schemaName)
	if err := avro.Unmarshal(schema, data, instance); err != nil {
		return nil, fmt.Errorf("unmarshaling from Avro: %w", err)
	}

	return instance, nil
}
