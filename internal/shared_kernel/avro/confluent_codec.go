package avro

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"insurance-server/internal/infra/cache"

	"github.com/linkedin/goavro/v2"
	"github.com/riferrei/srclient"
)

const (
	_defaultSchemaCacheTTL = 5 * time.Minute
	_defaultCodecCacheTTL  = 5 * time.Minute
	_wireHeaderSize        = 5
)

// SchemaRegistry is the subset of srclient used by the codec
type SchemaRegistry interface {
	GetLatestSchema(subject string) (*srclient.Schema, error)
	CreateSchema(subject string, schema string, schemaType srclient.SchemaType, references ...srclient.Reference) (*srclient.Schema, error)
	GetSchema(schemaID int) (*srclient.Schema, error)
}

func NewSchemaRegistry(url string) SchemaRegistry {
	return srclient.CreateSchemaRegistryClient(url)
}

// ConfluentAvroCodec implements goka.Codec using the Confluent wire format: a zero magic byte,
// the big-endian schema ID, then the Avro binary body.
type ConfluentAvroCodec struct {
	schemaName     string
	schemaRegistry SchemaRegistry
	subjectSuffix  string
	schemaCache    cache.Cache
	codecCache     cache.Cache
}

func NewConfluentAvroCodec(prototype any, schemaRegistry SchemaRegistry) *ConfluentAvroCodec {
	config := &cache.CacheConfig{
		MaxCost:     1 << 20,
		NumCounters: 1e4,
		BufferItems: 64,
	}
	schemaCache, _ := cache.New(config)
	codecCache, _ := cache.New(config)

	schemaName, _ := schemaNameFor(prototype)

	return &ConfluentAvroCodec{
		schemaName:     schemaName,
		schemaRegistry: schemaRegistry,
		subjectSuffix:  "-value",
		schemaCache:    schemaCache,
		codecCache:     codecCache,
	}
}

// getOrRegisterSchemaID gets or registers the schema in the registry and returns its ID
func (c *ConfluentAvroCodec) getOrRegisterSchemaID(schemaName string) (int, error) {
	subject := schemaName + c.subjectSuffix

	ctx := context.Background()
	if cached, found := c.schemaCache.Get(ctx, subject); found {
		if id, ok := cached.(int); ok {
			return id, nil
		}
	}

	registered, err := c.schemaRegistry.GetLatestSchema(subject)
	if err == nil && registered != nil {
		c.schemaCache.Set(ctx, subject, registered.ID(), _defaultSchemaCacheTTL)
		return registered.ID(), nil
	}

	definition, exists := schemaDefinitions[schemaName]
	if !exists {
		return 0, fmt.Errorf("no schema definition for %s", schemaName)
	}

	newSchema, err := c.schemaRegistry.CreateSchema(subject, definition, srclient.Avro)
	if err != nil {
		return 0, fmt.Errorf("registering schema: %w", err)
	}

	c.schemaCache.Set(ctx, subject, newSchema.ID(), _defaultSchemaCacheTTL)
	return newSchema.ID(), nil
}

// getCodecByID fetches the codec for a schema ID from the registry if not cached
func (c *ConfluentAvroCodec) getCodecByID(schemaID int) (*goavro.Codec, error) {
	ctx := context.Background()
	schemaIDKey := fmt.Sprintf("schema_%d", schemaID)

	if cached, found := c.codecCache.Get(ctx, schemaIDKey); found {
		if codec, ok := cached.(*goavro.Codec); ok {
			return codec, nil
		}
	}

	schema, err := c.schemaRegistry.GetSchema(schemaID)
	if err != nil {
		return nil, fmt.Errorf("fetching schema from registry: %w", err)
	}
	codec, err := goavro.NewCodec(schema.Schema())
	if err != nil {
		return nil, fmt.Errorf("creating codec from schema: %w", err)
	}
	c.codecCache.Set(ctx, schemaIDKey, codec, _defaultCodecCacheTTL)
	return codec, nil
}

func (c *ConfluentAvroCodec) Encode(value any) ([]byte, error) {
	schemaName, err := schemaNameFor(value)
	if err != nil {
		return nil, fmt.Errorf("getting schema for message: %w", err)
	}

	avroValue, err := toAvroStruct(value)
	if err != nil {
		return nil, fmt.Errorf("converting to Avro struct: %w", err)
	}

	schemaID, err := c.getOrRegisterSchemaID(schemaName)
	if err != nil {
		return nil, fmt.Errorf("getting schema ID: %w", err)
	}

	codec, err := c.getCodecByID(schemaID)
	if err != nil {
		return nil, fmt.Errorf("getting codec by schema ID: %w", err)
	}

	avroData, err := codec.BinaryFromNative(nil, toNative(avroValue))
	if err != nil {
		return nil, fmt.Errorf("encoding to Avro: %w", err)
	}

	result := make([]byte, _wireHeaderSize+len(avroData))
	result[0] = 0
	binary.BigEndian.PutUint32(result[1:_wireHeaderSize], uint32(schemaID))
	copy(result[_wireHeaderSize:], avroData)

	return result, nil
}

// Decode returns a pointer to the Avro struct of the codec's prototype.
func (c *ConfluentAvroCodec) Decode(data []byte) (any, error) {
	if len(data) < _wireHeaderSize {
		return nil, fmt.Errorf("invalid Avro data: too short")
	}
	if data[0] != 0 {
		return nil, fmt.Errorf("invalid magic byte: expected 0, got %d", data[0])
	}
	schemaID := int(binary.BigEndian.Uint32(data[1:_wireHeaderSize]))

	codec, err := c.getCodecByID(schemaID)
	if err != nil {
		return nil, fmt.Errorf("getting codec by schema ID: %w", err)
	}

	native, _, err := codec.NativeFromBinary(data[_wireHeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("decoding Avro data: %w", err)
	}

	record, ok := native.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("decoding Avro data: expected a record, got %T", native)
	}

	return fromNative(c.schemaName, record), nil
}

func toNative(value any) map[string]any {
	switch v := value.(type) {
	case *AvroRiskType:
		fields := make([]any, len(v.Fields))
		for i, field := range v.Fields {
			fields[i] = map[string]any{
				"id":         field.ID,
				"name":       field.Name,
				"format":     field.Format,
				"raw_values": field.RawValues,
				"position":   int32(field.Position),
			}
		}
		return map[string]any{
			"id":         v.ID,
			"version":    v.Version,
			"name":       v.Name,
			"fields":     fields,
			"deleted":    v.Deleted,
			"created_at": v.CreatedAt,
			"updated_at": v.UpdatedAt,
		}
	case *AvroAccount:
		values := make([]any, len(v.Values))
		for i, value := range v.Values {
			values[i] = map[string]any{
				"id":       value.ID,
				"field_id": value.FieldID,
				"value":    value.Value,
			}
		}
		return map[string]any{
			"id":           v.ID,
			"version":      v.Version,
			"user_id":      v.UserID,
			"risk_type_id": v.RiskTypeID,
			"values":       values,
			"deleted":      v.Deleted,
			"created_at":   v.CreatedAt,
			"updated_at":   v.UpdatedAt,
		}
	case *AvroUser:
		return map[string]any{
			"id":         v.ID,
			"username":   v.Username,
			"created_at": v.CreatedAt,
		}
	default:
		return map[string]any{}
	}
}

func fromNative(schemaName string, record map[string]any) any {
	switch schemaName {
	case riskTypeSchemaName:
		result := &AvroRiskType{
			ID:        getString(record, "id"),
			Version:   getInt64(record, "version"),
			Name:      getString(record, "name"),
			Fields:    make([]AvroFieldDefinition, 0),
			Deleted:   getBool(record, "deleted"),
			CreatedAt: getTime(record, "created_at"),
			UpdatedAt: getTime(record, "updated_at"),
		}
		for _, item := range getRecords(record, "fields") {
			result.Fields = append(result.Fields, AvroFieldDefinition{
				ID:        getString(item, "id"),
				Name:      getString(item, "name"),
				Format:    getString(item, "format"),
				RawValues: getString(item, "raw_values"),
				Position:  int(getInt64(item, "position")),
			})
		}
		return result
	case accountSchemaName:
		result := &AvroAccount{
			ID:         getString(record, "id"),
			Version:    getInt64(record, "version"),
			UserID:     getString(record, "user_id"),
			RiskTypeID: getString(record, "risk_type_id"),
			Values:     make([]AvroFieldValue, 0),
			Deleted:    getBool(record, "deleted"),
			CreatedAt:  getTime(record, "created_at"),
			UpdatedAt:  getTime(record, "updated_at"),
		}
		for _, item := range getRecords(record, "values") {
			result.Values = append(result.Values, AvroFieldValue{
				ID:      getString(item, "id"),
				FieldID: getString(item, "field_id"),
				Value:   getString(item, "value"),
			})
		}
		return result
	default:
		return &AvroUser{
			ID:        getString(record, "id"),
			Username:  getString(record, "username"),
			CreatedAt: getTime(record, "created_at"),
		}
	}
}

func getString(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func getInt64(m map[string]any, key string) int64 {
	switch v := m[key].(type) {
	case int64:
		return v
	case int32:
		return int64(v)
	case int:
		return int64(v)
	default:
		return 0
	}
}

func getBool(m map[string]any, key string) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return false
}

func getTime(m map[string]any, key string) time.Time {
	if v, ok := m[key].(time.Time); ok {
		return v
	}
	return time.Time{}
}

func getRecords(m map[string]any, key string) []map[string]any {
	items, _ := m[key].([]any)
	result := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if record, ok := item.(map[string]any); ok {
			result = append(result, record)
		}
	}
	return result
}
