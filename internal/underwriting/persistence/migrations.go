package persistence

import (
	"fmt"

	"insurance-server/internal/infra/sql"
	"insurance-server/internal/underwriting/persistence/internal"
)

// migrate creates the underwriting tables parents first so the foreign keys resolve.
func migrate(orm sql.ORM) error {
	err := orm.AutoMigrate(
		&internal.RiskType{},
		&internal.FieldDefinition{},
		&internal.Account{},
		&internal.FieldValue{},
	)
	if err != nil {
		return fmt.Errorf("auto migrating: %w", err)
	}
	return nil
}
