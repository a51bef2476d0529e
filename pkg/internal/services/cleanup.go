package services

import (
	"github.com/inkwellhq/inkwell/pkg/internal/database"
	"github.com/rs/zerolog/log"
)

// DoAutoDatabaseCleanup hard-deletes rows that were soft-deleted, they
// are invisible to every query anyway.
func DoAutoDatabaseCleanup() {
	deletion := int64(0)
	for _, model := range database.AutoMaintainRange {
		tx := database.C.Unscoped().Delete(model, "deleted_at IS NOT NULL")
		if tx.Error != nil {
			log.Error().Err(tx.Error).Msg("An error occurred when running auto database cleanup...")
			continue
		}
		deletion += tx.RowsAffected
	}

	log.Debug().Int64("deleted", deletion).Msg("Auto database cleanup finished.")
}
