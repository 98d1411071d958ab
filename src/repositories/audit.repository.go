package repositories

import (
	"gorm.io/gorm"

	"github.com/Henok-Demissie/Ethio-tele-wms/src/models"
)

type AuditLogRepository struct {
	DB *gorm.DB
}

// Append writes one audit entry. Audit logs are append-only.
func (r *AuditLogRepository) Append(tx *gorm.DB, entry *models.AuditLog) error {
	return tx.Create(entry).Error
}

// ListRecent returns the newest audit entries.
func (r *AuditLogRepository) ListRecent(limit int) ([]models.AuditLog, error) {
	var entries []models.AuditLog
	err := r.DB.
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
