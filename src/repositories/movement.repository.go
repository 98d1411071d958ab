package repositories

import (
	"gorm.io/gorm"

	"github.com/Henok-Demissie/Ethio-tele-wms/src/models"
)

type StockMovementRepository struct {
	DB *gorm.DB
}

// Append writes one movement row. Movements are never updated or deleted.
func (r *StockMovementRepository) Append(tx *gorm.DB, movement *models.StockMovement) error {
	return tx.Create(movement).Error
}

// ListByReference returns all movements recorded against one order number.
func (r *StockMovementRepository) ListByReference(reference string) ([]models.StockMovement, error) {
	var movements []models.StockMovement
	err := r.DB.
		Where("reference = ?", reference).
		Order("created_at ASC").
		Find(&movements).Error
	return movements, err
}
