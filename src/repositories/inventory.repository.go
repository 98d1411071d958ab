package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Henok-Demissie/Ethio-tele-wms/src/apperrors"
	"github.com/Henok-Demissie/Ethio-tele-wms/src/models"
)

type InventoryRepository struct {
	DB *gorm.DB
}

// FindByID loads a single inventory row.
func (r *InventoryRepository) FindByID(tx *gorm.DB, id uuid.UUID) (*models.Inventory, error) {
	var inv models.Inventory
	err := tx.First(&inv, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("inventory item not found")
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// FindByProductAndWarehouse looks up the row for a (product, warehouse) pair.
// Returns nil, nil when no row exists yet.
func (r *InventoryRepository) FindByProductAndWarehouse(tx *gorm.DB, productID, warehouseID uuid.UUID) (*models.Inventory, error) {
	var inv models.Inventory
	err := tx.
		Where("product_id = ? AND warehouse_id = ?", productID, warehouseID).
		First(&inv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// Create inserts a new inventory row.
func (r *InventoryRepository) Create(tx *gorm.DB, inv *models.Inventory) error {
	return tx.Create(inv).Error
}

// AddQuantity atomically credits quantity for a (product, warehouse) pair.
// Returns the number of rows updated (0 when the pair has no row yet).
func (r *InventoryRepository) AddQuantity(tx *gorm.DB, productID, warehouseID uuid.UUID, quantity int) (int64, error) {
	result := tx.Model(&models.Inventory{}).
		Where("product_id = ? AND warehouse_id = ?", productID, warehouseID).
		Updates(map[string]interface{}{
			"quantity":     gorm.Expr("quantity + ?", quantity),
			"last_updated": time.Now(),
		})
	return result.RowsAffected, result.Error
}

// DebitQuantity atomically debits quantity, guarded so the row can never go
// negative. Returns false when available stock was insufficient at write time.
func (r *InventoryRepository) DebitQuantity(tx *gorm.DB, productID, warehouseID uuid.UUID, quantity int) (bool, error) {
	result := tx.Model(&models.Inventory{}).
		Where("product_id = ? AND warehouse_id = ? AND quantity >= ?", productID, warehouseID, quantity).
		Updates(map[string]interface{}{
			"quantity":     gorm.Expr("quantity - ?", quantity),
			"last_updated": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Update persists changes to an existing row.
func (r *InventoryRepository) Update(tx *gorm.DB, inv *models.Inventory) error {
	return tx.Save(inv).Error
}

// Delete hard-deletes an inventory row.
func (r *InventoryRepository) Delete(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&models.Inventory{}, "id = ?", id).Error
}

// PairExists reports whether another row already covers the same
// (product, warehouse) pair, excluding the given row id.
func (r *InventoryRepository) PairExists(tx *gorm.DB, productID, warehouseID, excludeID uuid.UUID) (bool, error) {
	var count int64
	err := tx.Model(&models.Inventory{}).
		Where("product_id = ? AND warehouse_id = ? AND id != ?", productID, warehouseID, excludeID).
		Count(&count).Error
	return count > 0, err
}

// List returns all inventory rows with product and warehouse preloaded,
// most recently updated first.
func (r *InventoryRepository) List() ([]models.Inventory, error) {
	var items []models.Inventory
	err := r.DB.
		Preload("Product").
		Preload("Warehouse").
		Order("last_updated DESC").
		Find(&items).Error
	return items, err
}

// ListLowStock returns rows whose quantity has fallen to or below the
// product's minimum stock threshold.
func (r *InventoryRepository) ListLowStock() ([]models.Inventory, error) {
	var items []models.Inventory
	err := r.DB.
		Joins("JOIN products ON products.id = inventories.product_id").
		Where("inventories.quantity <= products.min_stock AND products.is_active = ?", true).
		Preload("Product").
		Preload("Warehouse").
		Order("inventories.quantity ASC").
		Find(&items).Error
	return items, err
}
