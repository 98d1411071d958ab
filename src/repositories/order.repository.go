package repositories

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Henok-Demissie/Ethio-tele-wms/src/apperrors"
	"github.com/Henok-Demissie/Ethio-tele-wms/src/models"
)

type OrderRepository struct {
	DB *gorm.DB
}

// CreateWithItems inserts the order header together with its line items.
func (r *OrderRepository) CreateWithItems(tx *gorm.DB, order *models.Order) error {
	return tx.Create(order).Error
}

// FindWithItems loads an order with its line items and their products.
// When forUpdate is set the order row is locked for the duration of the
// transaction on engines that support row locks; SQLite serializes writers
// on its own, and the status compare-and-swap remains the hard guard.
func (r *OrderRepository) FindWithItems(tx *gorm.DB, id uuid.UUID, forUpdate bool) (*models.Order, error) {
	query := tx.Preload("Items").Preload("Items.Product").Preload("Warehouse")
	if forUpdate && tx.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "orders"}})
	}

	var order models.Order
	err := query.First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("order not found")
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// TransitionStatus flips the order to a terminal status with a
// compare-and-swap on the current status. Returns false when the order was
// no longer in fromStatus, i.e. another call already processed it.
func (r *OrderRepository) TransitionStatus(tx *gorm.DB, orderID uuid.UUID, fromStatus, toStatus models.OrderStatus, updatedByID uuid.UUID, receivedDate *time.Time) (bool, error) {
	updates := map[string]interface{}{
		"status":        toStatus,
		"updated_by_id": updatedByID,
		"updated_at":    time.Now(),
	}
	if receivedDate != nil {
		updates["received_date"] = *receivedDate
	}

	result := tx.Model(&models.Order{}).
		Where("id = ? AND status = ?", orderID, fromStatus).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ListByType returns all orders of one type, newest first, with items,
// products, supplier, warehouse and nothing else.
func (r *OrderRepository) ListByType(orderType models.OrderType) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.
		Where("type = ?", orderType).
		Preload("Items").
		Preload("Items.Product").
		Preload("Supplier").
		Preload("Warehouse").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// ListSince returns orders of one type created at or after the cutoff,
// with items preloaded. Used by the dashboard's daily aggregates.
func (r *OrderRepository) ListSince(orderType models.OrderType, since time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.
		Where("type = ? AND created_at >= ?", orderType, since).
		Preload("Items").
		Find(&orders).Error
	return orders, err
}

// ListRecent returns the most recent orders of any type.
func (r *OrderRepository) ListRecent(limit int) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.
		Preload("Supplier").
		Preload("Warehouse").
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}
