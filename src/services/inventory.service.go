package services

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Henok-Demissie/Ethio-tele-wms/src/apperrors"
	"github.com/Henok-Demissie/Ethio-tele-wms/src/models"
	"github.com/Henok-Demissie/Ethio-tele-wms/src/repositories"
)

// InventoryItemInput carries the fields of a direct inventory edit.
type InventoryItemInput struct {
	ProductID   uuid.UUID
	WarehouseID uuid.UUID
	Quantity    int
	ReservedQty int
	Location    string
}

// InventoryService is the manual-correction path around the ledger. Every
// mutation is paired with an audit entry; deletion additionally writes a
// compensating movement so the movement log still sums to the ledger.
type InventoryService struct {
	DB        *gorm.DB
	Inventory *repositories.InventoryRepository
	Movements *repositories.StockMovementRepository
	Audits    *repositories.AuditLogRepository
	Log       *zap.Logger
}

// List returns all inventory rows, most recently updated first.
func (s *InventoryService) List() ([]models.Inventory, error) {
	return s.Inventory.List()
}

// ListLowStock returns rows at or below their product's minimum threshold.
func (s *InventoryService) ListLowStock() ([]models.Inventory, error) {
	return s.Inventory.ListLowStock()
}

// CreateItem inserts a new ledger row for a (product, warehouse) pair.
func (s *InventoryService) CreateItem(actingUserID uuid.UUID, input InventoryItemInput) (*models.Inventory, error) {
	if actingUserID == uuid.Nil {
		return nil, apperrors.Unauthenticated("acting user is required")
	}
	if err := validateItemInput(input); err != nil {
		return nil, err
	}

	var created *models.Inventory
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		existing, err := s.Inventory.FindByProductAndWarehouse(tx, input.ProductID, input.WarehouseID)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperrors.Conflict("inventory item already exists for this product and warehouse")
		}

		created = &models.Inventory{
			ProductID:   input.ProductID,
			WarehouseID: input.WarehouseID,
			Quantity:    input.Quantity,
			ReservedQty: input.ReservedQty,
			Location:    input.Location,
			LastUpdated: time.Now(),
		}
		if err := s.Inventory.Create(tx, created); err != nil {
			return err
		}

		newValues, err := json.Marshal(itemSnapshot(created))
		if err != nil {
			return err
		}
		return s.Audits.Append(tx, &models.AuditLog{
			UserID:    actingUserID,
			Action:    "CREATE",
			Entity:    "INVENTORY",
			EntityID:  created.ID,
			NewValues: newValues,
		})
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("inventory item created", zap.String("id", created.ID.String()))
	return created, nil
}

// UpdateItem replaces the fields of an existing row, rejecting changes that
// would duplicate another (product, warehouse) pair.
func (s *InventoryService) UpdateItem(actingUserID, id uuid.UUID, input InventoryItemInput) (*models.Inventory, error) {
	if actingUserID == uuid.Nil {
		return nil, apperrors.Unauthenticated("acting user is required")
	}
	if err := validateItemInput(input); err != nil {
		return nil, err
	}

	var updated *models.Inventory
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		existing, err := s.Inventory.FindByID(tx, id)
		if err != nil {
			return err
		}

		duplicate, err := s.Inventory.PairExists(tx, input.ProductID, input.WarehouseID, id)
		if err != nil {
			return err
		}
		if duplicate {
			return apperrors.Conflict("inventory item already exists for this product and warehouse")
		}

		oldValues, err := json.Marshal(itemSnapshot(existing))
		if err != nil {
			return err
		}

		existing.ProductID = input.ProductID
		existing.WarehouseID = input.WarehouseID
		existing.Quantity = input.Quantity
		existing.ReservedQty = input.ReservedQty
		existing.Location = input.Location
		existing.LastUpdated = time.Now()

		if err := s.Inventory.Update(tx, existing); err != nil {
			return err
		}
		updated = existing

		newValues, err := json.Marshal(itemSnapshot(existing))
		if err != nil {
			return err
		}
		return s.Audits.Append(tx, &models.AuditLog{
			UserID:    actingUserID,
			Action:    "UPDATE",
			Entity:    "INVENTORY",
			EntityID:  id,
			OldValues: oldValues,
			NewValues: newValues,
		})
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("inventory item updated", zap.String("id", id.String()))
	return updated, nil
}

// DeleteItem hard-deletes a row. Remaining quantity is recorded as an OUT
// movement so the removal stays visible in the movement history.
func (s *InventoryService) DeleteItem(actingUserID, id uuid.UUID) error {
	if actingUserID == uuid.Nil {
		return apperrors.Unauthenticated("acting user is required")
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		existing, err := s.Inventory.FindByID(tx, id)
		if err != nil {
			return err
		}

		oldValues, err := json.Marshal(itemSnapshot(existing))
		if err != nil {
			return err
		}

		if err := s.Inventory.Delete(tx, id); err != nil {
			return err
		}

		if existing.Quantity > 0 {
			notes := "Inventory row removed by manual correction"
			movement := &models.StockMovement{
				ProductID:   existing.ProductID,
				WarehouseID: existing.WarehouseID,
				Type:        models.MovementOut,
				Quantity:    existing.Quantity,
				Reference:   "MANUAL-DELETE",
				Notes:       &notes,
				UserID:      actingUserID,
			}
			if err := s.Movements.Append(tx, movement); err != nil {
				return err
			}
		}

		return s.Audits.Append(tx, &models.AuditLog{
			UserID:    actingUserID,
			Action:    "DELETE",
			Entity:    "INVENTORY",
			EntityID:  id,
			OldValues: oldValues,
		})
	})
	if err != nil {
		return err
	}

	s.Log.Info("inventory item deleted", zap.String("id", id.String()))
	return nil
}

func validateItemInput(input InventoryItemInput) error {
	if input.ProductID == uuid.Nil || input.WarehouseID == uuid.Nil {
		return apperrors.InvalidArgument("product and warehouse are required")
	}
	if input.Quantity < 0 || input.ReservedQty < 0 {
		return apperrors.InvalidArgument("quantity and reserved quantity cannot be negative")
	}
	if input.ReservedQty > input.Quantity {
		return apperrors.InvalidArgument("reserved quantity cannot exceed quantity")
	}
	return nil
}

func itemSnapshot(inv *models.Inventory) map[string]interface{} {
	return map[string]interface{}{
		"productId":   inv.ProductID,
		"warehouseId": inv.WarehouseID,
		"quantity":    inv.Quantity,
		"reservedQty": inv.ReservedQty,
		"location":    inv.Location,
	}
}
