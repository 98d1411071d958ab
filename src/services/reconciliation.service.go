package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Henok-Demissie/Ethio-tele-wms/src/apperrors"
	"github.com/Henok-Demissie/Ethio-tele-wms/src/models"
	"github.com/Henok-Demissie/Ethio-tele-wms/src/repositories"
)

// ReceivedItem describes what was actually received for one product on a
// stock-in. Quantity falls back to the ordered quantity when nil.
type ReceivedItem struct {
	ProductID uuid.UUID
	Quantity  *int
	Location  *string
}

// ReconciliationService applies a pending order's line items to the
// inventory ledger exactly once, then marks the order terminal. It is the
// only component allowed to derive inventory mutations from order items.
type ReconciliationService struct {
	DB        *gorm.DB
	Orders    *repositories.OrderRepository
	Inventory *repositories.InventoryRepository
	Movements *repositories.StockMovementRepository
	Audits    *repositories.AuditLogRepository
	Log       *zap.Logger
}

// ProcessStockIn credits each received item's quantity to the ledger for the
// order's warehouse, creating inventory rows on first receipt, then flips the
// order to RECEIVED. Received items with no matching order line are skipped.
// The whole operation is one transaction. Returns the processed item count.
func (s *ReconciliationService) ProcessStockIn(actingUserID, orderID uuid.UUID, receivedItems []ReceivedItem) (int, error) {
	if actingUserID == uuid.Nil {
		return 0, apperrors.Unauthenticated("acting user is required")
	}
	if len(receivedItems) == 0 {
		return 0, apperrors.InvalidArgument("received items are required")
	}

	processed := 0

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.Orders.FindWithItems(tx, orderID, true)
		if err != nil {
			return err
		}
		if order.Type != models.OrderTypePurchase {
			return apperrors.InvalidArgument("order is not a stock-in receipt")
		}
		if order.Status.IsTerminal() {
			return apperrors.Conflict("order has already been received")
		}

		for _, received := range receivedItems {
			lineItem := matchLineItem(order.Items, received.ProductID)
			if lineItem == nil {
				// Intentional permissiveness: unknown products on the
				// receiving slip are skipped, not rejected.
				s.Log.Debug("skipping received item with no matching order line",
					zap.String("order_number", order.OrderNumber),
					zap.String("product_id", received.ProductID.String()))
				continue
			}

			quantity := lineItem.Quantity
			if received.Quantity != nil {
				quantity = *received.Quantity
			}
			if quantity <= 0 {
				return apperrors.Newf(apperrors.KindInvalidArgument,
					"received quantity for product %s must be positive", received.ProductID)
			}

			rows, err := s.Inventory.AddQuantity(tx, lineItem.ProductID, order.WarehouseID, quantity)
			if err != nil {
				return err
			}
			if rows == 0 {
				location := "Default"
				if received.Location != nil && *received.Location != "" {
					location = *received.Location
				}
				inv := &models.Inventory{
					ProductID:   lineItem.ProductID,
					WarehouseID: order.WarehouseID,
					Quantity:    quantity,
					ReservedQty: 0,
					Location:    location,
					LastUpdated: time.Now(),
				}
				if err := s.Inventory.Create(tx, inv); err != nil {
					return err
				}
			}

			notes := fmt.Sprintf("Stock-in from %s", order.OrderNumber)
			movement := &models.StockMovement{
				ProductID:   lineItem.ProductID,
				WarehouseID: order.WarehouseID,
				Type:        models.MovementIn,
				Quantity:    quantity,
				Reference:   order.OrderNumber,
				Notes:       &notes,
				UserID:      actingUserID,
			}
			if err := s.Movements.Append(tx, movement); err != nil {
				return err
			}

			processed++
		}

		now := time.Now()
		flipped, err := s.Orders.TransitionStatus(tx, order.ID,
			models.OrderStatusPending, models.OrderStatusReceived, actingUserID, &now)
		if err != nil {
			return err
		}
		if !flipped {
			return apperrors.Conflict("order has already been received")
		}

		return s.appendProcessAudit(tx, actingUserID, order.ID,
			models.OrderStatusPending, models.OrderStatusReceived, processed, &now)
	})
	if err != nil {
		return 0, err
	}

	s.Log.Info("stock-in processed",
		zap.String("order_id", orderID.String()),
		zap.Int("items_processed", processed))

	return processed, nil
}

// ProcessStockOut debits each line item's quantity from the ledger, failing
// the whole operation when any item lacks sufficient stock, then flips the
// order to COMPLETED. One transaction; a late failure rolls back every
// earlier debit. Returns the processed item count.
func (s *ReconciliationService) ProcessStockOut(actingUserID, orderID uuid.UUID) (int, error) {
	if actingUserID == uuid.Nil {
		return 0, apperrors.Unauthenticated("acting user is required")
	}

	processed := 0

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.Orders.FindWithItems(tx, orderID, true)
		if err != nil {
			return err
		}
		if order.Type != models.OrderTypeSale {
			return apperrors.InvalidArgument("order is not a stock-out request")
		}
		if order.Status.IsTerminal() {
			return apperrors.Conflict("order has already been processed")
		}

		for _, item := range order.Items {
			inv, err := s.Inventory.FindByProductAndWarehouse(tx, item.ProductID, order.WarehouseID)
			if err != nil {
				return err
			}
			if inv == nil {
				return apperrors.Newf(apperrors.KindFailedPrecondition,
					"no inventory found for product %s", productLabel(item))
			}
			if inv.Quantity < item.Quantity {
				return apperrors.Newf(apperrors.KindFailedPrecondition,
					"insufficient stock for product %s: available %d, requested %d",
					productLabel(item), inv.Quantity, item.Quantity)
			}

			ok, err := s.Inventory.DebitQuantity(tx, item.ProductID, order.WarehouseID, item.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				// The guarded UPDATE lost a race with a concurrent debit.
				return apperrors.Newf(apperrors.KindFailedPrecondition,
					"insufficient stock for product %s: available %d, requested %d",
					productLabel(item), inv.Quantity, item.Quantity)
			}

			notes := fmt.Sprintf("Stock-out from %s", order.OrderNumber)
			movement := &models.StockMovement{
				ProductID:   item.ProductID,
				WarehouseID: order.WarehouseID,
				Type:        models.MovementOut,
				Quantity:    item.Quantity,
				Reference:   order.OrderNumber,
				Notes:       &notes,
				UserID:      actingUserID,
			}
			if err := s.Movements.Append(tx, movement); err != nil {
				return err
			}

			processed++
		}

		flipped, err := s.Orders.TransitionStatus(tx, order.ID,
			models.OrderStatusPending, models.OrderStatusCompleted, actingUserID, nil)
		if err != nil {
			return err
		}
		if !flipped {
			return apperrors.Conflict("order has already been processed")
		}

		return s.appendProcessAudit(tx, actingUserID, order.ID,
			models.OrderStatusPending, models.OrderStatusCompleted, processed, nil)
	})
	if err != nil {
		return 0, err
	}

	s.Log.Info("stock-out processed",
		zap.String("order_id", orderID.String()),
		zap.Int("items_processed", processed))

	return processed, nil
}

func (s *ReconciliationService) appendProcessAudit(tx *gorm.DB, actingUserID, orderID uuid.UUID, oldStatus, newStatus models.OrderStatus, itemsProcessed int, receivedDate *time.Time) error {
	oldValues, err := json.Marshal(map[string]interface{}{
		"status": oldStatus,
	})
	if err != nil {
		return err
	}

	newSnapshot := map[string]interface{}{
		"status":         newStatus,
		"itemsProcessed": itemsProcessed,
	}
	if receivedDate != nil {
		newSnapshot["receivedDate"] = receivedDate
	}
	newValues, err := json.Marshal(newSnapshot)
	if err != nil {
		return err
	}

	return s.Audits.Append(tx, &models.AuditLog{
		UserID:    actingUserID,
		Action:    "PROCESS",
		Entity:    "ORDER",
		EntityID:  orderID,
		OldValues: oldValues,
		NewValues: newValues,
	})
}

func matchLineItem(items []models.OrderItem, productID uuid.UUID) *models.OrderItem {
	for i := range items {
		if items[i].ProductID == productID {
			return &items[i]
		}
	}
	return nil
}

func productLabel(item models.OrderItem) string {
	if item.Product != nil && item.Product.Name != "" {
		return item.Product.Name
	}
	return item.ProductID.String()
}
