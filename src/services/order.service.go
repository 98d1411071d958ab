package services

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Henok-Demissie/Ethio-tele-wms/src/apperrors"
	"github.com/Henok-Demissie/Ethio-tele-wms/src/models"
	"github.com/Henok-Demissie/Ethio-tele-wms/src/repositories"
)

// OrderItemInput is one product line on a creation request.
type OrderItemInput struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
}

// OrderService owns the lifecycle of stock-in receipts and stock-out
// requests up to (but not including) reconciliation. Creation never touches
// inventory.
type OrderService struct {
	DB         *gorm.DB
	Orders     *repositories.OrderRepository
	Suppliers  *repositories.SupplierRepository
	Warehouses *repositories.WarehouseRepository
	Audits     *repositories.AuditLogRepository
	Log        *zap.Logger
}

// CreateStockInReceipt creates a PENDING purchase order with its line items.
func (s *OrderService) CreateStockInReceipt(actingUserID, supplierID, warehouseID uuid.UUID, items []OrderItemInput, notes *string, expectedDate *time.Time) (*models.Order, error) {
	if actingUserID == uuid.Nil {
		return nil, apperrors.Unauthenticated("acting user is required")
	}
	if supplierID == uuid.Nil || warehouseID == uuid.Nil || len(items) == 0 {
		return nil, apperrors.InvalidArgument("supplier, warehouse, and items are required")
	}

	orderItems, totalAmount, err := buildOrderItems(items, false)
	if err != nil {
		return nil, err
	}

	var order *models.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.Suppliers.FindByID(tx, supplierID); err != nil {
			if apperrors.KindOf(err) == apperrors.KindNotFound {
				return apperrors.InvalidArgument("supplier does not exist")
			}
			return err
		}
		if _, err := s.Warehouses.FindByID(tx, warehouseID); err != nil {
			if apperrors.KindOf(err) == apperrors.KindNotFound {
				return apperrors.InvalidArgument("warehouse does not exist")
			}
			return err
		}

		order = &models.Order{
			OrderNumber:  generateOrderNumber("REC"),
			Type:         models.OrderTypePurchase,
			Status:       models.OrderStatusPending,
			SupplierID:   &supplierID,
			WarehouseID:  warehouseID,
			TotalAmount:  totalAmount,
			Notes:        notes,
			ExpectedDate: expectedDate,
			CreatedByID:  actingUserID,
			Items:        orderItems,
		}
		if err := s.Orders.CreateWithItems(tx, order); err != nil {
			return err
		}

		return s.appendCreateAudit(tx, actingUserID, order, len(items))
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("stock-in receipt created",
		zap.String("order_number", order.OrderNumber),
		zap.Int("items", len(items)))

	return order, nil
}

// CreateStockOutRequest creates a PENDING sale order with its line items.
// Unit price defaults to zero; stock-out does not require pricing.
func (s *OrderService) CreateStockOutRequest(actingUserID, warehouseID uuid.UUID, reason models.StockOutReason, items []OrderItemInput, notes *string) (*models.Order, error) {
	if actingUserID == uuid.Nil {
		return nil, apperrors.Unauthenticated("acting user is required")
	}
	if warehouseID == uuid.Nil || len(items) == 0 {
		return nil, apperrors.InvalidArgument("warehouse and items are required")
	}
	if !reason.IsValid() {
		return nil, apperrors.InvalidArgument("invalid stock-out reason")
	}

	orderItems, totalAmount, err := buildOrderItems(items, true)
	if err != nil {
		return nil, err
	}

	var order *models.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.Warehouses.FindByID(tx, warehouseID); err != nil {
			if apperrors.KindOf(err) == apperrors.KindNotFound {
				return apperrors.InvalidArgument("warehouse does not exist")
			}
			return err
		}

		order = &models.Order{
			OrderNumber: generateOrderNumber("REQ"),
			Type:        models.OrderTypeSale,
			Status:      models.OrderStatusPending,
			WarehouseID: warehouseID,
			TotalAmount: totalAmount,
			Reason:      &reason,
			Notes:       notes,
			CreatedByID: actingUserID,
			Items:       orderItems,
		}
		if err := s.Orders.CreateWithItems(tx, order); err != nil {
			return err
		}

		return s.appendCreateAudit(tx, actingUserID, order, len(items))
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("stock-out request created",
		zap.String("order_number", order.OrderNumber),
		zap.Int("items", len(items)))

	return order, nil
}

// ListStockInReceipts returns all purchase orders, newest first.
func (s *OrderService) ListStockInReceipts() ([]models.Order, error) {
	return s.Orders.ListByType(models.OrderTypePurchase)
}

// ListStockOutRequests returns all sale orders, newest first.
func (s *OrderService) ListStockOutRequests() ([]models.Order, error) {
	return s.Orders.ListByType(models.OrderTypeSale)
}

func (s *OrderService) appendCreateAudit(tx *gorm.DB, actingUserID uuid.UUID, order *models.Order, itemCount int) error {
	newValues, err := json.Marshal(map[string]interface{}{
		"orderNumber": order.OrderNumber,
		"type":        order.Type,
		"warehouseId": order.WarehouseID,
		"totalAmount": order.TotalAmount,
		"itemsCount":  itemCount,
	})
	if err != nil {
		return err
	}

	return s.Audits.Append(tx, &models.AuditLog{
		UserID:    actingUserID,
		Action:    "CREATE",
		Entity:    "ORDER",
		EntityID:  order.ID,
		NewValues: newValues,
	})
}

// buildOrderItems validates the inputs and fixes each line's total price at
// creation time. priceOptional lets stock-out lines omit pricing.
func buildOrderItems(items []OrderItemInput, priceOptional bool) ([]models.OrderItem, decimal.Decimal, error) {
	orderItems := make([]models.OrderItem, 0, len(items))
	totalAmount := decimal.Zero

	for _, item := range items {
		if item.ProductID == uuid.Nil {
			return nil, decimal.Zero, apperrors.InvalidArgument("item product is required")
		}
		if item.Quantity <= 0 {
			return nil, decimal.Zero, apperrors.InvalidArgument("item quantity must be positive")
		}
		if item.UnitPrice.IsNegative() {
			return nil, decimal.Zero, apperrors.InvalidArgument("item unit price cannot be negative")
		}
		if !priceOptional && item.UnitPrice.IsZero() {
			return nil, decimal.Zero, apperrors.InvalidArgument("item unit price is required")
		}

		totalPrice := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		totalAmount = totalAmount.Add(totalPrice)

		orderItems = append(orderItems, models.OrderItem{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: totalPrice,
		})
	}

	return orderItems, totalAmount, nil
}

// generateOrderNumber builds a human-readable order number. The random
// suffix keeps concurrent creations from colliding on the same millisecond.
func generateOrderNumber(prefix string) string {
	suffix := make([]byte, 2)
	_, _ = rand.Read(suffix)
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), hex.EncodeToString(suffix))
}
