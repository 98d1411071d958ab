package requests

import (
	"time"

	"github.com/google/uuid"
)

// ============ STOCK-IN ============

type StockInItemRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	UnitPrice float64   `json:"unitPrice" binding:"required,gt=0"`
}

type CreateStockInRequest struct {
	SupplierID   uuid.UUID            `json:"supplierId" binding:"required"`
	WarehouseID  uuid.UUID            `json:"warehouseId" binding:"required"`
	ExpectedDate *time.Time           `json:"expectedDate,omitempty"`
	Notes        *string              `json:"notes,omitempty"`
	Items        []StockInItemRequest `json:"items" binding:"required,min=1,dive"`
}

type ReceivedItemRequest struct {
	ProductID        uuid.UUID `json:"productId" binding:"required"`
	ReceivedQuantity *int      `json:"receivedQuantity,omitempty"`
	Location         *string   `json:"location,omitempty"`
}

type ProcessStockInRequest struct {
	OrderID       uuid.UUID             `json:"orderId" binding:"required"`
	ReceivedItems []ReceivedItemRequest `json:"receivedItems" binding:"required,min=1,dive"`
}

// ============ STOCK-OUT ============

type StockOutItemRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	UnitPrice *float64  `json:"unitPrice,omitempty"`
}

type CreateStockOutRequest struct {
	WarehouseID uuid.UUID             `json:"warehouseId" binding:"required"`
	Reason      string                `json:"reason" binding:"required,oneof=SALE TRANSFER DAMAGED EXPIRED OTHER"`
	Notes       *string               `json:"notes,omitempty"`
	Items       []StockOutItemRequest `json:"items" binding:"required,min=1,dive"`
}
