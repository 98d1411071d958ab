package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ============ ENUMS & TYPES ============

type OrderType string

const (
	OrderTypePurchase OrderType = "PURCHASE" // stock-in receipt
	OrderTypeSale     OrderType = "SALE"     // stock-out request
)

func (t OrderType) IsValid() bool {
	switch t {
	case OrderTypePurchase, OrderTypeSale:
		return true
	}
	return false
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusReceived  OrderStatus = "RECEIVED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusReceived, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed from s.
func (s OrderStatus) IsTerminal() bool {
	return s != OrderStatusPending
}

type StockOutReason string

const (
	ReasonSale     StockOutReason = "SALE"
	ReasonTransfer StockOutReason = "TRANSFER"
	ReasonDamaged  StockOutReason = "DAMAGED"
	ReasonExpired  StockOutReason = "EXPIRED"
	ReasonOther    StockOutReason = "OTHER"
)

func (r StockOutReason) IsValid() bool {
	switch r {
	case ReasonSale, ReasonTransfer, ReasonDamaged, ReasonExpired, ReasonOther:
		return true
	}
	return false
}

// ============ ORDER MODEL ============

// Order is the intent record for a stock movement: a PURCHASE order is a
// stock-in receipt, a SALE order is a stock-out request. Inventory is only
// touched when the reconciliation engine processes the order.
type Order struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	OrderNumber string      `gorm:"type:varchar(50);unique;not null" json:"orderNumber"`
	Type        OrderType   `gorm:"type:varchar(20);not null;index" json:"type"`
	Status      OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`

	SupplierID  *uuid.UUID      `gorm:"type:uuid;index" json:"supplierId,omitempty"`
	WarehouseID uuid.UUID       `gorm:"type:uuid;not null;index" json:"warehouseId"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"totalAmount"`

	Reason *StockOutReason `gorm:"type:varchar(20)" json:"reason,omitempty"`
	Notes  *string         `gorm:"type:text" json:"notes,omitempty"`

	ExpectedDate *time.Time `json:"expectedDate,omitempty"`
	ReceivedDate *time.Time `json:"receivedDate,omitempty"`

	CreatedByID uuid.UUID  `gorm:"type:uuid;not null" json:"createdById"`
	UpdatedByID *uuid.UUID `gorm:"type:uuid" json:"updatedById,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Items     []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Supplier  *Supplier   `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Warehouse *Warehouse  `gorm:"foreignKey:WarehouseID" json:"warehouse,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is one product line within an order. TotalPrice is fixed at
// creation time (quantity x unit price), never recomputed.
type OrderItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"orderId"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"productId"`

	Quantity   int             `gorm:"not null" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"unitPrice"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"totalPrice"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
