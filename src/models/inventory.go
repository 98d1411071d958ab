package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ============ INVENTORY MODEL ============

// Inventory is the single source of truth for on-hand stock, keyed by
// (product, warehouse). Quantity never goes below zero.
//
// ReservedQty is informational only: the direct-edit path may set it, but the
// reconciliation engine neither reads nor writes it.
type Inventory struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_product_warehouse,priority:1" json:"productId"`
	WarehouseID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_product_warehouse,priority:2" json:"warehouseId"`

	Quantity    int    `gorm:"not null;default:0" json:"quantity"`
	ReservedQty int    `gorm:"not null;default:0" json:"reservedQty"`
	Location    string `gorm:"type:varchar(100)" json:"location"`

	LastUpdated time.Time `gorm:"not null" json:"lastUpdated"`
	CreatedAt   time.Time `json:"createdAt"`

	Product   *Product   `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Warehouse *Warehouse `gorm:"foreignKey:WarehouseID" json:"warehouse,omitempty"`
}

func (Inventory) TableName() string {
	return "inventories"
}

// ============ STOCK MOVEMENT MODEL ============

type MovementType string

const (
	MovementIn  MovementType = "IN"
	MovementOut MovementType = "OUT"
)

func (t MovementType) IsValid() bool {
	return t == MovementIn || t == MovementOut
}

// StockMovement is the append-only history of every quantity change applied
// to the ledger. Rows are never updated or deleted.
type StockMovement struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	ProductID   uuid.UUID    `gorm:"type:uuid;not null;index" json:"productId"`
	WarehouseID uuid.UUID    `gorm:"type:uuid;not null;index" json:"warehouseId"`
	Type        MovementType `gorm:"type:varchar(10);not null" json:"type"`
	Quantity    int          `gorm:"not null" json:"quantity"`
	Reference   string       `gorm:"type:varchar(50);index" json:"reference"`
	Notes       *string      `gorm:"type:text" json:"notes,omitempty"`
	UserID      uuid.UUID    `gorm:"type:uuid;not null" json:"userId"`
	CreatedAt   time.Time    `json:"createdAt"`
}

func (StockMovement) TableName() string {
	return "stock_movements"
}

// ============ AUDIT LOG MODEL ============

// AuditLog captures before/after snapshots of every mutation for compliance
// review. Append-only.
type AuditLog struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"userId"`
	Action    string          `gorm:"type:varchar(20);not null" json:"action"`
	Entity    string          `gorm:"type:varchar(30);not null;index" json:"entity"`
	EntityID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"entityId"`
	OldValues json.RawMessage `gorm:"type:jsonb" json:"oldValues,omitempty"`
	NewValues json.RawMessage `gorm:"type:jsonb" json:"newValues,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
