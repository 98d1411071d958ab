package requests

import "github.com/google/uuid"

// InventoryItemRequest covers both direct-create and direct-update of a
// ledger row.
type InventoryItemRequest struct {
	ProductID   uuid.UUID `json:"productId" binding:"required"`
	WarehouseID uuid.UUID `json:"warehouseId" binding:"required"`
	Quantity    int       `json:"quantity" binding:"min=0"`
	ReservedQty int       `json:"reservedQty" binding:"min=0"`
	Location    string    `json:"location"`
}
