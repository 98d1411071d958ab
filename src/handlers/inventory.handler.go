package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Henok-Demissie/Ethio-tele-wms/src/apperrors"
	"github.com/Henok-Demissie/Ethio-tele-wms/src/requests"
	"github.com/Henok-Demissie/Ethio-tele-wms/src/services"
)

// InventoryHandler exposes the direct-edit path over the ledger.
type InventoryHandler struct {
	Service *services.InventoryService
	Log     *zap.Logger
}

// List handles GET /inventory.
func (h *InventoryHandler) List(c *gin.Context) {
	items, err := h.Service.List()
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"inventoryItems": items})
}

// ListLowStock handles GET /inventory/low-stock.
func (h *InventoryHandler) ListLowStock(c *gin.Context) {
	items, err := h.Service.ListLowStock()
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lowStockItems": items})
}

// Create handles POST /inventory.
func (h *InventoryHandler) Create(c *gin.Context) {
	user, ok := actingUser(c)
	if !ok {
		return
	}

	var req requests.InventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := h.Service.CreateItem(user.ID, services.InventoryItemInput{
		ProductID:   req.ProductID,
		WarehouseID: req.WarehouseID,
		Quantity:    req.Quantity,
		ReservedQty: req.ReservedQty,
		Location:    req.Location,
	})
	if err != nil {
		respondError(c, h.Log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Inventory item added successfully",
		"inventoryItem": item,
	})
}

// Update handles PUT /inventory/:id.
func (h *InventoryHandler) Update(c *gin.Context) {
	user, ok := actingUser(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, h.Log, apperrors.InvalidArgument("invalid inventory id"))
		return
	}

	var req requests.InventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	item, err := h.Service.UpdateItem(user.ID, id, services.InventoryItemInput{
		ProductID:   req.ProductID,
		WarehouseID: req.WarehouseID,
		Quantity:    req.Quantity,
		ReservedQty: req.ReservedQty,
		Location:    req.Location,
	})
	if err != nil {
		respondError(c, h.Log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Inventory item updated successfully",
		"inventoryItem": item,
	})
}

// Delete handles DELETE /inventory/:id.
func (h *InventoryHandler) Delete(c *gin.Context) {
	user, ok := actingUser(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, h.Log, apperrors.InvalidArgument("invalid inventory id"))
		return
	}

	if err := h.Service.DeleteItem(user.ID, id); err != nil {
		respondError(c, h.Log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Inventory item deleted successfully"})
}
