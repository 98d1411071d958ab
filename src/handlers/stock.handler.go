package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Henok-Demissie/Ethio-tele-wms/src/apperrors"
	"github.com/Henok-Demissie/Ethio-tele-wms/src/models"
	"github.com/Henok-Demissie/Ethio-tele-wms/src/requests"
	"github.com/Henok-Demissie/Ethio-tele-wms/src/services"
)

// StockHandler exposes the stock-in/stock-out workflow: creating receipts
// and requests, listing them, and processing them through reconciliation.
type StockHandler struct {
	Orders         *services.OrderService
	Reconciliation *services.ReconciliationService
	Log            *zap.Logger
}

// CreateStockIn handles POST /stock-in.
func (h *StockHandler) CreateStockIn(c *gin.Context) {
	user, ok := actingUser(c)
	if !ok {
		return
	}

	var req requests.CreateStockInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	items := make([]services.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, services.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: decimal.NewFromFloat(item.UnitPrice),
		})
	}

	order, err := h.Orders.CreateStockInReceipt(user.ID, req.SupplierID, req.WarehouseID, items, req.Notes, req.ExpectedDate)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Stock-in receipt created successfully",
		"order":   order,
	})
}

// ListStockIn handles GET /stock-in.
func (h *StockHandler) ListStockIn(c *gin.Context) {
	records, err := h.Orders.ListStockInReceipts()
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stockInRecords": records})
}

// ProcessStockIn handles POST /stock-in/process.
func (h *StockHandler) ProcessStockIn(c *gin.Context) {
	user, ok := actingUser(c)
	if !ok {
		return
	}

	var req requests.ProcessStockInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	received := make([]services.ReceivedItem, 0, len(req.ReceivedItems))
	for _, item := range req.ReceivedItems {
		received = append(received, services.ReceivedItem{
			ProductID: item.ProductID,
			Quantity:  item.ReceivedQuantity,
			Location:  item.Location,
		})
	}

	processed, err := h.Reconciliation.ProcessStockIn(user.ID, req.OrderID, received)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Stock-in processed successfully",
		"orderId":        req.OrderID,
		"processedItems": processed,
	})
}

// CreateStockOut handles POST /stock-out.
func (h *StockHandler) CreateStockOut(c *gin.Context) {
	user, ok := actingUser(c)
	if !ok {
		return
	}

	var req requests.CreateStockOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	items := make([]services.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		unitPrice := decimal.Zero
		if item.UnitPrice != nil {
			unitPrice = decimal.NewFromFloat(*item.UnitPrice)
		}
		items = append(items, services.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: unitPrice,
		})
	}

	order, err := h.Orders.CreateStockOutRequest(user.ID, req.WarehouseID, models.StockOutReason(req.Reason), items, req.Notes)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Stock-out request created successfully",
		"order":   order,
	})
}

// ListStockOut handles GET /stock-out.
func (h *StockHandler) ListStockOut(c *gin.Context) {
	records, err := h.Orders.ListStockOutRequests()
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stockOutRecords": records})
}

// ProcessStockOut handles POST /stock-out/:id/process.
func (h *StockHandler) ProcessStockOut(c *gin.Context) {
	user, ok := actingUser(c)
	if !ok {
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, h.Log, apperrors.InvalidArgument("invalid order id"))
		return
	}

	processed, err := h.Reconciliation.ProcessStockOut(user.ID, orderID)
	if err != nil {
		respondError(c, h.Log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Stock-out processed successfully",
		"orderId":        orderID,
		"processedItems": processed,
	})
}
