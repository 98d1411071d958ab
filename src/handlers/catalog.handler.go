package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Henok-Demissie/Ethio-tele-wms/src/requests"
	"github.com/Henok-Demissie/Ethio-tele-wms/src/services"
)

// CatalogHandler exposes product, warehouse, and supplier management.
type CatalogHandler struct {
	Service *services.CatalogService
	Log     *zap.Logger
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.Service.ListProducts()
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	if _, ok := actingUser(c); !ok {
		return
	}

	var req requests.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := h.Service.CreateProduct(services.ProductInput{
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Brand:       req.Brand,
		UnitPrice:   decimal.NewFromFloat(req.UnitPrice),
		Weight:      req.Weight,
		Barcode:     req.Barcode,
		MinStock:    req.MinStock,
		MaxStock:    req.MaxStock,
	})
	if err != nil {
		respondError(c, h.Log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"product": product,
	})
}

func (h *CatalogHandler) ListWarehouses(c *gin.Context) {
	warehouses, err := h.Service.ListWarehouses()
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"warehouses": warehouses})
}

func (h *CatalogHandler) CreateWarehouse(c *gin.Context) {
	if _, ok := actingUser(c); !ok {
		return
	}

	var req requests.CreateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	warehouse, err := h.Service.CreateWarehouse(services.WarehouseInput{
		Code:     req.Code,
		Name:     req.Name,
		Address:  req.Address,
		City:     req.City,
		Capacity: req.Capacity,
	})
	if err != nil {
		respondError(c, h.Log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Warehouse created successfully",
		"warehouse": warehouse,
	})
}

func (h *CatalogHandler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.Service.ListSuppliers()
	if err != nil {
		respondError(c, h.Log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suppliers": suppliers})
}

func (h *CatalogHandler) CreateSupplier(c *gin.Context) {
	if _, ok := actingUser(c); !ok {
		return
	}

	var req requests.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	supplier, err := h.Service.CreateSupplier(services.SupplierInput{
		Code:          req.Code,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          req.City,
		Country:       req.Country,
		ContactPerson: req.ContactPerson,
		PaymentTerms:  req.PaymentTerms,
	})
	if err != nil {
		respondError(c, h.Log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Supplier created successfully",
		"supplier": supplier,
	})
}
