package requests

// ============ PRODUCT ============

type CreateProductRequest struct {
	SKU         string   `json:"sku" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"required"`
	Brand       string   `json:"brand"`
	UnitPrice   float64  `json:"unitPrice" binding:"required,gt=0"`
	Weight      *float64 `json:"weight,omitempty"`
	Barcode     *string  `json:"barcode,omitempty"`
	MinStock    int      `json:"minStock" binding:"min=0"`
	MaxStock    *int     `json:"maxStock,omitempty"`
}

// ============ WAREHOUSE ============

type CreateWarehouseRequest struct {
	Code     string `json:"code" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address" binding:"required"`
	City     string `json:"city" binding:"required"`
	Capacity int    `json:"capacity" binding:"min=0"`
}

// ============ SUPPLIER ============

type CreateSupplierRequest struct {
	Code          string  `json:"code" binding:"required"`
	Name          string  `json:"name" binding:"required"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	City          *string `json:"city,omitempty"`
	Country       string  `json:"country"`
	ContactPerson *string `json:"contactPerson,omitempty"`
	PaymentTerms  *string `json:"paymentTerms,omitempty"`
}
