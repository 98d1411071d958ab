package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ============ PRODUCT MODEL ============

type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	SKU         string          `gorm:"type:varchar(50);unique;not null" json:"sku"`
	Name        string          `gorm:"type:varchar(200);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Category    string          `gorm:"type:varchar(100);not null" json:"category"`
	Brand       string          `gorm:"type:varchar(100)" json:"brand,omitempty"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"unitPrice"`
	Weight      *float64        `json:"weight,omitempty"`
	Barcode     *string         `gorm:"type:varchar(100)" json:"barcode,omitempty"`
	MinStock    int             `gorm:"not null;default:0" json:"minStock"`
	MaxStock    *int            `json:"maxStock,omitempty"`
	IsActive    bool            `gorm:"not null;default:true" json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (Product) TableName() string {
	return "products"
}

// ============ WAREHOUSE MODEL ============

type Warehouse struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Code      string    `gorm:"type:varchar(50);unique;not null" json:"code"`
	Name      string    `gorm:"type:varchar(200);not null" json:"name"`
	Address   string    `gorm:"type:varchar(255)" json:"address,omitempty"`
	City      string    `gorm:"type:varchar(100)" json:"city,omitempty"`
	Capacity  int       `gorm:"not null;default:0" json:"capacity"`
	IsActive  bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Warehouse) TableName() string {
	return "warehouses"
}

// ============ SUPPLIER MODEL ============

type Supplier struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Code          string    `gorm:"type:varchar(50);unique;not null" json:"code"`
	Name          string    `gorm:"type:varchar(200);not null" json:"name"`
	Email         *string   `gorm:"type:varchar(200)" json:"email,omitempty"`
	Phone         *string   `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Address       *string   `gorm:"type:varchar(255)" json:"address,omitempty"`
	City          *string   `gorm:"type:varchar(100)" json:"city,omitempty"`
	Country       string    `gorm:"type:varchar(100);default:'Ethiopia'" json:"country"`
	ContactPerson *string   `gorm:"type:varchar(200)" json:"contactPerson,omitempty"`
	PaymentTerms  *string   `gorm:"type:varchar(100)" json:"paymentTerms,omitempty"`
	IsActive      bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (Supplier) TableName() string {
	return "suppliers"
}
