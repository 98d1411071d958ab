package repositories

import (
	"gorm.io/gorm"

	"github.com/Henok-Demissie/Ethio-tele-wms/src/models"
)

type DashboardRepository struct {
	DB *gorm.DB
}

// EntityCounts holds the headline totals shown on the dashboard.
type EntityCounts struct {
	Products   int64 `json:"totalProducts"`
	Warehouses int64 `json:"totalWarehouses"`
	Users      int64 `json:"totalUsers"`
	Orders     int64 `json:"totalOrders"`
}

// Counts gathers the table totals in one pass.
func (r *DashboardRepository) Counts() (*EntityCounts, error) {
	var counts EntityCounts

	if err := r.DB.Model(&models.Product{}).Count(&counts.Products).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&models.Warehouse{}).Count(&counts.Warehouses).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&models.User{}).Count(&counts.Users).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&models.Order{}).Count(&counts.Orders).Error; err != nil {
		return nil, err
	}

	return &counts, nil
}

// RecentInventoryUpdates returns the most recently touched ledger rows for
// the activity feed.
func (r *DashboardRepository) RecentInventoryUpdates(limit int) ([]models.Inventory, error) {
	var items []models.Inventory
	err := r.DB.
		Preload("Product").
		Order("last_updated DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}
