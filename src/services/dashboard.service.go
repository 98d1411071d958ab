package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/Henok-Demissie/Ethio-tele-wms/src/models"
	"github.com/Henok-Demissie/Ethio-tele-wms/src/repositories"
)

// StockInStats summarizes today's receiving activity.
type StockInStats struct {
	TodayReceipts   int `json:"todayReceipts"`
	ItemsReceived   int `json:"itemsReceived"`
	PendingReceipts int `json:"pendingReceipts"`
}

// StockOutStats summarizes today's shipping activity.
type StockOutStats struct {
	TodayRequests   int `json:"todayRequests"`
	ItemsShipped    int `json:"itemsShipped"`
	PendingRequests int `json:"pendingRequests"`
	Completed       int `json:"completed"`
}

// DashboardStats is the headline payload for the dashboard page.
type DashboardStats struct {
	repositories.EntityCounts
	StockInStats  StockInStats  `json:"stockInStats"`
	StockOutStats StockOutStats `json:"stockOutStats"`
}

// Activity is one row in the recent-activity feed.
type Activity struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
}

type DashboardService struct {
	Dashboard *repositories.DashboardRepository
	Orders    *repositories.OrderRepository
}

// Stats gathers entity totals plus today's stock-in and stock-out summaries.
func (s *DashboardService) Stats() (*DashboardStats, error) {
	counts, err := s.Dashboard.Counts()
	if err != nil {
		return nil, err
	}

	startOfDay := time.Now().Truncate(24 * time.Hour)

	stockIn, err := s.Orders.ListSince(models.OrderTypePurchase, startOfDay)
	if err != nil {
		return nil, err
	}
	stockOut, err := s.Orders.ListSince(models.OrderTypeSale, startOfDay)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{EntityCounts: *counts}

	stats.StockInStats.TodayReceipts = len(stockIn)
	for _, order := range stockIn {
		stats.StockInStats.ItemsReceived += itemQuantitySum(order)
		if order.Status == models.OrderStatusPending {
			stats.StockInStats.PendingReceipts++
		}
	}

	stats.StockOutStats.TodayRequests = len(stockOut)
	for _, order := range stockOut {
		stats.StockOutStats.ItemsShipped += itemQuantitySum(order)
		switch order.Status {
		case models.OrderStatusPending:
			stats.StockOutStats.PendingRequests++
		case models.OrderStatusCompleted:
			stats.StockOutStats.Completed++
		}
	}

	return stats, nil
}

// Activities merges recent orders and inventory updates into one feed,
// newest first, capped at limit.
func (s *DashboardService) Activities(limit int) ([]Activity, error) {
	if limit <= 0 {
		limit = 10
	}

	orders, err := s.Orders.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	updates, err := s.Dashboard.RecentInventoryUpdates(limit)
	if err != nil {
		return nil, err
	}

	activities := make([]Activity, 0, len(orders)+len(updates))

	for _, order := range orders {
		activityType := "STOCK_IN"
		description := fmt.Sprintf("Stock-in receipt %s", order.OrderNumber)
		if order.Type == models.OrderTypeSale {
			activityType = "STOCK_OUT"
			description = fmt.Sprintf("Stock-out request %s", order.OrderNumber)
		}
		if order.Supplier != nil {
			description += fmt.Sprintf(" from %s", order.Supplier.Name)
		} else if order.Warehouse != nil {
			description += fmt.Sprintf(" from %s", order.Warehouse.Name)
		}

		activities = append(activities, Activity{
			ID:          fmt.Sprintf("order-%s", order.ID),
			Type:        activityType,
			Description: description,
			Status:      string(order.Status),
			Timestamp:   order.CreatedAt,
		})
	}

	for _, inv := range updates {
		productName := inv.ProductID.String()
		if inv.Product != nil {
			productName = fmt.Sprintf("%s (%s)", inv.Product.Name, inv.Product.SKU)
		}

		status := "IN_STOCK"
		if inv.Quantity == 0 {
			status = "OUT_OF_STOCK"
		} else if inv.Product != nil && inv.Quantity <= inv.Product.MinStock {
			status = "LOW_STOCK"
		}

		activities = append(activities, Activity{
			ID:          fmt.Sprintf("inventory-%s", inv.ID),
			Type:        "INVENTORY_UPDATE",
			Description: fmt.Sprintf("Inventory updated for %s", productName),
			Status:      status,
			Timestamp:   inv.LastUpdated,
		})
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})
	if len(activities) > limit {
		activities = activities[:limit]
	}

	return activities, nil
}

func itemQuantitySum(order models.Order) int {
	sum := 0
	for _, item := range order.Items {
		sum += item.Quantity
	}
	return sum
}
