package service

import (
	"go-stock-tracker/internal/model"
	"go-stock-tracker/internal/repository"
)

// ReportSummary covers the figures of the reports screen: nilai inventaris,
// total pergerakan stok, dan daftar item yang perlu restock.
type ReportSummary struct {
	TotalValue    float64               `json:"total_value"` // Σ price * current_stock
	TotalStockIn  float64               `json:"total_stock_in"`
	TotalStockOut float64               `json:"total_stock_out"`
	LowStockItems []model.InventoryItem `json:"low_stock_items"`
}

type ReportService interface {
	GetSummary() (*ReportSummary, error)
	GetTransactions(txType string) ([]model.StockTransaction, error)
}

type reportService struct {
	store repository.Store
}

func NewReportService(store repository.Store) ReportService {
	return &reportService{store: store}
}

func (s *reportService) GetSummary() (*ReportSummary, error) {
	items, err := s.store.ListItems()
	if err != nil {
		return nil, err
	}
	txns, err := s.store.ListTransactions()
	if err != nil {
		return nil, err
	}

	summary := &ReportSummary{
		LowStockItems: []model.InventoryItem{},
	}
	for _, item := range items {
		summary.TotalValue += item.Price * item.CurrentStock
		if item.IsLowStock() {
			summary.LowStockItems = append(summary.LowStockItems, item)
		}
	}
	for _, txn := range txns {
		if txn.Type == model.TxIn {
			summary.TotalStockIn += txn.Quantity
		} else {
			summary.TotalStockOut += txn.Quantity
		}
	}
	return summary, nil
}

// GetTransactions returns the log newest-first, optionally filtered by type
// ("in"/"out"). Filter lain dianggap "all".
func (s *reportService) GetTransactions(txType string) ([]model.StockTransaction, error) {
	txns, err := s.store.ListTransactions()
	if err != nil {
		return nil, err
	}
	if txType != string(model.TxIn) && txType != string(model.TxOut) {
		return txns, nil
	}

	filtered := make([]model.StockTransaction, 0, len(txns))
	for _, txn := range txns {
		if string(txn.Type) == txType {
			filtered = append(filtered, txn)
		}
	}
	return filtered, nil
}
