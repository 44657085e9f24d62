package service

import (
	"fmt"
	"math"
	"time"

	"go-stock-tracker/internal/model"
	"go-stock-tracker/internal/repository"
)

// DashboardStats are derived figures, recomputed from the item set and the
// transaction log on every read. Tidak pernah disimpan.
type DashboardStats struct {
	TotalItems    int     `json:"total_items"`
	TotalStockIn  float64 `json:"total_stock_in"`
	TotalStockOut float64 `json:"total_stock_out"`
	LowStockCount int     `json:"low_stock_count"`
}

// DailyActivity is one bucket of the trailing-7-day in/out series.
type DailyActivity struct {
	Name     string  `json:"name"` // nama hari singkat
	StockIn  float64 `json:"stock_in"`
	StockOut float64 `json:"stock_out"`
}

// WeeklyTrendPoint is one Monday–Sunday bucket of the 6-week usage trend.
type WeeklyTrendPoint struct {
	Name  string  `json:"name"` // W1..W6, tertua dulu
	Value float64 `json:"value"`
}

type DashboardService interface {
	GetDashboardStats() (*DashboardStats, error)
	GetDailyActivity() ([]DailyActivity, error)
	GetWeeklyTrend() ([]WeeklyTrendPoint, error)
}

type dashboardService struct {
	store repository.Store
}

func NewDashboardService(store repository.Store) DashboardService {
	return &dashboardService{store: store}
}

func (s *dashboardService) GetDashboardStats() (*DashboardStats, error) {
	items, txns, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	stats := ComputeStats(items, txns)
	return &stats, nil
}

func (s *dashboardService) GetDailyActivity() ([]DailyActivity, error) {
	_, txns, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return DailySeries(txns, time.Now()), nil
}

func (s *dashboardService) GetWeeklyTrend() ([]WeeklyTrendPoint, error) {
	_, txns, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return WeeklyTrend(txns, time.Now()), nil
}

func (s *dashboardService) snapshot() ([]model.InventoryItem, []model.StockTransaction, error) {
	items, err := s.store.ListItems()
	if err != nil {
		return nil, nil, err
	}
	txns, err := s.store.ListTransactions()
	if err != nil {
		return nil, nil, err
	}
	return items, txns, nil
}

// ComputeStats derives the dashboard aggregate figures.
func ComputeStats(items []model.InventoryItem, txns []model.StockTransaction) DashboardStats {
	stats := DashboardStats{TotalItems: len(items)}

	for _, txn := range txns {
		if txn.Type == model.TxIn {
			stats.TotalStockIn += txn.Quantity
		} else {
			stats.TotalStockOut += txn.Quantity
		}
	}
	for i := range items {
		if items[i].IsLowStock() {
			stats.LowStockCount++
		}
	}
	return stats
}

// Nama hari singkat, mengikuti locale id-ID
var shortDayNames = [...]string{"Min", "Sen", "Sel", "Rab", "Kam", "Jum", "Sab"}

// DailySeries buckets transaction quantities into the trailing 7 calendar
// days (today included), keyed by local midnight. Transaksi di luar jendela
// diabaikan. Bucket tertua di depan.
func DailySeries(txns []model.StockTransaction, now time.Time) []DailyActivity {
	type bucket struct {
		day time.Time
		in  float64
		out float64
	}

	days := make([]bucket, 7)
	today := startOfDay(now)
	for i := range days {
		days[i].day = today.AddDate(0, 0, -(6 - i))
	}

	for _, txn := range txns {
		// Hari kalender mengikuti zona "now", bukan zona tanggal transaksi:
		// tanggal UTC dari database/JSON harus jatuh di hari lokal yang sama
		day := startOfDay(txn.Date.In(now.Location()))
		for i := range days {
			if days[i].day.Equal(day) {
				if txn.Type == model.TxIn {
					days[i].in += txn.Quantity
				} else {
					days[i].out += txn.Quantity
				}
				break
			}
		}
	}

	series := make([]DailyActivity, 7)
	for i, b := range days {
		series[i] = DailyActivity{
			Name:     shortDayNames[b.day.Weekday()],
			StockIn:  b.in,
			StockOut: b.out,
		}
	}
	return series
}

// WeeklyTrend sums out-type quantities per Monday–Sunday week for the 6
// weeks ending with the week containing now. Hanya stok keluar yang dihitung.
func WeeklyTrend(txns []model.StockTransaction, now time.Time) []WeeklyTrendPoint {
	type week struct {
		start time.Time // Senin 00:00:00
		end   time.Time // Senin berikutnya (eksklusif)
		value float64
	}

	weeks := make([]week, 6)
	for i := range weeks {
		start := startOfWeek(now.AddDate(0, 0, -(5-i)*7))
		weeks[i] = week{start: start, end: start.AddDate(0, 0, 7)}
	}

	for _, txn := range txns {
		if txn.Type != model.TxOut {
			continue
		}
		for i := range weeks {
			if !txn.Date.Before(weeks[i].start) && txn.Date.Before(weeks[i].end) {
				weeks[i].value += txn.Quantity
				break
			}
		}
	}

	trend := make([]WeeklyTrendPoint, 6)
	for i, w := range weeks {
		trend[i] = WeeklyTrendPoint{
			Name:  fmt.Sprintf("W%d", i+1),
			Value: math.Round(w.value*100) / 100,
		}
	}
	return trend
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns the Monday 00:00:00 of the week containing t.
func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	diff := int(time.Monday - day.Weekday())
	if day.Weekday() == time.Sunday {
		diff = -6
	}
	return day.AddDate(0, 0, diff)
}
