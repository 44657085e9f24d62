package service

import (
	"testing"
	"time"

	"go-stock-tracker/internal/model"

	"github.com/google/uuid"
)

func txnAt(txType model.TransactionType, qty float64, date time.Time) model.StockTransaction {
	return model.StockTransaction{
		ID:       uuid.New(),
		ItemID:   uuid.New(),
		Type:     txType,
		Quantity: qty,
		Date:     date,
	}
}

func TestComputeStats(t *testing.T) {
	items := []model.InventoryItem{
		{Name: "Tepung", CurrentStock: 5, MinStock: 10},
	}
	txns := []model.StockTransaction{
		txnAt(model.TxIn, 3, time.Now()),
		txnAt(model.TxOut, 1, time.Now()),
	}

	stats := ComputeStats(items, txns)

	if stats.TotalItems != 1 {
		t.Errorf("TotalItems = %d, want 1", stats.TotalItems)
	}
	if stats.TotalStockIn != 3 {
		t.Errorf("TotalStockIn = %v, want 3", stats.TotalStockIn)
	}
	if stats.TotalStockOut != 1 {
		t.Errorf("TotalStockOut = %v, want 1", stats.TotalStockOut)
	}
	if stats.LowStockCount != 1 {
		t.Errorf("LowStockCount = %d, want 1", stats.LowStockCount)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil, nil)
	if stats.TotalItems != 0 || stats.TotalStockIn != 0 || stats.TotalStockOut != 0 || stats.LowStockCount != 0 {
		t.Errorf("stats over empty ledger = %+v, want zeroes", stats)
	}
}

func TestDailySeriesWindow(t *testing.T) {
	now := time.Date(2026, 3, 18, 15, 30, 0, 0, time.UTC)

	txns := []model.StockTransaction{
		// Tepat 7 hari lalu: di luar jendela
		txnAt(model.TxIn, 100, now.AddDate(0, 0, -7)),
		// 6 hari lalu: bucket tertua
		txnAt(model.TxIn, 5, now.AddDate(0, 0, -6)),
		// Hari ini: bucket terakhir, in dan out terpisah
		txnAt(model.TxIn, 2, now),
		txnAt(model.TxOut, 3, now.Add(-2*time.Hour)),
	}

	series := DailySeries(txns, now)

	if len(series) != 7 {
		t.Fatalf("series has %d buckets, want 7", len(series))
	}

	var totalIn float64
	for _, day := range series {
		totalIn += day.StockIn
	}
	if totalIn != 7 {
		t.Errorf("total in across window = %v, want 7 (outside-window txn must be ignored)", totalIn)
	}

	if series[0].StockIn != 5 {
		t.Errorf("oldest bucket in = %v, want 5", series[0].StockIn)
	}
	if series[6].StockIn != 2 || series[6].StockOut != 3 {
		t.Errorf("today bucket = %+v, want in=2 out=3", series[6])
	}

	// 2026-03-12 adalah Kamis
	if series[0].Name != "Kam" {
		t.Errorf("oldest bucket label = %q, want \"Kam\"", series[0].Name)
	}
	if series[6].Name != "Rab" {
		t.Errorf("today bucket label = %q, want \"Rab\"", series[6].Name)
	}
}

// Tanggal transaksi bisa datang dalam zona lain (UTC dari database, "Z"
// dari JSON). Bucket harian mengikuti hari kalender lokal milik "now".
func TestDailySeriesNormalizesTimeZones(t *testing.T) {
	wib := time.FixedZone("WIB", 7*60*60)
	now := time.Date(2026, 3, 18, 15, 0, 0, 0, wib)

	txns := []model.StockTransaction{
		// 01:00 UTC = 08:00 WIB, masih 18 Maret waktu lokal
		txnAt(model.TxIn, 4, time.Date(2026, 3, 18, 1, 0, 0, 0, time.UTC)),
		// 20:00 UTC = 03:00 WIB 19 Maret: sudah lewat hari lokal "now"
		txnAt(model.TxOut, 9, time.Date(2026, 3, 18, 20, 0, 0, 0, time.UTC)),
		// 18:00 UTC 17 Maret = 01:00 WIB 18 Maret: bucket hari ini juga
		txnAt(model.TxOut, 2, time.Date(2026, 3, 17, 18, 0, 0, 0, time.UTC)),
	}

	series := DailySeries(txns, now)

	today := series[6]
	if today.StockIn != 4 {
		t.Errorf("today bucket in = %v, want 4 (UTC date on the same local day)", today.StockIn)
	}
	if today.StockOut != 2 {
		t.Errorf("today bucket out = %v, want 2 (late UTC date belongs to the next local day)", today.StockOut)
	}
}

func TestWeeklyTrend(t *testing.T) {
	// Rabu, minggu berjalan Senin 16 Maret – Minggu 22 Maret 2026
	now := time.Date(2026, 3, 18, 12, 0, 0, 0, time.UTC)

	txns := []model.StockTransaction{
		// Minggu berjalan: bucket terakhir
		txnAt(model.TxOut, 4.125, now.AddDate(0, 0, -1)),
		txnAt(model.TxOut, 2, now),
		// Stok masuk tidak pernah dihitung
		txnAt(model.TxIn, 50, now),
		// Minggu sebelumnya
		txnAt(model.TxOut, 7, now.AddDate(0, 0, -7)),
		// Lebih tua dari 6 minggu: diabaikan
		txnAt(model.TxOut, 99, now.AddDate(0, 0, -6*7)),
	}

	trend := WeeklyTrend(txns, now)

	if len(trend) != 6 {
		t.Fatalf("trend has %d buckets, want 6", len(trend))
	}
	for i, point := range trend {
		want := "W" + string(rune('1'+i))
		if point.Name != want {
			t.Errorf("bucket %d label = %q, want %q", i, point.Name, want)
		}
	}

	// 4.125 + 2 = 6.125, dibulatkan 2 desimal
	if trend[5].Value != 6.13 {
		t.Errorf("current week = %v, want 6.13", trend[5].Value)
	}
	if trend[4].Value != 7 {
		t.Errorf("previous week = %v, want 7", trend[4].Value)
	}
	if trend[0].Value != 0 {
		t.Errorf("oldest week = %v, want 0", trend[0].Value)
	}
}

func TestStartOfWeek(t *testing.T) {
	monday := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   time.Time
	}{
		{"monday itself", monday.Add(10 * time.Hour)},
		{"midweek", time.Date(2026, 3, 18, 23, 59, 0, 0, time.UTC)},
		{"sunday belongs to preceding monday", time.Date(2026, 3, 22, 8, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := startOfWeek(tt.in); !got.Equal(monday) {
				t.Errorf("startOfWeek(%v) = %v, want %v", tt.in, got, monday)
			}
		})
	}
}
