package model

import "testing"

func TestGetStockStatus(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		min     float64
		want    StockStatus
	}{
		{"well above minimum", 20, 10, StatusNormal},
		{"just above minimum", 10.5, 10, StatusNormal},
		{"exactly at minimum", 10, 10, StatusWarning},
		{"between half and minimum", 7, 10, StatusWarning},
		{"exactly at half minimum", 5, 10, StatusDanger},
		{"below half minimum", 2, 10, StatusDanger},
		{"zero stock", 0, 10, StatusDanger},
		// min == 0: hanya stok 0 yang danger, sisanya normal
		{"zero minimum zero stock", 0, 0, StatusDanger},
		{"zero minimum positive stock", 0.1, 0, StatusNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetStockStatus(tt.current, tt.min); got != tt.want {
				t.Errorf("GetStockStatus(%v, %v) = %v, want %v", tt.current, tt.min, got, tt.want)
			}
		})
	}
}

func TestApplyMovement(t *testing.T) {
	item := InventoryItem{CurrentStock: 5}

	item.ApplyMovement(TxIn, 3)
	if item.CurrentStock != 8 {
		t.Fatalf("after in 3: stock = %v, want 8", item.CurrentStock)
	}

	item.ApplyMovement(TxOut, 2.5)
	if item.CurrentStock != 5.5 {
		t.Fatalf("after out 2.5: stock = %v, want 5.5", item.CurrentStock)
	}

	// Over-draft di-clamp ke 0, bukan ditolak
	item.ApplyMovement(TxOut, 100)
	if item.CurrentStock != 0 {
		t.Fatalf("after over-draft: stock = %v, want 0", item.CurrentStock)
	}
}

func TestIsLowStock(t *testing.T) {
	low := InventoryItem{CurrentStock: 5, MinStock: 10}
	if !low.IsLowStock() {
		t.Error("item at half minimum should be low stock")
	}

	ok := InventoryItem{CurrentStock: 25, MinStock: 10}
	if ok.IsLowStock() {
		t.Error("item above minimum should not be low stock")
	}
}
