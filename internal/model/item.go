package model

// StockStatus is the three-level classification of an item's stock position.
type StockStatus string

const (
	StatusNormal  StockStatus = "normal"
	StatusWarning StockStatus = "warning"
	StatusDanger  StockStatus = "danger"
)

// GetStockStatus maps (current, minimum) stock to a status level.
// danger jika stok <= 50% dari minimum, warning jika <= minimum.
func GetStockStatus(current, min float64) StockStatus {
	if current <= min*0.5 {
		return StatusDanger
	}
	if current <= min {
		return StatusWarning
	}
	return StatusNormal
}

type InventoryItem struct {
	BaseModel
	Name         string  `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Category     string  `gorm:"type:varchar(100)" json:"category"`
	Unit         string  `gorm:"type:varchar(20)" json:"unit"`
	CurrentStock float64 `gorm:"column:current_stock;default:0" json:"current_stock"`
	MinStock     float64 `gorm:"column:min_stock;default:0" json:"min_stock"`
	Price        float64 `gorm:"default:0" json:"price"`
}

func (InventoryItem) TableName() string {
	return "inventory_items"
}

// StockStatus classifies the item against its own minimum threshold.
func (i *InventoryItem) StockStatus() StockStatus {
	return GetStockStatus(i.CurrentStock, i.MinStock)
}

// IsLowStock reports whether the item needs restocking (warning or danger).
func (i *InventoryItem) IsLowStock() bool {
	return i.StockStatus() != StatusNormal
}

// ApplyMovement adjusts CurrentStock for a stock-in/out of qty units.
// Hasil di-clamp ke 0: stok tidak pernah negatif, walau permintaan keluar
// melebihi stok tersedia. Validasi "stok cukup" adalah urusan pemanggil.
func (i *InventoryItem) ApplyMovement(txType TransactionType, qty float64) {
	newStock := i.CurrentStock
	if txType == TxIn {
		newStock += qty
	} else {
		newStock -= qty
	}
	if newStock < 0 {
		newStock = 0
	}
	i.CurrentStock = newStock
}
