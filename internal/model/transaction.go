package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionType string

const (
	TxIn  TransactionType = "in"
	TxOut TransactionType = "out"
)

// StockTransaction is one immutable entry in the append-only movement log.
// ItemName adalah snapshot nama item saat transaksi dicatat, supaya riwayat
// tetap terbaca setelah item di-rename atau dihapus.
type StockTransaction struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;" json:"id"`
	ItemID    uuid.UUID       `gorm:"column:item_id;type:uuid;not null" json:"item_id" validate:"uuid_required"`
	ItemName  string          `gorm:"column:item_name;type:varchar(255)" json:"item_name"`
	Type      TransactionType `gorm:"type:varchar(10);not null" json:"type" validate:"required,oneof=in out"`
	Quantity  float64         `gorm:"not null" json:"quantity" validate:"required,gt=0"` // Qty harus > 0
	Notes     string          `json:"notes"`
	Date      time.Time       `json:"date"`
	CreatedBy string          `gorm:"column:created_by" json:"created_by"`
	CreatedAt time.Time       `json:"created_at"`
}

func (StockTransaction) TableName() string {
	return "stock_transactions"
}

func (t *StockTransaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}
