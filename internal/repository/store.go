package repository

import (
	"errors"

	"go-stock-tracker/internal/model"

	"github.com/google/uuid"
)

// ErrNotFound is returned by lookups and updates targeting a missing id.
var ErrNotFound = errors.New("record not found")

// ItemUpdate carries the fields of a partial item update. Nil berarti
// field tidak diubah.
type ItemUpdate struct {
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	Unit         *string  `json:"unit"`
	CurrentStock *float64 `json:"current_stock"`
	MinStock     *float64 `json:"min_stock"`
	Price        *float64 `json:"price"`
}

// Store is the persistence capability behind the ledger. Two implementations:
// postgresStore (remote mode) and memoryStore (local fallback), dipilih sekali
// saat startup.
//
// CreateTransaction appends the log entry and adjusts the referenced item's
// stock as one atomic step from the caller's perspective. Item yang sudah
// tidak ada tidak menggagalkan pencatatan: transaksi tetap masuk log, hanya
// update stok yang dilewati.
type Store interface {
	ListItems() ([]model.InventoryItem, error)
	FindItemByID(id uuid.UUID) (*model.InventoryItem, error)
	CreateItem(item *model.InventoryItem) error
	UpdateItem(id uuid.UUID, upd ItemUpdate) (*model.InventoryItem, error)
	DeleteItem(id uuid.UUID) error

	ListTransactions() ([]model.StockTransaction, error)
	FindTransactionByID(id uuid.UUID) (*model.StockTransaction, error)
	CreateTransaction(txn *model.StockTransaction) error
}
