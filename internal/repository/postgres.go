package repository

import (
	"errors"
	"time"

	"go-stock-tracker/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type postgresStore struct {
	db *gorm.DB
}

// NewPostgresStore wraps a connected database as the remote-mode Store.
func NewPostgresStore(db *gorm.DB) Store {
	return &postgresStore{db}
}

func (s *postgresStore) ListItems() ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	err := s.db.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (s *postgresStore) FindItemByID(id uuid.UUID) (*model.InventoryItem, error) {
	var item model.InventoryItem
	err := s.db.First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *postgresStore) CreateItem(item *model.InventoryItem) error {
	return s.db.Create(item).Error
}

func (s *postgresStore) UpdateItem(id uuid.UUID, upd ItemUpdate) (*model.InventoryItem, error) {
	var updated *model.InventoryItem

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.InventoryItem
		// Cari & Lock item (Pessimistic Locking)
		if err := tx.Set("gorm:query_option", "FOR UPDATE").First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		applyItemUpdate(&existing, upd)

		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		updated = &existing
		return nil
	})

	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteItem removes the item and every transaction referencing it in one
// database transaction.
func (s *postgresStore) DeleteItem(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.InventoryItem{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Delete(&model.StockTransaction{}, "item_id = ?", id).Error
	})
}

func (s *postgresStore) ListTransactions() ([]model.StockTransaction, error) {
	var txns []model.StockTransaction
	// Terbaru dulu; created_at sebagai tie-break supaya urutan stabil
	err := s.db.Order("date DESC, created_at DESC").Find(&txns).Error
	return txns, err
}

func (s *postgresStore) FindTransactionByID(id uuid.UUID) (*model.StockTransaction, error) {
	var txn model.StockTransaction
	err := s.db.First(&txn, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// CreateTransaction inserts the log entry and updates the item's stock inside
// a single database transaction, so a failed stock update rolls the insert
// back instead of leaving an orphaned log entry.
func (s *postgresStore) CreateTransaction(txn *model.StockTransaction) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(txn).Error; err != nil {
			return err
		}

		var item model.InventoryItem
		err := tx.Set("gorm:query_option", "FOR UPDATE").First(&item, "id = ?", txn.ItemID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Item sudah dihapus: riwayat tetap tercatat, stok tidak disentuh
			return nil
		}
		if err != nil {
			return err
		}

		item.ApplyMovement(txn.Type, txn.Quantity)

		return tx.Model(&item).Updates(map[string]interface{}{
			"current_stock": item.CurrentStock,
			"updated_at":    time.Now(),
		}).Error
	})
}

func applyItemUpdate(item *model.InventoryItem, upd ItemUpdate) {
	if upd.Name != nil {
		item.Name = *upd.Name
	}
	if upd.Category != nil {
		item.Category = *upd.Category
	}
	if upd.Unit != nil {
		item.Unit = *upd.Unit
	}
	if upd.CurrentStock != nil {
		item.CurrentStock = *upd.CurrentStock
	}
	if upd.MinStock != nil {
		item.MinStock = *upd.MinStock
	}
	if upd.Price != nil {
		item.Price = *upd.Price
	}
	item.UpdatedAt = time.Now()
}
