package repository

import (
	"sync"
	"time"

	"go-stock-tracker/internal/model"

	"github.com/google/uuid"
)

// memoryStore is the local-fallback Store used when no database is
// configured. Seluruh state hidup di memori proses dan hilang saat restart.
//
// The original execution model is a single UI thread; here the HTTP server
// handles requests concurrently, so access is guarded by a RWMutex.
type memoryStore struct {
	mu    sync.RWMutex
	items []model.InventoryItem
	txns  []model.StockTransaction
}

func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) ListItems() ([]model.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.InventoryItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *memoryStore) FindItemByID(id uuid.UUID) (*model.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.items {
		if s.items[i].ID == id {
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryStore) CreateItem(item *model.InventoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	s.items = append(s.items, *item)
	return nil
}

func (s *memoryStore) UpdateItem(id uuid.UUID, upd ItemUpdate) (*model.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			applyItemUpdate(&s.items[i], upd)
			updated := s.items[i]
			return &updated, nil
		}
	}
	return nil, ErrNotFound
}

// DeleteItem removes the item and cascades to every transaction that
// references it.
func (s *memoryStore) DeleteItem(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	items := s.items[:0]
	for _, item := range s.items {
		if item.ID == id {
			found = true
			continue
		}
		items = append(items, item)
	}
	s.items = items

	if !found {
		return ErrNotFound
	}

	txns := s.txns[:0]
	for _, txn := range s.txns {
		if txn.ItemID != id {
			txns = append(txns, txn)
		}
	}
	s.txns = txns
	return nil
}

func (s *memoryStore) ListTransactions() ([]model.StockTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.StockTransaction, len(s.txns))
	copy(out, s.txns)
	return out, nil
}

func (s *memoryStore) FindTransactionByID(id uuid.UUID) (*model.StockTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.txns {
		if s.txns[i].ID == id {
			txn := s.txns[i]
			return &txn, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryStore) CreateTransaction(txn *model.StockTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	txn.CreatedAt = time.Now()

	// Prepend: log dibaca terbaru-dulu
	s.txns = append([]model.StockTransaction{*txn}, s.txns...)

	for i := range s.items {
		if s.items[i].ID == txn.ItemID {
			s.items[i].ApplyMovement(txn.Type, txn.Quantity)
			s.items[i].UpdatedAt = time.Now()
			break
		}
	}
	return nil
}
