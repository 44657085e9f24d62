package repository

import (
	"sync"

	"go-stock-tracker/internal/model"

	"github.com/google/uuid"
)

// cachedStore is a read-through cache in front of the remote store. List
// reads serve a cached snapshot; setiap mutasi yang sukses meng-invalidate
// snapshot terkait sehingga read berikutnya fetch ulang dari store.
//
// Lookups by id always hit the inner store directly.
type cachedStore struct {
	inner Store

	mu         sync.Mutex
	items      []model.InventoryItem
	itemsValid bool
	txns       []model.StockTransaction
	txnsValid  bool
}

func NewCachedStore(inner Store) Store {
	return &cachedStore{inner: inner}
}

func (c *cachedStore) ListItems() ([]model.InventoryItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.itemsValid {
		items, err := c.inner.ListItems()
		if err != nil {
			return nil, err
		}
		c.items = items
		c.itemsValid = true
	}

	out := make([]model.InventoryItem, len(c.items))
	copy(out, c.items)
	return out, nil
}

func (c *cachedStore) ListTransactions() ([]model.StockTransaction, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.txnsValid {
		txns, err := c.inner.ListTransactions()
		if err != nil {
			return nil, err
		}
		c.txns = txns
		c.txnsValid = true
	}

	out := make([]model.StockTransaction, len(c.txns))
	copy(out, c.txns)
	return out, nil
}

func (c *cachedStore) FindItemByID(id uuid.UUID) (*model.InventoryItem, error) {
	return c.inner.FindItemByID(id)
}

func (c *cachedStore) FindTransactionByID(id uuid.UUID) (*model.StockTransaction, error) {
	return c.inner.FindTransactionByID(id)
}

func (c *cachedStore) CreateItem(item *model.InventoryItem) error {
	if err := c.inner.CreateItem(item); err != nil {
		return err
	}
	c.invalidate(true, false)
	return nil
}

func (c *cachedStore) UpdateItem(id uuid.UUID, upd ItemUpdate) (*model.InventoryItem, error) {
	updated, err := c.inner.UpdateItem(id, upd)
	if err != nil {
		return nil, err
	}
	c.invalidate(true, false)
	return updated, nil
}

func (c *cachedStore) DeleteItem(id uuid.UUID) error {
	if err := c.inner.DeleteItem(id); err != nil {
		return err
	}
	// Cascade menyentuh log transaksi juga
	c.invalidate(true, true)
	return nil
}

func (c *cachedStore) CreateTransaction(txn *model.StockTransaction) error {
	if err := c.inner.CreateTransaction(txn); err != nil {
		return err
	}
	// Stok item ikut berubah
	c.invalidate(true, true)
	return nil
}

func (c *cachedStore) invalidate(items, txns bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if items {
		c.itemsValid = false
		c.items = nil
	}
	if txns {
		c.txnsValid = false
		c.txns = nil
	}
}
