package repository

import (
	"testing"
	"time"

	"go-stock-tracker/internal/model"
)

// countingStore wraps another Store and counts list fetches.
type countingStore struct {
	Store
	itemFetches int
	txnFetches  int
}

func (s *countingStore) ListItems() ([]model.InventoryItem, error) {
	s.itemFetches++
	return s.Store.ListItems()
}

func (s *countingStore) ListTransactions() ([]model.StockTransaction, error) {
	s.txnFetches++
	return s.Store.ListTransactions()
}

func TestCachedStoreServesSnapshotUntilInvalidated(t *testing.T) {
	inner := &countingStore{Store: NewMemoryStore()}
	cached := NewCachedStore(inner)

	item := newTestItem(t, cached, "Coklat Bubuk", 9)

	// CreateItem meng-invalidate: read pertama fetch, read kedua dari cache
	if _, err := cached.ListItems(); err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if _, err := cached.ListItems(); err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if inner.itemFetches != 1 {
		t.Errorf("item fetches = %d, want 1 (second read from cache)", inner.itemFetches)
	}

	// Mutasi item meng-invalidate snapshot item
	newName := "Coklat Bubuk Hitam"
	if _, err := cached.UpdateItem(item.ID, ItemUpdate{Name: &newName}); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	items, _ := cached.ListItems()
	if inner.itemFetches != 2 {
		t.Errorf("item fetches after update = %d, want 2", inner.itemFetches)
	}
	if items[0].Name != newName {
		t.Error("refetched snapshot does not reflect mutation")
	}
}

func TestCachedStoreTransactionInvalidatesBothSnapshots(t *testing.T) {
	inner := &countingStore{Store: NewMemoryStore()}
	cached := NewCachedStore(inner)

	item := newTestItem(t, cached, "Susu", 20)

	cached.ListItems()
	cached.ListTransactions()
	itemFetches, txnFetches := inner.itemFetches, inner.txnFetches

	// Transaksi menyentuh log dan stok item sekaligus
	txn := &model.StockTransaction{
		ItemID:   item.ID,
		Type:     model.TxOut,
		Quantity: 5,
		Date:     time.Now(),
	}
	if err := cached.CreateTransaction(txn); err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}

	items, _ := cached.ListItems()
	txns, _ := cached.ListTransactions()

	if inner.itemFetches != itemFetches+1 || inner.txnFetches != txnFetches+1 {
		t.Error("transaction did not invalidate both snapshots")
	}
	if items[0].CurrentStock != 15 {
		t.Errorf("stock after refetch = %v, want 15", items[0].CurrentStock)
	}
	if len(txns) != 1 {
		t.Errorf("log after refetch has %d entries, want 1", len(txns))
	}
}

func TestCachedStoreDeleteInvalidatesTransactionSnapshot(t *testing.T) {
	inner := &countingStore{Store: NewMemoryStore()}
	cached := NewCachedStore(inner)

	item := newTestItem(t, cached, "Vanili", 4)
	addTxn(t, cached, item.ID, model.TxIn, 2)

	cached.ListTransactions()
	before := inner.txnFetches

	if err := cached.DeleteItem(item.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}

	txns, _ := cached.ListTransactions()
	if inner.txnFetches != before+1 {
		t.Error("delete did not invalidate the transaction snapshot")
	}
	if len(txns) != 0 {
		t.Errorf("log still has %d entries after cascade", len(txns))
	}
}
