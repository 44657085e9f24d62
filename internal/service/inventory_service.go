package service

import (
	"errors"
	"fmt"
	"time"

	"go-stock-tracker/internal/model"
	"go-stock-tracker/internal/repository"
	"go-stock-tracker/internal/ws"
	"go-stock-tracker/pkg/validator"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InventoryService is the ledger: the authoritative item collection plus the
// append-only stock-movement log behind it.
type InventoryService interface {
	AddItem(req *model.InventoryItem, actor string) error
	UpdateItem(id uuid.UUID, upd repository.ItemUpdate, actor string) (*model.InventoryItem, error)
	DeleteItem(id uuid.UUID, actor string) error
	AddTransaction(req *model.StockTransaction, actor string) error
	GetItemByID(id uuid.UUID) (*model.InventoryItem, error)
	GetAllItems() ([]model.InventoryItem, error)
	GetAllTransactions() ([]model.StockTransaction, error)
	GetTransactionByID(id uuid.UUID) (*model.StockTransaction, error)
}

type inventoryService struct {
	store repository.Store
	wsHub *ws.Hub
	log   *zap.Logger
}

func NewInventoryService(store repository.Store, hub *ws.Hub, log *zap.Logger) InventoryService {
	if log == nil {
		log = zap.NewNop()
	}
	return &inventoryService{
		store: store,
		wsHub: hub,
		log:   log,
	}
}

func (s *inventoryService) AddItem(req *model.InventoryItem, actor string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if err := s.store.CreateItem(req); err != nil {
		return err
	}

	s.wsHub.Publish(ws.Event{
		Type:    "stock_update",
		Action:  "item_created",
		Payload: req,
		Message: fmt.Sprintf("%s menambahkan item '%s'", actor, req.Name),
	})
	return nil
}

func (s *inventoryService) UpdateItem(id uuid.UUID, upd repository.ItemUpdate, actor string) (*model.InventoryItem, error) {
	updated, err := s.store.UpdateItem(id, upd)
	if err != nil {
		return nil, err
	}

	s.wsHub.Publish(ws.Event{
		Type:    "stock_update",
		Action:  "item_updated",
		Payload: updated,
		Message: fmt.Sprintf("%s mengubah item '%s'", actor, updated.Name),
	})
	return updated, nil
}

func (s *inventoryService) DeleteItem(id uuid.UUID, actor string) error {
	if err := s.store.DeleteItem(id); err != nil {
		return err
	}

	s.wsHub.Publish(ws.Event{
		Type:    "stock_update",
		Action:  "item_deleted",
		Payload: map[string]interface{}{"id": id},
		Message: fmt.Sprintf("%s menghapus item beserta riwayatnya", actor),
	})
	return nil
}

// AddTransaction records one stock movement and adjusts the referenced
// item's stock. The ledger never rejects an over-draft stock-out; the result
// is clamped at zero and checking "stok cukup" stays with the caller.
func (s *inventoryService) AddTransaction(req *model.StockTransaction, actor string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if req.Date.IsZero() {
		req.Date = time.Now()
	}
	if req.CreatedBy == "" {
		req.CreatedBy = actor
	}

	// Snapshot nama item untuk riwayat. Item yang sudah tidak ada bukan
	// error: transaksi tetap dicatat, stok tidak disentuh.
	item, err := s.store.FindItemByID(req.ItemID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if item != nil && req.ItemName == "" {
		req.ItemName = item.Name
	}

	if err := s.store.CreateTransaction(req); err != nil {
		return err
	}

	s.broadcastTransaction(req, actor)
	return nil
}

func (s *inventoryService) broadcastTransaction(txn *model.StockTransaction, actor string) {
	verb := "menambah"
	if txn.Type == model.TxOut {
		verb = "mengeluarkan"
	}

	payload := map[string]interface{}{
		"id":        txn.ID,
		"item_id":   txn.ItemID,
		"item_name": txn.ItemName,
		"type":      txn.Type,
		"quantity":  txn.Quantity,
	}

	// Stok terbaru untuk payload, plus peringatan stok menipis
	item, err := s.store.FindItemByID(txn.ItemID)
	if err == nil {
		payload["new_stock"] = item.CurrentStock

		if item.IsLowStock() {
			s.wsHub.Publish(ws.Event{
				Type:   "low_stock_alert",
				Action: string(item.StockStatus()),
				Payload: map[string]interface{}{
					"item_id":       item.ID,
					"name":          item.Name,
					"current_stock": item.CurrentStock,
					"min_stock":     item.MinStock,
				},
				Message: fmt.Sprintf("Stok '%s' menipis: %g %s tersisa", item.Name, item.CurrentStock, item.Unit),
			})
		}
	}

	s.wsHub.Publish(ws.Event{
		Type:    "stock_update",
		Action:  "transaction_created",
		Payload: payload,
		Message: fmt.Sprintf("%s %s %g unit '%s'", actor, verb, txn.Quantity, txn.ItemName),
	})
}

func (s *inventoryService) GetItemByID(id uuid.UUID) (*model.InventoryItem, error) {
	return s.store.FindItemByID(id)
}

func (s *inventoryService) GetAllItems() ([]model.InventoryItem, error) {
	items, err := s.store.ListItems()
	if err != nil {
		// Read gagal turun jadi "tidak ada data", bukan error ke pengguna
		s.log.Warn("item read failed, serving empty set", zap.Error(err))
		return []model.InventoryItem{}, nil
	}
	return items, nil
}

func (s *inventoryService) GetAllTransactions() ([]model.StockTransaction, error) {
	txns, err := s.store.ListTransactions()
	if err != nil {
		s.log.Warn("transaction read failed, serving empty set", zap.Error(err))
		return []model.StockTransaction{}, nil
	}
	return txns, nil
}

func (s *inventoryService) GetTransactionByID(id uuid.UUID) (*model.StockTransaction, error) {
	return s.store.FindTransactionByID(id)
}
