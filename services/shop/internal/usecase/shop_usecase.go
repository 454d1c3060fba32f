package usecase

import (
	"errors"
	"sort"

	"ynaut/pkg/logger"
	"ynaut/pkg/queue"
	"ynaut/services/shop/internal/entity"
	"ynaut/services/shop/internal/repo/persistent"
)

var (
	ErrUserNotFound        = persistent.ErrUserNotFound
	ErrInsufficientBalance = persistent.ErrInsufficientBalance
	ErrUnknownItem         = entity.ErrUnknownItem
	ErrItemMismatch        = errors.New("item does not match the catalog")
)

const historyLimit = 100

type ShopUseCase interface {
	GetCatalog() []*entity.Item
	Purchase(userID, itemType, itemName string, price int) (*persistent.PurchaseResult, error)
	GetPurchases(userID string) ([]*entity.Purchase, error)
}

type shopUseCase struct {
	shopRepo persistent.ShopRepository
	queue    *queue.Client
	logger   *logger.Logger
}

func NewShopUseCase(shopRepo persistent.ShopRepository, queue *queue.Client, logger *logger.Logger) ShopUseCase {
	return &shopUseCase{shopRepo: shopRepo, queue: queue, logger: logger}
}

// GetCatalog returns the inventory cheapest-first.
func (uc *shopUseCase) GetCatalog() []*entity.Item {
	items := make([]*entity.Item, 0, len(entity.Catalog))
	for _, item := range entity.Catalog {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Price < items[j].Price })
	return items
}

// Purchase checks the requested item against the catalog before touching
// storage. The client submits name and price it displayed; a stale or forged
// value is rejected rather than honored.
func (uc *shopUseCase) Purchase(userID, itemType, itemName string, price int) (*persistent.PurchaseResult, error) {
	item, ok := entity.Catalog[itemType]
	if !ok {
		return nil, ErrUnknownItem
	}
	if itemName != item.Name || price != item.Price {
		return nil, ErrItemMismatch
	}

	result, err := uc.shopRepo.Purchase(userID, item)
	if err != nil {
		return nil, err
	}

	if err := uc.queue.PublishEvent(map[string]interface{}{
		"type":      "purchase_completed",
		"user_id":   userID,
		"item_type": itemType,
		"price":     item.Price,
	}); err != nil {
		uc.logger.Warn("Failed to publish purchase_completed event: %v", err)
	}

	return result, nil
}

func (uc *shopUseCase) GetPurchases(userID string) ([]*entity.Purchase, error) {
	return uc.shopRepo.GetPurchases(userID, historyLimit)
}
