package usecase

import (
	"testing"

	"ynaut/services/shop/internal/entity"
	"ynaut/services/shop/internal/repo/persistent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockShopRepository struct {
	mock.Mock
}

func (m *MockShopRepository) Purchase(userID string, item *entity.Item) (*persistent.PurchaseResult, error) {
	args := m.Called(userID, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*persistent.PurchaseResult), args.Error(1)
}

func (m *MockShopRepository) GetPurchases(userID string, limit int) ([]*entity.Purchase, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Purchase), args.Error(1)
}

var _ persistent.ShopRepository = (*MockShopRepository)(nil)

func TestGetCatalog_SortedCheapestFirst(t *testing.T) {
	uc := NewShopUseCase(new(MockShopRepository), nil, nil)

	items := uc.GetCatalog()
	assert.Len(t, items, len(entity.Catalog))
	for i := 1; i < len(items); i++ {
		assert.LessOrEqual(t, items[i-1].Price, items[i].Price)
	}
	assert.Equal(t, entity.ItemPremiumEmoji, items[0].Type)
	assert.Equal(t, entity.ItemPremiumAccount, items[len(items)-1].Type)
}

func TestPurchase_UnknownItemNeverHitsStorage(t *testing.T) {
	mockRepo := new(MockShopRepository)
	uc := NewShopUseCase(mockRepo, nil, nil)

	_, err := uc.Purchase("user-1", "jetpack", "Jetpack", 999)

	assert.ErrorIs(t, err, ErrUnknownItem)
	mockRepo.AssertNotCalled(t, "Purchase")
}

func TestPurchase_StalePriceRejected(t *testing.T) {
	mockRepo := new(MockShopRepository)
	uc := NewShopUseCase(mockRepo, nil, nil)

	boost := entity.Catalog[entity.ItemBoost]
	_, err := uc.Purchase("user-1", entity.ItemBoost, boost.Name, boost.Price-50)

	assert.ErrorIs(t, err, ErrItemMismatch)
	mockRepo.AssertNotCalled(t, "Purchase")
}

func TestPurchase_PassesCatalogItem(t *testing.T) {
	mockRepo := new(MockShopRepository)
	uc := NewShopUseCase(mockRepo, nil, nil)

	boost := entity.Catalog[entity.ItemBoost]
	mockRepo.On("Purchase", "user-1", boost).
		Return(&persistent.PurchaseResult{NewBalance: 350}, nil)

	result, err := uc.Purchase("user-1", entity.ItemBoost, boost.Name, boost.Price)

	assert.NoError(t, err)
	assert.Equal(t, 350, result.NewBalance)
	mockRepo.AssertExpectations(t)
}

func TestPurchase_InsufficientBalancePropagates(t *testing.T) {
	mockRepo := new(MockShopRepository)
	uc := NewShopUseCase(mockRepo, nil, nil)

	item := entity.Catalog[entity.ItemPremiumAccount]
	mockRepo.On("Purchase", "user-1", item).Return(nil, persistent.ErrInsufficientBalance)

	_, err := uc.Purchase("user-1", entity.ItemPremiumAccount, item.Name, item.Price)

	assert.ErrorIs(t, err, ErrInsufficientBalance)
}
