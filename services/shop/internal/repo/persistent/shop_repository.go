package persistent

import (
	"time"

	"ynaut/pkg/ledger"
	"ynaut/pkg/models"
	"ynaut/services/shop/internal/entity"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = ledger.ErrUserNotFound
	ErrInsufficientBalance = ledger.ErrInsufficientBalance
)

// BoostDuration is the visibility window granted by one boost purchase. A
// repeat purchase restarts the window instead of stacking.
const BoostDuration = 24 * time.Hour

// SuperLikesPerPack is added to the buyer's stock per super_likes purchase.
const SuperLikesPerPack = 50

type PurchaseResult struct {
	Purchase   *entity.Purchase
	NewBalance int
}

type ShopRepository interface {
	Purchase(userID string, item *entity.Item) (*PurchaseResult, error)
	GetPurchases(userID string, limit int) ([]*entity.Purchase, error)
}

type shopRepository struct {
	db *gorm.DB
}

func NewShopRepository(db *gorm.DB) ShopRepository {
	return &shopRepository{db: db}
}

// Purchase debits the price, appends the audit row and applies the
// entitlement effect in one transaction. Any failure rolls all three back.
func (r *shopRepository) Purchase(userID string, item *entity.Item) (*PurchaseResult, error) {
	result := &PurchaseResult{}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		balance, err := ledger.Debit(tx, userID, item.Price)
		if err != nil {
			return err
		}

		row := &models.Purchase{
			UserID:   userID,
			ItemType: item.Type,
			ItemName: item.Name,
			Price:    item.Price,
		}
		if err := tx.Create(row).Error; err != nil {
			return err
		}

		if err := applyEntitlement(tx, userID, item.Type); err != nil {
			return err
		}

		result.NewBalance = balance
		result.Purchase = &entity.Purchase{
			ID:        row.ID,
			ItemType:  row.ItemType,
			ItemName:  row.ItemName,
			Price:     row.Price,
			CreatedAt: row.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func applyEntitlement(tx *gorm.DB, userID, itemType string) error {
	switch itemType {
	case entity.ItemPremiumAccount:
		return tx.Exec(
			"UPDATE users SET is_premium = TRUE, is_verified = TRUE, verification_color = 'blue', updated_at = NOW() WHERE id = ?",
			userID,
		).Error
	case entity.ItemVerification:
		return tx.Exec(
			"UPDATE users SET is_verified = TRUE, verification_color = 'red', updated_at = NOW() WHERE id = ?",
			userID,
		).Error
	case entity.ItemBoost:
		return tx.Exec(
			"UPDATE users SET boost_active_until = ?, updated_at = NOW() WHERE id = ?",
			time.Now().Add(BoostDuration), userID,
		).Error
	case entity.ItemCustomTheme:
		return tx.Exec(
			"UPDATE users SET custom_theme = 'dark_premium', updated_at = NOW() WHERE id = ?",
			userID,
		).Error
	case entity.ItemSuperLikes:
		return ledger.GrantSuperLikes(tx, userID, SuperLikesPerPack)
	case entity.ItemPremiumEmoji:
		return tx.Exec(
			"UPDATE users SET premium_emoji_enabled = TRUE, updated_at = NOW() WHERE id = ?",
			userID,
		).Error
	}
	return entity.ErrUnknownItem
}

func (r *shopRepository) GetPurchases(userID string, limit int) ([]*entity.Purchase, error) {
	var exists int64
	if err := r.db.Model(&models.User{}).Where("id = ?", userID).Count(&exists).Error; err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, ErrUserNotFound
	}

	var rows []models.Purchase
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	purchases := make([]*entity.Purchase, len(rows))
	for i, row := range rows {
		purchases[i] = &entity.Purchase{
			ID:        row.ID,
			ItemType:  row.ItemType,
			ItemName:  row.ItemName,
			Price:     row.Price,
			CreatedAt: row.CreatedAt,
		}
	}
	return purchases, nil
}
