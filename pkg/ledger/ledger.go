// Package ledger is the only place user balances and super-like stock move.
// Every mutation takes the caller's *gorm.DB so it joins the transaction of
// the action that earned or spent the coins; a failed action rolls the ledger
// entry back with it.
package ledger

import (
	"errors"

	"gorm.io/gorm"
)

type Action string

const (
	ActionCreateChannel Action = "create_channel"
	ActionCreatePost    Action = "create_post"
	ActionCreateStory   Action = "create_story"
	ActionCreateComment Action = "create_comment"
	ActionLikePost      Action = "like_post"
)

// rewards maps each crediting action to its amount. Credits go to the acting
// user: a like pays the liker, not the post author.
var rewards = map[Action]int{
	ActionCreateChannel: 50,
	ActionCreatePost:    20,
	ActionCreateStory:   15,
	ActionCreateComment: 10,
	ActionLikePost:      5,
}

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrNoSuperLikes        = errors.New("no super likes available")
	ErrUnknownAction       = errors.New("unknown ledger action")
)

// Reward returns the credit amount for action, or 0 for unknown actions.
func Reward(action Action) int {
	return rewards[action]
}

// Credit applies the reward for action to the user's balance and returns the
// resulting balance.
func Credit(tx *gorm.DB, userID string, action Action) (int, error) {
	amount, ok := rewards[action]
	if !ok {
		return 0, ErrUnknownAction
	}

	var balance int
	res := tx.Raw(
		"UPDATE users SET yn_balance = yn_balance + ?, updated_at = NOW() WHERE id = ? RETURNING yn_balance",
		amount, userID,
	).Scan(&balance)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, ErrUserNotFound
	}
	return balance, nil
}

// Debit removes amount from the user's balance, refusing to let it go
// negative, and returns the resulting balance.
func Debit(tx *gorm.DB, userID string, amount int) (int, error) {
	var balance int
	res := tx.Raw(
		"UPDATE users SET yn_balance = yn_balance - ?, updated_at = NOW() WHERE id = ? AND yn_balance >= ? RETURNING yn_balance",
		amount, userID, amount,
	).Scan(&balance)
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		var exists int64
		if err := tx.Raw("SELECT COUNT(*) FROM users WHERE id = ?", userID).Scan(&exists).Error; err != nil {
			return 0, err
		}
		if exists == 0 {
			return 0, ErrUserNotFound
		}
		return 0, ErrInsufficientBalance
	}
	return balance, nil
}

// ConsumeSuperLike spends one unit of super-like stock. The guard runs in SQL
// so concurrent spends cannot take the stock below zero.
func ConsumeSuperLike(tx *gorm.DB, userID string) error {
	res := tx.Exec(
		"UPDATE users SET super_likes_count = super_likes_count - 1, updated_at = NOW() WHERE id = ? AND super_likes_count > 0",
		userID,
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNoSuperLikes
	}
	return nil
}

// GrantSuperLikes adds count units of super-like stock; grants stack.
func GrantSuperLikes(tx *gorm.DB, userID string, count int) error {
	res := tx.Exec(
		"UPDATE users SET super_likes_count = super_likes_count + ?, updated_at = NOW() WHERE id = ?",
		count, userID,
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
