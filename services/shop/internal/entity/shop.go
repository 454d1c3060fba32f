package entity

import (
	"errors"
	"time"
)

const (
	ItemPremiumAccount = "premium_account"
	ItemVerification   = "verification"
	ItemBoost          = "boost"
	ItemCustomTheme    = "custom_theme"
	ItemSuperLikes     = "super_likes"
	ItemPremiumEmoji   = "premium_emoji"
)

var ErrUnknownItem = errors.New("unknown item type")

// Catalog is the full shop inventory, keyed by item type. Prices are in
// yn-balance units.
var Catalog = map[string]*Item{
	ItemPremiumAccount: {Type: ItemPremiumAccount, Name: "Premium Account", Description: "Premium status with blue verification", Price: 500},
	ItemVerification:   {Type: ItemVerification, Name: "Verification", Description: "Red verification badge", Price: 300},
	ItemBoost:          {Type: ItemBoost, Name: "Post Boost", Description: "New posts ranked first for 24 hours", Price: 150},
	ItemCustomTheme:    {Type: ItemCustomTheme, Name: "Custom Theme", Description: "Unlock the dark premium theme", Price: 200},
	ItemSuperLikes:     {Type: ItemSuperLikes, Name: "Super Likes Pack", Description: "50 super likes, each worth 3 points", Price: 100},
	ItemPremiumEmoji:   {Type: ItemPremiumEmoji, Name: "Premium Emoji", Description: "Unlock the premium emoji set", Price: 75},
}

// Item is a catalog entry. The catalog is fixed in code; there is no item
// table.
type Item struct {
	Type        string `json:"item_type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
}

type Purchase struct {
	ID        string    `json:"id"`
	ItemType  string    `json:"item_type"`
	ItemName  string    `json:"item_name"`
	Price     int       `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}
