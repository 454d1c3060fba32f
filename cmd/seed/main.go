package main

import (
	"fmt"
	"time"

	"ynaut/pkg/config"
	"ynaut/pkg/database"
	"ynaut/pkg/logger"
	"ynaut/pkg/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	testUsers := []struct {
		username string
		email    string
		bio      string
	}{
		{"alice_yn", "alice@test.com", "first on every feed"},
		{"bob_yn", "bob@test.com", "channel collector"},
		{"charlie_yn", "charlie@test.com", ""},
		{"diana_yn", "diana@test.com", "story person"},
		{"eve_yn", "eve@test.com", ""},
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	userIDs := make([]string, 0, len(testUsers))
	for _, tu := range testUsers {
		user := models.User{
			Username:     tu.username,
			Email:        tu.email,
			PasswordHash: string(hash),
			DisplayName:  tu.username,
			Bio:          tu.bio,
			YnBalance:    models.StartingBalance,
		}
		if err := db.Where("username = ?", tu.username).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", tu.username, err)
		}
		userIDs = append(userIDs, user.ID)
		log.Info("Seeded user %s", tu.username)
	}

	channels := []struct {
		name        string
		description string
		owner       int
	}{
		{"golang", "Go news and deep dives", 0},
		{"synthwave", "Music for late-night coding", 1},
		{"street-food", "Good eats around town", 3},
	}

	channelIDs := make([]string, 0, len(channels))
	for _, ch := range channels {
		channel := models.Channel{
			Name:             ch.name,
			Description:      ch.description,
			OwnerID:          userIDs[ch.owner],
			SubscribersCount: 1,
		}
		if err := db.Where("name = ? AND owner_id = ?", ch.name, channel.OwnerID).
			FirstOrCreate(&channel).Error; err != nil {
			return fmt.Errorf("failed to seed channel %s: %w", ch.name, err)
		}
		sub := models.ChannelSubscription{ChannelID: channel.ID, UserID: channel.OwnerID}
		if err := db.Where("channel_id = ? AND user_id = ?", channel.ID, channel.OwnerID).
			FirstOrCreate(&sub).Error; err != nil {
			return fmt.Errorf("failed to seed subscription for %s: %w", ch.name, err)
		}
		channelIDs = append(channelIDs, channel.ID)
		log.Info("Seeded channel %s", ch.name)
	}

	posts := []struct {
		author  int
		channel int
		content string
	}{
		{0, 0, "Generics finally clicked for me today."},
		{1, 1, "New mix is up, heavy on the arpeggios."},
		{3, 2, "The dumpling cart on 5th is back!"},
		{2, -1, "Hello Ynaut!"},
	}

	for _, p := range posts {
		post := models.Post{
			UserID:  userIDs[p.author],
			Content: p.content,
		}
		if p.channel >= 0 {
			post.ChannelID = &channelIDs[p.channel]
		}
		if err := db.Where("user_id = ? AND content = ?", post.UserID, post.Content).
			FirstOrCreate(&post).Error; err != nil {
			return fmt.Errorf("failed to seed post: %w", err)
		}
	}
	log.Info("Seeded %d posts", len(posts))

	// One completed purchase so the audit trail has a row to show
	purchase := models.Purchase{
		UserID:   userIDs[0],
		ItemType: "premium_emoji",
		ItemName: "Premium Emoji",
		Price:    75,
	}
	if err := db.Where("user_id = ? AND item_type = ?", purchase.UserID, purchase.ItemType).
		FirstOrCreate(&purchase).Error; err != nil {
		return fmt.Errorf("failed to seed purchase: %w", err)
	}
	if err := db.Model(&models.User{}).Where("id = ?", userIDs[0]).
		Updates(map[string]interface{}{"premium_emoji_enabled": true, "updated_at": time.Now()}).Error; err != nil {
		return err
	}

	return nil
}
