package persistent

import (
	"errors"
	"time"

	"ynaut/pkg/database"
	"ynaut/pkg/ledger"
	"ynaut/pkg/models"
	"ynaut/services/channel/internal/entity"

	"gorm.io/gorm"
)

var ErrChannelNotFound = errors.New("channel not found")

type CreateResult struct {
	ChannelID  string
	NewBalance int
}

type ToggleResult struct {
	Subscribed       bool
	SubscribersCount int
}

type ChannelRepository interface {
	List(limit int) ([]*entity.Channel, error)
	GetByID(channelID string) (*entity.Channel, error)
	Create(ownerID, name, description string, isPrivate bool, avatarURL *string) (*CreateResult, error)
	ToggleSubscription(channelID, userID string) (*ToggleResult, error)
	GetPosts(channelID string, limit int) ([]*entity.ChannelPost, error)
}

type channelRepository struct {
	db *gorm.DB
}

func NewChannelRepository(db *gorm.DB) ChannelRepository {
	return &channelRepository{db: db}
}

type channelRow struct {
	ID               string
	Name             string
	Description      string
	AvatarURL        string
	SubscribersCount int
	IsPrivate        bool
	CreatedAt        time.Time

	OwnerID                string
	OwnerUsername          string
	OwnerDisplayName       string
	OwnerAvatarURL         string
	OwnerIsVerified        bool
	OwnerVerificationColor string
}

const channelSelect = `channels.id, channels.name, channels.description, channels.avatar_url,
	channels.subscribers_count, channels.is_private, channels.created_at,
	users.id AS owner_id, users.username AS owner_username, users.display_name AS owner_display_name,
	users.avatar_url AS owner_avatar_url, users.is_verified AS owner_is_verified,
	users.verification_color AS owner_verification_color`

func (row *channelRow) toEntity() *entity.Channel {
	return &entity.Channel{
		ID:               row.ID,
		Name:             row.Name,
		Description:      row.Description,
		AvatarURL:        row.AvatarURL,
		SubscribersCount: row.SubscribersCount,
		IsPrivate:        row.IsPrivate,
		CreatedAt:        row.CreatedAt,
		Owner: entity.Author{
			ID:                row.OwnerID,
			Username:          row.OwnerUsername,
			DisplayName:       row.OwnerDisplayName,
			AvatarURL:         row.OwnerAvatarURL,
			IsVerified:        row.OwnerIsVerified,
			VerificationColor: row.OwnerVerificationColor,
		},
	}
}

func (r *channelRepository) List(limit int) ([]*entity.Channel, error) {
	var rows []channelRow
	err := r.db.Table("channels").
		Select(channelSelect).
		Joins("JOIN users ON users.id = channels.owner_id").
		Where("channels.is_private = FALSE").
		Order("channels.subscribers_count DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	channels := make([]*entity.Channel, len(rows))
	for i := range rows {
		channels[i] = rows[i].toEntity()
	}
	return channels, nil
}

func (r *channelRepository) GetByID(channelID string) (*entity.Channel, error) {
	var row channelRow
	res := r.db.Table("channels").
		Select(channelSelect).
		Joins("JOIN users ON users.id = channels.owner_id").
		Where("channels.id = ?", channelID).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrChannelNotFound
	}
	return row.toEntity(), nil
}

// Create inserts the channel, subscribes the owner to it and credits the
// creation reward, all in one transaction.
func (r *channelRepository) Create(ownerID, name, description string, isPrivate bool, avatarURL *string) (*CreateResult, error) {
	result := &CreateResult{}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		channel := &models.Channel{
			Name:             name,
			Description:      description,
			OwnerID:          ownerID,
			SubscribersCount: 1,
			IsPrivate:        isPrivate,
		}
		if avatarURL != nil {
			channel.AvatarURL = *avatarURL
		}
		if err := tx.Create(channel).Error; err != nil {
			return err
		}

		sub := &models.ChannelSubscription{ChannelID: channel.ID, UserID: ownerID}
		if err := tx.Create(sub).Error; err != nil {
			return err
		}

		balance, err := ledger.Credit(tx, ownerID, ledger.ActionCreateChannel)
		if err != nil {
			return err
		}

		result.ChannelID = channel.ID
		result.NewBalance = balance
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ToggleSubscription flips the (channel, user) membership. The insert path
// and the delete path are each a single all-or-nothing transaction; a unique
// violation on insert routes into the delete path.
func (r *channelRepository) ToggleSubscription(channelID, userID string) (*ToggleResult, error) {
	var exists int64
	if err := r.db.Model(&models.Channel{}).Where("id = ?", channelID).Count(&exists).Error; err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, ErrChannelNotFound
	}

	result, err := r.subscribe(channelID, userID)
	if err == nil {
		return result, nil
	}
	if !database.IsUniqueViolation(err) {
		return nil, err
	}
	return r.unsubscribe(channelID, userID)
}

func (r *channelRepository) subscribe(channelID, userID string) (*ToggleResult, error) {
	result := &ToggleResult{Subscribed: true}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		sub := &models.ChannelSubscription{ChannelID: channelID, UserID: userID}
		if err := tx.Create(sub).Error; err != nil {
			return err
		}

		res := tx.Raw(
			"UPDATE channels SET subscribers_count = subscribers_count + 1, updated_at = NOW() WHERE id = ? RETURNING subscribers_count",
			channelID,
		).Scan(&result.SubscribersCount)
		return res.Error
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *channelRepository) unsubscribe(channelID, userID string) (*ToggleResult, error) {
	result := &ToggleResult{Subscribed: false}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("channel_id = ? AND user_id = ?", channelID, userID).
			Delete(&models.ChannelSubscription{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Lost a race with a concurrent unsubscribe; counter already settled
			return tx.Raw("SELECT subscribers_count FROM channels WHERE id = ?", channelID).
				Scan(&result.SubscribersCount).Error
		}

		return tx.Raw(
			"UPDATE channels SET subscribers_count = subscribers_count - 1, updated_at = NOW() WHERE id = ? RETURNING subscribers_count",
			channelID,
		).Scan(&result.SubscribersCount).Error
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *channelRepository) GetPosts(channelID string, limit int) ([]*entity.ChannelPost, error) {
	var rows []struct {
		ID            string
		Content       string
		MediaURL      *string
		MediaType     *string
		LikesCount    int
		CommentsCount int
		CreatedAt     time.Time

		AuthorID                string
		AuthorUsername          string
		AuthorDisplayName       string
		AuthorAvatarURL         string
		AuthorIsVerified        bool
		AuthorVerificationColor string
	}

	err := r.db.Table("posts").
		Select(`posts.id, posts.content, posts.media_url, posts.media_type,
			posts.likes_count, posts.comments_count, posts.created_at,
			users.id AS author_id, users.username AS author_username,
			users.display_name AS author_display_name, users.avatar_url AS author_avatar_url,
			users.is_verified AS author_is_verified, users.verification_color AS author_verification_color`).
		Joins("JOIN users ON users.id = posts.user_id").
		Where("posts.channel_id = ?", channelID).
		Order("posts.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	posts := make([]*entity.ChannelPost, len(rows))
	for i, row := range rows {
		posts[i] = &entity.ChannelPost{
			ID:            row.ID,
			Content:       row.Content,
			MediaURL:      row.MediaURL,
			MediaType:     row.MediaType,
			LikesCount:    row.LikesCount,
			CommentsCount: row.CommentsCount,
			CreatedAt:     row.CreatedAt,
			Author: entity.Author{
				ID:                row.AuthorID,
				Username:          row.AuthorUsername,
				DisplayName:       row.AuthorDisplayName,
				AvatarURL:         row.AuthorAvatarURL,
				IsVerified:        row.AuthorIsVerified,
				VerificationColor: row.AuthorVerificationColor,
			},
		}
	}
	return posts, nil
}
