package persistent

import (
	"errors"
	"time"

	"ynaut/pkg/database"
	"ynaut/pkg/ledger"
	"ynaut/pkg/models"
	"ynaut/services/story/internal/entity"

	"gorm.io/gorm"
)

var (
	ErrStoryNotFound = errors.New("story not found")
	ErrUserNotFound  = ledger.ErrUserNotFound
)

type CreateResult struct {
	Story      *entity.Story
	NewBalance int
}

type ViewResult struct {
	Viewed     bool
	ViewsCount int
}

type StoryRepository interface {
	SweepExpired(now time.Time) (int64, error)
	ListLive(now time.Time) ([]*entity.StoryGroup, error)
	Create(userID, mediaURL, mediaType string, expiresAt time.Time) (*CreateResult, error)
	RecordView(storyID, viewerID string) (*ViewResult, error)
}

type storyRepository struct {
	db *gorm.DB
}

func NewStoryRepository(db *gorm.DB) StoryRepository {
	return &storyRepository{db: db}
}

// SweepExpired hard-deletes stories past their expiry together with their
// view rows. Runs on the read path; there is no background reaper.
func (r *storyRepository) SweepExpired(now time.Time) (int64, error) {
	var deleted int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(
			"DELETE FROM story_views WHERE story_id IN (SELECT id FROM stories WHERE expires_at <= ?)",
			now,
		)
		if res.Error != nil {
			return res.Error
		}

		res = tx.Where("expires_at <= ?", now).Delete(&models.Story{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	return deleted, err
}

func (r *storyRepository) ListLive(now time.Time) ([]*entity.StoryGroup, error) {
	var rows []struct {
		ID         string
		MediaURL   string
		MediaType  string
		ViewsCount int
		ExpiresAt  time.Time
		CreatedAt  time.Time

		AuthorID                string
		AuthorUsername          string
		AuthorDisplayName       string
		AuthorAvatarURL         string
		AuthorIsVerified        bool
		AuthorVerificationColor string
	}

	err := r.db.Table("stories").
		Select(`stories.id, stories.media_url, stories.media_type, stories.views_count,
			stories.expires_at, stories.created_at,
			users.id AS author_id, users.username AS author_username,
			users.display_name AS author_display_name, users.avatar_url AS author_avatar_url,
			users.is_verified AS author_is_verified, users.verification_color AS author_verification_color`).
		Joins("JOIN users ON users.id = stories.user_id").
		Where("stories.expires_at > ?", now).
		Order("stories.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	// Recency-ordered scan; the author with the newest story heads the
	// list, and each group keeps newest-first within it.
	groups := make([]*entity.StoryGroup, 0)
	byAuthor := make(map[string]int)
	for _, row := range rows {
		idx, ok := byAuthor[row.AuthorID]
		if !ok {
			idx = len(groups)
			byAuthor[row.AuthorID] = idx
			groups = append(groups, &entity.StoryGroup{
				Author: entity.Author{
					ID:                row.AuthorID,
					Username:          row.AuthorUsername,
					DisplayName:       row.AuthorDisplayName,
					AvatarURL:         row.AuthorAvatarURL,
					IsVerified:        row.AuthorIsVerified,
					VerificationColor: row.AuthorVerificationColor,
				},
			})
		}
		groups[idx].Stories = append(groups[idx].Stories, &entity.Story{
			ID:         row.ID,
			MediaURL:   row.MediaURL,
			MediaType:  row.MediaType,
			ViewsCount: row.ViewsCount,
			ExpiresAt:  row.ExpiresAt,
			CreatedAt:  row.CreatedAt,
		})
	}
	return groups, nil
}

// Create inserts the story and credits the posting reward in one
// transaction.
func (r *storyRepository) Create(userID, mediaURL, mediaType string, expiresAt time.Time) (*CreateResult, error) {
	result := &CreateResult{}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		story := &models.Story{
			UserID:    userID,
			MediaURL:  mediaURL,
			MediaType: mediaType,
			ExpiresAt: expiresAt,
		}
		if err := tx.Create(story).Error; err != nil {
			return err
		}

		balance, err := ledger.Credit(tx, userID, ledger.ActionCreateStory)
		if err != nil {
			return err
		}

		result.NewBalance = balance
		result.Story = &entity.Story{
			ID:        story.ID,
			MediaURL:  story.MediaURL,
			MediaType: story.MediaType,
			ExpiresAt: story.ExpiresAt,
			CreatedAt: story.CreatedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RecordView counts each viewer once. A repeat view is absorbed as a
// success without touching the counter.
func (r *storyRepository) RecordView(storyID, viewerID string) (*ViewResult, error) {
	var exists int64
	if err := r.db.Model(&models.Story{}).Where("id = ?", storyID).Count(&exists).Error; err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, ErrStoryNotFound
	}

	result := &ViewResult{Viewed: true}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		view := &models.StoryView{StoryID: storyID, UserID: viewerID}
		if err := tx.Create(view).Error; err != nil {
			return err
		}

		return tx.Raw(
			"UPDATE stories SET views_count = views_count + 1 WHERE id = ? RETURNING views_count",
			storyID,
		).Scan(&result.ViewsCount).Error
	})
	if err == nil {
		return result, nil
	}
	if !database.IsUniqueViolation(err) {
		return nil, err
	}

	// Already viewed; report the current counter unchanged.
	if err := r.db.Raw("SELECT views_count FROM stories WHERE id = ?", storyID).
		Scan(&result.ViewsCount).Error; err != nil {
		return nil, err
	}
	return result, nil
}
