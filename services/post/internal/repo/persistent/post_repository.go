package persistent

import (
	"errors"
	"time"

	"ynaut/pkg/database"
	"ynaut/pkg/ledger"
	"ynaut/pkg/models"
	"ynaut/services/post/internal/entity"

	"gorm.io/gorm"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrUserNotFound = ledger.ErrUserNotFound
	ErrNoSuperLikes = ledger.ErrNoSuperLikes
)

type CreateResult struct {
	Post       *entity.Post
	NewBalance int
}

type LikeResult struct {
	Liked      bool
	LikesCount int
}

type PostRepository interface {
	GetFeed(limit int) ([]*entity.Post, error)
	Create(userID, content string, channelID, mediaURL, mediaType *string) (*CreateResult, error)
	ToggleLike(postID, userID string, isSuperLike bool) (*LikeResult, error)
	CreateComment(postID, userID, content string) (*entity.Comment, int, error)
	GetComments(postID string, limit int) ([]*entity.Comment, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

type postRow struct {
	ID            string
	Content       string
	MediaURL      *string
	MediaType     *string
	ChannelID     *string
	LikesCount    int
	CommentsCount int
	IsBoosted     bool
	CreatedAt     time.Time

	AuthorID                string
	AuthorUsername          string
	AuthorDisplayName       string
	AuthorAvatarURL         string
	AuthorIsVerified        bool
	AuthorVerificationColor string
}

const postSelect = `posts.id, posts.content, posts.media_url, posts.media_type, posts.channel_id,
	posts.likes_count, posts.comments_count, posts.is_boosted, posts.created_at,
	users.id AS author_id, users.username AS author_username, users.display_name AS author_display_name,
	users.avatar_url AS author_avatar_url, users.is_verified AS author_is_verified,
	users.verification_color AS author_verification_color`

func (row *postRow) toEntity() *entity.Post {
	return &entity.Post{
		ID:            row.ID,
		Content:       row.Content,
		MediaURL:      row.MediaURL,
		MediaType:     row.MediaType,
		ChannelID:     row.ChannelID,
		LikesCount:    row.LikesCount,
		CommentsCount: row.CommentsCount,
		IsBoosted:     row.IsBoosted,
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

// GetFeed returns the newest posts with boosted posts surfaced first.
func (r *postRepository) GetFeed(limit int) ([]*entity.Post, error) {
	var rows []postRow
	err := r.db.Table("posts").
		Select(postSelect).
		Joins("JOIN users ON users.id = posts.user_id").
		Order("posts.is_boosted DESC, posts.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(rows))
	for i := range rows {
		posts[i] = rows[i].toEntity()
	}
	return posts, nil
}

// Create inserts the post and credits the posting reward in one transaction.
// The boost flag is a snapshot of the author's boost window at this moment.
func (r *postRepository) Create(userID, content string, channelID, mediaURL, mediaType *string) (*CreateResult, error) {
	result := &CreateResult{}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		res := tx.Select("id", "username", "display_name", "avatar_url", "is_verified", "verification_color", "boost_active_until").
			Where("id = ?", userID).
			Limit(1).
			Find(&user)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrUserNotFound
		}

		post := &models.Post{
			UserID:    userID,
			ChannelID: channelID,
			Content:   content,
			MediaURL:  mediaURL,
			MediaType: mediaType,
			IsBoosted: user.BoostActive(time.Now()),
		}
		if err := tx.Create(post).Error; err != nil {
			return err
		}

		balance, err := ledger.Credit(tx, userID, ledger.ActionCreatePost)
		if err != nil {
			return err
		}

		result.NewBalance = balance
		result.Post = &entity.Post{
			ID:        post.ID,
			Content:   post.Content,
			MediaURL:  post.MediaURL,
			MediaType: post.MediaType,
			ChannelID: post.ChannelID,
			IsBoosted: post.IsBoosted,
			CreatedAt: post.CreatedAt,
			Author: entity.Author{
				ID:                user.ID,
				Username:          user.Username,
				DisplayName:       user.DisplayName,
				AvatarURL:         user.AvatarURL,
				IsVerified:        user.IsVerified,
				VerificationColor: string(user.VerificationColor),
			},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ToggleLike flips the (user, post) like. Activation inserts the like row,
// bumps the counter by the requested weight and credits the liker; a unique
// violation on that insert routes into deactivation, which removes the
// stored row and decrements by the weight it was stored with. Balances never
// move on deactivation.
func (r *postRepository) ToggleLike(postID, userID string, isSuperLike bool) (*LikeResult, error) {
	var exists int64
	if err := r.db.Model(&models.Post{}).Where("id = ?", postID).Count(&exists).Error; err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, ErrPostNotFound
	}

	result, err := r.like(postID, userID, isSuperLike)
	if err == nil {
		return result, nil
	}
	if !database.IsUniqueViolation(err) {
		return nil, err
	}
	return r.unlike(postID, userID)
}

func (r *postRepository) like(postID, userID string, isSuperLike bool) (*LikeResult, error) {
	result := &LikeResult{Liked: true}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if isSuperLike {
			if err := ledger.ConsumeSuperLike(tx, userID); err != nil {
				return err
			}
		}

		like := &models.Like{UserID: userID, PostID: postID, IsSuperLike: isSuperLike}
		if err := tx.Create(like).Error; err != nil {
			return err
		}

		res := tx.Raw(
			"UPDATE posts SET likes_count = likes_count + ?, updated_at = NOW() WHERE id = ? RETURNING likes_count",
			like.Weight(), postID,
		).Scan(&result.LikesCount)
		if res.Error != nil {
			return res.Error
		}

		_, err := ledger.Credit(tx, userID, ledger.ActionLikePost)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postRepository) unlike(postID, userID string) (*LikeResult, error) {
	result := &LikeResult{Liked: false}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var like models.Like
		res := tx.Where("user_id = ? AND post_id = ?", userID, postID).Limit(1).Find(&like)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Lost a race with a concurrent unlike; counter already settled
			return tx.Raw("SELECT likes_count FROM posts WHERE id = ?", postID).
				Scan(&result.LikesCount).Error
		}

		if err := tx.Delete(&like).Error; err != nil {
			return err
		}

		return tx.Raw(
			"UPDATE posts SET likes_count = likes_count - ?, updated_at = NOW() WHERE id = ? RETURNING likes_count",
			like.Weight(), postID,
		).Scan(&result.LikesCount).Error
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CreateComment inserts the comment, bumps the post counter and credits the
// commenter in one transaction. Returns the comment and the new counter.
func (r *postRepository) CreateComment(postID, userID, content string) (*entity.Comment, int, error) {
	var comment *entity.Comment
	var commentsCount int

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var author models.User
		res := tx.Select("id", "username", "display_name", "avatar_url", "is_verified", "verification_color").
			Where("id = ?", userID).
			Limit(1).
			Find(&author)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrUserNotFound
		}

		row := &models.Comment{PostID: postID, UserID: userID, Content: content}
		if err := tx.Create(row).Error; err != nil {
			return err
		}

		countRes := tx.Raw(
			"UPDATE posts SET comments_count = comments_count + 1, updated_at = NOW() WHERE id = ? RETURNING comments_count",
			postID,
		).Scan(&commentsCount)
		if countRes.Error != nil {
			return countRes.Error
		}

		if _, err := ledger.Credit(tx, userID, ledger.ActionCreateComment); err != nil {
			return err
		}

		comment = &entity.Comment{
			ID:        row.ID,
			PostID:    row.PostID,
			Content:   row.Content,
			CreatedAt: row.CreatedAt,
			Author: entity.Author{
				ID:                author.ID,
				Username:          author.Username,
				DisplayName:       author.DisplayName,
				AvatarURL:         author.AvatarURL,
				IsVerified:        author.IsVerified,
				VerificationColor: string(author.VerificationColor),
			},
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return comment, commentsCount, nil
}

func (r *postRepository) GetComments(postID string, limit int) ([]*entity.Comment, error) {
	var exists int64
	if err := r.db.Model(&models.Post{}).Where("id = ?", postID).Count(&exists).Error; err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, ErrPostNotFound
	}

	var rows []struct {
		ID        string
		PostID    string
		Content   string
		CreatedAt time.Time

		AuthorID                string
		AuthorUsername          string
		AuthorDisplayName       string
		AuthorAvatarURL         string
		AuthorIsVerified        bool
		AuthorVerificationColor string
	}

	err := r.db.Table("comments").
		Select(`comments.id, comments.post_id, comments.content, comments.created_at,
			users.id AS author_id, users.username AS author_username,
			users.display_name AS author_display_name, users.avatar_url AS author_avatar_url,
			users.is_verified AS author_is_verified, users.verification_color AS author_verification_color`).
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.post_id = ?", postID).
		Order("comments.created_at ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, len(rows))
	for i, row := range rows {
		comments[i] = &entity.Comment{
			ID:        row.ID,
			PostID:    row.PostID,
			Content:   row.Content,
			CreatedAt: row.CreatedAt,
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
	return comments, nil
}
