package usecase

import (
	"errors"
	"fmt"

	"ynaut/pkg/ledger"
	"ynaut/pkg/logger"
	"ynaut/pkg/queue"
	"ynaut/pkg/s3"
	"ynaut/services/post/internal/entity"
	"ynaut/services/post/internal/repo/persistent"
)

var (
	ErrPostNotFound = persistent.ErrPostNotFound
	ErrUserNotFound = persistent.ErrUserNotFound
	ErrNoSuperLikes = persistent.ErrNoSuperLikes
)

const feedLimit = 50

type CreatePostResult struct {
	Post       *entity.Post
	NewBalance int
	Reward     int
}

type CommentResult struct {
	Comment       *entity.Comment
	CommentsCount int
	Reward        int
}

type PostUseCase interface {
	GetFeed() ([]*entity.Post, error)
	CreatePost(userID, content string, channelID *string, mediaData, mediaType string) (*CreatePostResult, error)
	ToggleLike(postID, userID string, isSuperLike bool) (*persistent.LikeResult, error)
	CreateComment(postID, userID, content string) (*CommentResult, error)
	GetComments(postID string) ([]*entity.Comment, error)
}

type postUseCase struct {
	postRepo persistent.PostRepository
	s3Client *s3.Client
	queue    *queue.Client
	logger   *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	s3Client *s3.Client,
	queue *queue.Client,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo: postRepo,
		s3Client: s3Client,
		queue:    queue,
		logger:   logger,
	}
}

func (uc *postUseCase) GetFeed() ([]*entity.Post, error) {
	return uc.postRepo.GetFeed(feedLimit)
}

// CreatePost uploads attached media first. A failed upload degrades to a
// text-only post rather than failing the whole request.
func (uc *postUseCase) CreatePost(userID, content string, channelID *string, mediaData, mediaType string) (*CreatePostResult, error) {
	var mediaURL, storedType *string
	if mediaData != "" {
		if mediaType == "" {
			mediaType = "image/jpeg"
		}
		key := s3.MediaKey("posts", userID, mediaType)
		url, err := uc.s3Client.UploadBase64(key, mediaData, mediaType)
		if err != nil {
			uc.logger.Warn("Post media upload failed for user %s: %v", userID, err)
		} else {
			mediaURL = &url
			storedType = &mediaType
		}
	}

	created, err := uc.postRepo.Create(userID, content, channelID, mediaURL, storedType)
	if err != nil {
		if errors.Is(err, persistent.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		uc.logger.Error("Failed to create post: %v", err)
		return nil, fmt.Errorf("failed to create post")
	}

	if err := uc.queue.PublishEvent(map[string]interface{}{
		"type":    "post_created",
		"post_id": created.Post.ID,
		"user_id": userID,
	}); err != nil {
		uc.logger.Warn("Failed to publish post_created event: %v", err)
	}

	return &CreatePostResult{
		Post:       created.Post,
		NewBalance: created.NewBalance,
		Reward:     ledger.Reward(ledger.ActionCreatePost),
	}, nil
}

func (uc *postUseCase) ToggleLike(postID, userID string, isSuperLike bool) (*persistent.LikeResult, error) {
	return uc.postRepo.ToggleLike(postID, userID, isSuperLike)
}

func (uc *postUseCase) CreateComment(postID, userID, content string) (*CommentResult, error) {
	comment, count, err := uc.postRepo.CreateComment(postID, userID, content)
	if err != nil {
		return nil, err
	}

	return &CommentResult{
		Comment:       comment,
		CommentsCount: count,
		Reward:        ledger.Reward(ledger.ActionCreateComment),
	}, nil
}

func (uc *postUseCase) GetComments(postID string) ([]*entity.Comment, error) {
	return uc.postRepo.GetComments(postID, feedLimit)
}
