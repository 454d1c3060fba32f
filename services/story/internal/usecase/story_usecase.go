package usecase

import (
	"fmt"
	"time"

	"ynaut/pkg/ledger"
	"ynaut/pkg/logger"
	"ynaut/pkg/models"
	"ynaut/pkg/s3"
	"ynaut/services/story/internal/entity"
	"ynaut/services/story/internal/repo/persistent"
)

var (
	ErrStoryNotFound = persistent.ErrStoryNotFound
	ErrMediaRequired = fmt.Errorf("media is required for a story")
	ErrMediaUpload   = fmt.Errorf("failed to upload story media")
)

type CreateStoryResult struct {
	Story      *entity.Story
	NewBalance int
	Reward     int
}

type StoryUseCase interface {
	GetStories() ([]*entity.StoryGroup, error)
	CreateStory(userID, mediaData, mediaType string) (*CreateStoryResult, error)
	ViewStory(storyID, viewerID string) (*persistent.ViewResult, error)
}

type storyUseCase struct {
	storyRepo persistent.StoryRepository
	s3Client  *s3.Client
	logger    *logger.Logger
}

func NewStoryUseCase(
	storyRepo persistent.StoryRepository,
	s3Client *s3.Client,
	logger *logger.Logger,
) StoryUseCase {
	return &storyUseCase{
		storyRepo: storyRepo,
		s3Client:  s3Client,
		logger:    logger,
	}
}

// GetStories sweeps expired stories first, then returns the live ones
// grouped by author. Expiry is enforced here rather than by a background
// job.
func (uc *storyUseCase) GetStories() ([]*entity.StoryGroup, error) {
	now := time.Now()

	deleted, err := uc.storyRepo.SweepExpired(now)
	if err != nil {
		uc.logger.Error("Story sweep failed: %v", err)
		return nil, fmt.Errorf("failed to load stories")
	}
	if deleted > 0 {
		uc.logger.Info("Swept %d expired stories", deleted)
	}

	return uc.storyRepo.ListLive(now)
}

// CreateStory requires media: unlike posts and channels there is nothing to
// degrade to, so an upload failure aborts the request.
func (uc *storyUseCase) CreateStory(userID, mediaData, mediaType string) (*CreateStoryResult, error) {
	if mediaData == "" {
		return nil, ErrMediaRequired
	}
	if mediaType == "" {
		mediaType = "image/jpeg"
	}

	key := s3.MediaKey("stories", userID, mediaType)
	mediaURL, err := uc.s3Client.UploadBase64(key, mediaData, mediaType)
	if err != nil {
		uc.logger.Error("Story media upload failed for user %s: %v", userID, err)
		return nil, ErrMediaUpload
	}

	created, err := uc.storyRepo.Create(userID, mediaURL, mediaType, time.Now().Add(models.StoryTTL))
	if err != nil {
		uc.logger.Error("Failed to create story: %v", err)
		return nil, fmt.Errorf("failed to create story")
	}

	return &CreateStoryResult{
		Story:      created.Story,
		NewBalance: created.NewBalance,
		Reward:     ledger.Reward(ledger.ActionCreateStory),
	}, nil
}

func (uc *storyUseCase) ViewStory(storyID, viewerID string) (*persistent.ViewResult, error) {
	return uc.storyRepo.RecordView(storyID, viewerID)
}
