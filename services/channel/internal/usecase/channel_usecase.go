package usecase

import (
	"fmt"

	"ynaut/pkg/ledger"
	"ynaut/pkg/logger"
	"ynaut/pkg/queue"
	"ynaut/pkg/s3"
	"ynaut/services/channel/internal/entity"
	"ynaut/services/channel/internal/repo/persistent"
)

var ErrChannelNotFound = persistent.ErrChannelNotFound

const listLimit = 50

type CreateChannelResult struct {
	ChannelID  string
	NewBalance int
	Reward     int
}

type ChannelUseCase interface {
	ListChannels() ([]*entity.Channel, error)
	GetChannel(channelID string) (*entity.Channel, error)
	CreateChannel(ownerID, name, description string, isPrivate bool, avatarData, avatarType string) (*CreateChannelResult, error)
	ToggleSubscription(channelID, userID string) (*persistent.ToggleResult, error)
	GetChannelPosts(channelID string) ([]*entity.ChannelPost, error)
}

type channelUseCase struct {
	channelRepo persistent.ChannelRepository
	s3Client    *s3.Client
	queue       *queue.Client
	logger      *logger.Logger
}

func NewChannelUseCase(
	channelRepo persistent.ChannelRepository,
	s3Client *s3.Client,
	queue *queue.Client,
	logger *logger.Logger,
) ChannelUseCase {
	return &channelUseCase{
		channelRepo: channelRepo,
		s3Client:    s3Client,
		queue:       queue,
		logger:      logger,
	}
}

func (uc *channelUseCase) ListChannels() ([]*entity.Channel, error) {
	return uc.channelRepo.List(listLimit)
}

func (uc *channelUseCase) GetChannel(channelID string) (*entity.Channel, error) {
	return uc.channelRepo.GetByID(channelID)
}

// CreateChannel uploads the avatar when one is supplied and degrades to a
// channel without one if the upload fails.
func (uc *channelUseCase) CreateChannel(ownerID, name, description string, isPrivate bool, avatarData, avatarType string) (*CreateChannelResult, error) {
	var avatarURL *string
	if avatarData != "" {
		if avatarType == "" {
			avatarType = "image/jpeg"
		}
		key := s3.MediaKey("channels", ownerID, avatarType)
		url, err := uc.s3Client.UploadBase64(key, avatarData, avatarType)
		if err != nil {
			uc.logger.Warn("Channel avatar upload failed for user %s: %v", ownerID, err)
		} else {
			avatarURL = &url
		}
	}

	created, err := uc.channelRepo.Create(ownerID, name, description, isPrivate, avatarURL)
	if err != nil {
		uc.logger.Error("Failed to create channel: %v", err)
		return nil, fmt.Errorf("failed to create channel")
	}

	if err := uc.queue.PublishEvent(map[string]interface{}{
		"type":       "channel_created",
		"channel_id": created.ChannelID,
		"user_id":    ownerID,
	}); err != nil {
		uc.logger.Warn("Failed to publish channel_created event: %v", err)
	}

	return &CreateChannelResult{
		ChannelID:  created.ChannelID,
		NewBalance: created.NewBalance,
		Reward:     ledger.Reward(ledger.ActionCreateChannel),
	}, nil
}

func (uc *channelUseCase) ToggleSubscription(channelID, userID string) (*persistent.ToggleResult, error) {
	return uc.channelRepo.ToggleSubscription(channelID, userID)
}

func (uc *channelUseCase) GetChannelPosts(channelID string) ([]*entity.ChannelPost, error) {
	if _, err := uc.channelRepo.GetByID(channelID); err != nil {
		return nil, err
	}
	return uc.channelRepo.GetPosts(channelID, listLimit)
}
