package persistent

import (
	"ynaut/pkg/models"
	"ynaut/services/auth/internal/entity"
)

func ToUserEntity(m *models.User) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:                  m.ID,
		Username:            m.Username,
		Email:               m.Email,
		DisplayName:         m.DisplayName,
		AvatarURL:           m.AvatarURL,
		Bio:                 m.Bio,
		YnBalance:           m.YnBalance,
		IsPremium:           m.IsPremium,
		IsVerified:          m.IsVerified,
		VerificationColor:   string(m.VerificationColor),
		BoostActiveUntil:    m.BoostActiveUntil,
		CustomTheme:         m.CustomTheme,
		SuperLikesCount:     m.SuperLikesCount,
		PremiumEmojiEnabled: m.PremiumEmojiEnabled,
		CreatedAt:           m.CreatedAt,
	}
}
