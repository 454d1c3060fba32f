package http

import (
	"errors"
	"net/http"

	"ynaut/services/channel/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ChannelHandler struct {
	channelUseCase usecase.ChannelUseCase
}

func NewChannelHandler(channelUseCase usecase.ChannelUseCase) *ChannelHandler {
	return &ChannelHandler{channelUseCase: channelUseCase}
}

type ActionRequest struct {
	Action string `json:"action" binding:"required"`

	UserID      string `json:"user_id"`
	ChannelID   string `json:"channel_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsPrivate   bool   `json:"is_private"`
	AvatarData  string `json:"avatar_data"`
	AvatarType  string `json:"avatar_type"`
}

// ListChannels godoc
// @Summary      List channels
// @Description  Public channels ordered by subscriber count, or one channel by channel_id
// @Tags         channels
// @Produce      json
// @Param        channel_id query string false "Channel ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /channels [get]
func (h *ChannelHandler) ListChannels(c *gin.Context) {
	if channelID := c.Query("channel_id"); channelID != "" {
		channel, err := h.channelUseCase.GetChannel(channelID)
		if err != nil {
			if errors.Is(err, usecase.ErrChannelNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "channel": channel})
		return
	}

	channels, err := h.channelUseCase.ListChannels()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "channels": channels})
}

// HandleAction godoc
// @Summary      Channel actions
// @Description  Create, subscribe and channel post listing dispatched by action field
// @Tags         channels
// @Accept       json
// @Produce      json
// @Param        request body ActionRequest true "Action payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /channels [post]
func (h *ChannelHandler) HandleAction(c *gin.Context) {
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	switch req.Action {
	case "create":
		h.create(c, &req)
	case "subscribe":
		h.subscribe(c, &req)
	case "get_posts":
		h.getPosts(c, &req)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action"})
	}
}

func (h *ChannelHandler) create(c *gin.Context, req *ActionRequest) {
	userID := actorID(c, req.UserID)
	if userID == "" || req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and name are required"})
		return
	}

	created, err := h.channelUseCase.CreateChannel(userID, req.Name, req.Description, req.IsPrivate, req.AvatarData, req.AvatarType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"channel_id": created.ChannelID,
		"reward":     created.Reward,
		"yn_balance": created.NewBalance,
	})
}

func (h *ChannelHandler) subscribe(c *gin.Context, req *ActionRequest) {
	userID := actorID(c, req.UserID)
	if userID == "" || req.ChannelID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and channel_id are required"})
		return
	}

	result, err := h.channelUseCase.ToggleSubscription(req.ChannelID, userID)
	if err != nil {
		if errors.Is(err, usecase.ErrChannelNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"subscribed":        result.Subscribed,
		"subscribers_count": result.SubscribersCount,
	})
}

func (h *ChannelHandler) getPosts(c *gin.Context, req *ActionRequest) {
	if req.ChannelID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "channel_id is required"})
		return
	}

	posts, err := h.channelUseCase.GetChannelPosts(req.ChannelID)
	if err != nil {
		if errors.Is(err, usecase.ErrChannelNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "posts": posts})
}

func actorID(c *gin.Context, bodyUserID string) string {
	if bodyUserID != "" {
		return bodyUserID
	}
	return c.GetString("user_id")
}
