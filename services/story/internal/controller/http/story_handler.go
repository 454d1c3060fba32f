package http

import (
	"errors"
	"net/http"

	"ynaut/services/story/internal/usecase"

	"github.com/gin-gonic/gin"
)

type StoryHandler struct {
	storyUseCase usecase.StoryUseCase
}

func NewStoryHandler(storyUseCase usecase.StoryUseCase) *StoryHandler {
	return &StoryHandler{storyUseCase: storyUseCase}
}

type ActionRequest struct {
	Action string `json:"action" binding:"required"`

	UserID    string `json:"user_id"`
	StoryID   string `json:"story_id"`
	MediaData string `json:"media_data"`
	MediaType string `json:"media_type"`
}

// GetStories godoc
// @Summary      Live stories
// @Description  Stories under 24 hours old, grouped by author; expired ones are swept first
// @Tags         stories
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /stories [get]
func (h *StoryHandler) GetStories(c *gin.Context) {
	groups, err := h.storyUseCase.GetStories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stories": groups})
}

// HandleAction godoc
// @Summary      Story actions
// @Description  Create and view operations dispatched by action field
// @Tags         stories
// @Accept       json
// @Produce      json
// @Param        request body ActionRequest true "Action payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /stories [post]
func (h *StoryHandler) HandleAction(c *gin.Context) {
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	switch req.Action {
	case "create":
		h.create(c, &req)
	case "view":
		h.view(c, &req)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action"})
	}
}

func (h *StoryHandler) create(c *gin.Context, req *ActionRequest) {
	userID := actorID(c, req.UserID)
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}
	if req.MediaData == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "media_data is required"})
		return
	}

	created, err := h.storyUseCase.CreateStory(userID, req.MediaData, req.MediaType)
	if err != nil {
		if errors.Is(err, usecase.ErrMediaRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"story":      created.Story,
		"reward":     created.Reward,
		"yn_balance": created.NewBalance,
	})
}

func (h *StoryHandler) view(c *gin.Context, req *ActionRequest) {
	userID := actorID(c, req.UserID)
	if userID == "" || req.StoryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and story_id are required"})
		return
	}

	result, err := h.storyUseCase.ViewStory(req.StoryID, userID)
	if err != nil {
		if errors.Is(err, usecase.ErrStoryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"viewed":      result.Viewed,
		"views_count": result.ViewsCount,
	})
}

func actorID(c *gin.Context, bodyUserID string) string {
	if bodyUserID != "" {
		return bodyUserID
	}
	return c.GetString("user_id")
}
