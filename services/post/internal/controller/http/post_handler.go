package http

import (
	"errors"
	"net/http"

	"ynaut/services/post/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
}

func NewPostHandler(postUseCase usecase.PostUseCase) *PostHandler {
	return &PostHandler{postUseCase: postUseCase}
}

type ActionRequest struct {
	Action string `json:"action" binding:"required"`

	UserID       string  `json:"user_id"`
	PostID       string  `json:"post_id"`
	ChannelID    *string `json:"channel_id"`
	Content      string  `json:"content"`
	MediaData    string  `json:"media_data"`
	MediaType    string  `json:"media_type"`
	UseSuperLike bool    `json:"use_super_like"`
}

// GetFeed godoc
// @Summary      Post feed
// @Description  Newest posts, boosted posts first
// @Tags         posts
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /posts [get]
func (h *PostHandler) GetFeed(c *gin.Context) {
	posts, err := h.postUseCase.GetFeed()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "posts": posts})
}

// HandleAction godoc
// @Summary      Post actions
// @Description  Create, like and comment operations dispatched by action field
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        request body ActionRequest true "Action payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) HandleAction(c *gin.Context) {
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	switch req.Action {
	case "create":
		h.create(c, &req)
	case "like":
		h.like(c, &req)
	case "comment":
		h.comment(c, &req)
	case "get_comments":
		h.getComments(c, &req)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action"})
	}
}

func (h *PostHandler) create(c *gin.Context, req *ActionRequest) {
	userID := actorID(c, req.UserID)
	if userID == "" || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and content are required"})
		return
	}

	created, err := h.postUseCase.CreatePost(userID, req.Content, req.ChannelID, req.MediaData, req.MediaType)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"post":       created.Post,
		"reward":     created.Reward,
		"yn_balance": created.NewBalance,
	})
}

func (h *PostHandler) like(c *gin.Context, req *ActionRequest) {
	userID := actorID(c, req.UserID)
	if userID == "" || req.PostID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and post_id are required"})
		return
	}

	result, err := h.postUseCase.ToggleLike(req.PostID, userID, req.UseSuperLike)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrNoSuperLikes):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"liked":       result.Liked,
		"likes_count": result.LikesCount,
	})
}

func (h *PostHandler) comment(c *gin.Context, req *ActionRequest) {
	userID := actorID(c, req.UserID)
	if userID == "" || req.PostID == "" || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id, post_id and content are required"})
		return
	}

	result, err := h.postUseCase.CreateComment(req.PostID, userID, req.Content)
	if err != nil {
		if errors.Is(err, usecase.ErrPostNotFound) || errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"comment":        result.Comment,
		"comments_count": result.CommentsCount,
		"reward":         result.Reward,
	})
}

func (h *PostHandler) getComments(c *gin.Context, req *ActionRequest) {
	if req.PostID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "post_id is required"})
		return
	}

	comments, err := h.postUseCase.GetComments(req.PostID)
	if err != nil {
		if errors.Is(err, usecase.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "comments": comments})
}

func actorID(c *gin.Context, bodyUserID string) string {
	if bodyUserID != "" {
		return bodyUserID
	}
	return c.GetString("user_id")
}
