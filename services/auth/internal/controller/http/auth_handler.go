package http

import (
	"errors"
	"net/http"

	"ynaut/services/auth/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
}

func NewAuthHandler(authUseCase usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUseCase: authUseCase}
}

// ActionRequest is the mutation envelope: every POST carries an action field
// plus the action's own parameters.
type ActionRequest struct {
	Action string `json:"action" binding:"required"`

	Username       string  `json:"username"`
	Email          string  `json:"email"`
	Password       string  `json:"password"`
	DisplayName    string  `json:"display_name"`
	UserID         string  `json:"user_id"`
	Bio            *string `json:"bio"`
	NewDisplayName *string `json:"new_display_name"`
	AvatarData     string  `json:"avatar_data"`
	AvatarType     string  `json:"avatar_type"`
}

// HandleAction godoc
// @Summary      Auth actions
// @Description  Register, login and profile mutations dispatched by action field
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body ActionRequest true "Action payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /auth [post]
func (h *AuthHandler) HandleAction(c *gin.Context) {
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	switch req.Action {
	case "register":
		h.register(c, &req)
	case "login":
		h.login(c, &req)
	case "get_profile":
		h.getProfile(c, &req)
	case "update_profile":
		h.updateProfile(c, &req)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action"})
	}
}

func (h *AuthHandler) register(c *gin.Context, req *ActionRequest) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username, email and password are required"})
		return
	}
	if len(req.Username) < 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username must be at least 3 characters"})
		return
	}
	if len(req.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters"})
		return
	}

	user, token, err := h.authUseCase.Register(req.Username, req.Email, req.Password, req.DisplayName)
	if err != nil {
		if errors.Is(err, usecase.ErrUserExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user, "token": token})
}

func (h *AuthHandler) login(c *gin.Context, req *ActionRequest) {
	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	user, token, err := h.authUseCase.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user, "token": token})
}

func (h *AuthHandler) getProfile(c *gin.Context, req *ActionRequest) {
	userID := actorID(c, req.UserID)
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	user, err := h.authUseCase.GetProfile(userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

func (h *AuthHandler) updateProfile(c *gin.Context, req *ActionRequest) {
	userID := actorID(c, req.UserID)
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	user, err := h.authUseCase.UpdateProfile(userID, req.NewDisplayName, req.Bio, req.AvatarData, req.AvatarType)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// actorID resolves the acting user: an explicit body field wins, a bearer
// token identity fills the gap.
func actorID(c *gin.Context, bodyUserID string) string {
	if bodyUserID != "" {
		return bodyUserID
	}
	return c.GetString("user_id")
}
