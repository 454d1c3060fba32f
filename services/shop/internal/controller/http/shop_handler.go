package http

import (
	"errors"
	"net/http"

	"ynaut/services/shop/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ShopHandler struct {
	shopUseCase usecase.ShopUseCase
}

func NewShopHandler(shopUseCase usecase.ShopUseCase) *ShopHandler {
	return &ShopHandler{shopUseCase: shopUseCase}
}

type ActionRequest struct {
	Action string `json:"action" binding:"required"`

	UserID   string `json:"user_id"`
	ItemType string `json:"item_type"`
	ItemName string `json:"item_name"`
	Price    int    `json:"price"`
}

// GetCatalog godoc
// @Summary      Shop catalog
// @Description  Fixed item inventory with prices
// @Tags         shop
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /shop [get]
func (h *ShopHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "items": h.shopUseCase.GetCatalog()})
}

// HandleAction godoc
// @Summary      Shop actions
// @Description  Purchase and purchase-history operations dispatched by action field
// @Tags         shop
// @Accept       json
// @Produce      json
// @Param        request body ActionRequest true "Action payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /shop [post]
func (h *ShopHandler) HandleAction(c *gin.Context) {
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	switch req.Action {
	case "purchase":
		h.purchase(c, &req)
	case "get_purchases":
		h.getPurchases(c, &req)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action"})
	}
}

func (h *ShopHandler) purchase(c *gin.Context, req *ActionRequest) {
	userID := actorID(c, req.UserID)
	if userID == "" || req.ItemType == "" || req.ItemName == "" || req.Price == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id, item_type, item_name and price are required"})
		return
	}

	result, err := h.shopUseCase.Purchase(userID, req.ItemType, req.ItemName, req.Price)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrInsufficientBalance),
			errors.Is(err, usecase.ErrUnknownItem),
			errors.Is(err, usecase.ErrItemMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"purchase":   result.Purchase,
		"yn_balance": result.NewBalance,
	})
}

func (h *ShopHandler) getPurchases(c *gin.Context, req *ActionRequest) {
	userID := actorID(c, req.UserID)
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	purchases, err := h.shopUseCase.GetPurchases(userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "purchases": purchases})
}

func actorID(c *gin.Context, bodyUserID string) string {
	if bodyUserID != "" {
		return bodyUserID
	}
	return c.GetString("user_id")
}
