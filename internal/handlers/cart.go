package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront-backend/internal/models"
	"storefront-backend/internal/store"
)

type CartHandler struct {
	cart store.CartStore
}

func NewCartHandler(cart store.CartStore) *CartHandler {
	return &CartHandler{cart: cart}
}

type AddCartItemRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	Title     string  `json:"title" binding:"required"`
	Price     float64 `json:"price" binding:"gte=0"`
	Image     string  `json:"image"`
}

func (h *CartHandler) AddToCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	_, err := h.cart.AddItem(c.Request.Context(), userID, models.CartItem{
		ProductID: req.ProductID,
		Title:     req.Title,
		Price:     req.Price,
		Image:     req.Image,
	})
	if err != nil {
		log.Error().Err(err).Msg("cart: add failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item added to cart"})
}

func (h *CartHandler) GetCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	items, err := h.cart.ListItems(c.Request.Context(), userID)
	if err != nil {
		log.Error().Err(err).Msg("cart: list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	// An unparseable id gets the same answer as someone else's id.
	itemID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
		return
	}

	err = h.cart.RemoveItem(c.Request.Context(), userID, itemID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("cart: remove failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.cart.Clear(c.Request.Context(), userID); err != nil {
		log.Error().Err(err).Msg("cart: clear failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
