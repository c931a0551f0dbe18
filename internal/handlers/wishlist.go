package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"storefront-backend/internal/models"
	"storefront-backend/internal/store"
)

type WishlistHandler struct {
	wishlist store.WishlistStore
}

func NewWishlistHandler(wishlist store.WishlistStore) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist}
}

type AddWishlistItemRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	Title     string  `json:"title" binding:"required"`
	Price     float64 `json:"price" binding:"gte=0"`
	Image     string  `json:"image"`
}

func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req AddWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	w, err := h.wishlist.AddProduct(c.Request.Context(), userID, models.WishlistProduct{
		ProductID: req.ProductID,
		Title:     req.Title,
		Price:     req.Price,
		Image:     req.Image,
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Product already in wishlist"})
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("wishlist: add failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Added to wishlist", "wishlist": w})
}

// GetWishlist never 404s: a user without a wishlist document just has
// an empty wishlist.
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	w, err := h.wishlist.Get(c.Request.Context(), userID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusOK, gin.H{"products": []models.WishlistProduct{}})
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("wishlist: get failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": w.Products})
}

// Removing from a nonexistent wishlist is NotFound; removing a product
// that isn't in an existing wishlist is a quiet no-op.
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	w, err := h.wishlist.RemoveProduct(c.Request.Context(), userID, c.Param("productId"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Wishlist not found"})
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("wishlist: remove failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Removed from wishlist", "wishlist": w})
}
