package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"storefront-backend/internal/models"
	"storefront-backend/internal/store"
)

type OrderHandler struct {
	orders store.OrderStore
}

func NewOrderHandler(orders store.OrderStore) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type OrderItemPayload struct {
	ProductID string  `json:"productId" binding:"required"`
	Title     string  `json:"title"`
	Price     float64 `json:"price" binding:"gte=0"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity" binding:"gte=1"`
}

type CreateOrderRequest struct {
	Items       []OrderItemPayload `json:"items" binding:"required,min=1,dive"`
	TotalAmount float64            `json:"totalAmount" binding:"gte=0"`
}

// CreateOrder stores the payload verbatim as a snapshot. TotalAmount is
// client-supplied and not recomputed here.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, models.OrderItem{
			ProductID: it.ProductID,
			Title:     it.Title,
			Price:     it.Price,
			Image:     it.Image,
			Quantity:  it.Quantity,
		})
	}

	order := models.Order{
		UserID:      userID,
		Items:       items,
		TotalAmount: req.TotalAmount,
		Status:      models.OrderStatusPlaced,
		CreatedAt:   time.Now().UTC(),
	}
	if err := h.orders.CreateOrder(c.Request.Context(), &order); err != nil {
		log.Error().Err(err).Msg("orders: create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Order placed", "order": order})
}

func (h *OrderHandler) GetOrders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	orders, err := h.orders.ListOrders(c.Request.Context(), userID)
	if err != nil {
		log.Error().Err(err).Msg("orders: list failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
