package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront-backend/internal/models"
)

func TestCartAddItemIncrementsNotDuplicates(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	userID := primitive.NewObjectID()

	item := models.CartItem{ProductID: "p1", Title: "Widget", Price: 10}
	first, err := m.AddItem(ctx, userID, item)
	require.NoError(t, err)
	require.Equal(t, 1, first.Quantity)

	second, err := m.AddItem(ctx, userID, item)
	require.NoError(t, err)
	require.Equal(t, 2, second.Quantity)
	require.Equal(t, first.ID, second.ID)

	items, err := m.ListItems(ctx, userID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, 2, items[0].Quantity)
}

func TestCartRowsAreScopedPerUser(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()

	_, err := m.AddItem(ctx, alice, models.CartItem{ProductID: "p1"})
	require.NoError(t, err)
	_, err = m.AddItem(ctx, bob, models.CartItem{ProductID: "p1"})
	require.NoError(t, err)

	aliceItems, err := m.ListItems(ctx, alice)
	require.NoError(t, err)
	require.Len(t, aliceItems, 1)
	require.Equal(t, 1, aliceItems[0].Quantity)
}

func TestCartRemoveItemOwnershipScoped(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()

	item, err := m.AddItem(ctx, alice, models.CartItem{ProductID: "p1"})
	require.NoError(t, err)

	// a valid id owned by someone else is indistinguishable from a
	// missing one
	err = m.RemoveItem(ctx, bob, item.ID)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.RemoveItem(ctx, alice, item.ID))
	err = m.RemoveItem(ctx, alice, item.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCartClear(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()

	_, err := m.AddItem(ctx, alice, models.CartItem{ProductID: "p1"})
	require.NoError(t, err)
	_, err = m.AddItem(ctx, alice, models.CartItem{ProductID: "p2"})
	require.NoError(t, err)
	_, err = m.AddItem(ctx, bob, models.CartItem{ProductID: "p1"})
	require.NoError(t, err)

	require.NoError(t, m.Clear(ctx, alice))

	aliceItems, err := m.ListItems(ctx, alice)
	require.NoError(t, err)
	require.Empty(t, aliceItems)

	bobItems, err := m.ListItems(ctx, bob)
	require.NoError(t, err)
	require.Len(t, bobItems, 1)
}

func TestWishlistDuplicateAddRejected(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	userID := primitive.NewObjectID()

	_, err := m.AddProduct(ctx, userID, models.WishlistProduct{ProductID: "p1"})
	require.NoError(t, err)

	_, err = m.AddProduct(ctx, userID, models.WishlistProduct{ProductID: "p1"})
	require.ErrorIs(t, err, ErrAlreadyExists)

	w, err := m.Get(ctx, userID)
	require.NoError(t, err)
	require.Len(t, w.Products, 1)
}

func TestWishlistGetAbsent(t *testing.T) {
	m := NewMemory()

	_, err := m.Get(context.Background(), primitive.NewObjectID())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestWishlistRemove(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	userID := primitive.NewObjectID()

	// no document at all
	_, err := m.RemoveProduct(ctx, userID, "p1")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = m.AddProduct(ctx, userID, models.WishlistProduct{ProductID: "p1"})
	require.NoError(t, err)

	// absent product in an existing document is a no-op
	w, err := m.RemoveProduct(ctx, userID, "p2")
	require.NoError(t, err)
	require.Len(t, w.Products, 1)

	w, err = m.RemoveProduct(ctx, userID, "p1")
	require.NoError(t, err)
	require.Empty(t, w.Products)

	// the emptied document persists
	w, err = m.Get(ctx, userID)
	require.NoError(t, err)
	require.Empty(t, w.Products)
}

func TestOrderSnapshotIndependentOfCart(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	userID := primitive.NewObjectID()

	_, err := m.AddItem(ctx, userID, models.CartItem{ProductID: "p1", Price: 10})
	require.NoError(t, err)

	items := []models.OrderItem{{ProductID: "p1", Price: 10, Quantity: 2}}
	order := models.Order{
		UserID:      userID,
		Items:       items,
		TotalAmount: 20,
		Status:      models.OrderStatusPlaced,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, m.CreateOrder(ctx, &order))

	// mutating the caller's slice and clearing the cart must not leak
	// into the stored order
	items[0].Quantity = 99
	require.NoError(t, m.Clear(ctx, userID))

	orders, err := m.ListOrders(ctx, userID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, 2, orders[0].Items[0].Quantity)
	require.Equal(t, float64(20), orders[0].TotalAmount)
}

func TestOrdersListedNewestFirst(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	userID := primitive.NewObjectID()

	base := time.Now()
	for i, age := range []time.Duration{2 * time.Hour, time.Hour, 0} {
		order := models.Order{
			UserID:      userID,
			Items:       []models.OrderItem{{ProductID: "p", Quantity: i + 1}},
			Status:      models.OrderStatusPlaced,
			CreatedAt:   base.Add(-age),
			TotalAmount: float64(i),
		}
		require.NoError(t, m.CreateOrder(ctx, &order))
	}

	orders, err := m.ListOrders(ctx, userID)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	require.True(t, orders[0].CreatedAt.After(orders[1].CreatedAt))
	require.True(t, orders[1].CreatedAt.After(orders[2].CreatedAt))
}

func TestUserStoreDuplicateLookup(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, err := m.GetUserByEmail(ctx, "a@x.com")
	require.ErrorIs(t, err, ErrNotFound)

	user := models.User{Name: "A", Email: "a@x.com", Password: "hash"}
	require.NoError(t, m.CreateUser(ctx, &user))
	require.False(t, user.ID.IsZero())

	found, err := m.GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, user.ID, found.ID)
}
