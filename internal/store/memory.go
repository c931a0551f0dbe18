package store

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront-backend/internal/models"
)

// Memory implements every store interface over in-process maps. It
// backs the handler and store tests; the mutex gives it the same
// per-operation atomicity the mongo stores get from the server.
type Memory struct {
	mu        sync.Mutex
	users     []models.User
	cartItems []models.CartItem
	wishlists map[primitive.ObjectID]*models.Wishlist
	orders    []models.Order
}

func NewMemory() *Memory {
	return &Memory{wishlists: make(map[primitive.ObjectID]*models.Wishlist)}
}

func (m *Memory) CreateUser(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user.ID = primitive.NewObjectID()
	m.users = append(m.users, *user)
	return nil
}

func (m *Memory) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) AddItem(ctx context.Context, userID primitive.ObjectID, item models.CartItem) (*models.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.cartItems {
		row := &m.cartItems[i]
		if row.UserID == userID && row.ProductID == item.ProductID {
			row.Quantity++
			out := *row
			return &out, nil
		}
	}

	item.ID = primitive.NewObjectID()
	item.UserID = userID
	item.Quantity = 1
	m.cartItems = append(m.cartItems, item)
	out := item
	return &out, nil
}

func (m *Memory) ListItems(ctx context.Context, userID primitive.ObjectID) ([]models.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	items := []models.CartItem{}
	for _, row := range m.cartItems {
		if row.UserID == userID {
			items = append(items, row)
		}
	}
	return items, nil
}

func (m *Memory) RemoveItem(ctx context.Context, userID, itemID primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, row := range m.cartItems {
		if row.ID == itemID && row.UserID == userID {
			m.cartItems = append(m.cartItems[:i], m.cartItems[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) Clear(ctx context.Context, userID primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.cartItems[:0]
	for _, row := range m.cartItems {
		if row.UserID != userID {
			kept = append(kept, row)
		}
	}
	m.cartItems = kept
	return nil
}

func (m *Memory) AddProduct(ctx context.Context, userID primitive.ObjectID, product models.WishlistProduct) (*models.Wishlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.wishlists[userID]
	if !ok {
		w = &models.Wishlist{ID: primitive.NewObjectID(), UserID: userID}
		m.wishlists[userID] = w
	}
	for _, p := range w.Products {
		if p.ProductID == product.ProductID {
			return nil, ErrAlreadyExists
		}
	}
	w.Products = append(w.Products, product)
	return copyWishlist(w), nil
}

func (m *Memory) Get(ctx context.Context, userID primitive.ObjectID) (*models.Wishlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.wishlists[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return copyWishlist(w), nil
}

func (m *Memory) RemoveProduct(ctx context.Context, userID primitive.ObjectID, productID string) (*models.Wishlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.wishlists[userID]
	if !ok {
		return nil, ErrNotFound
	}
	kept := w.Products[:0]
	for _, p := range w.Products {
		if p.ProductID != productID {
			kept = append(kept, p)
		}
	}
	w.Products = kept
	return copyWishlist(w), nil
}

func (m *Memory) CreateOrder(ctx context.Context, order *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	order.ID = primitive.NewObjectID()
	stored := *order
	stored.Items = append([]models.OrderItem(nil), order.Items...)
	m.orders = append(m.orders, stored)
	return nil
}

func (m *Memory) ListOrders(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	orders := []models.Order{}
	for _, o := range m.orders {
		if o.UserID == userID {
			o.Items = append([]models.OrderItem(nil), o.Items...)
			orders = append(orders, o)
		}
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func copyWishlist(w *models.Wishlist) *models.Wishlist {
	out := *w
	out.Products = append([]models.WishlistProduct(nil), w.Products...)
	return &out
}
