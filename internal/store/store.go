// Package store defines the persistence boundary. Every operation is
// scoped by the owning user's id, so cross-user reads and writes are
// impossible at this layer.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront-backend/internal/models"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type CartStore interface {
	// AddItem increments quantity for an existing (userID, productID)
	// row or inserts a fresh row with quantity 1. Never duplicates.
	AddItem(ctx context.Context, userID primitive.ObjectID, item models.CartItem) (*models.CartItem, error)
	ListItems(ctx context.Context, userID primitive.ObjectID) ([]models.CartItem, error)
	// RemoveItem deletes only when the row belongs to userID; an id
	// owned by someone else reports ErrNotFound.
	RemoveItem(ctx context.Context, userID, itemID primitive.ObjectID) error
	Clear(ctx context.Context, userID primitive.ObjectID) error
}

type WishlistStore interface {
	// AddProduct creates the user's wishlist document lazily and
	// reports ErrAlreadyExists on a duplicate productID.
	AddProduct(ctx context.Context, userID primitive.ObjectID, product models.WishlistProduct) (*models.Wishlist, error)
	Get(ctx context.Context, userID primitive.ObjectID) (*models.Wishlist, error)
	// RemoveProduct reports ErrNotFound when the user has no wishlist
	// document; removing a product that isn't present is a no-op.
	RemoveProduct(ctx context.Context, userID primitive.ObjectID, productID string) (*models.Wishlist, error)
}

type OrderStore interface {
	CreateOrder(ctx context.Context, order *models.Order) error
	// ListOrders returns the user's orders newest first.
	ListOrders(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
}
