package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront-backend/internal/models"
)

type MongoUserStore struct {
	coll *mongo.Collection
}

func NewMongoUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{coll: db.Collection("users")}
}

func (s *MongoUserStore) CreateUser(ctx context.Context, user *models.User) error {
	res, err := s.coll.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *MongoUserStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type MongoCartStore struct {
	coll *mongo.Collection
}

func NewMongoCartStore(db *mongo.Database) *MongoCartStore {
	return &MongoCartStore{coll: db.Collection("cartitems")}
}

// AddItem is a single atomic upsert: $inc creates quantity 1 on insert
// and increments in place otherwise, so concurrent adds for the same
// (userId, productId) serialize on the document instead of racing a
// read-then-write.
func (s *MongoCartStore) AddItem(ctx context.Context, userID primitive.ObjectID, item models.CartItem) (*models.CartItem, error) {
	filter := bson.M{"userId": userID, "productId": item.ProductID}
	update := bson.M{
		"$inc": bson.M{"quantity": 1},
		"$setOnInsert": bson.M{
			"userId":    userID,
			"productId": item.ProductID,
			"title":     item.Title,
			"price":     item.Price,
			"image":     item.Image,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var out models.CartItem
	if err := s.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *MongoCartStore) ListItems(ctx context.Context, userID primitive.ObjectID) ([]models.CartItem, error) {
	cur, err := s.coll.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	items := []models.CartItem{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Ownership is part of the delete predicate, not a separate lookup.
func (s *MongoCartStore) RemoveItem(ctx context.Context, userID, itemID primitive.ObjectID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": itemID, "userId": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoCartStore) Clear(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.coll.DeleteMany(ctx, bson.M{"userId": userID})
	return err
}

type MongoWishlistStore struct {
	coll *mongo.Collection
}

func NewMongoWishlistStore(db *mongo.Database) *MongoWishlistStore {
	return &MongoWishlistStore{coll: db.Collection("wishlists")}
}

func (s *MongoWishlistStore) AddProduct(ctx context.Context, userID primitive.ObjectID, product models.WishlistProduct) (*models.Wishlist, error) {
	var w models.Wishlist
	err := s.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&w)
	if err != nil && err != mongo.ErrNoDocuments {
		return nil, err
	}
	for _, p := range w.Products {
		if p.ProductID == product.ProductID {
			return nil, ErrAlreadyExists
		}
	}
	w.UserID = userID
	w.Products = append(w.Products, product)

	_, err = s.coll.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{"$set": bson.M{"userId": userID, "products": w.Products}},
		options.Update().SetUpsert(true))
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *MongoWishlistStore) Get(ctx context.Context, userID primitive.ObjectID) (*models.Wishlist, error) {
	var w models.Wishlist
	err := s.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&w)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *MongoWishlistStore) RemoveProduct(ctx context.Context, userID primitive.ObjectID, productID string) (*models.Wishlist, error) {
	var w models.Wishlist
	err := s.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&w)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	kept := w.Products[:0]
	for _, p := range w.Products {
		if p.ProductID != productID {
			kept = append(kept, p)
		}
	}
	w.Products = kept

	_, err = s.coll.UpdateOne(ctx, bson.M{"userId": userID},
		bson.M{"$set": bson.M{"products": w.Products}})
	if err != nil {
		return nil, err
	}
	return &w, nil
}

type MongoOrderStore struct {
	coll *mongo.Collection
}

func NewMongoOrderStore(db *mongo.Database) *MongoOrderStore {
	return &MongoOrderStore{coll: db.Collection("orders")}
}

func (s *MongoOrderStore) CreateOrder(ctx context.Context, order *models.Order) error {
	res, err := s.coll.InsertOne(ctx, order)
	if err != nil {
		return err
	}
	order.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *MongoOrderStore) ListOrders(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	orders := []models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
