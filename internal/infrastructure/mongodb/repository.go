package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/bloodlink/auth-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const usersCollection = "blooduser"

// Repository implements domain.UserRepository over a Mongo database.
type Repository struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Repository {
	return &Repository{db: db}
}

// EnsureIndexes creates the unique email index. Registration also checks
// existence before inserting; the index only closes the window between the
// two operations under concurrent registrations.
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.users().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.users().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *Repository) Insert(ctx context.Context, u *domain.User) (primitive.ObjectID, error) {
	res, err := r.users().InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, domain.ErrEmailTaken
		}
		return primitive.NilObjectID, err
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func (r *Repository) CollectionNames(ctx context.Context, limit int) ([]string, error) {
	names, err := r.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.Client().Ping(ctx, readpref.Primary())
}

func (r *Repository) users() *mongo.Collection {
	return r.db.Collection(usersCollection)
}
