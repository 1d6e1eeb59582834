package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/shallerhub/app/models"
	"github.com/shashiranjanraj/shallerhub/app/services"
	"github.com/shashiranjanraj/shallerhub/pkg/mongodb"
)

// UserRepository handles the users collection.
type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) col() *mongo.Collection {
	return mongodb.Collection(mongodb.ColUsers)
}

// FindByID looks up a user by its hex object id.
func (r *UserRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, services.ErrNotFound
	}

	var user models.User
	err = r.col().FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, services.ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("users: find %s: %w", id, err)
	}
	return user, nil
}

// FindByMobile looks up a user by mobile number.
func (r *UserRepository) FindByMobile(ctx context.Context, mobile string) (models.User, error) {
	var user models.User
	err := r.col().FindOne(ctx, bson.M{"mobileNumber": mobile}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, services.ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("users: find by mobile: %w", err)
	}
	return user, nil
}

// Create inserts a new user document and fills in its id.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Addresses == nil {
		user.Addresses = []models.Address{}
	}

	res, err := r.col().InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return services.ErrConflict
		}
		return fmt.Errorf("users: insert: %w", err)
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// Update replaces the whole document by id.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()

	res, err := r.col().ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		return fmt.Errorf("users: update %s: %w", user.ID.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}

// All returns every user in insertion order.
func (r *UserRepository) All(ctx context.Context) ([]models.User, error) {
	cur, err := r.col().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("users: find all: %w", err)
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("users: decode all: %w", err)
	}
	return users, nil
}

// ClearExpiredOTPs unsets otp fields on every user whose code expired before
// now. Run by the scheduler; returns the number of documents touched.
func (r *UserRepository) ClearExpiredOTPs(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.col().UpdateMany(ctx,
		bson.M{"otpExpiresAt": bson.M{"$lt": now}},
		bson.M{"$unset": bson.M{"otpDigest": "", "otpExpiresAt": ""}},
	)
	if err != nil {
		return 0, fmt.Errorf("users: clear expired otps: %w", err)
	}
	return res.ModifiedCount, nil
}
