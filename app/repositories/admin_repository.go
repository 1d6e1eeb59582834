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

// AdminRepository handles the admins collection.
type AdminRepository struct{}

func NewAdminRepository() *AdminRepository {
	return &AdminRepository{}
}

func (r *AdminRepository) col() *mongo.Collection {
	return mongodb.Collection(mongodb.ColAdmins)
}

// FindByID looks up an admin by its hex object id.
func (r *AdminRepository) FindByID(ctx context.Context, id string) (models.Admin, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Admin{}, services.ErrNotFound
	}

	var admin models.Admin
	err = r.col().FindOne(ctx, bson.M{"_id": oid}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Admin{}, services.ErrNotFound
	}
	if err != nil {
		return models.Admin{}, fmt.Errorf("admins: find %s: %w", id, err)
	}
	return admin, nil
}

// FindByEmail looks up an admin by email.
func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (models.Admin, error) {
	var admin models.Admin
	err := r.col().FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Admin{}, services.ErrNotFound
	}
	if err != nil {
		return models.Admin{}, fmt.Errorf("admins: find by email: %w", err)
	}
	return admin, nil
}

// Create inserts a new admin document and fills in its id.
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	now := time.Now()
	admin.CreatedAt = now
	admin.UpdatedAt = now

	res, err := r.col().InsertOne(ctx, admin)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return services.ErrConflict
		}
		return fmt.Errorf("admins: insert: %w", err)
	}
	admin.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// Update replaces the whole document by id.
func (r *AdminRepository) Update(ctx context.Context, admin *models.Admin) error {
	admin.UpdatedAt = time.Now()

	res, err := r.col().ReplaceOne(ctx, bson.M{"_id": admin.ID}, admin)
	if err != nil {
		return fmt.Errorf("admins: update %s: %w", admin.ID.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}
