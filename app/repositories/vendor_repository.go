// Package repositories implements the MongoDB persistence layer.
//
// Every repository offers single-document reads and replace-by-id writes;
// that is the only atomicity the store guarantees. Not-found conditions are
// mapped onto services.ErrNotFound so callers never see driver errors.
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

// VendorRepository handles the vendor_logins collection.
type VendorRepository struct{}

func NewVendorRepository() *VendorRepository {
	return &VendorRepository{}
}

func (r *VendorRepository) col() *mongo.Collection {
	return mongodb.Collection(mongodb.ColVendors)
}

// FindByID looks up a vendor by its hex object id.
func (r *VendorRepository) FindByID(ctx context.Context, id string) (models.Vendor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Vendor{}, services.ErrNotFound
	}

	var vendor models.Vendor
	err = r.col().FindOne(ctx, bson.M{"_id": oid}).Decode(&vendor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Vendor{}, services.ErrNotFound
	}
	if err != nil {
		return models.Vendor{}, fmt.Errorf("vendors: find %s: %w", id, err)
	}
	return vendor, nil
}

// FindByEmail looks up a vendor login by lowercase email.
func (r *VendorRepository) FindByEmail(ctx context.Context, email string) (models.Vendor, error) {
	var vendor models.Vendor
	err := r.col().FindOne(ctx, bson.M{"email": email}).Decode(&vendor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Vendor{}, services.ErrNotFound
	}
	if err != nil {
		return models.Vendor{}, fmt.Errorf("vendors: find by email: %w", err)
	}
	return vendor, nil
}

// Create inserts a new vendor login document and fills in its id.
func (r *VendorRepository) Create(ctx context.Context, vendor *models.Vendor) error {
	now := time.Now()
	vendor.CreatedAt = now
	vendor.UpdatedAt = now

	res, err := r.col().InsertOne(ctx, vendor)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return services.ErrConflict
		}
		return fmt.Errorf("vendors: insert: %w", err)
	}
	vendor.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// Update replaces the whole document by id — single-document atomicity,
// last writer wins.
func (r *VendorRepository) Update(ctx context.Context, vendor *models.Vendor) error {
	vendor.UpdatedAt = time.Now()

	res, err := r.col().ReplaceOne(ctx, bson.M{"_id": vendor.ID}, vendor)
	if err != nil {
		return fmt.Errorf("vendors: update %s: %w", vendor.ID.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}

// DeleteByID removes a vendor login. The admin listing is derived from this
// collection, so the vendor simply stops appearing in it; nothing cascades.
func (r *VendorRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return services.ErrNotFound
	}

	res, err := r.col().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("vendors: delete %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}

// All returns every vendor in insertion order.
func (r *VendorRepository) All(ctx context.Context) ([]models.Vendor, error) {
	cur, err := r.col().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("vendors: find all: %w", err)
	}
	defer cur.Close(ctx)

	var vendors []models.Vendor
	if err := cur.All(ctx, &vendors); err != nil {
		return nil, fmt.Errorf("vendors: decode all: %w", err)
	}
	return vendors, nil
}
