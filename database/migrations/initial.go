// Package migrations holds the index migrations, registered in name order.
package migrations

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/shallerhub/pkg/migration"
	"github.com/shashiranjanraj/shallerhub/pkg/mongodb"
)

func init() {
	migration.Register("20240101000000_create_unique_indexes", &CreateUniqueIndexes{})
	migration.Register("20240101000001_create_geo_indexes", &CreateGeoIndexes{})
}

// CreateUniqueIndexes enforces the identity keys: admin email, vendor email,
// user mobile number.
type CreateUniqueIndexes struct{}

func (m *CreateUniqueIndexes) Up(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	_, err := db.Collection(mongodb.ColAdmins).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: unique.SetName("uniq_admin_email"),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(mongodb.ColVendors).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_vendor_email"),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(mongodb.ColUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "mobileNumber", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_user_mobile"),
	})
	return err
}

func (m *CreateUniqueIndexes) Down(ctx context.Context, db *mongo.Database) error {
	if _, err := db.Collection(mongodb.ColAdmins).Indexes().DropOne(ctx, "uniq_admin_email"); err != nil {
		return err
	}
	if _, err := db.Collection(mongodb.ColVendors).Indexes().DropOne(ctx, "uniq_vendor_email"); err != nil {
		return err
	}
	_, err := db.Collection(mongodb.ColUsers).Indexes().DropOne(ctx, "uniq_user_mobile")
	return err
}

// CreateGeoIndexes adds 2dsphere indexes for shop and user locations.
type CreateGeoIndexes struct{}

func (m *CreateGeoIndexes) Up(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(mongodb.ColVendors).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "shaller.location", Value: "2dsphere"}},
		Options: options.Index().SetName("geo_shaller_location"),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection(mongodb.ColUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "location", Value: "2dsphere"}},
		Options: options.Index().SetName("geo_user_location"),
	})
	return err
}

func (m *CreateGeoIndexes) Down(ctx context.Context, db *mongo.Database) error {
	if _, err := db.Collection(mongodb.ColVendors).Indexes().DropOne(ctx, "geo_shaller_location"); err != nil {
		return err
	}
	_, err := db.Collection(mongodb.ColUsers).Indexes().DropOne(ctx, "geo_user_location")
	return err
}
