package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubCategory is embedded in its Category document.
type SubCategory struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Category is a top-level catalog group with embedded subcategories.
type Category struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Content       string             `bson:"content" json:"content"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	SubCategories []SubCategory      `bson:"subCategories" json:"subCategories"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Item references its subcategory by id rather than being embedded.
// Deleting a category leaves its items orphaned — the relationship is
// soft-referential, matching the store's lack of cascade rules.
type Item struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SubCategoryID primitive.ObjectID `bson:"subCategoryId" json:"subCategoryId"`
	Name          string             `bson:"name" json:"name"`
	Weight        string             `bson:"weight" json:"weight"`
	Cost          string             `bson:"cost" json:"cost"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
}
