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

// CatalogRepository handles the categories and items collections.
// Subcategories live embedded in their category document, so subcategory
// writes are replace-by-id on the parent.
type CatalogRepository struct{}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

func (r *CatalogRepository) categories() *mongo.Collection {
	return mongodb.Collection(mongodb.ColCategories)
}

func (r *CatalogRepository) items() *mongo.Collection {
	return mongodb.Collection(mongodb.ColItems)
}

// ─── categories ──────────────────────────────────────────────────────────

// FindCategory looks up a category by its hex object id.
func (r *CatalogRepository) FindCategory(ctx context.Context, id string) (models.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Category{}, services.ErrNotFound
	}

	var cat models.Category
	err = r.categories().FindOne(ctx, bson.M{"_id": oid}).Decode(&cat)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Category{}, services.ErrNotFound
	}
	if err != nil {
		return models.Category{}, fmt.Errorf("categories: find %s: %w", id, err)
	}
	return cat, nil
}

// AllCategories returns every category in insertion order.
func (r *CatalogRepository) AllCategories(ctx context.Context) ([]models.Category, error) {
	cur, err := r.categories().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("categories: find all: %w", err)
	}
	defer cur.Close(ctx)

	var cats []models.Category
	if err := cur.All(ctx, &cats); err != nil {
		return nil, fmt.Errorf("categories: decode all: %w", err)
	}
	return cats, nil
}

// CreateCategory inserts a new category document and fills in its id.
func (r *CatalogRepository) CreateCategory(ctx context.Context, cat *models.Category) error {
	now := time.Now()
	cat.CreatedAt = now
	cat.UpdatedAt = now
	if cat.SubCategories == nil {
		cat.SubCategories = []models.SubCategory{}
	}

	res, err := r.categories().InsertOne(ctx, cat)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return services.ErrConflict
		}
		return fmt.Errorf("categories: insert: %w", err)
	}
	cat.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// UpdateCategory replaces the whole document by id, embedded subcategories
// included.
func (r *CatalogRepository) UpdateCategory(ctx context.Context, cat *models.Category) error {
	cat.UpdatedAt = time.Now()

	res, err := r.categories().ReplaceOne(ctx, bson.M{"_id": cat.ID}, cat)
	if err != nil {
		return fmt.Errorf("categories: update %s: %w", cat.ID.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}

// DeleteCategory removes a category. Items referencing its subcategories are
// left orphaned — no cascade.
func (r *CatalogRepository) DeleteCategory(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return services.ErrNotFound
	}

	res, err := r.categories().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("categories: delete %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}

// FindCategoryBySubCategory returns the category holding the given embedded
// subcategory id.
func (r *CatalogRepository) FindCategoryBySubCategory(ctx context.Context, subID primitive.ObjectID) (models.Category, error) {
	var cat models.Category
	err := r.categories().FindOne(ctx, bson.M{"subCategories._id": subID}).Decode(&cat)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Category{}, services.ErrNotFound
	}
	if err != nil {
		return models.Category{}, fmt.Errorf("categories: find by subcategory %s: %w", subID.Hex(), err)
	}
	return cat, nil
}

// ─── items ───────────────────────────────────────────────────────────────

// FindItem looks up an item by its hex object id.
func (r *CatalogRepository) FindItem(ctx context.Context, id string) (models.Item, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Item{}, services.ErrNotFound
	}

	var item models.Item
	err = r.items().FindOne(ctx, bson.M{"_id": oid}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Item{}, services.ErrNotFound
	}
	if err != nil {
		return models.Item{}, fmt.Errorf("items: find %s: %w", id, err)
	}
	return item, nil
}

// ItemsBySubCategory returns every item referencing the subcategory.
func (r *CatalogRepository) ItemsBySubCategory(ctx context.Context, subID primitive.ObjectID) ([]models.Item, error) {
	cur, err := r.items().Find(ctx, bson.M{"subCategoryId": subID})
	if err != nil {
		return nil, fmt.Errorf("items: find by subcategory: %w", err)
	}
	defer cur.Close(ctx)

	var items []models.Item
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("items: decode: %w", err)
	}
	return items, nil
}

// CreateItem inserts a new item and fills in its id.
func (r *CatalogRepository) CreateItem(ctx context.Context, item *models.Item) error {
	res, err := r.items().InsertOne(ctx, item)
	if err != nil {
		return fmt.Errorf("items: insert: %w", err)
	}
	item.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// UpdateItem replaces the whole document by id.
func (r *CatalogRepository) UpdateItem(ctx context.Context, item *models.Item) error {
	res, err := r.items().ReplaceOne(ctx, bson.M{"_id": item.ID}, item)
	if err != nil {
		return fmt.Errorf("items: update %s: %w", item.ID.Hex(), err)
	}
	if res.MatchedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}

// DeleteItem removes an item.
func (r *CatalogRepository) DeleteItem(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return services.ErrNotFound
	}

	res, err := r.items().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("items: delete %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return services.ErrNotFound
	}
	return nil
}
