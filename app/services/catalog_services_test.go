package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryLifecycle(t *testing.T) {
	store := &memCatalogStore{}
	images := &memImageStore{}
	svc := NewCatalogService(store, images)
	ctx := context.Background()

	cat, err := svc.CreateCategory(ctx, "Groceries", "Daily essentials", &ImageUpload{
		Filename: "groceries.png",
		Content:  []byte("png-bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Groceries", cat.Title)
	assert.True(t, strings.HasPrefix(cat.Image, "/storage/categories/"))
	assert.True(t, strings.HasSuffix(cat.Image, ".png"))
	assert.NotNil(t, cat.SubCategories)

	got, err := svc.UpdateCategory(ctx, cat.ID.Hex(), "Grocery", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "Grocery", got.Title)
	assert.Equal(t, "Daily essentials", got.Content, "empty fields are not applied")
	assert.Equal(t, cat.Image, got.Image, "image kept when no new upload")

	require.NoError(t, svc.DeleteCategory(ctx, cat.ID.Hex()))
	_, err = svc.Category(ctx, cat.ID.Hex())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateCategoryUploadFailure(t *testing.T) {
	store := &memCatalogStore{}
	svc := NewCatalogService(store, &memImageStore{fail: true})

	_, err := svc.CreateCategory(context.Background(), "Groceries", "", &ImageUpload{
		Filename: "x.png",
		Content:  []byte("png-bytes"),
	})
	assert.ErrorIs(t, err, ErrUploadFailed)
	assert.Empty(t, store.categories, "nothing persisted after a failed upload")
}

func TestSubCategoryLifecycle(t *testing.T) {
	store := &memCatalogStore{}
	svc := NewCatalogService(store, &memImageStore{})
	ctx := context.Background()

	cat, err := svc.CreateCategory(ctx, "Groceries", "", nil)
	require.NoError(t, err)

	cat, err = svc.AddSubCategory(ctx, cat.ID.Hex(), "Vegetables", nil)
	require.NoError(t, err)
	require.Len(t, cat.SubCategories, 1)
	sub := cat.SubCategories[0]
	assert.False(t, sub.ID.IsZero())

	cat, err = svc.UpdateSubCategory(ctx, sub.ID.Hex(), "Fresh Vegetables", nil)
	require.NoError(t, err)
	assert.Equal(t, "Fresh Vegetables", cat.SubCategories[0].Title)

	cat, err = svc.DeleteSubCategory(ctx, sub.ID.Hex())
	require.NoError(t, err)
	assert.Empty(t, cat.SubCategories)
	assert.NotNil(t, cat.SubCategories)
}

func TestItemLifecycle(t *testing.T) {
	store := &memCatalogStore{}
	svc := NewCatalogService(store, &memImageStore{})
	ctx := context.Background()

	cat, err := svc.CreateCategory(ctx, "Groceries", "", nil)
	require.NoError(t, err)
	cat, err = svc.AddSubCategory(ctx, cat.ID.Hex(), "Vegetables", nil)
	require.NoError(t, err)
	subID := cat.SubCategories[0].ID.Hex()

	item, err := svc.CreateItem(ctx, subID, "Tomato", "1kg", "40", nil)
	require.NoError(t, err)
	assert.Equal(t, "Tomato", item.Name)

	items, err := svc.Items(ctx, subID)
	require.NoError(t, err)
	require.Len(t, items, 1)

	got, err := svc.UpdateItem(ctx, item.ID.Hex(), "", "500g", "25", nil)
	require.NoError(t, err)
	assert.Equal(t, "Tomato", got.Name, "empty fields are not applied")
	assert.Equal(t, "500g", got.Weight)
	assert.Equal(t, "25", got.Cost)

	require.NoError(t, svc.DeleteItem(ctx, item.ID.Hex()))
	items, err = svc.Items(ctx, subID)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestCreateItemRequiresExistingSubCategory(t *testing.T) {
	store := &memCatalogStore{}
	svc := NewCatalogService(store, &memImageStore{})

	_, err := svc.CreateItem(context.Background(), "64f000000000000000000000", "Tomato", "1kg", "40", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCategoryLeavesItemsOrphaned(t *testing.T) {
	store := &memCatalogStore{}
	svc := NewCatalogService(store, &memImageStore{})
	ctx := context.Background()

	cat, err := svc.CreateCategory(ctx, "Groceries", "", nil)
	require.NoError(t, err)
	cat, err = svc.AddSubCategory(ctx, cat.ID.Hex(), "Vegetables", nil)
	require.NoError(t, err)
	subID := cat.SubCategories[0].ID.Hex()

	_, err = svc.CreateItem(ctx, subID, "Tomato", "1kg", "40", nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(ctx, cat.ID.Hex()))

	items, err := svc.Items(ctx, subID)
	require.NoError(t, err)
	assert.Len(t, items, 1, "no cascade on category delete")
}
