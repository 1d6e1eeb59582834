package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/shallerhub/app/models"
	"github.com/shashiranjanraj/shallerhub/pkg/collection"
)

func TestClassifyRatingBands(t *testing.T) {
	vendors := []models.Vendor{
		shopVendor("top", 4.8, 10),
		shopVendor("edge-best-low", 4.6, 10),
		shopVendor("edge-best-high", 5.0, 10),
		shopVendor("solid", 4.3, 10),
		shopVendor("edge-rec-low", 4.1, 10),
		shopVendor("edge-rec-high", 4.5, 10),
		shopVendor("gap", 4.55, 10), // between the bands
		shopVendor("weak", 3.0, 10),
	}

	buckets := Classify(vendors)

	names := func(s []ShopSummary) []string {
		return collection.Map(s, func(sum ShopSummary) string { return sum.ShopName })
	}

	assert.Equal(t, []string{"top", "edge-best-low", "edge-best-high"}, names(buckets.BestShops))
	assert.Equal(t, []string{"solid", "edge-rec-low", "edge-rec-high"}, names(buckets.RecommendedShops))
	assert.Empty(t, buckets.PeopleMoreLike)
}

func TestClassifyReviewBucketIndependentOfRating(t *testing.T) {
	vendors := []models.Vendor{
		shopVendor("loved-and-rated", 4.9, 200),
		shopVendor("loved-not-rated", 2.0, 91),
		shopVendor("exactly-ninety", 3.0, 90),
	}

	buckets := Classify(vendors)

	require.Len(t, buckets.PeopleMoreLike, 2)
	assert.Equal(t, "loved-and-rated", buckets.PeopleMoreLike[0].ShopName)
	assert.Equal(t, "loved-not-rated", buckets.PeopleMoreLike[1].ShopName)

	// Overlap: the same shop also appears in the best bucket.
	require.Len(t, buckets.BestShops, 1)
	assert.Equal(t, "loved-and-rated", buckets.BestShops[0].ShopName)
}

func TestClassifySkipsVendorsWithoutShop(t *testing.T) {
	noShop := models.Vendor{Email: "new@example.com"}
	blankName := shopVendor("", 4.9, 500) // shaller exists but was never named

	buckets := Classify([]models.Vendor{noShop, blankName, shopVendor("real", 4.9, 500)})

	require.Len(t, buckets.BestShops, 1)
	assert.Equal(t, "real", buckets.BestShops[0].ShopName)
	require.Len(t, buckets.PeopleMoreLike, 1)
	assert.Equal(t, "real", buckets.PeopleMoreLike[0].ShopName)
}

func TestClassifyPreservesInputOrder(t *testing.T) {
	vendors := []models.Vendor{
		shopVendor("c", 4.7, 100),
		shopVendor("a", 4.9, 100),
		shopVendor("b", 4.6, 100),
	}

	buckets := Classify(vendors)

	names := collection.Map(buckets.BestShops, func(s ShopSummary) string { return s.ShopName })
	assert.Equal(t, []string{"c", "a", "b"}, names)
}

func TestClassifyEmptyInputYieldsEmptyArrays(t *testing.T) {
	buckets := Classify(nil)

	assert.NotNil(t, buckets.BestShops)
	assert.NotNil(t, buckets.RecommendedShops)
	assert.NotNil(t, buckets.PeopleMoreLike)
	assert.Empty(t, buckets.BestShops)
}

func TestClassifyIgnoresAdminOverlay(t *testing.T) {
	v := shopVendor("corrected", 3.0, 10)
	v.Shaller.ReviewHistory = &models.ReviewOverlay{Rating: 5.0, Review: 500}

	buckets := Classify([]models.Vendor{v})

	assert.Empty(t, buckets.BestShops)
	assert.Empty(t, buckets.PeopleMoreLike)
}

func TestClassifiedShopsLoadsFromStore(t *testing.T) {
	store := &memVendorStore{vendors: []models.Vendor{shopVendor("s", 4.2, 5)}}
	svc := NewFeedService(store)

	buckets, err := svc.ClassifiedShops(context.Background())

	require.NoError(t, err)
	require.Len(t, buckets.RecommendedShops, 1)
	assert.Equal(t, "s", buckets.RecommendedShops[0].ShopName)
	assert.Equal(t, store.vendors[0].ID.Hex(), buckets.RecommendedShops[0].VendorID)
}
