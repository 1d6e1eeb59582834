package services

import (
	"context"
	"time"

	"github.com/shashiranjanraj/shallerhub/app/models"
	"github.com/shashiranjanraj/shallerhub/pkg/cache"
	"github.com/shashiranjanraj/shallerhub/pkg/collection"
	"github.com/shashiranjanraj/shallerhub/pkg/metrics"
)

// Rating bands for the home feed. A shop can land in more than one bucket;
// the review count is judged independently of the rating.
const (
	bestMinRating        = 4.6
	bestMaxRating        = 5.0
	recommendedMinRating = 4.1
	recommendedMaxRating = 4.5
	popularMinReviews    = 90
)

// The classified feed is identical for every caller, so it is cached
// briefly. Redis being down just means every request classifies.
const (
	feedCacheKey = "feed:shops"
	feedCacheTTL = 30 * time.Second
)

// ShopSummary is the feed projection of a shaller shop.
type ShopSummary struct {
	VendorID      string  `json:"vendorId"`
	ShopName      string  `json:"shopName"`
	Rating        float64 `json:"rating"`
	Review        int     `json:"review"`
	Category      string  `json:"category,omitempty"`
	Image         string  `json:"image,omitempty"`
	WorkingStatus string  `json:"workingStatus,omitempty"`
}

// FeedBuckets is the classified home feed. Buckets overlap and each keeps
// the vendors' stored order.
type FeedBuckets struct {
	BestShops        []ShopSummary `json:"bestShops"`
	RecommendedShops []ShopSummary `json:"recommendedShops"`
	PeopleMoreLike   []ShopSummary `json:"peopleMoreLike"`
}

// FeedService builds the classified shop feed.
type FeedService struct {
	vendors VendorStore
}

func NewFeedService(vendors VendorStore) *FeedService {
	return &FeedService{vendors: vendors}
}

// ClassifiedShops loads every vendor and sorts their shops into the three
// feed buckets. Vendors that never created a shop are skipped entirely.
// Classification always reads the shop's own rating and review count, never
// an admin's review overlay.
func (s *FeedService) ClassifiedShops(ctx context.Context) (FeedBuckets, error) {
	var cached FeedBuckets
	if cache.Get(feedCacheKey, &cached) {
		return cached, nil
	}

	vendors, err := s.vendors.All(ctx)
	if err != nil {
		return FeedBuckets{}, err
	}

	buckets := Classify(vendors)
	_ = cache.Set(feedCacheKey, buckets, feedCacheTTL)
	return buckets, nil
}

// Classify buckets the given vendors' shops, preserving input order.
func Classify(vendors []models.Vendor) FeedBuckets {
	withShop := collection.Filter(vendors, func(v models.Vendor) bool {
		return v.HasShop()
	})
	summaries := collection.Map(withShop, summarize)

	buckets := FeedBuckets{
		BestShops: collection.Filter(summaries, func(s ShopSummary) bool {
			return s.Rating >= bestMinRating && s.Rating <= bestMaxRating
		}),
		RecommendedShops: collection.Filter(summaries, func(s ShopSummary) bool {
			return s.Rating >= recommendedMinRating && s.Rating <= recommendedMaxRating
		}),
		PeopleMoreLike: collection.Filter(summaries, func(s ShopSummary) bool {
			return s.Review > popularMinReviews
		}),
	}

	// Clients iterate these unconditionally, so never emit null.
	if buckets.BestShops == nil {
		buckets.BestShops = []ShopSummary{}
	}
	if buckets.RecommendedShops == nil {
		buckets.RecommendedShops = []ShopSummary{}
	}
	if buckets.PeopleMoreLike == nil {
		buckets.PeopleMoreLike = []ShopSummary{}
	}

	metrics.ShopsClassified.WithLabelValues("best").Add(float64(len(buckets.BestShops)))
	metrics.ShopsClassified.WithLabelValues("recommended").Add(float64(len(buckets.RecommendedShops)))
	metrics.ShopsClassified.WithLabelValues("people_more_like").Add(float64(len(buckets.PeopleMoreLike)))

	return buckets
}

func summarize(v models.Vendor) ShopSummary {
	sh := v.Shaller
	return ShopSummary{
		VendorID:      v.ID.Hex(),
		ShopName:      sh.ShopName,
		Rating:        sh.Rating,
		Review:        sh.Review,
		Category:      sh.Category,
		Image:         sh.Image,
		WorkingStatus: sh.WorkingStatus,
	}
}
