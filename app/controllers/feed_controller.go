package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/shallerhub/app/services"
	"github.com/shashiranjanraj/shallerhub/pkg/response"
)

// FeedController serves the classified home feed.
type FeedController struct {
	feed *services.FeedService
}

func NewFeedController(feed *services.FeedService) *FeedController {
	return &FeedController{feed: feed}
}

// Shops handles GET /api/feed/shops: every shop sorted into the best /
// recommended / people-more-like buckets.
func (c *FeedController) Shops(w http.ResponseWriter, r *http.Request) {
	buckets, err := c.feed.ClassifiedShops(r.Context())
	if err != nil {
		respondErr(w, err)
		return
	}
	response.Success(w, "Shops fetched", buckets)
}
