package services

import (
	"github.com/quillhq/quill/pkg/internal/models"
	"gorm.io/gorm"
)

// FeedPageSize is fixed: a feed of N posts spans ceil(N/10) pages.
const FeedPageSize = 10

type FeedFilter func(tx *gorm.DB) *gorm.DB

type FeedPage struct {
	Data       []*models.Post `json:"data"`
	Count      int64          `json:"count"`
	Page       int            `json:"page"`
	TotalPages int            `json:"total_pages"`
	HasNext    bool           `json:"has_next"`
	HasPrev    bool           `json:"has_prev"`
}

// AssembleFeed produces one newest-first page of posts under the given
// filters. Pages are 1-indexed; a page past the end comes back empty with
// the metadata still filled in.
func AssembleFeed(db *gorm.DB, page int, filters ...FeedFilter) (FeedPage, error) {
	feed := FeedPage{Page: page}

	apply := func() *gorm.DB {
		tx := db.Model(&models.Post{})
		for _, filter := range filters {
			tx = filter(tx)
		}
		return tx
	}

	count, err := CountPost(apply())
	if err != nil {
		return feed, err
	}

	items, err := ListPost(
		apply(),
		FeedPageSize,
		(page-1)*FeedPageSize,
		"posts.created_at DESC, posts.id DESC",
	)
	if err != nil {
		return feed, err
	}

	feed.Data = items
	feed.Count = count
	feed.TotalPages = int((count + FeedPageSize - 1) / FeedPageSize)
	feed.HasNext = page < feed.TotalPages
	feed.HasPrev = page > 1 && count > 0

	return feed, nil
}
