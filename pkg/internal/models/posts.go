package models

import "time"

type Post struct {
	BaseModel

	Text     string  `json:"text"`
	Image    *string `json:"image"`
	Language string  `json:"language"`

	EditedAt *time.Time `json:"edited_at"`

	GroupID *uint  `json:"group_id"`
	Group   *Group `json:"group"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author"`

	Comments []Comment `json:"comments"`

	Metric PostMetric `json:"metric" gorm:"-"`
}

// PostMetric carries counters that are computed per request, never stored.
type PostMetric struct {
	CommentCount int64 `json:"comment_count"`
}
