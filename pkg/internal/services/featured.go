package services

import (
	"time"

	"github.com/quillhq/quill/pkg/internal/database"
	"github.com/quillhq/quill/pkg/internal/models"
)

// GetFeaturedPosts picks the posts that gathered the most comments within
// the last 7 days. This is a raw query; resolve the ids through ListPost
// when the full records with preloads are needed.
func GetFeaturedPosts(count int) ([]models.Post, error) {
	deadline := time.Now().Add(-7 * 24 * time.Hour)

	var posts []models.Post
	if err := database.C.Raw(`
		SELECT p.*, t.talk_points
		FROM posts p
		JOIN (
			SELECT
				post_id,
				COUNT(id) AS talk_points
			FROM comments
			WHERE created_at >= ? AND deleted_at IS NULL
			GROUP BY post_id
			ORDER BY talk_points DESC
			LIMIT ?
		) t ON p.id = t.post_id
		WHERE p.deleted_at IS NULL
		ORDER BY t.talk_points DESC, p.created_at DESC
	`, deadline, count).Scan(&posts).Error; err != nil {
		return posts, err
	}

	return posts, nil
}
