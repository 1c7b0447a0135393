package services

import (
	"fmt"

	"github.com/quillhq/quill/pkg/internal/database"
	"github.com/quillhq/quill/pkg/internal/models"
)

func CountComment(postID uint) int64 {
	var count int64
	if err := database.C.Model(&models.Comment{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return 0
	}

	return count
}

func ListComment(postID uint, take int, offset int) ([]models.Comment, error) {
	if take > 100 {
		take = 100
	}

	var comments []models.Comment
	if err := database.C.
		Preload("Author").
		Where("post_id = ?", postID).
		Limit(take).Offset(offset).
		Order("created_at ASC, id ASC").
		Find(&comments).Error; err != nil {
		return comments, err
	}

	return comments, nil
}

// NewComment attaches a comment to a post. Comments are immutable once
// created.
func NewComment(author models.Account, post models.Post, text string) (models.Comment, error) {
	if len(text) == 0 {
		return models.Comment{}, fmt.Errorf("comment text cannot be empty")
	}

	comment := models.Comment{
		Text:     text,
		PostID:   post.ID,
		AuthorID: author.ID,
	}

	if err := database.C.Save(&comment).Error; err != nil {
		return comment, err
	}

	comment.Author = author

	return comment, nil
}
