package services

import (
	"strings"

	"github.com/quillhq/quill/pkg/internal/database"
	"github.com/quillhq/quill/pkg/internal/models"
)

func ListGroup(take int, offset int) ([]models.Group, error) {
	var groups []models.Group
	err := database.C.Offset(offset).Limit(take).Find(&groups).Error

	return groups, err
}

func GetGroup(slug string) (models.Group, error) {
	var group models.Group
	if err := database.C.Where("slug = ?", slug).First(&group).Error; err != nil {
		return group, err
	}
	return group, nil
}

func NewGroup(slug, title, description string) (models.Group, error) {
	group := models.Group{
		Slug:        strings.ToLower(slug),
		Title:       title,
		Description: description,
	}

	err := database.C.Save(&group).Error

	return group, err
}
