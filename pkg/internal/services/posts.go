package services

import (
	"fmt"
	"time"

	"github.com/quillhq/quill/pkg/internal/database"
	"github.com/quillhq/quill/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

func FilterPostWithGroup(slug string) FeedFilter {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Joins("JOIN groups ON groups.id = posts.group_id").
			Where("groups.slug = ?", slug)
	}
}

func FilterPostWithAuthor(username string) FeedFilter {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Joins("JOIN accounts ON accounts.id = posts.author_id").
			Where("accounts.username = ?", username)
	}
}

// FilterPostWithFollowed narrows the feed to posts written by authors the
// given account follows. An account following nobody gets an empty feed.
func FilterPostWithFollowed(userID uint) FeedFilter {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where(
			"posts.author_id IN (?)",
			database.C.Model(&models.Follow{}).
				Select("author_id").
				Where("follower_id = ?", userID),
		)
	}
}

func PreloadGeneral(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Author").
		Preload("Group")
}

func GetPost(tx *gorm.DB, id uint) (models.Post, error) {
	var item models.Post
	if err := PreloadGeneral(tx).
		Where("posts.id = ?", id).
		First(&item).Error; err != nil {
		return item, err
	}

	item.Metric = models.PostMetric{
		CommentCount: CountComment(item.ID),
	}

	return item, nil
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Post{}).Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

func ListPost(tx *gorm.DB, take int, offset int, order any) ([]*models.Post, error) {
	if take > 100 {
		take = 100
	}

	var items []*models.Post
	if err := PreloadGeneral(tx).
		Limit(take).Offset(offset).
		Order(order).
		Find(&items).Error; err != nil {
		return items, err
	}

	if len(items) == 0 {
		return items, nil
	}

	// Load comment counters in one query
	idx := lo.Map(items, func(item *models.Post, index int) uint {
		return item.ID
	})

	var counters []struct {
		PostID uint
		Count  int64
	}
	if err := database.C.Model(&models.Comment{}).
		Select("post_id, COUNT(id) as count").
		Where("post_id IN ?", idx).
		Group("post_id").
		Scan(&counters).Error; err != nil {
		return items, err
	}

	itemMap := lo.SliceToMap(items, func(item *models.Post) (uint, *models.Post) {
		return item.ID, item
	})

	for _, info := range counters {
		if post, ok := itemMap[info.PostID]; ok {
			post.Metric = models.PostMetric{CommentCount: info.Count}
		}
	}

	return items, nil
}

func NewPost(author models.Account, item models.Post) (models.Post, error) {
	if len(item.Text) == 0 {
		return item, fmt.Errorf("post text cannot be empty")
	}

	item.AuthorID = author.ID
	item.Language = DetectLanguage(item.Text)

	log.Debug().Str("author", author.Username).Msg("Saving post record into database...")
	if err := database.C.Save(&item).Error; err != nil {
		return item, err
	}

	item.Author = author

	return item, nil
}

func EditPost(item models.Post) (models.Post, error) {
	if len(item.Text) == 0 {
		return item, fmt.Errorf("post text cannot be empty")
	}

	item.EditedAt = lo.ToPtr(time.Now())
	item.Language = DetectLanguage(item.Text)

	err := database.C.Save(&item).Error

	return item, err
}

func DeletePost(item models.Post) error {
	if err := database.C.Delete(&item).Error; err != nil {
		return err
	}

	if err := database.C.Where("post_id = ?", item.ID).Delete(&models.Comment{}).Error; err != nil {
		return err
	}

	return nil
}
