package services

import (
	"errors"
	"fmt"

	"github.com/quillhq/quill/pkg/internal/database"
	"github.com/quillhq/quill/pkg/internal/models"
	"gorm.io/gorm"
)

var ErrFollowSelf = errors.New("you cannot follow yourself")

func GetFollowOnAuthor(user models.Account, author models.Account) (*models.Follow, error) {
	var follow models.Follow
	if err := database.C.
		Where("follower_id = ? AND author_id = ?", user.ID, author.ID).
		First(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to get follow edge: %v", err)
	}
	return &follow, nil
}

// FollowAuthor creates the edge when absent; following someone twice is a
// no-op rather than an error.
func FollowAuthor(user models.Account, author models.Account) (models.Follow, error) {
	if user.ID == author.ID {
		return models.Follow{}, ErrFollowSelf
	}

	if existing, err := GetFollowOnAuthor(user, author); err != nil {
		return models.Follow{}, err
	} else if existing != nil {
		return *existing, nil
	}

	follow := models.Follow{
		FollowerID: user.ID,
		AuthorID:   author.ID,
	}

	err := database.C.Save(&follow).Error
	return follow, err
}

// UnfollowAuthor removes the edge; unfollowing someone you never followed
// is a no-op. The row is deleted for real so a later re-follow does not
// trip over the unique edge index.
func UnfollowAuthor(user models.Account, author models.Account) error {
	existing, err := GetFollowOnAuthor(user, author)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}

	return database.C.Unscoped().Delete(existing).Error
}

func CountFollowers(author models.Account) int64 {
	var count int64
	database.C.Model(&models.Follow{}).
		Where("author_id = ?", author.ID).
		Count(&count)
	return count
}

func CountFollowing(user models.Account) int64 {
	var count int64
	database.C.Model(&models.Follow{}).
		Where("follower_id = ?", user.ID).
		Count(&count)
	return count
}
