package services_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/quillhq/quill/pkg/internal/database"
	"github.com/quillhq/quill/pkg/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDatabase(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigration(db))

	database.C = db
}

func makeAccount(t *testing.T, username string) models.Account {
	t.Helper()

	account := models.Account{
		Username: username,
		Nick:     username,
		Email:    username + "@example.com",
		Password: "unused",
	}
	require.NoError(t, database.C.Save(&account).Error)

	return account
}

func makeGroup(t *testing.T, slug string) models.Group {
	t.Helper()

	group := models.Group{
		Slug:        slug,
		Title:       slug,
		Description: "test group",
	}
	require.NoError(t, database.C.Save(&group).Error)

	return group
}

func makePost(t *testing.T, author models.Account, text string, group *models.Group) models.Post {
	t.Helper()

	item := models.Post{
		Text:     text,
		AuthorID: author.ID,
	}
	if group != nil {
		item.GroupID = &group.ID
	}
	require.NoError(t, database.C.Save(&item).Error)

	return item
}
