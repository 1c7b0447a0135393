package services_test

import (
	"testing"

	"github.com/quillhq/quill/pkg/internal/database"
	"github.com/quillhq/quill/pkg/internal/models"
	"github.com/quillhq/quill/pkg/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostRequiresText(t *testing.T) {
	setupDatabase(t)
	alice := makeAccount(t, "alice")

	_, err := services.NewPost(alice, models.Post{})
	assert.Error(t, err)

	var count int64
	database.C.Model(&models.Post{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestNewPostTagsLanguage(t *testing.T) {
	setupDatabase(t)
	alice := makeAccount(t, "alice")

	item, err := services.NewPost(alice, models.Post{
		Text: "The quick brown fox jumps over the lazy dog near the river bank.",
	})
	require.NoError(t, err)
	assert.Equal(t, "en", item.Language)
	assert.Equal(t, alice.ID, item.AuthorID)
}

func TestEditPostMarksEdited(t *testing.T) {
	setupDatabase(t)
	alice := makeAccount(t, "alice")
	item := makePost(t, alice, "original", nil)

	require.Nil(t, item.EditedAt)

	item.Text = "updated"
	edited, err := services.EditPost(item)
	require.NoError(t, err)
	assert.NotNil(t, edited.EditedAt)

	got, err := services.GetPost(database.C, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "updated", got.Text)
}

func TestDeletePostDropsComments(t *testing.T) {
	setupDatabase(t)
	alice := makeAccount(t, "alice")
	bob := makeAccount(t, "bob")
	item := makePost(t, alice, "short lived", nil)

	_, err := services.NewComment(bob, item, "nice one")
	require.NoError(t, err)

	require.NoError(t, services.DeletePost(item))

	_, err = services.GetPost(database.C, item.ID)
	assert.Error(t, err)
	assert.EqualValues(t, 0, services.CountComment(item.ID))
}

func TestGetFeaturedPosts(t *testing.T) {
	setupDatabase(t)
	alice := makeAccount(t, "alice")
	quiet := makePost(t, alice, "quiet", nil)
	loud := makePost(t, alice, "loud", nil)

	_, err := services.NewComment(alice, quiet, "one")
	require.NoError(t, err)
	for _, text := range []string{"one", "two", "three"} {
		_, err := services.NewComment(alice, loud, text)
		require.NoError(t, err)
	}

	items, err := services.GetFeaturedPosts(5)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "loud", items[0].Text)
	assert.Equal(t, "quiet", items[1].Text)
}

func TestCanEditPost(t *testing.T) {
	setupDatabase(t)
	alice := makeAccount(t, "alice")
	bob := makeAccount(t, "bob")
	item := makePost(t, alice, "mine", nil)

	assert.True(t, services.CanEditPost(alice, item).Allow)

	decision := services.CanEditPost(bob, item)
	assert.False(t, decision.Allow)
	assert.NotEmpty(t, decision.Reason)
}
