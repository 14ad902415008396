package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupService_CreateGroup(t *testing.T) {
	setupTestDB(t)
	svc := newGroupService()
	admin := createTestUser(t, "admin1")

	group, err := svc.CreateGroup(admin.ID, CreateGroupRequest{Title: "News", Slug: "news", Description: "daily"})
	require.NoError(t, err)
	assert.Equal(t, "news", group.Slug)

	_, err = svc.CreateGroup(admin.ID, CreateGroupRequest{Title: "Other News", Slug: "news"})
	verr, ok := AsValidation(err)
	require.True(t, ok, "duplicate slug must be a validation failure")
	assert.Equal(t, "slug", verr.Field)

	_, err = svc.CreateGroup(0, CreateGroupRequest{Title: "Anon", Slug: "anon"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGroupService_UpdateKeepsSlug(t *testing.T) {
	setupTestDB(t)
	svc := newGroupService()
	admin := createTestUser(t, "admin2")

	_, err := svc.CreateGroup(admin.ID, CreateGroupRequest{Title: "News", Slug: "news"})
	require.NoError(t, err)

	updated, err := svc.UpdateGroup(admin.ID, "news", UpdateGroupRequest{Title: "World News", Description: "updated"})
	require.NoError(t, err)
	assert.Equal(t, "World News", updated.Title)
	assert.Equal(t, "news", updated.Slug, "slug is immutable")

	_, err = svc.UpdateGroup(admin.ID, "missing", UpdateGroupRequest{Title: "X"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGroupService_DeleteGroupKeepsPosts(t *testing.T) {
	setupTestDB(t)
	groupSvc := newGroupService()
	postSvc := newPostService()
	admin := createTestUser(t, "admin3")

	_, err := groupSvc.CreateGroup(admin.ID, CreateGroupRequest{Title: "Doomed", Slug: "doomed"})
	require.NoError(t, err)

	post, err := postSvc.CreatePost(admin.ID, CreatePostRequest{Text: "keeps living", GroupSlug: "doomed"})
	require.NoError(t, err)

	require.NoError(t, groupSvc.DeleteGroup(admin.ID, "doomed"))

	survivor, err := postSvc.GetPost(post.ID)
	require.NoError(t, err)
	assert.Nil(t, survivor.GroupID, "post loses its group reference, not its life")

	assert.ErrorIs(t, groupSvc.DeleteGroup(admin.ID, "doomed"), ErrNotFound)
}
