package repository

import (
	"microblog/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestPostRepository_CreateAndFind(t *testing.T) {
	setupTestDB(t)
	author := createTestUser(t, "postAuthor1")
	group := createTestGroup(t, "news")

	post := createTestPost(t, author.ID, &group.ID, "hello", baseTime)
	require.True(t, post.ID > 0)

	found, err := NewPostRepository().FindByID(post.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "hello", found.Text)
	assert.Equal(t, author.ID, found.AuthorID)
	assert.Equal(t, author.Username, found.Author.Username)
	require.NotNil(t, found.Group)
	assert.Equal(t, "news", found.Group.Slug)

	missing, err := NewPostRepository().FindByID(99999)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPostRepository_UpdateKeepsCreatedAtAndAuthor(t *testing.T) {
	setupTestDB(t)
	author := createTestUser(t, "postAuthor2")
	post := createTestPost(t, author.ID, nil, "original", baseTime)

	repo := NewPostRepository()
	post.Text = "edited"
	post.GroupID = nil
	require.NoError(t, repo.Update(post))

	found, err := repo.FindByID(post.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "edited", found.Text)
	assert.Equal(t, author.ID, found.AuthorID)
	assert.True(t, found.CreatedAt.Equal(baseTime), "created_at must not change on update")
}

func TestPostRepository_DeleteCascadesComments(t *testing.T) {
	setupTestDB(t)
	author := createTestUser(t, "postAuthor3")
	commenter := createTestUser(t, "commenter3")
	post := createTestPost(t, author.ID, nil, "with comments", baseTime)

	commentRepo := NewCommentRepository()
	for i := 0; i < 3; i++ {
		require.NoError(t, commentRepo.Create(&model.Comment{PostID: post.ID, AuthorID: commenter.ID, Text: "nice"}))
	}

	count, err := commentRepo.CountByPostID(post.ID)
	require.NoError(t, err)
	require.EqualValues(t, 3, count)

	require.NoError(t, NewPostRepository().Delete(post.ID))

	gone, err := NewPostRepository().FindByID(post.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	count, err = commentRepo.CountByPostID(post.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count, "deleting a post must delete its comments")
}

func TestPostRepository_GroupFilterNoLeakage(t *testing.T) {
	setupTestDB(t)
	author := createTestUser(t, "postAuthor4")
	news := createTestGroup(t, "news")
	other := createTestGroup(t, "other")

	createTestPost(t, author.ID, &news.ID, "in news", baseTime)
	createTestPost(t, author.ID, &other.ID, "in other", baseTime.Add(time.Minute))
	createTestPost(t, author.ID, nil, "no group", baseTime.Add(2*time.Minute))

	repo := NewPostRepository()
	posts, err := repo.FindByGroupID(news.ID, 100, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "in news", posts[0].Text)

	count, err := repo.CountByGroupID(other.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestPostRepository_OrderingNewestFirst(t *testing.T) {
	setupTestDB(t)
	author := createTestUser(t, "postAuthor5")

	createTestPost(t, author.ID, nil, "oldest", baseTime)
	createTestPost(t, author.ID, nil, "middle", baseTime.Add(time.Hour))
	createTestPost(t, author.ID, nil, "newest", baseTime.Add(2*time.Hour))

	posts, err := NewPostRepository().FindAll(100, 0)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "newest", posts[0].Text)
	assert.Equal(t, "middle", posts[1].Text)
	assert.Equal(t, "oldest", posts[2].Text)
}

func TestPostRepository_FindBySubscriptions(t *testing.T) {
	setupTestDB(t)
	reader := createTestUser(t, "reader6")
	followed := createTestUser(t, "followed6")
	stranger := createTestUser(t, "stranger6")

	createTestPost(t, followed.ID, nil, "followed post", baseTime)
	createTestPost(t, stranger.ID, nil, "stranger post", baseTime.Add(time.Minute))

	followRepo := NewFollowRepository()
	require.NoError(t, followRepo.Create(&model.Follow{UserID: reader.ID, AuthorID: followed.ID}))

	repo := NewPostRepository()
	posts, err := repo.FindBySubscriptions(reader.ID, 100, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "followed post", posts[0].Text)

	count, err := repo.CountBySubscriptions(reader.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestGroupRepository_DeleteDetachesPosts(t *testing.T) {
	setupTestDB(t)
	author := createTestUser(t, "postAuthor7")
	group := createTestGroup(t, "doomed")
	post := createTestPost(t, author.ID, &group.ID, "survives", baseTime)

	require.NoError(t, NewGroupRepository().Delete(group.ID))

	found, err := NewPostRepository().FindByID(post.ID)
	require.NoError(t, err)
	require.NotNil(t, found, "deleting a group must not delete its posts")
	assert.Nil(t, found.GroupID, "deleting a group must null out post references")

	gone, err := NewGroupRepository().FindByID(group.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestUserRepository_DeleteCascades(t *testing.T) {
	setupTestDB(t)
	victim := createTestUser(t, "victim8")
	other := createTestUser(t, "other8")

	victimPost := createTestPost(t, victim.ID, nil, "victim post", baseTime)
	otherPost := createTestPost(t, other.ID, nil, "other post", baseTime.Add(time.Minute))

	commentRepo := NewCommentRepository()
	// Comment by other on victim's post, and by victim on other's post.
	require.NoError(t, commentRepo.Create(&model.Comment{PostID: victimPost.ID, AuthorID: other.ID, Text: "on victim post"}))
	require.NoError(t, commentRepo.Create(&model.Comment{PostID: otherPost.ID, AuthorID: victim.ID, Text: "by victim"}))

	followRepo := NewFollowRepository()
	require.NoError(t, followRepo.Create(&model.Follow{UserID: victim.ID, AuthorID: other.ID}))
	require.NoError(t, followRepo.Create(&model.Follow{UserID: other.ID, AuthorID: victim.ID}))

	require.NoError(t, NewUserRepository().Delete(victim.ID))

	postRepo := NewPostRepository()
	gone, err := postRepo.FindByID(victimPost.ID)
	require.NoError(t, err)
	assert.Nil(t, gone, "user's posts must be deleted with the user")

	kept, err := postRepo.FindByID(otherPost.ID)
	require.NoError(t, err)
	require.NotNil(t, kept)

	count, err := commentRepo.CountByPostID(otherPost.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count, "user's comments must be deleted with the user")

	exists, err := followRepo.Exists(other.ID, victim.ID)
	require.NoError(t, err)
	assert.False(t, exists, "follows pointing at the user must be deleted")
	exists, err = followRepo.Exists(victim.ID, other.ID)
	require.NoError(t, err)
	assert.False(t, exists, "follows owned by the user must be deleted")
}
