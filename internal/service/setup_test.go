package service

import (
	"fmt"
	"microblog/internal/model"
	"microblog/internal/repository"
	"microblog/pkg/config"
	"microblog/pkg/db"
	"microblog/pkg/logger"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	if err := config.InitTest(); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}
	if logger.L == nil {
		if err := logger.InitLogger(config.GlobalConfig.Log.Level, config.GlobalConfig.Log.ProductionMode); err != nil {
			t.Logf("Logger init failed (using default): %v", err)
		}
	}
	err := db.InitDB()
	require.NoError(t, err, "Failed to connect to test database")

	t.Cleanup(func() {
		models := []interface{}{
			&model.Comment{},
			&model.Follow{},
			&model.Post{},
			&model.Group{},
			&model.User{},
		}
		for _, m := range models {
			if err := db.DB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
				t.Logf("Warning: Failed to cleanup table %T: %v", m, err)
			}
		}
	})
}

func newPostService() *PostService {
	return NewPostService(
		repository.NewPostRepository(),
		repository.NewCommentRepository(),
		repository.NewGroupRepository(),
	)
}

func newFollowService() *FollowService {
	return NewFollowService(repository.NewFollowRepository(), repository.NewUserRepository())
}

func newGroupService() *GroupService {
	return NewGroupService(repository.NewGroupRepository())
}

func createTestUser(t *testing.T, username string) *model.User {
	user := &model.User{
		Username: username,
		Password: "testpassword",
		Email:    fmt.Sprintf("%s@example.com", username),
		Avatar:   "default.png",
	}
	require.NoError(t, repository.NewUserRepository().Create(user))
	return user
}

func createTestGroup(t *testing.T, slug string) *model.Group {
	group := &model.Group{Title: "Group " + slug, Slug: slug, Description: "test group"}
	require.NoError(t, repository.NewGroupRepository().Create(group))
	return group
}

func createTestPost(t *testing.T, authorID uint, groupID *uint, text string, createdAt time.Time) *model.Post {
	post := &model.Post{Text: text, AuthorID: authorID, GroupID: groupID, CreatedAt: createdAt}
	require.NoError(t, repository.NewPostRepository().Create(post))
	return post
}
