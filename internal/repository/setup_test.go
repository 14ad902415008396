package repository

import (
	"fmt"
	"microblog/internal/model"
	"microblog/pkg/config"
	"microblog/pkg/db"
	"microblog/pkg/logger"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB initializes config, logger and the in-memory database, and
// registers a cleanup that wipes every table after the test.
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

	t.Cleanup(func() { cleanupTables(t) })
}

func cleanupTables(t *testing.T) {
	// Children before parents so the wipe never trips a constraint.
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
}

func createTestUser(t *testing.T, username string) *model.User {
	user := &model.User{
		Username: username,
		Password: "testpassword",
		Email:    fmt.Sprintf("%s@example.com", username),
		Avatar:   "default.png",
	}
	err := NewUserRepository().Create(user)
	require.NoError(t, err, "Failed to create test user %s", username)
	require.True(t, user.ID > 0)
	return user
}

func createTestGroup(t *testing.T, slug string) *model.Group {
	group := &model.Group{
		Title:       "Group " + slug,
		Slug:        slug,
		Description: "test group",
	}
	err := NewGroupRepository().Create(group)
	require.NoError(t, err, "Failed to create test group %s", slug)
	return group
}

// createTestPost inserts a post with an explicit creation time so ordering
// tests don't depend on the wall clock.
func createTestPost(t *testing.T, authorID uint, groupID *uint, text string, createdAt time.Time) *model.Post {
	post := &model.Post{
		Text:      text,
		AuthorID:  authorID,
		GroupID:   groupID,
		CreatedAt: createdAt,
	}
	err := NewPostRepository().Create(post)
	require.NoError(t, err, "Failed to create test post")
	return post
}
