package repository

import (
	"errors"
	"microblog/internal/model"
	"microblog/pkg/db"

	"gorm.io/gorm"
)

type FollowRepository struct {
	db *gorm.DB
}

func NewFollowRepository() *FollowRepository {
	return &FollowRepository{db: db.DB}
}

func (r *FollowRepository) Create(follow *model.Follow) error {
	return r.db.Create(follow).Error
}

func (r *FollowRepository) Find(userID, authorID uint) (*model.Follow, error) {
	var follow model.Follow
	err := r.db.Where("user_id = ? AND author_id = ?", userID, authorID).First(&follow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &follow, nil
}

func (r *FollowRepository) Exists(userID, authorID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	return count > 0, err
}

// Delete removes the (user, author) edge and reports how many rows went away;
// 0 means there was nothing to unfollow.
func (r *FollowRepository) Delete(userID, authorID uint) (int64, error) {
	res := r.db.Where("user_id = ? AND author_id = ?", userID, authorID).Delete(&model.Follow{})
	return res.RowsAffected, res.Error
}

func (r *FollowRepository) CountFollowers(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Follow{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

func (r *FollowRepository) CountFollowing(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Follow{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
