package repository

import (
	"errors"
	"microblog/internal/model"
	"microblog/pkg/db"

	"gorm.io/gorm"
)

// feedOrder is the ordering shared by every post listing: newest first,
// with the id as a tiebreaker so pagination stays a total order even when
// rows share a timestamp.
const feedOrder = "posts.created_at DESC, posts.id DESC"

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository() *PostRepository {
	return &PostRepository{db: db.DB}
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.db.Create(post).Error
}

// Update rewrites text, group and image only. CreatedAt and AuthorID are
// immutable once the row exists.
func (r *PostRepository) Update(post *model.Post) error {
	return r.db.Model(post).
		Select("text", "group_id", "image").
		Updates(map[string]interface{}{
			"text":     post.Text,
			"group_id": post.GroupID,
			"image":    post.Image,
		}).Error
}

func (r *PostRepository) FindByID(id uint) (*model.Post, error) {
	var post model.Post
	err := r.db.Preload("Author").Preload("Group").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// Delete removes the post's comments and then the post itself.
func (r *PostRepository) Delete(postID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, postID).Error
	})
}

func (r *PostRepository) FindAll(limit, offset int) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.Order(feedOrder).
		Limit(limit).
		Offset(offset).
		Preload("Author").
		Preload("Group").
		Find(&posts).Error
	return posts, err
}

func (r *PostRepository) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&model.Post{}).Count(&count).Error
	return count, err
}

func (r *PostRepository) FindByGroupID(groupID uint, limit, offset int) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.Where("group_id = ?", groupID).
		Order(feedOrder).
		Limit(limit).
		Offset(offset).
		Preload("Author").
		Preload("Group").
		Find(&posts).Error
	return posts, err
}

func (r *PostRepository) CountByGroupID(groupID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Post{}).Where("group_id = ?", groupID).Count(&count).Error
	return count, err
}

func (r *PostRepository) FindByAuthorID(authorID uint, limit, offset int) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.Where("author_id = ?", authorID).
		Order(feedOrder).
		Limit(limit).
		Offset(offset).
		Preload("Author").
		Preload("Group").
		Find(&posts).Error
	return posts, err
}

func (r *PostRepository) CountByAuthorID(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Post{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// FindBySubscriptions lists posts written by authors the user follows.
func (r *PostRepository) FindBySubscriptions(userID uint, limit, offset int) ([]model.Post, error) {
	var posts []model.Post
	err := r.db.Joins("JOIN follows ON follows.author_id = posts.author_id").
		Where("follows.user_id = ?", userID).
		Order(feedOrder).
		Limit(limit).
		Offset(offset).
		Preload("Author").
		Preload("Group").
		Find(&posts).Error
	return posts, err
}

func (r *PostRepository) CountBySubscriptions(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Post{}).
		Joins("JOIN follows ON follows.author_id = posts.author_id").
		Where("follows.user_id = ?", userID).
		Count(&count).Error
	return count, err
}
