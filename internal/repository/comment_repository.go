package repository

import (
	"microblog/internal/model"
	"microblog/pkg/db"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{db: db.DB}
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.db.Create(comment).Error
}

// FindByPostID returns the post's comments, newest first.
func (r *CommentRepository) FindByPostID(postID uint) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.Where("post_id = ?", postID).
		Order("created_at DESC, id DESC").
		Preload("Author").
		Find(&comments).Error
	return comments, err
}

func (r *CommentRepository) CountByPostID(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Comment{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
