package repository

import (
	"errors"
	"microblog/internal/model"
	"microblog/pkg/db"

	"gorm.io/gorm"
)

type GroupRepository struct {
	db *gorm.DB
}

func NewGroupRepository() *GroupRepository {
	return &GroupRepository{db: db.DB}
}

func (r *GroupRepository) Create(group *model.Group) error {
	return r.db.Create(group).Error
}

// Update changes title and description only; the slug is the group's
// identity and is never rewritten here.
func (r *GroupRepository) Update(group *model.Group) error {
	return r.db.Model(group).
		Select("title", "description").
		Updates(map[string]interface{}{
			"title":       group.Title,
			"description": group.Description,
		}).Error
}

func (r *GroupRepository) FindByID(id uint) (*model.Group, error) {
	var group model.Group
	if err := r.db.First(&group, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

func (r *GroupRepository) FindBySlug(slug string) (*model.Group, error) {
	var group model.Group
	if err := r.db.Where("slug = ?", slug).First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

// Delete detaches the group from its posts (group_id set to NULL, posts kept)
// and then removes the group row.
func (r *GroupRepository) Delete(groupID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Post{}).
			Where("group_id = ?", groupID).
			Update("group_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Group{}, groupID).Error
	})
}
