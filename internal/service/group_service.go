package service

import (
	"microblog/internal/model"
	"microblog/internal/repository"
	"strings"
)

// GroupService covers the administrator-style group lifecycle. The slug is
// fixed at creation; updates may only touch title and description.
type GroupService struct {
	groupRepo *repository.GroupRepository
}

func NewGroupService(groupRepo *repository.GroupRepository) *GroupService {
	return &GroupService{groupRepo: groupRepo}
}

type CreateGroupRequest struct {
	Title       string `json:"title" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
}

type UpdateGroupRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

func (s *GroupService) CreateGroup(requesterID uint, req CreateGroupRequest) (*model.Group, error) {
	if requesterID == 0 {
		return nil, ErrForbidden
	}
	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		return nil, &ValidationError{Field: "slug", Reason: "must not be empty"}
	}
	existing, err := s.groupRepo.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &ValidationError{Field: "slug", Reason: "already taken"}
	}

	group := &model.Group{
		Title:       req.Title,
		Slug:        slug,
		Description: req.Description,
	}
	if err := s.groupRepo.Create(group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *GroupService) UpdateGroup(requesterID uint, slug string, req UpdateGroupRequest) (*model.Group, error) {
	if requesterID == 0 {
		return nil, ErrForbidden
	}
	group, err := s.groupRepo.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrNotFound
	}

	group.Title = req.Title
	group.Description = req.Description
	if err := s.groupRepo.Update(group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *GroupService) GetGroup(slug string) (*model.Group, error) {
	group, err := s.groupRepo.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrNotFound
	}
	return group, nil
}

// DeleteGroup detaches the group's posts (they keep existing with no group)
// and removes the group.
func (s *GroupService) DeleteGroup(requesterID uint, slug string) error {
	if requesterID == 0 {
		return ErrForbidden
	}
	group, err := s.groupRepo.FindBySlug(slug)
	if err != nil {
		return err
	}
	if group == nil {
		return ErrNotFound
	}
	return s.groupRepo.Delete(group.ID)
}
