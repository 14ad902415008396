package service

import (
	"microblog/internal/model"
	"microblog/internal/repository"
	"microblog/pkg/logger"

	"go.uber.org/zap"
)

// FollowService manages the social graph. Follow and Unfollow are both
// idempotent: repeating either leaves the graph unchanged.
type FollowService struct {
	followRepo *repository.FollowRepository
	userRepo   *repository.UserRepository
}

func NewFollowService(followRepo *repository.FollowRepository, userRepo *repository.UserRepository) *FollowService {
	return &FollowService{followRepo: followRepo, userRepo: userRepo}
}

func (s *FollowService) resolveAuthor(username string) (*model.User, error) {
	author, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrNotFound
	}
	return author, nil
}

// Follow creates the edge user -> author. Following yourself or someone you
// already follow is a silent no-op; an unknown username is ErrNotFound.
func (s *FollowService) Follow(userID uint, authorUsername string) error {
	if userID == 0 {
		return ErrForbidden
	}
	author, err := s.resolveAuthor(authorUsername)
	if err != nil {
		return err
	}
	if author.ID == userID {
		return nil
	}
	exists, err := s.followRepo.Exists(userID, author.ID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	follow := &model.Follow{UserID: userID, AuthorID: author.ID}
	if err := s.followRepo.Create(follow); err != nil {
		logger.L.Error("Error creating follow",
			zap.Uint("userID", userID),
			zap.Uint("authorID", author.ID),
			zap.Error(err))
		return err
	}
	return nil
}

// Unfollow removes the edge if present. Unfollowing someone you never
// followed is a no-op; only an unknown username is ErrNotFound.
func (s *FollowService) Unfollow(userID uint, authorUsername string) error {
	if userID == 0 {
		return ErrForbidden
	}
	author, err := s.resolveAuthor(authorUsername)
	if err != nil {
		return err
	}
	if _, err := s.followRepo.Delete(userID, author.ID); err != nil {
		logger.L.Error("Error deleting follow",
			zap.Uint("userID", userID),
			zap.Uint("authorID", author.ID),
			zap.Error(err))
		return err
	}
	return nil
}

func (s *FollowService) IsFollowing(userID, authorID uint) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	return s.followRepo.Exists(userID, authorID)
}
