package service

import (
	"microblog/internal/access"
	"microblog/internal/model"
	"microblog/internal/repository"
	"microblog/pkg/config"
	"microblog/pkg/logger"
	"microblog/pkg/utils"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// PostService owns post and comment lifecycles and enforces the access
// rules as hard guards: a refused mutation never reaches the database.
type PostService struct {
	postRepo    *repository.PostRepository
	commentRepo *repository.CommentRepository
	groupRepo   *repository.GroupRepository
}

func NewPostService(
	postRepo *repository.PostRepository,
	commentRepo *repository.CommentRepository,
	groupRepo *repository.GroupRepository,
) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		groupRepo:   groupRepo,
	}
}

type CreatePostRequest struct {
	Text      string `json:"text" binding:"required"`
	GroupSlug string `json:"group_slug"`
	Image     string `json:"image"`
}

type UpdatePostRequest struct {
	Text      string `json:"text" binding:"required"`
	GroupSlug string `json:"group_slug"`
	Image     string `json:"image"`
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// PostDetail is the full single-post view: the post, its comments newest
// first, the author's total post count and a truncated display title.
type PostDetail struct {
	Post            *model.Post     `json:"post"`
	Title           string          `json:"title"`
	Comments        []model.Comment `json:"comments"`
	AuthorPostCount int64           `json:"author_post_count"`
}

// resolveGroup maps an optional slug to a group ID, ErrNotFound if unknown.
func (s *PostService) resolveGroup(slug string) (*uint, error) {
	if slug == "" {
		return nil, nil
	}
	group, err := s.groupRepo.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrNotFound
	}
	return &group.ID, nil
}

func validatePostText(text string) error {
	if strings.TrimSpace(text) == "" {
		return &ValidationError{Field: "text", Reason: "must not be empty"}
	}
	return nil
}

func (s *PostService) CreatePost(authorID uint, req CreatePostRequest) (*model.Post, error) {
	if !access.CanCreatePost(authorID) {
		return nil, ErrForbidden
	}
	if err := validatePostText(req.Text); err != nil {
		return nil, err
	}
	groupID, err := s.resolveGroup(req.GroupSlug)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		Text:     req.Text,
		AuthorID: authorID,
		GroupID:  groupID,
		Image:    req.Image,
	}
	if err := s.postRepo.Create(post); err != nil {
		logger.L.Error("Error creating post", zap.Uint("authorID", authorID), zap.Error(err))
		return nil, err
	}
	return s.postRepo.FindByID(post.ID)
}

// UpdatePost rewrites text/group/image. The author and creation time never
// change; a non-owner gets ErrForbidden.
func (s *PostService) UpdatePost(postID, requesterID uint, req UpdatePostRequest) (*model.Post, error) {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	if !access.CanEditPost(post, requesterID) {
		return nil, ErrForbidden
	}
	if err := validatePostText(req.Text); err != nil {
		return nil, err
	}
	groupID, err := s.resolveGroup(req.GroupSlug)
	if err != nil {
		return nil, err
	}

	post.Text = req.Text
	post.GroupID = groupID
	if req.Image != "" {
		post.Image = req.Image
	}
	if err := s.postRepo.Update(post); err != nil {
		logger.L.Error("Error updating post", zap.Uint("postID", postID), zap.Error(err))
		return nil, err
	}
	return s.postRepo.FindByID(postID)
}

// DeletePost removes the post and its comments. The global feed cache is
// deliberately left alone: stale reads may keep showing the post until the
// TTL runs out or the cache is cleared.
func (s *PostService) DeletePost(postID, requesterID uint) error {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrNotFound
	}
	if !access.CanDeletePost(post, requesterID) {
		return ErrForbidden
	}
	if err := s.postRepo.Delete(postID); err != nil {
		logger.L.Error("Error deleting post", zap.Uint("postID", postID), zap.Error(err))
		return err
	}
	return nil
}

func (s *PostService) GetPost(postID uint) (*model.Post, error) {
	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

func (s *PostService) GetPostDetail(postID uint) (*PostDetail, error) {
	post, err := s.GetPost(postID)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.FindByPostID(postID)
	if err != nil {
		return nil, err
	}
	authorCount, err := s.postRepo.CountByAuthorID(post.AuthorID)
	if err != nil {
		return nil, err
	}
	return &PostDetail{
		Post:            post,
		Title:           utils.Truncate(post.Text, config.GlobalConfig.App.LimitText),
		Comments:        comments,
		AuthorPostCount: authorCount,
	}, nil
}

func (s *PostService) CreateComment(postID, authorID uint, req CreateCommentRequest) (*model.Comment, error) {
	if !access.CanComment(authorID) {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, &ValidationError{Field: "text", Reason: "must not be empty"}
	}
	if utf8.RuneCountInString(req.Text) > model.MaxCommentLength {
		return nil, &ValidationError{Field: "text", Reason: "must be at most 500 characters"}
	}

	post, err := s.postRepo.FindByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}

	comment := &model.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Text:     req.Text,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		logger.L.Error("Error creating comment", zap.Uint("postID", postID), zap.Error(err))
		return nil, err
	}
	return comment, nil
}
