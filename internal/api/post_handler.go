package api

import (
	"errors"
	"fmt"
	"microblog/internal/service"
	"microblog/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func (h *PostHandler) GetPost(c *gin.Context) {
	postID, ok := postIDFromParam(c)
	if !ok {
		return
	}

	detail, err := h.postService.GetPostDetail(postID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		logger.L.Error("Error getting post detail", zap.Uint("postID", postID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve post"})
		return
	}

	c.JSON(http.StatusOK, detail)
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := mustRequesterID(c)
	if !ok {
		return
	}

	var req service.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	post, err := h.postService.CreatePost(userID, req)
	if err != nil {
		if verr, ok := service.AsValidation(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "field": verr.Field})
			return
		}
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
			return
		}
		logger.L.Error("Error creating post", zap.Uint("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, post)
}

// UpdatePost edits a post. A caller who is not the author is not shown an
// error page; they are sent back to the post view.
func (h *PostHandler) UpdatePost(c *gin.Context) {
	userID, ok := mustRequesterID(c)
	if !ok {
		return
	}
	postID, ok := postIDFromParam(c)
	if !ok {
		return
	}

	var req service.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	post, err := h.postService.UpdatePost(postID, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		case errors.Is(err, service.ErrForbidden):
			c.Redirect(http.StatusSeeOther, fmt.Sprintf("/api/posts/%d", postID))
		default:
			if verr, ok := service.AsValidation(err); ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "field": verr.Field})
				return
			}
			logger.L.Error("Error updating post", zap.Uint("postID", postID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		}
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, ok := mustRequesterID(c)
	if !ok {
		return
	}
	postID, ok := postIDFromParam(c)
	if !ok {
		return
	}

	err := h.postService.DeletePost(postID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		case errors.Is(err, service.ErrForbidden):
			c.Redirect(http.StatusSeeOther, fmt.Sprintf("/api/posts/%d", postID))
		default:
			logger.L.Error("Error deleting post", zap.Uint("postID", postID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

func (h *PostHandler) AddComment(c *gin.Context) {
	userID, ok := mustRequesterID(c)
	if !ok {
		return
	}
	postID, ok := postIDFromParam(c)
	if !ok {
		return
	}

	var req service.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	comment, err := h.postService.CreateComment(postID, userID, req)
	if err != nil {
		if verr, ok := service.AsValidation(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "field": verr.Field})
			return
		}
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		logger.L.Error("Error adding comment", zap.Uint("postID", postID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		return
	}

	c.JSON(http.StatusCreated, comment)
}
