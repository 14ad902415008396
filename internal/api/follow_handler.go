package api

import (
	"errors"
	"microblog/internal/service"
	"microblog/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FollowHandler struct {
	followService *service.FollowService
}

func NewFollowHandler(followService *service.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

func (h *FollowHandler) Follow(c *gin.Context) {
	userID, ok := mustRequesterID(c)
	if !ok {
		return
	}
	username := c.Param("username")

	if err := h.followService.Follow(userID, username); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logger.L.Error("Error following author", zap.Uint("userID", userID), zap.String("author", username), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to follow"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Following " + username})
}

func (h *FollowHandler) Unfollow(c *gin.Context) {
	userID, ok := mustRequesterID(c)
	if !ok {
		return
	}
	username := c.Param("username")

	if err := h.followService.Unfollow(userID, username); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logger.L.Error("Error unfollowing author", zap.Uint("userID", userID), zap.String("author", username), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unfollow"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Unfollowed " + username})
}
