package api

import (
	"errors"
	"microblog/internal/service"
	"microblog/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type FeedHandler struct {
	feedService   *service.FeedService
	followService *service.FollowService
}

func NewFeedHandler(feedService *service.FeedService, followService *service.FollowService) *FeedHandler {
	return &FeedHandler{feedService: feedService, followService: followService}
}

// Index serves the global feed. Page 1 comes from the snapshot cache while
// it is fresh, so the body is byte-identical across reads within the TTL.
func (h *FeedHandler) Index(c *gin.Context) {
	data, err := h.feedService.IndexPage(pageFromQuery(c))
	if err != nil {
		logger.L.Error("Error composing global feed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compose feed"})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

func (h *FeedHandler) GroupFeed(c *gin.Context) {
	feed, err := h.feedService.ComposeFeed(service.GroupScope(c.Param("slug")), pageFromQuery(c))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
			return
		}
		logger.L.Error("Error composing group feed", zap.String("slug", c.Param("slug")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compose feed"})
		return
	}
	c.JSON(http.StatusOK, feed)
}

// Profile serves an author's feed. For authenticated callers the response
// also says whether they follow this author.
func (h *FeedHandler) Profile(c *gin.Context) {
	username := c.Param("username")
	feed, err := h.feedService.ComposeFeed(service.AuthorScope(username), pageFromQuery(c))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logger.L.Error("Error composing author feed", zap.String("username", username), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compose feed"})
		return
	}

	following := false
	if userID := requesterID(c); userID != 0 && feed.Author != nil {
		following, err = h.followService.IsFollowing(userID, feed.Author.ID)
		if err != nil {
			logger.L.Warn("Error checking follow state", zap.Uint("userID", userID), zap.Error(err))
			following = false
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"feed":      feed,
		"following": following,
	})
}

// SubscriptionsFeed serves posts from the authors the caller follows.
func (h *FeedHandler) SubscriptionsFeed(c *gin.Context) {
	userID, ok := mustRequesterID(c)
	if !ok {
		return
	}

	feed, err := h.feedService.ComposeFeed(service.SubscriptionsScope(userID), pageFromQuery(c))
	if err != nil {
		logger.L.Error("Error composing subscriptions feed", zap.Uint("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compose feed"})
		return
	}
	c.JSON(http.StatusOK, feed)
}

// ClearCache is the explicit administrative invalidation of the global feed
// snapshot.
func (h *FeedHandler) ClearCache(c *gin.Context) {
	if _, ok := mustRequesterID(c); !ok {
		return
	}
	h.feedService.ClearIndexCache()
	c.JSON(http.StatusOK, gin.H{"message": "Feed cache cleared"})
}
