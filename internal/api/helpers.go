package api

import (
	"microblog/internal/middleware"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// requesterID returns the resolved user ID, 0 for anonymous callers.
func requesterID(c *gin.Context) uint {
	if v, ok := c.Get(middleware.ContextUserIDKey); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// mustRequesterID is for routes behind AuthMiddleware; it aborts with 401 if
// the ID is somehow missing.
func mustRequesterID(c *gin.Context) (uint, bool) {
	id := requesterID(c)
	if id == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		c.Abort()
		return 0, false
	}
	return id, true
}

func postIDFromParam(c *gin.Context) (uint, bool) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return 0, false
	}
	return uint(id64), true
}

// pageFromQuery parses ?page=; anything non-numeric or missing is page 1.
// Clamping against the last page happens in the feed service.
func pageFromQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
