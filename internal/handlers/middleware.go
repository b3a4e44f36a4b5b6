package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// userIDKey is the gin context key carrying the authenticated user id.
const userIDKey = "userId"

// userIDMiddleware authenticates a request and injects the user id into
// the gin context. The Authorization header value is the token itself;
// no "Bearer" scheme is involved, which is the contract the frontend
// ships with.
func (h *Handler) userIDMiddleware(c *gin.Context) {
	token := c.GetHeader("Authorization")
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"msg": "missing Authorization header",
		})
		return
	}

	userID, err := h.services.ParseToken(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"msg": "invalid token",
		})
		return
	}

	c.Set(userIDKey, userID)
	c.Next()
}

// currentUserID returns the authenticated user id set by the middleware.
func currentUserID(c *gin.Context) string {
	v, _ := c.Get(userIDKey)
	id, _ := v.(string)
	return id
}
