package middleware

import (
	"net/http"

	"paperhub/internal/httpapi/validation"

	"github.com/gin-gonic/gin"
)

const ResourceIDKey = "resource_id"

// ValidateResourceID rejects malformed :id path parameters before any
// handler or repository code runs. The parsed id is stored on the context.
func ValidateResourceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := validation.ParseResourceID(c.Param("id"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":   "Validation Error",
				"message": "Invalid ID format",
			})
			return
		}
		c.Set(ResourceIDKey, id)
		c.Next()
	}
}

// ResourceID reads the id parsed by ValidateResourceID.
func ResourceID(c *gin.Context) int64 {
	return c.GetInt64(ResourceIDKey)
}
