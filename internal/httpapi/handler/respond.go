package handler

import (
	"encoding/json"
	"net/http"

	"paperhub/internal/httpapi/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// decodePayload reads the request body into a loosely-typed map, preserving
// numeric text via json.Number so the validator can do strict integer checks.
// A malformed body decodes to an empty payload and fails field validation.
func decodePayload(c *gin.Context) map[string]any {
	payload := map[string]any{}
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		return map[string]any{}
	}
	return payload
}

func validationError(c *gin.Context, messages []string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":    "Validation Error",
		"messages": messages,
	})
}

func invalidQuery(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Validation Error",
		"message": "Invalid query parameter format",
	})
}

// internalError logs the underlying failure and returns the generic 500
// envelope. Store detail never reaches the client.
func internalError(c *gin.Context, err error) {
	log.Error().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("path", c.Request.URL.Path).
		Err(err).
		Msg("request failed")

	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal Server Error",
		"message": "An unexpected error occurred",
	})
}
