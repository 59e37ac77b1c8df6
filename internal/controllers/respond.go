package controllers

import (
	"log"

	"github.com/gin-gonic/gin"

	"moodly-be/internal/apperrors"
)

// respondError maps a service error to an HTTP response. Internal
// detail is logged server-side; the client only ever sees the
// client-safe message.
func respondError(c *gin.Context, err error) {
	appErr := apperrors.From(err)
	if appErr.Internal != nil {
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, appErr)
	}
	c.JSON(appErr.Code, gin.H{
		"message": appErr.Message,
	})
}
