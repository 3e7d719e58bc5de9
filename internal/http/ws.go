package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// serveWS upgrades a client to the realtime channel. Browsers cannot set
// headers on websocket dials, so the bearer token rides in the query string.
func (h *Handler) serveWS(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	claims, err := h.tokens.Verify(token)
	if err != nil {
		h.logger.Warnf("websocket token verification failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	if err := h.hub.ServeWS(c.Writer, c.Request, claims.UserID); err != nil {
		h.logger.Warnf("websocket upgrade failed: %v", err)
	}
}
