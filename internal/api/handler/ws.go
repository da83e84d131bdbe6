package handler

import (
	"net/http"

	"manmitra/backend/internal/alertfeed"
	"manmitra/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allows connections from any origin. Tighten in production!
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeAlertFeed upgrades the connection and attaches the counselor
// to the live alert feed. Role gating happens in the route middleware.
func (h *Handler) ServeAlertFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	client := &alertfeed.WebSocketClient{
		ConnID:      uuid.New().String(),
		CounselorID: c.GetString("anon_id"),
		Conn:        conn,
		Hub:         h.Feed,
		Send:        make(chan models.AlertEvent, 16),
	}

	h.Feed.RegisterCh <- client
	client.Run()
}
