package live

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/classtap/classtap/internal/app/models/dto"
	"github.com/classtap/classtap/internal/pkg/metrics"
)

// ServeSession upgrades the request to a websocket subscribed to one
// session's scan events.
// @Summary Live attendance feed
// @Description Streams newly recorded scans for a session over WebSocket
// @Tags attendance
// @Param sessionId path string true "Session key"
// @Success 101 "Switching protocols"
// @Failure 400 {object} dto.ErrorResponse "Missing session id"
// @Router /attendance/session/{sessionId}/live [get]
func (h *Hub) ServeSession(ctx *gin.Context) {
	sessionID := strings.TrimSpace(ctx.Param("sessionId"))
	if sessionID == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Session id is required").WithField("sessionId")))
		return
	}

	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to upgrade live feed connection")
		return
	}

	client := &Client{
		hub:       h,
		conn:      conn,
		send:      make(chan []byte, 32),
		sessionID: sessionID,
		logger:    h.logger,
	}

	h.register <- client
	metrics.LiveSessionClients.Inc()

	go client.writePump()
	go client.readPump()
}
