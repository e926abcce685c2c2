package handlers

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/linskybing/signflow/internal/application"
	"github.com/linskybing/signflow/internal/domain/document"
	"github.com/linskybing/signflow/pkg/response"
	"go.uber.org/zap"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 512
)

type StatusStreamHandler struct {
	status   *application.StatusService
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

// NewStatusStreamHandler accepts browser upgrades only from origins
// allowOrigin approves. Requests without an Origin header are not from a
// browser and pass.
func NewStatusStreamHandler(status *application.StatusService, allowOrigin func(origin string) bool, logger *zap.Logger) *StatusStreamHandler {
	return &StatusStreamHandler{
		status: status,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				return allowOrigin != nil && allowOrigin(origin)
			},
		},
		logger: logger,
	}
}

// wsConn serializes writes; gorilla allows one concurrent writer.
type wsConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (w *wsConn) writeJSON(v interface{}) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_ = w.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return w.conn.WriteJSON(v)
}

func (w *wsConn) writeControl(messageType int, data []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.WriteControl(messageType, data, time.Now().Add(writeWait))
}

// WatchStatus godoc
// @Summary Stream document status changes over a websocket
// @Tags documents
// @Param code query string true "Signer code"
// @Param file_id query string true "Document file id"
// @Success 101 {object} CheckResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /ws/doc/check [get]
func (h *StatusStreamHandler) WatchStatus(c *gin.Context) {
	var query document.CheckDocumentQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: bindErrorMessage(err, "Code and file_id are required")})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()
	ws := &wsConn{conn: conn}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// The client only ever closes; any read error ends the stream.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := ws.writeControl(websocket.PingMessage, nil); err != nil {
					cancel()
					return
				}
			}
		}
	}()

	err = h.status.Watch(ctx, query.Code, query.FileID, func(view *application.StatusView) error {
		return ws.writeJSON(CheckResponse{Success: true, StatusView: view})
	})
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}

	switch application.KindOf(err) {
	case application.KindNotFound, application.KindValidation:
		_ = ws.writeJSON(response.ErrorResponse{Error: err.Error()})
	default:
		h.logger.Error("status stream failed",
			zap.String("file_id", query.FileID),
			zap.Error(err))
		_ = ws.writeJSON(response.ErrorResponse{Error: "Failed to check document"})
	}
	_ = ws.writeControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
