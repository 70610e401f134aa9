package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"skillswap/exchange-service/internal/chatsync"
	"skillswap/exchange-service/internal/models"
)

const (
	readTimeout  = 60 * time.Second
	pingInterval = readTimeout * 9 / 10
	writeTimeout = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// inboundFrame is a client command on the stream. Type is one of send,
// request_contact, approve, decline or refresh.
type inboundFrame struct {
	Type        string             `json:"type"`
	Content     string             `json:"content,omitempty"`
	ContactType models.ContactType `json:"contactType,omitempty"`
	RequestID   string             `json:"requestId,omitempty"`
}

type outboundFrame struct {
	Type  string         `json:"type"`
	View  *chatsync.View `json:"view,omitempty"`
	Error string         `json:"error,omitempty"`
	Code  int            `json:"code,omitempty"`
}

// streamConversation pushes the conversation view over a WebSocket every time the
// refresh loop or a write through the stream changes it.
func (s *Server) streamConversation(c *gin.Context) {
	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	session, err := chatsync.Open(ctx, s.chat, c.Param("id"), memberID(c), s.sync, s.logger)
	if err != nil {
		s.respondError(c, err)
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the response.
		s.logger.WithError(err).Warn("WebSocket upgrade failed")
		return
	}
	defer ws.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = session.Run(ctx)
	}()
	defer func() {
		cancel()
		<-done
		session.Wait()
	}()

	replies := make(chan outboundFrame, 8)
	go s.readFrames(ctx, cancel, ws, session, replies)

	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = ws.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session closed"),
				time.Now().Add(writeTimeout))
			return
		case view := <-session.Updates():
			if err := writeFrame(ws, outboundFrame{Type: "view", View: &view}); err != nil {
				return
			}
		case frame := <-replies:
			if err := writeFrame(ws, frame); err != nil {
				return
			}
		case <-ping.C:
			if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				return
			}
		}
	}
}

func (s *Server) readFrames(ctx context.Context, cancel context.CancelFunc, ws *websocket.Conn, session *chatsync.Session, replies chan<- outboundFrame) {
	defer cancel()

	ws.SetReadLimit(1 << 16)
	_ = ws.SetReadDeadline(time.Now().Add(readTimeout))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(readTimeout))
	})

	for {
		var frame inboundFrame
		if err := ws.ReadJSON(&frame); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) &&
				!errors.Is(err, websocket.ErrCloseSent) {
				s.logger.WithError(err).WithField("conversation_id", session.ConversationID()).Debug("WebSocket read ended")
			}
			return
		}

		if err := s.dispatch(ctx, session, frame); err != nil {
			reply := outboundFrame{Type: "error", Error: err.Error(), Code: httpStatus(err)}
			select {
			case replies <- reply:
			case <-ctx.Done():
				return
			}
		}
	}
}

var errUnknownFrame = errors.New("unknown frame type")

func (s *Server) dispatch(ctx context.Context, session *chatsync.Session, frame inboundFrame) error {
	var err error
	switch frame.Type {
	case "send":
		_, err = session.Send(ctx, frame.Content)
	case "request_contact":
		_, err = session.RequestContact(ctx, frame.ContactType)
	case "approve":
		_, err = session.Approve(ctx, frame.RequestID)
	case "decline":
		_, err = session.Decline(ctx, frame.RequestID)
	case "refresh":
		err = session.Refresh(ctx)
	default:
		err = errUnknownFrame
	}
	return err
}

func writeFrame(ws *websocket.Conn, frame outboundFrame) error {
	_ = ws.SetWriteDeadline(time.Now().Add(writeTimeout))
	return ws.WriteJSON(frame)
}
