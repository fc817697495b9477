package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"blended-advisor/internal/app"
	"blended-advisor/internal/domain"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// WSHandler walks a respondent through the questionnaire over a websocket.
type WSHandler struct {
	service  *app.AdvisorService
	log      *zap.Logger
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.AdvisorService, log *zap.Logger) *WSHandler {
	return &WSHandler{
		service: service,
		log:     log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type answerPayload struct {
	Question int    `json:"question"`
	Answer   string `json:"answer"`
}

type sessionPayload struct {
	SessionID string            `json:"sessionId"`
	Questions []domain.Question `json:"questions"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

// ServeWS upgrades the request and runs one questionnaire session per submit.
// Messages in: answer, submit. Messages out: session, progress, recommendation, error.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	ctx := r.Context()
	var sessionID string
	defer func() {
		if sessionID == "" {
			return
		}
		// r.Context is canceled once the client goes away.
		_ = h.service.Discard(context.WithoutCancel(ctx), sessionID)
	}()

	sessionID, err = h.startSession(ctx, conn)
	if err != nil {
		h.log.Error("start session", zap.Error(err))
		return
	}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Debug("ws read ended", zap.Error(err))
			}
			return
		}

		var werr error
		switch inbound.Type {
		case "answer":
			var payload answerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				werr = writeError(conn, "invalid answer payload")
				break
			}
			progress, err := h.service.Answer(ctx, sessionID, payload.Question, payload.Answer)
			if err != nil {
				werr = writeError(conn, err.Error())
				break
			}
			werr = conn.WriteJSON(outboundMessage[domain.Progress]{Type: "progress", Payload: progress})
		case "submit":
			rec, err := h.service.Submit(ctx, sessionID)
			if err != nil {
				if !errors.Is(err, domain.ErrIncomplete) {
					h.log.Warn("submit failed", zap.String("session", sessionID), zap.Error(err))
				}
				werr = writeError(conn, err.Error())
				break
			}
			h.log.Info("questionnaire submitted", zap.String("session", sessionID), zap.Strings("models", rec.Lines()))
			if werr = conn.WriteJSON(outboundMessage[recommendationView]{Type: "recommendation", Payload: newRecommendationView(rec)}); werr != nil {
				break
			}
			sessionID, werr = h.startSession(ctx, conn)
		default:
			werr = writeError(conn, "unsupported message type")
		}
		if werr != nil {
			h.log.Debug("ws write error", zap.Error(werr))
			return
		}
	}
}

func (h *WSHandler) startSession(ctx context.Context, conn *websocket.Conn) (string, error) {
	id, err := h.service.Start(ctx)
	if err != nil {
		_ = writeError(conn, "could not start questionnaire")
		return "", err
	}
	return id, conn.WriteJSON(outboundMessage[sessionPayload]{
		Type:    "session",
		Payload: sessionPayload{SessionID: id, Questions: domain.Questionnaire()},
	})
}

func writeError(conn *websocket.Conn, msg string) error {
	return conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: msg}})
}
