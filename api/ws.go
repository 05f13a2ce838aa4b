package api

import (
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/vincenth777/census-chat/domain"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Same-origin browser page is the only expected client.
		return true
	},
}

// stepFrame is the wire form of one step pushed over the socket. Content is
// always present, even when a step carries empty text.
type stepFrame struct {
	Type    domain.StepType `json:"type"`
	Content interface{}     `json:"content"`
}

// doneFrame terminates the frame sequence of one turn.
type doneFrame struct {
	Type string `json:"type"`
}

// ChatSocket streams steps for each message as they are produced, so the
// page can show intermediate SQL and results before the final answer
// arrives. Each turn ends with a bare "done" frame.
// GET /ws
func (h *Handler) ChatSocket(c echo.Context) error {
	sid := sessionID(c)

	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Printf("ERROR: failed to upgrade WebSocket: %v", err)
		return err
	}
	defer ws.Close()

	for {
		var req chatRequest
		if err := ws.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ERROR: WebSocket read: %v", err)
			}
			return nil
		}

		message := strings.TrimSpace(req.Message)
		if message == "" {
			continue
		}

		write := func(frame interface{}) bool {
			if err := ws.WriteJSON(frame); err != nil {
				log.Printf("ERROR: WebSocket write: %v", err)
				return false
			}
			return true
		}

		h.svc.HandleTurnStream(c.Request().Context(), sid, message, func(step domain.Step) {
			write(stepFrame{Type: step.Type, Content: step.Content})
		})

		if !write(doneFrame{Type: "done"}) {
			return nil
		}
	}
}
