package stair

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const liveWriteTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// Origin checks are handled by the CORS layer in front of the router.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Live upgrades the connection and recomputes the report for every Input the
// client sends. A drawing client typically streams one message per keystroke;
// recomputation is cheap so every edit gets a full fresh report back.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("stair live upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("stair live read: %v", err)
			}
			return
		}
		var input Input
		if err := json.Unmarshal(msg, &input); err != nil {
			// Half-typed numbers arrive as malformed JSON; skip the message
			// and wait for the next edit.
			continue
		}
		res := Calculate(input)
		conn.SetWriteDeadline(time.Now().Add(liveWriteTimeout))
		if err := conn.WriteJSON(res); err != nil {
			log.Printf("stair live write: %v", err)
			return
		}
	}
}
