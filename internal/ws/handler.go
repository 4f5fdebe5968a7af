package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"

	"github.com/cubedrafter/draft-backend/internal/cards"
	"github.com/cubedrafter/draft-backend/internal/hub"
	"github.com/cubedrafter/draft-backend/internal/lobby"
	"github.com/cubedrafter/draft-backend/internal/types"
)

func Handler(h *hub.Hub, cubes *cards.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "missing code", http.StatusBadRequest)
			return
		}
		playerID := r.URL.Query().Get("player")
		if playerID == "" {
			http.Error(w, "missing player", http.StatusBadRequest)
			return
		}

		reply := make(chan *lobby.Lobby, 1)
		h.Inbox() <- hub.GetLobby{Code: code, Reply: reply}
		lb := <-reply
		if lb == nil {
			http.Error(w, "lobby not found", http.StatusNotFound)
			return
		}

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			// In dev ONLY, you can loosen origin checks:
			// OriginPatterns: []string{"http://localhost:*", "http://127.0.0.1:*"},
		})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		out := make(chan lobby.Update, 8)
		lb.Inbox() <- lobby.Join{PlayerID: playerID, Outbox: out}
		defer func() { lb.Inbox() <- lobby.Leave{PlayerID: playerID} }()

		// Writer goroutine
		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for u := range out {
				msg := types.ServerMessage{
					Type:      "SeatUpdate",
					Version:   u.Version,
					Pack:      u.Pack,
					Round:     u.Round,
					Pick:      u.PickNum,
					Deck:      u.Deck,
					FaceUp:    u.FaceUp,
					Autopicks: u.Autopicks,
					Effects:   u.Effects,
					Waiting:   u.Waiting,
					Finished:  u.Finished,
				}
				payload, _ := json.Marshal(msg)
				ctx, cancel := context.WithTimeout(writeCtx, 3*time.Second)
				_ = conn.Write(ctx, websocket.MessageText, payload)
				cancel()
			}
		}()

		// Reader loop
		for {
			ctx, cancel := context.WithTimeout(r.Context(), 5*time.Minute)
			_, data, err := conn.Read(ctx)
			cancel()
			if err != nil {
				// Treat clean close/going-away as normal:
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					return
				}
				// Otherwise, just exit (lobby.Leave in defer):
				return
			}

			var cm types.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				writeError(r.Context(), conn, "bad json")
				continue
			}

			switch cm.Type {
			case "Pick":
				errReply := make(chan error, 1)
				lb.Inbox() <- lobby.FromClient{PlayerID: playerID, Position: cm.Position, Reply: errReply}
				if err := <-errReply; err != nil {
					writeError(r.Context(), conn, err.Error())
				}

			case "Start":
				pool, err := cubes.CubeList(r.Context(), cm.CubeID)
				if err != nil {
					writeError(r.Context(), conn, err.Error())
					continue
				}
				errReply := make(chan error, 1)
				lb.Inbox() <- lobby.StartDraft{
					Rounds:       cm.Rounds,
					CardsPerPack: cm.CardsPerPack,
					Cards:        pool,
					Reply:        errReply,
				}
				if err := <-errReply; err != nil {
					writeError(r.Context(), conn, err.Error())
				}

			case "Abandon":
				lb.Inbox() <- lobby.Abandon{}

			default:
				writeError(r.Context(), conn, "unknown type")
			}
		}
	}
}

func writeError(ctx context.Context, conn *websocket.Conn, msg string) {
	payload, _ := json.Marshal(types.ServerMessage{Type: "Error", Error: msg})
	_ = conn.Write(ctx, websocket.MessageText, payload)
}
