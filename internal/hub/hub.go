// Package hub owns the set of running lobbies, keyed by their join code.
package hub

import (
	"context"

	"go.uber.org/zap"

	"github.com/cubedrafter/draft-backend/internal/codec"
	"github.com/cubedrafter/draft-backend/internal/lobby"
	"github.com/cubedrafter/draft-backend/internal/store"
)

type HubMsg interface{ isHubMsg() }

type CreateLobby struct {
	Code  string
	Reply chan *lobby.Lobby
}

type GetLobby struct {
	Code  string
	Reply chan *lobby.Lobby
}

type EnsureLobby struct {
	Code  string
	Reply chan *lobby.Lobby
}

// ResumeLobby rebuilds a lobby from the persisted snapshot for Code. The
// reply is nil when no recoverable snapshot exists.
type ResumeLobby struct {
	Code  string
	Reply chan *lobby.Lobby
}

type RemoveLobby struct {
	Code string
}

type ShutdownHub struct{}

func (CreateLobby) isHubMsg() {}
func (GetLobby) isHubMsg()    {}
func (EnsureLobby) isHubMsg() {}
func (ResumeLobby) isHubMsg() {}
func (RemoveLobby) isHubMsg() {}
func (ShutdownHub) isHubMsg() {}

type Hub struct {
	inbox   chan HubMsg
	lobbies map[string]*lobby.Lobby
	st      store.Store
	log     *zap.Logger
	ctx     context.Context
	cancel  context.CancelFunc
}

func NewHub(parent context.Context, st store.Store, log *zap.Logger) *Hub {
	ctx, cancel := context.WithCancel(parent)
	h := &Hub{
		inbox:   make(chan HubMsg, 64),
		lobbies: make(map[string]*lobby.Lobby),
		st:      st,
		log:     log,
		ctx:     ctx,
		cancel:  cancel,
	}
	go h.loop()
	return h
}

func (h *Hub) Inbox() chan<- HubMsg { return h.inbox }

func (h *Hub) loop() {
	for {
		select {
		case <-h.ctx.Done():
			return

		case m := <-h.inbox:
			switch msg := m.(type) {
			case CreateLobby:
				if lb := h.lobbies[msg.Code]; lb != nil {
					msg.Reply <- lb
					break
				}
				lb := lobby.NewLobby(h.ctx, msg.Code, nil, h.st, h.log)
				h.lobbies[msg.Code] = lb
				msg.Reply <- lb

			case GetLobby:
				msg.Reply <- h.lobbies[msg.Code] // May be nil

			case EnsureLobby:
				if lb := h.lobbies[msg.Code]; lb != nil {
					msg.Reply <- lb
					break
				}
				lb := lobby.NewLobby(h.ctx, msg.Code, nil, h.st, h.log)
				h.lobbies[msg.Code] = lb
				msg.Reply <- lb

			case ResumeLobby:
				if lb := h.lobbies[msg.Code]; lb != nil {
					msg.Reply <- lb
					break
				}
				msg.Reply <- h.resume(msg.Code)

			case RemoveLobby:
				delete(h.lobbies, msg.Code)

			case ShutdownHub:
				for _, lb := range h.lobbies {
					lb.Inbox() <- lobby.Shutdown{}
				}
				clear(h.lobbies)
				h.cancel()
			}
		}
	}
}

func (h *Hub) resume(code string) *lobby.Lobby {
	if h.st == nil {
		return nil
	}
	data, err := h.st.Load(h.ctx, code)
	if err != nil {
		h.log.Warn("no snapshot to resume", zap.String("lobby", code), zap.Error(err))
		return nil
	}
	d, err := codec.Decode(data)
	if err != nil {
		// unrecoverable snapshot: do not resume
		h.log.Error("snapshot decode failed", zap.String("lobby", code), zap.Error(err))
		return nil
	}
	lb := lobby.NewLobby(h.ctx, code, d, h.st, h.log)
	h.lobbies[code] = lb
	h.log.Info("draft resumed", zap.String("lobby", code))
	return lb
}
