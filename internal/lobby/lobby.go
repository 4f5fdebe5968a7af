// Package lobby runs one actor goroutine per draft. All Start/Pick calls
// against a Draft flow through the inbox, which gives the core the
// single-writer discipline it requires.
package lobby

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/cubedrafter/draft-backend/internal/codec"
	"github.com/cubedrafter/draft-backend/internal/draft"
	"github.com/cubedrafter/draft-backend/internal/store"
)

type Msg interface{ isLobbyMsg() }

// Join registers a player connection and its outbox for updates. Before the
// draft starts, joined players form the roster.
type Join struct {
	PlayerID string
	Outbox   chan Update
}

func (Join) isLobbyMsg() {}

type Leave struct{ PlayerID string }

func (Leave) isLobbyMsg() {}

// StartDraft builds the Draft from the joined roster and the supplied card
// pool, then deals round one.
type StartDraft struct {
	Rounds       int
	CardsPerPack int
	Cards        []string
	Reply        chan error
}

func (StartDraft) isLobbyMsg() {}

// FromClient is a player's pick.
type FromClient struct {
	PlayerID string
	Position int
	Reply    chan error
}

func (FromClient) isLobbyMsg() {}

// ForcePick autopicks on behalf of an idle player and bumps their skip
// counter. Deciding when to force is the caller's policy, not the lobby's.
type ForcePick struct {
	PlayerID string
	Position int // zero means position 1
	Reply    chan error
}

func (ForcePick) isLobbyMsg() {}

// Abandon forces the draft to complete regardless of progress.
type Abandon struct{}

func (Abandon) isLobbyMsg() {}

type Shutdown struct{}

func (Shutdown) isLobbyMsg() {}

type GetState struct {
	Reply chan View
}

func (GetState) isLobbyMsg() {}

// Update is what a single seat receives after a state transition.
type Update struct {
	Version   int
	Pack      []string
	Round     int
	PickNum   int
	Deck      []string
	FaceUp    []string
	Autopicks []string
	Effects   []draft.Effect
	Waiting   []string
	Finished  bool
}

type View struct {
	Version    int
	NumClients int
	Stage      draft.Stage
	Pending    []string
}

type Lobby struct {
	inbox   chan Msg
	code    string
	d       *draft.Draft
	version int
	clients map[string]chan Update
	st      store.Store
	log     *zap.Logger
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewLobby starts the actor. d may be nil for a fresh lobby (the draft is
// built on StartDraft) or a decoded snapshot when resuming.
func NewLobby(parent context.Context, code string, d *draft.Draft, st store.Store, log *zap.Logger) *Lobby {
	ctx, cancel := context.WithCancel(parent)
	l := &Lobby{
		inbox:   make(chan Msg, 64),
		code:    code,
		d:       d,
		clients: make(map[string]chan Update),
		st:      st,
		log:     log.With(zap.String("lobby", code)),
		ctx:     ctx,
		cancel:  cancel,
	}
	go l.loop()
	return l
}

func (l *Lobby) Inbox() chan<- Msg { return l.inbox }

func (l *Lobby) loop() {
	for {
		select {
		case <-l.ctx.Done():
			l.shutdown()
			return

		case m := <-l.inbox:
			switch msg := m.(type) {
			case Join:
				l.clients[msg.PlayerID] = msg.Outbox
				if l.d != nil {
					// resumed or running draft: bump the seat immediately
					if s, err := l.d.SeatByID(msg.PlayerID); err == nil {
						l.send(msg.PlayerID, l.seatUpdate(s, nil, nil))
					}
				}

			case Leave:
				delete(l.clients, msg.PlayerID)

			case StartDraft:
				msg.Reply <- l.startDraft(msg)

			case FromClient:
				msg.Reply <- l.applyPick(msg.PlayerID, msg.Position, false)

			case ForcePick:
				pos := msg.Position
				if pos == 0 {
					pos = 1
				}
				msg.Reply <- l.applyPick(msg.PlayerID, pos, true)

			case Abandon:
				if l.d == nil {
					break
				}
				l.d.Stage = draft.StageComplete
				l.persist()
				l.version++
				for id := range l.clients {
					l.send(id, Update{Version: l.version, Finished: true})
				}

			case GetState:
				v := View{Version: l.version, NumClients: len(l.clients)}
				if l.d != nil {
					v.Stage = l.d.Stage
					for _, s := range l.d.PendingSeats() {
						v.Pending = append(v.Pending, s.PlayerID)
					}
				}
				msg.Reply <- v

			case Shutdown:
				l.shutdown()
				return
			}
		}
	}
}

func (l *Lobby) startDraft(msg StartDraft) error {
	if l.d != nil && l.d.Stage != draft.StageRegistration {
		return draft.ErrAlreadyStarted
	}
	players := make([]string, 0, len(l.clients))
	for id := range l.clients {
		players = append(players, id)
	}
	d := draft.New(players, msg.Cards)
	seats, err := d.Start(msg.Rounds, msg.CardsPerPack)
	if err != nil {
		return err
	}
	l.d = d
	l.persist()
	l.version++
	l.log.Info("draft started",
		zap.Int("players", len(players)),
		zap.Int("rounds", msg.Rounds),
		zap.Int("cards_per_pack", msg.CardsPerPack))
	for _, s := range seats {
		l.send(s.PlayerID, l.seatUpdate(s, nil, nil))
	}
	return nil
}

func (l *Lobby) applyPick(playerID string, position int, forced bool) error {
	if l.d == nil {
		return draft.ErrNotStarted
	}
	out, err := l.d.Pick(playerID, position)
	if err != nil {
		return err
	}
	if forced {
		if s, serr := l.d.SeatByID(playerID); serr == nil {
			s.Skips++
			l.log.Info("forced pick", zap.String("player", playerID), zap.Int("skips", s.Skips))
		}
	}
	l.persist()
	l.version++
	l.notify(playerID, out)
	return nil
}

// notify fans the outcome out: every seat named in the outcome gets a fresh
// update, and the acting seat always hears back even when it is just waiting.
func (l *Lobby) notify(playerID string, out draft.PickOutcome) {
	notified := make(map[string]bool, len(out.Updates))
	for id, autopicks := range out.Updates {
		s, err := l.d.SeatByID(id)
		if err != nil {
			continue
		}
		l.send(id, l.seatUpdate(s, autopicks, out.Effects))
		notified[id] = true
	}
	if !notified[playerID] {
		if s, err := l.d.SeatByID(playerID); err == nil {
			l.send(playerID, l.seatUpdate(s, nil, out.Effects))
			notified[playerID] = true
		}
	}
	if l.d.IsDraftFinished() {
		l.log.Info("draft finished")
		for id := range l.clients {
			if notified[id] {
				continue
			}
			if s, err := l.d.SeatByID(id); err == nil {
				l.send(id, l.seatUpdate(s, nil, nil))
			}
		}
	}
}

func (l *Lobby) seatUpdate(s *draft.Seat, autopicks []string, effects []draft.Effect) Update {
	u := Update{
		Version:   l.version,
		Deck:      s.Deck,
		FaceUp:    s.FaceUp,
		Autopicks: autopicks,
		Effects:   effects,
		Finished:  l.d.IsDraftFinished(),
	}
	if s.CurrentPack != nil {
		u.Pack = append([]string(nil), s.CurrentPack.Cards...)
		u.Round = s.CurrentPack.Round
		u.PickNum = s.CurrentPack.PickNumber
	} else {
		for _, p := range l.d.PendingSeats() {
			u.Waiting = append(u.Waiting, p.PlayerID)
		}
	}
	return u
}

func (l *Lobby) persist() {
	if l.st == nil || l.d == nil {
		return
	}
	data, err := codec.Encode(l.d)
	if err != nil {
		l.log.Error("encode draft", zap.Error(err))
		return
	}
	if err := l.st.Save(l.ctx, l.code, data, time.Now().Add(store.DefaultExpiry)); err != nil {
		l.log.Error("save draft", zap.Error(err))
	}
}

func (l *Lobby) send(playerID string, u Update) {
	ch, ok := l.clients[playerID]
	if !ok {
		return
	}
	select {
	case ch <- u:
	default:
		// Client is slow/full - drop them.
		close(ch)
		delete(l.clients, playerID)
	}
}

func (l *Lobby) shutdown() {
	for id, ch := range l.clients {
		close(ch)
		delete(l.clients, id)
	}
	l.cancel()
}
