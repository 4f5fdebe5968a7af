// Package draft implements the state machine of a booster draft: pack
// composition and passing, per-seat queues, pick and autopick resolution, and
// special card effects. Everything here is synchronous, in-memory mutation;
// callers must serialize Start/Pick per Draft instance.
package draft

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	ErrNotEnoughCards = errors.New("not enough cards to start the draft")
	ErrUnknownPlayer  = errors.New("unknown player")
	ErrNotStarted     = errors.New("draft has not started")
	ErrAlreadyStarted = errors.New("draft already started")
	ErrInvalidPick    = errors.New("no card at that position")
)

type Stage string

const (
	StageRegistration Stage = "registration"
	StageInProgress   Stage = "in_progress"
	StageComplete     Stage = "complete"
)

// PickOutcome describes what a pick changed. Updates maps player id to the
// cards autopicked on that seat's behalf during resolution (possibly none);
// every key is a seat the caller should refresh. Effects lists special-card
// triggers in the order they fired.
type PickOutcome struct {
	Updates map[string][]string
	Effects []Effect
}

// Draft orchestrates the seats and the shared card pool.
//
// Players is the seating order, fixed by the shuffle in Start. Pool is the
// undealt supply; packs are dealt from its tail. Metadata is an opaque
// extension area owned by the presentation layer and round-tripped verbatim
// by the codec.
type Draft struct {
	Players      []string
	Pool         []string
	Seats        []*Seat
	OpenedRounds int
	RoundsTotal  int
	CardsPerPack int
	Stage        Stage
	SpareCards   int
	Metadata     map[string]any
}

func New(players, pool []string) *Draft {
	return &Draft{
		Players:  append([]string(nil), players...),
		Pool:     append([]string(nil), pool...),
		Stage:    StageRegistration,
		Metadata: make(map[string]any),
	}
}

// Start validates the card supply, shuffles seating and pool, deals round one
// and resolves any immediate one-card autopicks. It returns every seat, since
// every seat needs an initial notification.
func (d *Draft) Start(roundsTotal, cardsPerPack int) ([]*Seat, error) {
	if d.Stage != StageRegistration {
		return nil, ErrAlreadyStarted
	}
	used := roundsTotal * cardsPerPack * len(d.Players)
	if used > len(d.Pool) {
		return nil, fmt.Errorf("%w: %d cards for %d players with %d packs of %d",
			ErrNotEnoughCards, len(d.Pool), len(d.Players), roundsTotal, cardsPerPack)
	}
	d.SpareCards = len(d.Pool) - used
	d.RoundsTotal = roundsTotal
	d.CardsPerPack = cardsPerPack

	rand.Shuffle(len(d.Players), func(i, j int) {
		d.Players[i], d.Players[j] = d.Players[j], d.Players[i]
	})
	rand.Shuffle(len(d.Pool), func(i, j int) {
		d.Pool[i], d.Pool[j] = d.Pool[j], d.Pool[i]
	})

	d.Seats = make([]*Seat, len(d.Players))
	for i, p := range d.Players {
		d.Seats[i] = NewSeat(p, i)
	}
	d.Stage = StageInProgress
	d.openRoundForAll()
	d.resolveSingles()
	return d.Seats, nil
}

// Pick applies one pick for the given player. Bad positions return
// ErrInvalidPick with no side effects; an unknown player id is a caller bug
// and returns ErrUnknownPlayer.
func (d *Draft) Pick(playerID string, position int) (PickOutcome, error) {
	if d.Stage == StageRegistration {
		return PickOutcome{}, ErrNotStarted
	}
	seat, err := d.SeatByID(playerID)
	if err != nil {
		return PickOutcome{}, err
	}
	pack := seat.Pick(position)
	if pack == nil {
		return PickOutcome{}, ErrInvalidPick
	}

	var effects []Effect
	if eff, ok := d.applyEffect(seat, pack); ok {
		effects = append(effects, eff)
	}

	// An emptied pack is done and never re-enters a queue. Otherwise it is
	// passed along, direction by round parity.
	var notify []*Seat
	if !pack.IsEmpty() {
		next := d.NextSeat(seat, pack)
		pack.PickNumber++
		if next.PushPack(pack, false) {
			notify = append(notify, next)
		}
	}
	if seat.HasCurrentPack() && !containsSeat(notify, seat) {
		notify = append(notify, seat)
	}

	updates := make(map[string][]string)
	openedRound := false
	for _, s := range notify {
		updates[s.PlayerID] = []string{}
		if s.HasOneCardInCurrentPack() {
			opened, eff, ok := d.autopick(s)
			if ok {
				effects = append(effects, eff)
			}
			if opened {
				openedRound = true
			}
			updates[s.PlayerID] = append(updates[s.PlayerID], s.LastPick())
		}
	}
	// A fresh round means everyone got a pack, not just the notify set.
	if openedRound {
		for _, s := range d.Seats {
			if _, ok := updates[s.PlayerID]; !ok {
				updates[s.PlayerID] = []string{}
			}
		}
	}
	if d.IsDraftFinished() {
		d.Stage = StageComplete
	}
	return PickOutcome{Updates: updates, Effects: effects}, nil
}

// autopick takes the last card of s's current pack and resolves its effect.
// When that drains the final held pack of the round and more rounds remain,
// the next round is opened for everyone and opened reports true.
func (d *Draft) autopick(s *Seat) (opened bool, eff Effect, ok bool) {
	if !s.HasOneCardInCurrentPack() {
		return false, Effect{}, false
	}
	pack := s.Autopick()
	if pack == nil {
		return false, Effect{}, false
	}
	eff, ok = d.applyEffect(s, pack)
	if d.IsPackFinished() && !d.IsDraftFinished() {
		d.openRoundForAll()
		opened = true
	}
	return opened, eff, ok
}

// resolveSingles keeps autopicking while any seat holds a one-card pack, so a
// draft dealt with cards_per_pack == 1 resolves without explicit picks.
func (d *Draft) resolveSingles() {
	for {
		progressed := false
		for _, s := range d.Seats {
			if s.HasOneCardInCurrentPack() {
				d.autopick(s)
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}
	if d.IsDraftFinished() {
		d.Stage = StageComplete
	}
}

// openBooster deals CardsPerPack cards off the tail of the pool into a new
// pack and pushes it to the front of the seat's queue, so round packs and
// effect-granted packs pre-empt anything already waiting.
func (d *Draft) openBooster(s *Seat, round int) *Pack {
	cards := make([]string, 0, d.CardsPerPack)
	for i := 0; i < d.CardsPerPack; i++ {
		n := len(d.Pool) - 1
		cards = append(cards, d.Pool[n])
		d.Pool = d.Pool[:n]
	}
	p := NewPack(cards, round)
	s.PushPack(p, true)
	return p
}

func (d *Draft) openRoundForAll() {
	d.OpenedRounds++
	for _, s := range d.Seats {
		d.openBooster(s, d.OpenedRounds)
	}
}

// NextSeat computes the pass target: odd rounds go left (ascending seat
// index), even rounds go right.
func (d *Draft) NextSeat(s *Seat, pack *Pack) *Seat {
	n := len(d.Seats)
	if pack.Round%2 == 1 {
		return d.Seats[(s.Index+1)%n]
	}
	return d.Seats[(s.Index-1+n)%n]
}

func (d *Draft) SeatByID(playerID string) (*Seat, error) {
	for _, s := range d.Seats {
		if s.PlayerID == playerID {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, playerID)
}

// PackOf returns the pack the player may currently pick from, or nil.
func (d *Draft) PackOf(playerID string) *Pack {
	s, err := d.SeatByID(playerID)
	if err != nil {
		return nil
	}
	return s.CurrentPack
}

// DeckOf returns the player's picks so far, in pick order.
func (d *Draft) DeckOf(playerID string) []string {
	s, err := d.SeatByID(playerID)
	if err != nil {
		return nil
	}
	return s.Deck
}

// PendingSeats lists the seats still holding a pack.
func (d *Draft) PendingSeats() []*Seat {
	var pending []*Seat
	for _, s := range d.Seats {
		if s.HasCurrentPack() {
			pending = append(pending, s)
		}
	}
	return pending
}

func (d *Draft) IsPackFinished() bool {
	return len(d.PendingSeats()) == 0
}

func (d *Draft) IsDraftFinished() bool {
	return (d.IsPackFinished() && d.OpenedRounds >= d.RoundsTotal) || d.Stage == StageComplete
}

func containsSeat(seats []*Seat, target *Seat) bool {
	for _, s := range seats {
		if s == target {
			return true
		}
	}
	return false
}
