// Package codec serializes a Draft to a structured JSON snapshot and back.
// The snapshot captures the full object graph, so a decoded draft behaves
// identically to the original under the same sequence of picks.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cubedrafter/draft-backend/internal/draft"
)

// ErrMalformed marks snapshot data that cannot be decoded. Callers should
// treat the draft as unrecoverable and not resume it.
var ErrMalformed = errors.New("malformed draft snapshot")

type packState struct {
	Cards      []string `json:"cards"`
	Round      int      `json:"round"`
	PickNumber int      `json:"pick_number"`
}

type seatState struct {
	PlayerID    string     `json:"player_id"`
	Seat        int        `json:"seat"`
	CurrentPack *packState `json:"current_pack,omitempty"`
	Queue       []packState `json:"queue"`
	Deck        []string   `json:"deck"`
	FaceUp      []string   `json:"face_up"`
	Skips       int        `json:"skips"`
}

type draftState struct {
	Players      []string       `json:"players"`
	Pool         []string       `json:"cards"`
	Seats        []seatState    `json:"state"`
	OpenedRounds int            `json:"opened_packs"`
	RoundsTotal  int            `json:"number_of_packs"`
	CardsPerPack int            `json:"cards_per_booster"`
	Stage        string         `json:"stage"`
	SpareCards   int            `json:"spare_cards"`
	Metadata     map[string]any `json:"metadata"`
}

func Encode(d *draft.Draft) ([]byte, error) {
	st := draftState{
		Players:      d.Players,
		Pool:         d.Pool,
		Seats:        make([]seatState, len(d.Seats)),
		OpenedRounds: d.OpenedRounds,
		RoundsTotal:  d.RoundsTotal,
		CardsPerPack: d.CardsPerPack,
		Stage:        string(d.Stage),
		SpareCards:   d.SpareCards,
		Metadata:     d.Metadata,
	}
	for i, s := range d.Seats {
		ss := seatState{
			PlayerID: s.PlayerID,
			Seat:     s.Index,
			Deck:     s.Deck,
			FaceUp:   s.FaceUp,
			Skips:    s.Skips,
			Queue:    make([]packState, len(s.Queue)),
		}
		if s.CurrentPack != nil {
			ss.CurrentPack = encodePack(s.CurrentPack)
		}
		for j, p := range s.Queue {
			ss.Queue[j] = *encodePack(p)
		}
		st.Seats[i] = ss
	}
	return json.Marshal(st)
}

func Decode(data []byte) (*draft.Draft, error) {
	var st draftState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	switch draft.Stage(st.Stage) {
	case draft.StageRegistration, draft.StageInProgress, draft.StageComplete:
	default:
		return nil, fmt.Errorf("%w: unknown stage %q", ErrMalformed, st.Stage)
	}
	if len(st.Seats) != len(st.Players) && len(st.Seats) != 0 {
		return nil, fmt.Errorf("%w: %d seats for %d players", ErrMalformed, len(st.Seats), len(st.Players))
	}
	d := &draft.Draft{
		Players:      st.Players,
		Pool:         st.Pool,
		Seats:        make([]*draft.Seat, len(st.Seats)),
		OpenedRounds: st.OpenedRounds,
		RoundsTotal:  st.RoundsTotal,
		CardsPerPack: st.CardsPerPack,
		Stage:        draft.Stage(st.Stage),
		SpareCards:   st.SpareCards,
		Metadata:     st.Metadata,
	}
	if d.Metadata == nil {
		d.Metadata = make(map[string]any)
	}
	for i, ss := range st.Seats {
		seat := draft.NewSeat(ss.PlayerID, ss.Seat)
		seat.Deck = ss.Deck
		seat.FaceUp = ss.FaceUp
		seat.Skips = ss.Skips
		if ss.CurrentPack != nil {
			seat.CurrentPack = decodePack(*ss.CurrentPack)
		}
		for _, ps := range ss.Queue {
			seat.Queue = append(seat.Queue, decodePack(ps))
		}
		d.Seats[i] = seat
	}
	return d, nil
}

func encodePack(p *draft.Pack) *packState {
	return &packState{Cards: p.Cards, Round: p.Round, PickNumber: p.PickNumber}
}

func decodePack(ps packState) *draft.Pack {
	return &draft.Pack{Cards: ps.Cards, Round: ps.Round, PickNumber: ps.PickNumber}
}
