package types

import "github.com/cubedrafter/draft-backend/internal/draft"

type ClientMessage struct {
	Type         string `json:"type"`
	Position     int    `json:"position,omitempty"`
	Rounds       int    `json:"rounds,omitempty"`
	CardsPerPack int    `json:"cards_per_pack,omitempty"`
	CubeID       string `json:"cube_id,omitempty"`
}

type ServerMessage struct {
	Type      string         `json:"type"` // "SeatUpdate" | "Error"
	Version   int            `json:"version,omitempty"`
	Pack      []string       `json:"pack,omitempty"`
	Round     int            `json:"round,omitempty"`
	Pick      int            `json:"pick,omitempty"`
	Deck      []string       `json:"deck,omitempty"`
	FaceUp    []string       `json:"face_up,omitempty"`
	Autopicks []string       `json:"autopicks,omitempty"`
	Effects   []draft.Effect `json:"effects,omitempty"`
	Waiting   []string       `json:"waiting,omitempty"`
	Finished  bool           `json:"finished,omitempty"`
	Error     string         `json:"error,omitempty"`
}
