package types

// Client -> Server
// Start:
//   cube_id: string // cubecobra cube to draft
//   rounds: number
//   cards_per_pack: number
//
// Pick:
//   position: number // 1-based position in the current pack
//
// Abandon: {}

// Server -> Client
// SeatUpdate:
//   version: number
//   pack: string[] // cards in the pack the seat may pick from, if any
//   round: number
//   pick: number
//   deck: string[] // picks so far, in pick order
//   face_up: string[] // cards revealed by special effects
//   autopicks: string[] // cards taken on the seat's behalf this transition
//   effects: { player_id, card, kind }[]
//   waiting: string[] // players still holding a pack, when this seat holds none
//   finished: boolean
//
// Error:
//   error: string
