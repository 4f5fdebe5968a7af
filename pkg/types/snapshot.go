package types

// Persisted draft snapshot (see internal/codec):
//   players: string[] // seating order after the start shuffle
//   cards: string[] // undealt pool, dealt from the tail
//   state: Seat[] // player_id|seat|current_pack|queue|deck|face_up|skips
//   opened_packs: number
//   number_of_packs: number
//   cards_per_booster: number
//   stage: "registration" | "in_progress" | "complete"
//   spare_cards: number
//   metadata: { [key]: any } // presentation-layer bookkeeping, opaque here
