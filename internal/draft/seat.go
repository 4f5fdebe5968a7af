package draft

// Seat is one player's slice of the draft state. A seat owns at most one pack
// it can pick from right now, plus a FIFO queue of packs waiting behind it.
// Ownership of a Pack is exclusive: it is either held by exactly one seat or
// in flight inside Draft.Pick.
type Seat struct {
	PlayerID    string
	Index       int
	CurrentPack *Pack
	Queue       []*Pack
	Deck        []string
	FaceUp      []string
	Skips       int
}

func NewSeat(playerID string, index int) *Seat {
	return &Seat{PlayerID: playerID, Index: index}
}

// PushPack hands a pack to the seat. It reports true when the seat was empty
// and now holds the pack (the seat needs a fresh notification); otherwise the
// pack is queued, at the head when front is set.
func (s *Seat) PushPack(p *Pack, front bool) bool {
	if s.CurrentPack == nil {
		s.CurrentPack = p
		return true
	}
	if front {
		s.Queue = append([]*Pack{p}, s.Queue...)
	} else {
		s.Queue = append(s.Queue, p)
	}
	return false
}

// Pick removes the card at position from the current pack and appends it to
// the deck. The picked-from pack is detached from the seat and returned so the
// caller can route it; the next queued pack, if any, is promoted. A nil return
// means nothing happened: no current pack, or no card at that position.
func (s *Seat) Pick(position int) *Pack {
	if s.CurrentPack == nil {
		return nil
	}
	card, ok := s.CurrentPack.PickByPosition(position)
	if !ok {
		return nil
	}
	s.Deck = append(s.Deck, card)
	picked := s.CurrentPack
	s.CurrentPack = nil
	if len(s.Queue) > 0 {
		s.CurrentPack = s.Queue[0]
		s.Queue = s.Queue[1:]
	}
	return picked
}

// Autopick takes the first remaining card.
func (s *Seat) Autopick() *Pack {
	return s.Pick(1)
}

// LastPick returns the most recently drafted card. It panics on an empty deck;
// callers only use it right after a successful Pick.
func (s *Seat) LastPick() string {
	return s.Deck[len(s.Deck)-1]
}

func (s *Seat) HasCurrentPack() bool {
	return s.CurrentPack != nil
}

func (s *Seat) HasQueuedPacks() bool {
	return len(s.Queue) > 0
}

func (s *Seat) HasOneCardInCurrentPack() bool {
	return s.CurrentPack != nil && s.CurrentPack.Size() == 1
}
