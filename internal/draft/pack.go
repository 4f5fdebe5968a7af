package draft

// Pack is an opened booster: an ordered list of card names plus the round it
// was opened in. PickNumber is bumped every time the pack changes hands and is
// only used for "Pack N, Pick M" displays.
type Pack struct {
	Cards      []string
	Round      int
	PickNumber int
}

func NewPack(cards []string, round int) *Pack {
	return &Pack{Cards: cards, Round: round, PickNumber: 1}
}

// PickByPosition removes and returns the card at a 1-indexed position.
// Positions outside [1, Size()] leave the pack untouched.
func (p *Pack) PickByPosition(position int) (string, bool) {
	if position < 1 || position > len(p.Cards) {
		return "", false
	}
	card := p.Cards[position-1]
	p.Cards = append(p.Cards[:position-1], p.Cards[position:]...)
	return card, true
}

func (p *Pack) IsEmpty() bool {
	return len(p.Cards) == 0
}

func (p *Pack) Size() int {
	return len(p.Cards)
}
