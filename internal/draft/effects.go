package draft

type EffectKind string

const (
	// EffectReveal: the card is drafted face up, nothing else happens here.
	EffectReveal EffectKind = "reveal"
	// EffectAddBooster: the card is drafted face up and an extra pack is
	// opened for the drafting seat, paid for out of the spare cards.
	EffectAddBooster EffectKind = "add_booster"
)

// Effect records a special-card trigger for the presentation layer.
type Effect struct {
	PlayerID string
	Card     string
	Kind     EffectKind
}

// triggerCards is the closed set of card names with draft-time behaviour.
// Everything else is resolved outside the draft, if at all.
var triggerCards = map[string]EffectKind{
	"Lore Seeker":         EffectAddBooster,
	"Cogwork Librarian":   EffectReveal,
	"Leovold's Operative": EffectReveal,
}

// applyEffect checks the just-picked card against the trigger table. Any
// trigger reveals the card; Lore Seeker additionally opens an extra pack for
// the seat when enough spare cards remain (when they don't, the reveal still
// happens but the effect downgrades to a plain reveal).
func (d *Draft) applyEffect(s *Seat, pack *Pack) (Effect, bool) {
	card := s.LastPick()
	kind, ok := triggerCards[card]
	if !ok {
		return Effect{}, false
	}
	if kind == EffectAddBooster {
		if d.SpareCards < d.CardsPerPack {
			kind = EffectReveal
		} else {
			d.SpareCards -= d.CardsPerPack
			d.openBooster(s, pack.Round)
		}
	}
	s.FaceUp = append(s.FaceUp, card)
	return Effect{PlayerID: s.PlayerID, Card: card, Kind: kind}, true
}
