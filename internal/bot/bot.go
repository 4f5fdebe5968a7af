// Package bot implements the heuristic autodrafter used for idle or empty
// seats. It only consumes the public pick surface: given a deck and the
// visible pack it answers with a 1-based position, exactly like a human
// player would.
package bot

import "context"

// Card is the slice of card metadata the heuristic cares about.
type Card struct {
	Name   string
	Colors []string
}

// CardInfo resolves card metadata. Implemented by the card-fetch service;
// stubbed in tests.
type CardInfo interface {
	Card(ctx context.Context, name string) (Card, error)
}

var wubrg = []string{"W", "U", "B", "R", "G"}

// Picker forces a colour: it weights every card in the pack by how often its
// colours already appear in the deck and takes the heaviest. Not the
// smartest, but it does the job.
type Picker struct {
	Info CardInfo
}

// Position returns the 1-based position to pick from pack. Any metadata
// failure degrades to position 1, which is always valid for a non-empty pack.
func (p *Picker) Position(ctx context.Context, deck, pack []string) int {
	if len(pack) == 0 {
		return 1
	}
	if p.Info == nil {
		return 1
	}

	counts := make(map[string]int, len(wubrg))
	for _, name := range deck {
		card, err := p.Info.Card(ctx, name)
		if err != nil {
			return 1
		}
		for _, c := range card.Colors {
			counts[c]++
		}
	}

	best, bestWeight := 1, -1
	for i, name := range pack {
		card, err := p.Info.Card(ctx, name)
		if err != nil {
			return 1
		}
		w := 0
		for _, c := range card.Colors {
			w += counts[c]
		}
		if w > bestWeight {
			best, bestWeight = i+1, w
		}
	}
	return best
}
