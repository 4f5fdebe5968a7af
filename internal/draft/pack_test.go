package draft

import (
	"reflect"
	"testing"
)

func TestPackPickByPosition(t *testing.T) {
	cases := []struct {
		name      string
		cards     []string
		position  int
		wantCard  string
		wantOK    bool
		wantCards []string
	}{
		{name: "first card", cards: []string{"a", "b", "c"}, position: 1, wantCard: "a", wantOK: true, wantCards: []string{"b", "c"}},
		{name: "middle card", cards: []string{"a", "b", "c"}, position: 2, wantCard: "b", wantOK: true, wantCards: []string{"a", "c"}},
		{name: "last card", cards: []string{"a", "b", "c"}, position: 3, wantCard: "c", wantOK: true, wantCards: []string{"a", "b"}},
		{name: "position beyond size", cards: []string{"a"}, position: 3, wantOK: false, wantCards: []string{"a"}},
		{name: "position zero", cards: []string{"a", "b"}, position: 0, wantOK: false, wantCards: []string{"a", "b"}},
		{name: "negative position", cards: []string{"a", "b"}, position: -1, wantOK: false, wantCards: []string{"a", "b"}},
		{name: "empty pack", cards: []string{}, position: 1, wantOK: false, wantCards: []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPack(tc.cards, 1)
			card, ok := p.PickByPosition(tc.position)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if card != tc.wantCard {
				t.Fatalf("card = %q, want %q", card, tc.wantCard)
			}
			if !reflect.DeepEqual(p.Cards, tc.wantCards) {
				t.Fatalf("cards = %v, want %v", p.Cards, tc.wantCards)
			}
		})
	}
}

func TestPackRoundAndPickNumber(t *testing.T) {
	p := NewPack([]string{"a", "b", "c"}, 2)
	if p.Round != 2 {
		t.Fatalf("round = %d, want 2", p.Round)
	}
	if p.PickNumber != 1 {
		t.Fatalf("pick number = %d, want 1", p.PickNumber)
	}
}

func TestPackIsEmpty(t *testing.T) {
	if !NewPack(nil, 1).IsEmpty() {
		t.Fatal("expected empty pack")
	}
	p := NewPack([]string{"a"}, 1)
	if p.IsEmpty() {
		t.Fatal("expected non-empty pack")
	}
	if p.Size() != 1 {
		t.Fatalf("size = %d, want 1", p.Size())
	}
}
