package draft

import "testing"

func TestSeatPushPackWithNoCurrent(t *testing.T) {
	s := NewSeat("p1", 0)
	p := NewPack([]string{"a", "b", "c"}, 1)
	if !s.PushPack(p, false) {
		t.Fatal("expected push to report now-holding")
	}
	if s.CurrentPack != p {
		t.Fatal("pack should be the current pack")
	}
	if s.HasQueuedPacks() {
		t.Fatal("queue should be empty")
	}
}

func TestSeatPushPackWithCurrent(t *testing.T) {
	s := NewSeat("p1", 0)
	first := NewPack([]string{"a"}, 1)
	second := NewPack([]string{"b"}, 1)
	s.PushPack(first, false)
	if s.PushPack(second, false) {
		t.Fatal("expected push to report queued")
	}
	if s.CurrentPack != first {
		t.Fatal("current pack must not change")
	}
	if !s.HasQueuedPacks() {
		t.Fatal("second pack should be queued")
	}
}

func TestSeatPushPackFrontOfQueue(t *testing.T) {
	s := NewSeat("p1", 0)
	s.PushPack(NewPack([]string{"a"}, 1), false)
	s.PushPack(NewPack([]string{"b"}, 1), false)
	priority := NewPack([]string{"c"}, 1)
	s.PushPack(priority, true)
	if s.Queue[0] != priority {
		t.Fatal("front push should land at the head of the queue")
	}
}

func TestSeatPickWithNoCurrentPack(t *testing.T) {
	s := NewSeat("p1", 0)
	if s.Pick(1) != nil {
		t.Fatal("pick without a pack must return nil")
	}
}

func TestSeatPickWrongPosition(t *testing.T) {
	s := NewSeat("p1", 0)
	p := NewPack([]string{"a", "b", "c"}, 1)
	s.PushPack(p, false)
	if s.Pick(7) != nil {
		t.Fatal("pick at a bad position must return nil")
	}
	if s.CurrentPack != p {
		t.Fatal("failed pick must not detach the pack")
	}
	if len(s.Deck) != 0 {
		t.Fatal("failed pick must not grow the deck")
	}
}

func TestSeatPickDetachesPack(t *testing.T) {
	s := NewSeat("p1", 0)
	p := NewPack([]string{"a", "b", "c"}, 1)
	s.PushPack(p, false)
	got := s.Pick(1)
	if got != p {
		t.Fatal("pick must return the picked-from pack")
	}
	if s.HasCurrentPack() {
		t.Fatal("seat must not hold the pack after picking with an empty queue")
	}
	if len(s.Deck) != 1 || s.Deck[0] != "a" {
		t.Fatalf("deck = %v, want [a]", s.Deck)
	}
	if got.Size() != 2 {
		t.Fatalf("returned pack size = %d, want 2", got.Size())
	}
}

func TestSeatPickPromotesQueuedPack(t *testing.T) {
	s := NewSeat("p1", 0)
	first := NewPack([]string{"a", "b"}, 1)
	second := NewPack([]string{"c", "d"}, 2)
	s.PushPack(first, false)
	s.PushPack(second, false)
	if s.Pick(1) != first {
		t.Fatal("expected the first pack back")
	}
	if s.CurrentPack != second {
		t.Fatal("queued pack should be promoted")
	}
}

func TestSeatAutopickTakesFirstCard(t *testing.T) {
	s := NewSeat("p1", 0)
	s.PushPack(NewPack([]string{"a", "b"}, 1), false)
	if s.Autopick() == nil {
		t.Fatal("autopick should succeed")
	}
	if s.LastPick() != "a" {
		t.Fatalf("last pick = %q, want a", s.LastPick())
	}
}

func TestSeatHasOneCardInCurrentPack(t *testing.T) {
	s := NewSeat("p1", 0)
	if s.HasOneCardInCurrentPack() {
		t.Fatal("no pack, no single card")
	}
	s.PushPack(NewPack([]string{"a", "b"}, 1), false)
	if s.HasOneCardInCurrentPack() {
		t.Fatal("two cards is not one")
	}
	s.Pick(1)
	s.PushPack(NewPack([]string{"x"}, 1), false)
	if !s.HasOneCardInCurrentPack() {
		t.Fatal("expected a one-card pack")
	}
}
