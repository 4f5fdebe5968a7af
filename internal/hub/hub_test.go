package hub

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/cubedrafter/draft-backend/internal/codec"
	"github.com/cubedrafter/draft-backend/internal/draft"
	"github.com/cubedrafter/draft-backend/internal/lobby"
	"github.com/cubedrafter/draft-backend/internal/store"
)

func TestHub_Create_Get_SamePointer(t *testing.T) {
	ctx := context.Background()
	h := NewHub(ctx, nil, zap.NewNop())
	reply := make(chan *lobby.Lobby, 1)

	h.Inbox() <- CreateLobby{Code: "ZED123", Reply: reply}
	lb1 := <-reply

	h.Inbox() <- GetLobby{Code: "ZED123", Reply: reply}
	lb2 := <-reply

	if lb1 == nil || lb2 == nil || lb1 != lb2 {
		t.Fatalf("expected same lobby pointer")
	}
}

func TestHub_GetUnknownLobbyIsNil(t *testing.T) {
	h := NewHub(context.Background(), nil, zap.NewNop())
	reply := make(chan *lobby.Lobby, 1)
	h.Inbox() <- GetLobby{Code: "NOPE42", Reply: reply}
	if lb := <-reply; lb != nil {
		t.Fatalf("expected nil lobby")
	}
}

func TestHub_ResumeFromSnapshot(t *testing.T) {
	st := store.NewMemory()

	d := draft.New([]string{"alice", "bob"}, []string{"a", "b", "c", "d", "e", "f"})
	if _, err := d.Start(1, 3); err != nil {
		t.Fatalf("start: %v", err)
	}
	data, err := codec.Encode(d)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := st.Save(context.Background(), "RES001", data, time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("save: %v", err)
	}

	h := NewHub(context.Background(), st, zap.NewNop())
	reply := make(chan *lobby.Lobby, 1)
	h.Inbox() <- ResumeLobby{Code: "RES001", Reply: reply}
	lb := <-reply
	if lb == nil {
		t.Fatalf("expected a resumed lobby")
	}

	view := make(chan lobby.View, 1)
	lb.Inbox() <- lobby.GetState{Reply: view}
	select {
	case v := <-view:
		if v.Stage != draft.StageInProgress {
			t.Fatalf("stage = %s, want in_progress", v.Stage)
		}
		if len(v.Pending) != 2 {
			t.Fatalf("pending = %v, want both seats", v.Pending)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for view")
	}
}

func TestHub_ResumeMissingSnapshotIsNil(t *testing.T) {
	h := NewHub(context.Background(), store.NewMemory(), zap.NewNop())
	reply := make(chan *lobby.Lobby, 1)
	h.Inbox() <- ResumeLobby{Code: "GHOST1", Reply: reply}
	if lb := <-reply; lb != nil {
		t.Fatalf("expected nil lobby for a missing snapshot")
	}
}

func TestHub_ResumeMalformedSnapshotIsNil(t *testing.T) {
	st := store.NewMemory()
	if err := st.Save(context.Background(), "BAD001", []byte("{broken"), time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("save: %v", err)
	}
	h := NewHub(context.Background(), st, zap.NewNop())
	reply := make(chan *lobby.Lobby, 1)
	h.Inbox() <- ResumeLobby{Code: "BAD001", Reply: reply}
	if lb := <-reply; lb != nil {
		t.Fatalf("malformed snapshots must not resume")
	}
}
