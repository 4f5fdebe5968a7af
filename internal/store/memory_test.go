package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemorySaveLoadDelete(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	_, err := m.Load(ctx, "ABC123")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.Save(ctx, "ABC123", []byte(`{"stage":"in_progress"}`), time.Now().Add(time.Hour)))
	got, err := m.Load(ctx, "ABC123")
	require.NoError(t, err)
	require.JSONEq(t, `{"stage":"in_progress"}`, string(got))

	require.NoError(t, m.Delete(ctx, "ABC123"))
	_, err = m.Load(ctx, "ABC123")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.Save(ctx, "OLD", []byte("{}"), time.Now().Add(-time.Minute)))
	_, err := m.Load(ctx, "OLD")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemorySaveCopiesSnapshot(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	buf := []byte(`{"a":1}`)
	require.NoError(t, m.Save(ctx, "X", buf, time.Time{}))
	buf[2] = 'z'
	got, err := m.Load(ctx, "X")
	require.NoError(t, err)
	require.JSONEq(t, `{"a":1}`, string(got))
}
