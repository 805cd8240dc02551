package inmem

import (
	"context"
	"sync"
	"testing"

	"github.com/nikgolev/TicketGate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex_Insert_Duplicate(t *testing.T) {
	idx := NewIndex()
	ctx := context.Background()

	require.NoError(t, idx.Insert(ctx, "u1", "e1", "b1"))

	err := idx.Insert(ctx, "u1", "e1", "b2")
	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)
	assert.True(t, idx.Has("u1", "e1"))
}

func TestIndex_PairsAreIndependent(t *testing.T) {
	idx := NewIndex()
	ctx := context.Background()

	require.NoError(t, idx.Insert(ctx, "u1", "e1", "b1"))
	require.NoError(t, idx.Insert(ctx, "u1", "e2", "b2"))
	require.NoError(t, idx.Insert(ctx, "u2", "e1", "b3"))
}

func TestIndex_RemoveAbsentIsNoop(t *testing.T) {
	idx := NewIndex()

	assert.NoError(t, idx.Remove(context.Background(), "u1", "e1"))
}

func TestIndex_RemoveFreesPair(t *testing.T) {
	idx := NewIndex()
	ctx := context.Background()

	require.NoError(t, idx.Insert(ctx, "u1", "e1", "b1"))
	require.NoError(t, idx.Remove(ctx, "u1", "e1"))
	assert.False(t, idx.Has("u1", "e1"))
	require.NoError(t, idx.Insert(ctx, "u1", "e1", "b2"))
}

func TestIndex_ConcurrentInsert_SingleWinner(t *testing.T) {
	idx := NewIndex()

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := idx.Insert(context.Background(), "u1", "e1", "b"); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
}
