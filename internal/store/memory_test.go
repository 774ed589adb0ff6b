package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/robalobadob/scramble/internal/game"
	"github.com/robalobadob/scramble/internal/spell"
)

var acceptAll = spell.CheckerFunc(func(string, language.Tag) bool { return true })

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	r := game.NewRound(acceptAll)
	r.StartWith("silkworm")
	require.NoError(t, st.Save(ctx, r))

	var res game.Result
	require.NoError(t, st.Update(ctx, r.ID, func(r *game.Round) error {
		res = r.Submit("worm")
		return nil
	}))
	assert.True(t, res.OK())

	var used []string
	require.NoError(t, st.View(ctx, r.ID, func(r *game.Round) error {
		used = r.Used()
		return nil
	}))
	assert.Equal(t, []string{"worm"}, used)

	assert.ErrorIs(t, st.Update(ctx, "missing", func(*game.Round) error { return nil }), ErrNotFound)
	assert.ErrorIs(t, st.View(ctx, "missing", func(*game.Round) error { return nil }), ErrNotFound)

	boom := errors.New("boom")
	assert.ErrorIs(t, st.Update(ctx, r.ID, func(*game.Round) error { return boom }), boom)
}

func TestMemoryStoreCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	st := NewMemoryStore()
	r := game.NewRound(acceptAll)
	assert.ErrorIs(t, st.Save(ctx, r), context.Canceled)
}

func TestMemoryStoreSerializesSubmissions(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	r := game.NewRound(acceptAll)
	r.StartWith("silkworm")
	require.NoError(t, st.Save(ctx, r))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = st.Update(ctx, r.ID, func(r *game.Round) error {
				if r.Submit("silk").OK() {
					mu.Lock()
					accepted++
					mu.Unlock()
				}
				return nil
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, accepted)
}
