package game

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerCreatesTablesOnDemand(t *testing.T) {
	m := NewManager(func() *Table { return NewTable(1000) })

	assert.True(t, m.Open("a"))
	assert.False(t, m.Open("a"))
	assert.Equal(t, 1, m.Len())

	err := m.With("missing", func(*Table) error { return nil })
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestManagerSerializesSession(t *testing.T) {
	m := NewManager(func() *Table { return NewTable(1000) })

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.Do("chat", func(tbl *Table) error {
				_, err := tbl.PlaceBet(1)
				return err
			})
		}()
	}
	wg.Wait()

	err := m.With("chat", func(tbl *Table) error {
		assert.Equal(t, 950, tbl.Bankroll())
		return nil
	})
	require.NoError(t, err)
}

func TestManagerKeepsSessionsApart(t *testing.T) {
	m := NewManager(func() *Table { return NewTable(1000) })

	require.NoError(t, m.Do("a", func(tbl *Table) error {
		_, err := tbl.PlaceBet(300)
		return err
	}))
	m.Set("b", NewTable(50))

	require.NoError(t, m.With("b", func(tbl *Table) error {
		assert.Equal(t, 50, tbl.Bankroll())
		return nil
	}))

	assert.True(t, m.Delete("a"))
	assert.False(t, m.Delete("a"))
	assert.Equal(t, 1, m.Len())
}
