package player

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkt-kyiv/Robot-dealer-for-card-games/internal/database"
	"github.com/nkt-kyiv/Robot-dealer-for-card-games/internal/game"
)

// Runs against a live server only: TEST_DATABASE_URL=postgres://... go test ./internal/player
func newPostgresRepo(t *testing.T) *PostgresRepository {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	pool, err := database.NewPostgres(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return NewPostgresRepository(pool.Pool)
}

func TestPostgresRepository(t *testing.T) {
	ctx := context.Background()
	repo := newPostgresRepo(t)

	chatID := int64(uuid.New().ID())

	p, err := repo.GetOrCreate(ctx, chatID, 100)
	require.NoError(t, err)
	assert.Equal(t, &Player{ChatID: chatID, LastBet: 100}, p)

	p.Record([]game.HandResult{{Result: game.ResultPlayerWin}})
	require.NoError(t, repo.Save(ctx, p))

	again, err := repo.GetOrCreate(ctx, chatID, 100)
	require.NoError(t, err)
	assert.Equal(t, p, again)

	id := uuid.NewString()
	require.NoError(t, repo.RecordRound(ctx, Round{ID: id, ChatID: chatID, Bet: 100, Payout: 200, Outcome: "Player wins!"}))
	assert.Error(t, repo.RecordRound(ctx, Round{ID: id, ChatID: chatID, Bet: 100, Outcome: "Dealer wins!"}))

	rounds, err := repo.History(ctx, chatID, 5)
	require.NoError(t, err)
	require.Len(t, rounds, 1)
	assert.Equal(t, id, rounds[0].ID)
	assert.Equal(t, 200, rounds[0].Payout)
}
