package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"langy/internal/repository"
	"langy/internal/testutil"
)

func TestPracticeLogRepository(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewGormPracticeLogRepository()
	ctx := context.Background()
	user := testutil.CreateUser(t, db)
	now := time.Now()

	testutil.CreatePracticeLog(t, db, user.UserID, now.Add(-10*24*time.Hour), 1, nil)
	testutil.CreatePracticeLog(t, db, user.UserID, now.Add(-2*24*time.Hour), 1, nil)
	testutil.CreatePracticeLog(t, db, user.UserID, now.Add(-time.Hour), 3, nil)

	recent, err := repo.ListRecent(ctx, db, user.UserID, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, 3, recent[0].WordsCount)

	since, err := repo.ListSince(ctx, db, user.UserID, now.Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.Len(t, since, 2)
}
