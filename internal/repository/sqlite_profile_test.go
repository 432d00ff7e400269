package repository

import (
	"context"
	"testing"

	"github.com/quietharbor/haven/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepo_Get_SeededDefault(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)
	ctx := context.Background()

	p, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "default", p.ID)
	assert.InDelta(t, 50.0, p.ProgressScore, 1e-9)
	assert.Zero(t, p.CopingSkillCount)
	assert.Empty(t, p.TraumaTriggers)
}

func TestProfileRepo_Upsert_RoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)
	ctx := context.Background()

	p, err := repo.Get(ctx)
	require.NoError(t, err)

	p.ProgressScore = 62.5
	p.CopingSkillCount = 3
	p.TraumaTriggers = []string{"loud noises", "crowds"}
	require.NoError(t, repo.Upsert(ctx, p))

	fetched, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 62.5, fetched.ProgressScore, 1e-9)
	assert.Equal(t, 3, fetched.CopingSkillCount)
	assert.Equal(t, []string{"loud noises", "crowds"}, fetched.TraumaTriggers)
}

func TestProfileRepo_Upsert_Idempotent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)
	ctx := context.Background()

	p, err := repo.Get(ctx)
	require.NoError(t, err)
	p.CopingSkillCount = 1
	require.NoError(t, repo.Upsert(ctx, p))
	require.NoError(t, repo.Upsert(ctx, p))

	fetched, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, fetched.CopingSkillCount)
}
