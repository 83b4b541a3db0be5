package repos

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onetool/server/internal/types"
)

func TestUserTokenRepo_UpsertReplaces(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserTokenRepo(db, testLogger())
	ctx := context.Background()

	member := seedMember(t, db, "token@onetool.example")

	first := &types.UserToken{MemberID: member.ID, RefreshToken: "token-one", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, repo.Upsert(ctx, nil, first))

	second := &types.UserToken{MemberID: member.ID, RefreshToken: "token-two", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, repo.Upsert(ctx, nil, second))

	stored, err := repo.GetByMemberID(ctx, nil, member.ID)
	require.NoError(t, err)
	assert.Equal(t, "token-two", stored.RefreshToken)

	_, err = repo.GetByRefreshToken(ctx, nil, "token-one")
	assert.True(t, IsNotFound(err), "replaced token is gone")

	var count int64
	require.NoError(t, db.Model(&types.UserToken{}).Where("member_id = ?", member.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count, "a member holds at most one refresh token")
}

func TestUserTokenRepo_DeleteByMemberID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserTokenRepo(db, testLogger())
	ctx := context.Background()

	member := seedMember(t, db, "token@onetool.example")
	token := &types.UserToken{MemberID: member.ID, RefreshToken: "active", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, repo.Upsert(ctx, nil, token))

	require.NoError(t, repo.DeleteByMemberID(ctx, nil, member.ID))

	_, err := repo.GetByMemberID(ctx, nil, member.ID)
	assert.True(t, IsNotFound(err))
}
