package repos

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/onetool/server/internal/types"
)

func seedQnaBoard(t *testing.T, db *gorm.DB, memberID uuid.UUID, title string, createdAt time.Time) *types.QnaBoard {
	t.Helper()
	board := &types.QnaBoard{
		MemberID:  memberID,
		Title:     title,
		Content:   "content",
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if err := db.Create(board).Error; err != nil {
		t.Fatalf("failed to seed qna post: %v", err)
	}
	return board
}

func TestQnaBoardRepo_GetAllOrderedByCreatedAt(t *testing.T) {
	db := setupTestDB(t)
	repo := NewQnaBoardRepo(db, testLogger())
	ctx := context.Background()

	member := seedMember(t, db, "writer@onetool.example")
	base := time.Now().Add(-2 * time.Hour)
	seedQnaBoard(t, db, member.ID, "first", base)
	seedQnaBoard(t, db, member.ID, "second", base.Add(time.Hour))

	boards, err := repo.GetAllOrderedByCreatedAt(ctx, nil)
	require.NoError(t, err)
	require.Len(t, boards, 2)
	assert.Equal(t, "second", boards[0].Title)
	assert.Equal(t, "first", boards[1].Title)
	require.NotNil(t, boards[0].Member, "author comes preloaded")
	assert.Equal(t, member.Email, boards[0].Member.Email)
}

func TestQnaBoardRepo_GetByIDWithReplies(t *testing.T) {
	db := setupTestDB(t)
	repo := NewQnaBoardRepo(db, testLogger())
	ctx := context.Background()

	author := seedMember(t, db, "author@onetool.example")
	replier := seedMember(t, db, "replier@onetool.example")
	board := seedQnaBoard(t, db, author.ID, "with replies", time.Now())
	reply := &types.QnaReply{QnaBoardID: board.ID, MemberID: replier.ID, Content: "answered"}
	require.NoError(t, db.Create(reply).Error)

	loaded, err := repo.GetByIDWithReplies(ctx, nil, board.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Member)
	assert.Equal(t, author.Email, loaded.Member.Email)
	require.Len(t, loaded.Replies, 1)
	require.NotNil(t, loaded.Replies[0].Member)
	assert.Equal(t, replier.Email, loaded.Replies[0].Member.Email)
}

func TestQnaBoardRepo_IncrementViews(t *testing.T) {
	db := setupTestDB(t)
	repo := NewQnaBoardRepo(db, testLogger())
	ctx := context.Background()

	member := seedMember(t, db, "writer@onetool.example")
	board := seedQnaBoard(t, db, member.ID, "counted", time.Now())

	require.NoError(t, repo.IncrementViews(ctx, nil, board.ID, 3))

	loaded, err := repo.GetByIDWithReplies(ctx, nil, board.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), loaded.Views)
}

func TestQnaBoardRepo_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewQnaBoardRepo(db, testLogger())
	ctx := context.Background()

	member := seedMember(t, db, "writer@onetool.example")
	board := seedQnaBoard(t, db, member.ID, "doomed", time.Now())

	require.NoError(t, repo.Delete(ctx, nil, board))

	_, err := repo.GetByIDWithReplies(ctx, nil, board.ID)
	assert.True(t, IsNotFound(err))
}
