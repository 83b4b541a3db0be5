package repos

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/onetool/server/internal/types"
)

func TestMemberRepo_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMemberRepo(db, testLogger())
	ctx := context.Background()

	created, err := repo.Create(ctx, nil, &types.Member{
		Email:    "new@onetool.example",
		Password: "hashed",
		Name:     "New Member",
		PhoneNum: "010-3333-4444",
		Role:     "ROLE_USER",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	byID, err := repo.GetByID(ctx, nil, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "new@onetool.example", byID.Email)

	byEmail, err := repo.GetByEmail(ctx, nil, "new@onetool.example")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byNamePhone, err := repo.GetByNameAndPhone(ctx, nil, "New Member", "010-3333-4444")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byNamePhone.ID)
}

func TestMemberRepo_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMemberRepo(db, testLogger())

	_, err := repo.GetByID(context.Background(), nil, uuid.New())
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestMemberRepo_EmailExists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMemberRepo(db, testLogger())
	ctx := context.Background()

	seedMember(t, db, "exists@onetool.example")

	exists, err := repo.EmailExists(ctx, nil, "exists@onetool.example")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.EmailExists(ctx, nil, "missing@onetool.example")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemberRepo_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMemberRepo(db, testLogger())
	ctx := context.Background()

	member := seedMember(t, db, "delete@onetool.example")

	require.NoError(t, repo.Delete(ctx, nil, member))

	_, err := repo.GetByID(ctx, nil, member.ID)
	assert.True(t, IsNotFound(err))
}

func TestMemberRepo_GetWithOrders(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMemberRepo(db, testLogger())
	ctx := context.Background()

	member := seedMember(t, db, "orders@onetool.example")
	bp := &types.Blueprint{Name: "bungalow", StandardPrice: 20000}
	require.NoError(t, db.Create(bp).Error)
	order := &types.Order{
		MemberID:   member.ID,
		TotalPrice: 20000,
		Items:      []types.OrderItem{{BlueprintID: bp.ID, Quantity: 1, UnitPrice: 20000}},
	}
	require.NoError(t, db.Create(order).Error)

	loaded, err := repo.GetWithOrders(ctx, nil, member.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Orders, 1)
	require.Len(t, loaded.Orders[0].Items, 1)
	require.NotNil(t, loaded.Orders[0].Items[0].Blueprint)
	assert.Equal(t, "bungalow", loaded.Orders[0].Items[0].Blueprint.Name)
}

// Driver failures must surface unclassified so services do not mistake an
// outage for a missing row.
func TestMemberRepo_DriverError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB, PreferSimpleProtocol: true}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	driverErr := errors.New("connection reset by peer")
	mock.ExpectQuery(`SELECT \* FROM "member"`).WillReturnError(driverErr)

	repo := NewMemberRepo(db, testLogger())
	_, err = repo.GetByEmail(context.Background(), nil, "any@onetool.example")
	require.Error(t, err)
	assert.ErrorIs(t, err, driverErr)
	assert.False(t, IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
