package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onetool/server/internal/apierr"
	"github.com/onetool/server/internal/repos"
	"github.com/onetool/server/internal/requestdata"
	"github.com/onetool/server/internal/types"
)

func newOrderService(t *testing.T) (OrderService, *testDeps) {
	t.Helper()
	db := setupTestDB(t)
	log := testLogger()
	deps := &testDeps{
		db:            db,
		log:           log,
		memberRepo:    repos.NewMemberRepo(db, log),
		orderRepo:     repos.NewOrderRepo(db, log),
		blueprintRepo: repos.NewBlueprintRepo(db, log),
	}
	return NewOrderService(db, log, deps.memberRepo, deps.orderRepo, deps.blueprintRepo), deps
}

func callerFor(member *types.Member) *requestdata.RequestData {
	return &requestdata.RequestData{MemberID: member.ID, Email: member.Email}
}

func TestCreateOrders(t *testing.T) {
	svc, deps := newOrderService(t)
	ctx := context.Background()

	member := createTestMember(t, deps.db, "buyer@onetool.example", "pw")
	onSale := createTestBlueprint(t, deps.db, "cafe interior", 40000, 25000)
	fullPrice := createTestBlueprint(t, deps.db, "office layout", 60000, 0)

	msg, err := svc.CreateOrders(ctx, callerFor(member), &types.OrderRequest{
		Items: []types.OrderItemRequest{
			{BlueprintID: onSale.ID, Quantity: 2},
			{BlueprintID: fullPrice.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, OrderCreatedMessage, msg)

	orders, err := svc.GetOrders(ctx, callerFor(member))
	require.NoError(t, err)
	require.Len(t, orders, 1)
	// Sale price wins when set; zero sale price falls back to standard.
	assert.Equal(t, int64(25000*2+60000), orders[0].TotalPrice)
	require.Len(t, orders[0].Items, 2)
}

func TestCreateOrders_UnknownBlueprint(t *testing.T) {
	svc, deps := newOrderService(t)
	ctx := context.Background()

	member := createTestMember(t, deps.db, "buyer@onetool.example", "pw")

	_, err := svc.CreateOrders(ctx, callerFor(member), &types.OrderRequest{
		Items: []types.OrderItemRequest{{BlueprintID: uuid.New(), Quantity: 1}},
	})
	require.Error(t, err)
	assert.True(t, apierr.IsCode(err, apierr.CodeBlueprintNotFound))

	var count int64
	require.NoError(t, deps.db.Model(&types.Order{}).Count(&count).Error)
	assert.Zero(t, count, "failed order must not persist anything")
}

func TestCreateOrders_UnknownMember(t *testing.T) {
	svc, _ := newOrderService(t)

	caller := &requestdata.RequestData{MemberID: uuid.New(), Email: "ghost@onetool.example"}
	_, err := svc.CreateOrders(context.Background(), caller, &types.OrderRequest{
		Items: []types.OrderItemRequest{{BlueprintID: uuid.New(), Quantity: 1}},
	})
	require.Error(t, err)
	assert.True(t, apierr.IsCode(err, apierr.CodeNonExistUser))
}

func TestGetOrders_Empty(t *testing.T) {
	svc, deps := newOrderService(t)

	member := createTestMember(t, deps.db, "noorders@onetool.example", "pw")

	orders, err := svc.GetOrders(context.Background(), callerFor(member))
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders, "empty history is a success with an empty list")
}
