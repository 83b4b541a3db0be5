package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/onetool/server/internal/apierr"
	"github.com/onetool/server/internal/logger"
	"github.com/onetool/server/internal/repos"
	"github.com/onetool/server/internal/requestdata"
	"github.com/onetool/server/internal/types"
)

// OrderCreatedMessage is the fixed confirmation returned on a successful
// order. Duplicate submissions create duplicate orders; there is no
// idempotency key at this layer.
const OrderCreatedMessage = "Your order has been placed."

type OrderService interface {
	CreateOrders(ctx context.Context, caller *requestdata.RequestData, req *types.OrderRequest) (string, error)
	GetOrders(ctx context.Context, caller *requestdata.RequestData) ([]types.MyPageOrderResponse, error)
}

type orderService struct {
	db            *gorm.DB
	log           *logger.Logger
	memberRepo    repos.MemberRepo
	orderRepo     repos.OrderRepo
	blueprintRepo repos.BlueprintRepo
}

func NewOrderService(db *gorm.DB, log *logger.Logger, memberRepo repos.MemberRepo, orderRepo repos.OrderRepo, blueprintRepo repos.BlueprintRepo) OrderService {
	return &orderService{
		db:            db,
		log:           log.With("service", "OrderService"),
		memberRepo:    memberRepo,
		orderRepo:     orderRepo,
		blueprintRepo: blueprintRepo,
	}
}

func (svc *orderService) CreateOrders(ctx context.Context, caller *requestdata.RequestData, req *types.OrderRequest) (string, error) {
	member, err := svc.memberRepo.GetByID(ctx, nil, caller.MemberID)
	if err != nil {
		if repos.IsNotFound(err) {
			return "", apierr.NotFound(apierr.CodeNonExistUser, fmt.Errorf("member %s not found", caller.MemberID))
		}
		return "", fmt.Errorf("Failed to resolve ordering member: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(req.Items))
	for _, item := range req.Items {
		ids = append(ids, item.BlueprintID)
	}
	blueprints, err := svc.blueprintRepo.GetByIDs(ctx, nil, ids)
	if err != nil {
		return "", fmt.Errorf("Failed to load blueprints for order: %w", err)
	}
	byID := make(map[uuid.UUID]*types.Blueprint, len(blueprints))
	for _, bp := range blueprints {
		byID[bp.ID] = bp
	}

	order := &types.Order{MemberID: member.ID}
	for _, item := range req.Items {
		bp, ok := byID[item.BlueprintID]
		if !ok {
			return "", apierr.NotFound(apierr.CodeBlueprintNotFound, fmt.Errorf("blueprint %s not found", item.BlueprintID))
		}
		unitPrice := bp.SalePrice
		if unitPrice == 0 {
			unitPrice = bp.StandardPrice
		}
		order.Items = append(order.Items, types.OrderItem{
			BlueprintID: bp.ID,
			Quantity:    item.Quantity,
			UnitPrice:   unitPrice,
		})
		order.TotalPrice += unitPrice * int64(item.Quantity)
	}

	if err := svc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, cErr := svc.orderRepo.Create(ctx, tx, order)
		return cErr
	}); err != nil {
		return "", fmt.Errorf("Failed to create order: %w", err)
	}

	svc.log.Info("createOrders", "member", member.Email, "order_id", order.ID, "total_price", order.TotalPrice)
	return OrderCreatedMessage, nil
}

// GetOrders returns the caller's order history, newest first. A caller with
// no orders gets an empty list.
func (svc *orderService) GetOrders(ctx context.Context, caller *requestdata.RequestData) ([]types.MyPageOrderResponse, error) {
	orders, err := svc.orderRepo.GetByMemberID(ctx, nil, caller.MemberID)
	if err != nil {
		return nil, fmt.Errorf("Failed to load orders: %w", err)
	}
	results := make([]types.MyPageOrderResponse, 0, len(orders))
	for _, order := range orders {
		results = append(results, types.NewMyPageOrderResponse(order))
	}
	return results, nil
}
