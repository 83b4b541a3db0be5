package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/onetool/server/internal/apierr"
	"github.com/onetool/server/internal/logger"
	"github.com/onetool/server/internal/repos"
	"github.com/onetool/server/internal/types"
	"github.com/onetool/server/internal/utils"
)

type MemberService interface {
	FindEmail(ctx context.Context, name, phoneNum string) (string, error)
	FindMemberInfo(ctx context.Context, id uuid.UUID) (*types.MemberInfoResponse, error)
	FindPurchasedBlueprints(ctx context.Context, id uuid.UUID) ([]types.BlueprintDownloadResponse, error)
	CreateMember(ctx context.Context, req *types.MemberCreateRequest) (*types.MemberCreateResponse, error)
	UpdateMember(ctx context.Context, id uuid.UUID, req *types.MemberUpdateRequest) error
	DeleteMember(ctx context.Context, id uuid.UUID) error
}

type memberService struct {
	db         *gorm.DB
	log        *logger.Logger
	memberRepo repos.MemberRepo
}

func NewMemberService(db *gorm.DB, log *logger.Logger, memberRepo repos.MemberRepo) MemberService {
	return &memberService{
		db:         db,
		log:        log.With("service", "MemberService"),
		memberRepo: memberRepo,
	}
}

func (ms *memberService) FindEmail(ctx context.Context, name, phoneNum string) (string, error) {
	member, err := ms.memberRepo.GetByNameAndPhone(ctx, nil, name, phoneNum)
	if err != nil {
		if repos.IsNotFound(err) {
			return "", apierr.NotFound(apierr.CodeNonExistUser, fmt.Errorf("no member matches name and phone number"))
		}
		return "", fmt.Errorf("Failed to look up member by name and phone: %w", err)
	}
	return member.Email, nil
}

func (ms *memberService) FindMemberInfo(ctx context.Context, id uuid.UUID) (*types.MemberInfoResponse, error) {
	member, err := ms.memberRepo.GetByID(ctx, nil, id)
	if err != nil {
		if repos.IsNotFound(err) {
			return nil, apierr.NotFound(apierr.CodeNonExistUser, fmt.Errorf("member %s not found", id))
		}
		return nil, fmt.Errorf("Failed to look up member: %w", err)
	}
	return types.NewMemberInfoResponse(member), nil
}

// FindPurchasedBlueprints flattens the member's order history into download
// descriptors. A member with no orders gets an empty list, not an error.
func (ms *memberService) FindPurchasedBlueprints(ctx context.Context, id uuid.UUID) ([]types.BlueprintDownloadResponse, error) {
	member, err := ms.memberRepo.GetWithOrders(ctx, nil, id)
	if err != nil {
		if repos.IsNotFound(err) {
			return nil, apierr.NotFound(apierr.CodeNonExistUser, fmt.Errorf("member %s not found", id))
		}
		return nil, fmt.Errorf("Failed to load member orders: %w", err)
	}

	downloads := make([]types.BlueprintDownloadResponse, 0)
	for i := range member.Orders {
		order := &member.Orders[i]
		for j := range order.Items {
			downloads = append(downloads, types.NewBlueprintDownloadResponse(&order.Items[j], order.CreatedAt))
		}
	}
	return downloads, nil
}

func (ms *memberService) CreateMember(ctx context.Context, req *types.MemberCreateRequest) (*types.MemberCreateResponse, error) {
	exists, err := ms.memberRepo.EmailExists(ctx, nil, req.Email)
	if err != nil {
		return nil, fmt.Errorf("Failed to check for duplicate email: %w", err)
	}
	if exists {
		return nil, apierr.Conflict(apierr.CodeDuplicateEmail, fmt.Errorf("email %s is already registered", req.Email))
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	member := &types.Member{
		Email:     req.Email,
		Password:  hashed,
		Name:      req.Name,
		PhoneNum:  req.PhoneNum,
		BirthDate: req.BirthDate,
		Field:     req.Field,
		IsNative:  true,
		Role:      "ROLE_USER",
	}
	if req.IsNative != nil {
		member.IsNative = *req.IsNative
	}

	if err := ms.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, cErr := ms.memberRepo.Create(ctx, tx, member)
		return cErr
	}); err != nil {
		return nil, fmt.Errorf("Failed to create member: %w", err)
	}

	ms.log.Info("createMember", "email", member.Email)
	return types.NewMemberCreateResponse(member), nil
}

func (ms *memberService) UpdateMember(ctx context.Context, id uuid.UUID, req *types.MemberUpdateRequest) error {
	return ms.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		member, err := ms.memberRepo.GetByID(ctx, tx, id)
		if err != nil {
			if repos.IsNotFound(err) {
				return apierr.NotFound(apierr.CodeNonExistUser, fmt.Errorf("member %s not found", id))
			}
			return fmt.Errorf("Failed to load member for update: %w", err)
		}

		if req.Name != nil {
			member.Name = *req.Name
		}
		if req.PhoneNum != nil {
			member.PhoneNum = *req.PhoneNum
		}
		if req.BirthDate != nil {
			member.BirthDate = req.BirthDate
		}
		if req.Field != nil {
			member.Field = *req.Field
		}
		if req.Password != nil {
			hashed, hErr := utils.HashPassword(*req.Password)
			if hErr != nil {
				return hErr
			}
			member.Password = hashed
		}

		return ms.memberRepo.Save(ctx, tx, member)
	})
}

func (ms *memberService) DeleteMember(ctx context.Context, id uuid.UUID) error {
	return ms.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		member, err := ms.memberRepo.GetByID(ctx, tx, id)
		if err != nil {
			if repos.IsNotFound(err) {
				return apierr.NotFound(apierr.CodeNonExistUser, fmt.Errorf("member %s not found", id))
			}
			return fmt.Errorf("Failed to load member for delete: %w", err)
		}
		return ms.memberRepo.Delete(ctx, tx, member)
	})
}
