package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/onetool/server/internal/logger"
	"github.com/onetool/server/internal/types"
)

type UserTokenRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, token *types.UserToken) error
	GetByMemberID(ctx context.Context, tx *gorm.DB, memberID uuid.UUID) (*types.UserToken, error)
	GetByRefreshToken(ctx context.Context, tx *gorm.DB, refreshToken string) (*types.UserToken, error)
	DeleteByMemberID(ctx context.Context, tx *gorm.DB, memberID uuid.UUID) error
}

type userTokenRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserTokenRepo(db *gorm.DB, baseLog *logger.Logger) UserTokenRepo {
	return &userTokenRepo{db: db, log: baseLog.With("repo", "UserTokenRepo")}
}

// Upsert replaces the member's refresh token; a member holds at most one.
func (ur *userTokenRepo) Upsert(ctx context.Context, tx *gorm.DB, token *types.UserToken) error {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	if err := transaction.WithContext(ctx).
		Where("member_id = ?", token.MemberID).
		Delete(&types.UserToken{}).Error; err != nil {
		return err
	}
	return transaction.WithContext(ctx).Create(token).Error
}

func (ur *userTokenRepo) GetByMemberID(ctx context.Context, tx *gorm.DB, memberID uuid.UUID) (*types.UserToken, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	var token types.UserToken
	if err := transaction.WithContext(ctx).
		Where("member_id = ?", memberID).
		First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

func (ur *userTokenRepo) GetByRefreshToken(ctx context.Context, tx *gorm.DB, refreshToken string) (*types.UserToken, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	var token types.UserToken
	if err := transaction.WithContext(ctx).
		Where("refresh_token = ?", refreshToken).
		First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

func (ur *userTokenRepo) DeleteByMemberID(ctx context.Context, tx *gorm.DB, memberID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	return transaction.WithContext(ctx).
		Where("member_id = ?", memberID).
		Delete(&types.UserToken{}).Error
}
