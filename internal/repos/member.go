package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/onetool/server/internal/logger"
	"github.com/onetool/server/internal/types"
)

// ErrRecordNotFound is re-exported so callers do not import gorm just to
// classify a miss.
var ErrRecordNotFound = gorm.ErrRecordNotFound

type MemberRepo interface {
	Create(ctx context.Context, tx *gorm.DB, member *types.Member) (*types.Member, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Member, error)
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.Member, error)
	GetByNameAndPhone(ctx context.Context, tx *gorm.DB, name, phoneNum string) (*types.Member, error)
	GetWithOrders(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Member, error)
	EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error)
	Save(ctx context.Context, tx *gorm.DB, member *types.Member) error
	Delete(ctx context.Context, tx *gorm.DB, member *types.Member) error
}

type memberRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMemberRepo(db *gorm.DB, baseLog *logger.Logger) MemberRepo {
	return &memberRepo{db: db, log: baseLog.With("repo", "MemberRepo")}
}

func (mr *memberRepo) Create(ctx context.Context, tx *gorm.DB, member *types.Member) (*types.Member, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	if err := transaction.WithContext(ctx).Create(member).Error; err != nil {
		return nil, err
	}
	return member, nil
}

func (mr *memberRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Member, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	var member types.Member
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (mr *memberRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.Member, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	var member types.Member
	if err := transaction.WithContext(ctx).
		Where("email = ?", email).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (mr *memberRepo) GetByNameAndPhone(ctx context.Context, tx *gorm.DB, name, phoneNum string) (*types.Member, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	var member types.Member
	if err := transaction.WithContext(ctx).
		Where("name = ? AND phone_num = ?", name, phoneNum).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// GetWithOrders eager-loads the member's order history down to the blueprint
// rows so the download projection needs no further queries.
func (mr *memberRepo) GetWithOrders(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Member, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	var member types.Member
	if err := transaction.WithContext(ctx).
		Preload("Orders").
		Preload("Orders.Items").
		Preload("Orders.Items.Blueprint").
		Where("id = ?", id).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (mr *memberRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Member{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (mr *memberRepo) Save(ctx context.Context, tx *gorm.DB, member *types.Member) error {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	return transaction.WithContext(ctx).Save(member).Error
}

func (mr *memberRepo) Delete(ctx context.Context, tx *gorm.DB, member *types.Member) error {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	return transaction.WithContext(ctx).Delete(member).Error
}

// IsNotFound reports whether err is a row miss rather than a real failure.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
