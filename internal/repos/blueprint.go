package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/onetool/server/internal/logger"
	"github.com/onetool/server/internal/types"
)

type BlueprintRepo interface {
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Blueprint, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Blueprint, error)
	Search(ctx context.Context, tx *gorm.DB, keyword string) ([]*types.Blueprint, error)
}

type blueprintRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBlueprintRepo(db *gorm.DB, baseLog *logger.Logger) BlueprintRepo {
	return &blueprintRepo{db: db, log: baseLog.With("repo", "BlueprintRepo")}
}

func (br *blueprintRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Blueprint, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}
	var results []*types.Blueprint
	if len(ids) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (br *blueprintRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Blueprint, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}
	var results []*types.Blueprint
	if err := transaction.WithContext(ctx).
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (br *blueprintRepo) Search(ctx context.Context, tx *gorm.DB, keyword string) ([]*types.Blueprint, error) {
	transaction := tx
	if transaction == nil {
		transaction = br.db
	}
	var results []*types.Blueprint
	if err := transaction.WithContext(ctx).
		Where("name LIKE ?", "%"+keyword+"%").
		Order("name ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
