package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/onetool/server/internal/logger"
	"github.com/onetool/server/internal/types"
)

type QnaBoardRepo interface {
	Create(ctx context.Context, tx *gorm.DB, board *types.QnaBoard) (*types.QnaBoard, error)
	GetAllOrderedByCreatedAt(ctx context.Context, tx *gorm.DB) ([]*types.QnaBoard, error)
	GetByIDWithReplies(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.QnaBoard, error)
	Save(ctx context.Context, tx *gorm.DB, board *types.QnaBoard) error
	Delete(ctx context.Context, tx *gorm.DB, board *types.QnaBoard) error
	IncrementViews(ctx context.Context, tx *gorm.DB, id uuid.UUID, delta int64) error
}

type qnaBoardRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQnaBoardRepo(db *gorm.DB, baseLog *logger.Logger) QnaBoardRepo {
	return &qnaBoardRepo{db: db, log: baseLog.With("repo", "QnaBoardRepo")}
}

func (qr *qnaBoardRepo) Create(ctx context.Context, tx *gorm.DB, board *types.QnaBoard) (*types.QnaBoard, error) {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}
	if err := transaction.WithContext(ctx).Create(board).Error; err != nil {
		return nil, err
	}
	return board, nil
}

// GetAllOrderedByCreatedAt returns every post, newest first. Ties keep the
// store's stable order.
func (qr *qnaBoardRepo) GetAllOrderedByCreatedAt(ctx context.Context, tx *gorm.DB) ([]*types.QnaBoard, error) {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}
	var results []*types.QnaBoard
	if err := transaction.WithContext(ctx).
		Preload("Member").
		Preload("Replies").
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (qr *qnaBoardRepo) GetByIDWithReplies(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.QnaBoard, error) {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}
	var board types.QnaBoard
	if err := transaction.WithContext(ctx).
		Preload("Member").
		Preload("Replies").
		Preload("Replies.Member").
		Where("id = ?", id).
		First(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

func (qr *qnaBoardRepo) Save(ctx context.Context, tx *gorm.DB, board *types.QnaBoard) error {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}
	return transaction.WithContext(ctx).Save(board).Error
}

func (qr *qnaBoardRepo) Delete(ctx context.Context, tx *gorm.DB, board *types.QnaBoard) error {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}
	return transaction.WithContext(ctx).Delete(board).Error
}

// IncrementViews folds redis-accumulated view counts back into the row.
func (qr *qnaBoardRepo) IncrementViews(ctx context.Context, tx *gorm.DB, id uuid.UUID, delta int64) error {
	transaction := tx
	if transaction == nil {
		transaction = qr.db
	}
	return transaction.WithContext(ctx).
		Model(&types.QnaBoard{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", delta)).Error
}
