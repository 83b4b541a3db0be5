package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/onetool/server/internal/apierr"
	redisclient "github.com/onetool/server/internal/clients/redis"
	"github.com/onetool/server/internal/logger"
	"github.com/onetool/server/internal/repos"
	"github.com/onetool/server/internal/requestdata"
	"github.com/onetool/server/internal/types"
)

type QnaService interface {
	GetQnaBoard(ctx context.Context) ([]types.QnaBoardBriefResponse, error)
	PostQna(ctx context.Context, caller *requestdata.RequestData, req *types.PostQnaBoardRequest) error
	GetQnaBoardDetails(ctx context.Context, caller *requestdata.RequestData, boardID uuid.UUID) (*types.QnaBoardDetailResponse, error)
	UpdateQna(ctx context.Context, caller *requestdata.RequestData, boardID uuid.UUID, req *types.PostQnaBoardRequest) error
	DeleteQna(ctx context.Context, caller *requestdata.RequestData, boardID uuid.UUID) error
}

type qnaService struct {
	db         *gorm.DB
	log        *logger.Logger
	memberRepo repos.MemberRepo
	qnaRepo    repos.QnaBoardRepo
	views      redisclient.ViewCounter
}

// NewQnaService wires the Q&A board. views may be nil; the counter is
// best-effort and the board works without redis.
func NewQnaService(db *gorm.DB, log *logger.Logger, memberRepo repos.MemberRepo, qnaRepo repos.QnaBoardRepo, views redisclient.ViewCounter) QnaService {
	return &qnaService{
		db:         db,
		log:        log.With("service", "QnaService"),
		memberRepo: memberRepo,
		qnaRepo:    qnaRepo,
		views:      views,
	}
}

// GetQnaBoard lists every post newest first. An empty board is reported as
// NO_QNA_CONTENT rather than an empty list.
func (qs *qnaService) GetQnaBoard(ctx context.Context) ([]types.QnaBoardBriefResponse, error) {
	boards, err := qs.qnaRepo.GetAllOrderedByCreatedAt(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("Failed to load qna board: %w", err)
	}
	if len(boards) == 0 {
		return nil, apierr.EmptyContent(apierr.CodeNoQnaContent, fmt.Errorf("qna board has no posts"))
	}

	briefs := make([]types.QnaBoardBriefResponse, 0, len(boards))
	for _, board := range boards {
		briefs = append(briefs, types.NewQnaBoardBriefResponse(board))
	}
	return briefs, nil
}

func (qs *qnaService) PostQna(ctx context.Context, caller *requestdata.RequestData, req *types.PostQnaBoardRequest) error {
	member, err := qs.findMember(ctx, caller)
	if err != nil {
		return err
	}

	board := &types.QnaBoard{
		MemberID: member.ID,
		Title:    req.Title,
		Content:  req.Content,
	}
	if err := qs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, cErr := qs.qnaRepo.Create(ctx, tx, board)
		return cErr
	}); err != nil {
		return fmt.Errorf("Failed to post qna: %w", err)
	}
	return nil
}

func (qs *qnaService) GetQnaBoardDetails(ctx context.Context, caller *requestdata.RequestData, boardID uuid.UUID) (*types.QnaBoardDetailResponse, error) {
	member, err := qs.findMember(ctx, caller)
	if err != nil {
		return nil, err
	}
	board, err := qs.findQnaBoard(ctx, nil, boardID)
	if err != nil {
		return nil, err
	}

	if qs.views != nil {
		if pending, vErr := qs.views.Hit(ctx, board.ID); vErr != nil {
			qs.log.Warn("View counter unavailable", "board_id", board.ID, "error", vErr)
		} else if pending > 0 {
			// Fold buffered hits back into the row so a redis wipe only
			// loses views that never reached a detail read.
			if iErr := qs.qnaRepo.IncrementViews(ctx, nil, board.ID, pending); iErr != nil {
				qs.log.Warn("Failed to persist view count", "board_id", board.ID, "error", iErr)
			} else if fErr := qs.views.Flush(ctx, board.ID, pending); fErr != nil {
				qs.log.Warn("Failed to trim view counter", "board_id", board.ID, "error", fErr)
			}
			board.Views += pending
		}
	}

	return types.NewQnaBoardDetailResponse(board, qs.isMemberAvailableToModifyQna(board, member)), nil
}

func (qs *qnaService) UpdateQna(ctx context.Context, caller *requestdata.RequestData, boardID uuid.UUID, req *types.PostQnaBoardRequest) error {
	member, err := qs.findMember(ctx, caller)
	if err != nil {
		return err
	}
	return qs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		board, fErr := qs.findQnaBoard(ctx, tx, boardID)
		if fErr != nil {
			return fErr
		}
		_ = qs.isMemberAvailableToModifyQna(board, member)
		board.Title = req.Title
		board.Content = req.Content
		return qs.qnaRepo.Save(ctx, tx, board)
	})
}

func (qs *qnaService) DeleteQna(ctx context.Context, caller *requestdata.RequestData, boardID uuid.UUID) error {
	member, err := qs.findMember(ctx, caller)
	if err != nil {
		return err
	}
	return qs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		board, fErr := qs.findQnaBoard(ctx, tx, boardID)
		if fErr != nil {
			return fErr
		}
		_ = qs.isMemberAvailableToModifyQna(board, member)
		return qs.qnaRepo.Delete(ctx, tx, board)
	})
}

func (qs *qnaService) findMember(ctx context.Context, caller *requestdata.RequestData) (*types.Member, error) {
	member, err := qs.memberRepo.GetByEmail(ctx, nil, caller.Email)
	if err != nil {
		if repos.IsNotFound(err) {
			return nil, apierr.NotFound(apierr.CodeNonExistUser, fmt.Errorf("member %s not found", caller.Email))
		}
		return nil, fmt.Errorf("Failed to resolve caller: %w", err)
	}
	return member, nil
}

func (qs *qnaService) findQnaBoard(ctx context.Context, tx *gorm.DB, boardID uuid.UUID) (*types.QnaBoard, error) {
	board, err := qs.qnaRepo.GetByIDWithReplies(ctx, tx, boardID)
	if err != nil {
		if repos.IsNotFound(err) {
			return nil, apierr.NotFound(apierr.CodeNoQnaContent, fmt.Errorf("qna post %s not found", boardID))
		}
		return nil, fmt.Errorf("Failed to load qna post: %w", err)
	}
	return board, nil
}

func (qs *qnaService) isMemberAvailableToModifyQna(board *types.QnaBoard, member *types.Member) bool {
	return board.Member != nil && board.Member.Email == member.Email
}
