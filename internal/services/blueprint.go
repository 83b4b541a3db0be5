package services

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/onetool/server/internal/logger"
	"github.com/onetool/server/internal/repos"
	"github.com/onetool/server/internal/types"
)

type BlueprintService interface {
	ListBlueprints(ctx context.Context) ([]types.BlueprintResponse, error)
	SearchBlueprints(ctx context.Context, keyword string) ([]types.BlueprintResponse, error)
}

type blueprintService struct {
	db            *gorm.DB
	log           *logger.Logger
	blueprintRepo repos.BlueprintRepo
}

func NewBlueprintService(db *gorm.DB, log *logger.Logger, blueprintRepo repos.BlueprintRepo) BlueprintService {
	return &blueprintService{
		db:            db,
		log:           log.With("service", "BlueprintService"),
		blueprintRepo: blueprintRepo,
	}
}

func (bs *blueprintService) ListBlueprints(ctx context.Context) ([]types.BlueprintResponse, error) {
	blueprints, err := bs.blueprintRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("Failed to list blueprints: %w", err)
	}
	return toBlueprintResponses(blueprints), nil
}

func (bs *blueprintService) SearchBlueprints(ctx context.Context, keyword string) ([]types.BlueprintResponse, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return bs.ListBlueprints(ctx)
	}
	blueprints, err := bs.blueprintRepo.Search(ctx, nil, keyword)
	if err != nil {
		return nil, fmt.Errorf("Failed to search blueprints: %w", err)
	}
	return toBlueprintResponses(blueprints), nil
}

func toBlueprintResponses(blueprints []*types.Blueprint) []types.BlueprintResponse {
	results := make([]types.BlueprintResponse, 0, len(blueprints))
	for _, bp := range blueprints {
		results = append(results, types.NewBlueprintResponse(bp))
	}
	return results
}
