package app

import (
	"gorm.io/gorm"

	redisclient "github.com/onetool/server/internal/clients/redis"
	"github.com/onetool/server/internal/logger"
	"github.com/onetool/server/internal/services"
)

type Services struct {
	Auth      services.AuthService
	Member    services.MemberService
	Order     services.OrderService
	Qna       services.QnaService
	Blueprint services.BlueprintService

	// Views is kept so the app can close the redis connection on shutdown.
	Views redisclient.ViewCounter
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos) Services {
	log.Info("Wiring services...")

	var views redisclient.ViewCounter
	if cfg.RedisAddr != "" {
		vc, err := redisclient.NewViewCounter(log, cfg.RedisAddr)
		if err != nil {
			log.Warn("Redis unavailable, qna view counter disabled", "error", err)
		} else {
			views = vc
		}
	}

	return Services{
		Auth:      services.NewAuthService(db, log, reposet.Member, reposet.UserToken, cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL),
		Member:    services.NewMemberService(db, log, reposet.Member),
		Order:     services.NewOrderService(db, log, reposet.Member, reposet.Order, reposet.Blueprint),
		Qna:       services.NewQnaService(db, log, reposet.Member, reposet.QnaBoard, views),
		Blueprint: services.NewBlueprintService(db, log, reposet.Blueprint),
		Views:     views,
	}
}
