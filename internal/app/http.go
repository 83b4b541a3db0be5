package app

import (
	"github.com/gin-gonic/gin"

	"github.com/onetool/server/internal/handlers"
	"github.com/onetool/server/internal/logger"
	"github.com/onetool/server/internal/middleware"
	"github.com/onetool/server/internal/server"
)

type Middleware struct {
	Auth *middleware.AuthMiddleware
}

type Handlers struct {
	Auth      *handlers.AuthHandler
	Member    *handlers.MemberHandler
	Order     *handlers.OrderHandler
	Qna       *handlers.QnaHandler
	Blueprint *handlers.BlueprintHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:      handlers.NewAuthHandler(serviceset.Auth),
		Member:    handlers.NewMemberHandler(serviceset.Member),
		Order:     handlers.NewOrderHandler(serviceset.Order),
		Qna:       handlers.NewQnaHandler(serviceset.Qna),
		Blueprint: handlers.NewBlueprintHandler(serviceset.Blueprint),
	}
}

func wireMiddleware(log *logger.Logger, serviceset Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: middleware.NewAuthMiddleware(log, serviceset.Auth),
	}
}

func wireRouter(cfg Config, handlerset Handlers, middlewareset Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		ServiceName:      "onetool-server",
		AllowOrigins:     cfg.AllowOrigins,
		AuthMiddleware:   middlewareset.Auth,
		AuthHandler:      handlerset.Auth,
		MemberHandler:    handlerset.Member,
		OrderHandler:     handlerset.Order,
		QnaHandler:       handlerset.Qna,
		BlueprintHandler: handlerset.Blueprint,
	})
}
