package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/onetool/server/internal/handlers"
	"github.com/onetool/server/internal/middleware"
)

type RouterConfig struct {
	ServiceName      string
	AllowOrigins     []string
	AuthMiddleware   *middleware.AuthMiddleware
	AuthHandler      *handlers.AuthHandler
	MemberHandler    *handlers.MemberHandler
	OrderHandler     *handlers.OrderHandler
	QnaHandler       *handlers.QnaHandler
	BlueprintHandler *handlers.BlueprintHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()
	router.Use(otelgin.Middleware(cfg.ServiceName))

	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")

	// Public
	api.POST("/auth/register", cfg.MemberHandler.Register)
	api.POST("/auth/login", cfg.AuthHandler.Login)
	api.POST("/auth/refresh", cfg.AuthHandler.Refresh)
	api.POST("/members/email", cfg.MemberHandler.FindEmail)
	api.GET("/blueprints", cfg.BlueprintHandler.List)
	api.GET("/qna", cfg.QnaHandler.GetQnaBoard)

	// Protected
	protected := api.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	protected.POST("/auth/logout", cfg.AuthHandler.Logout)
	protected.GET("/members/me", cfg.MemberHandler.GetMyInfo)
	protected.GET("/members/me/downloads", cfg.MemberHandler.GetPurchasedBlueprints)
	protected.PUT("/members/:id", cfg.MemberHandler.Update)
	protected.DELETE("/members/:id", cfg.MemberHandler.Delete)
	protected.POST("/orders", cfg.OrderHandler.CreateOrders)
	protected.GET("/orders", cfg.OrderHandler.GetOrders)
	protected.POST("/qna", cfg.QnaHandler.PostQna)
	protected.GET("/qna/:id", cfg.QnaHandler.GetQnaBoardDetails)
	protected.PUT("/qna/:id", cfg.QnaHandler.UpdateQna)
	protected.DELETE("/qna/:id", cfg.QnaHandler.DeleteQna)

	return router
}
