package app

import (
	"strings"
	"time"

	"github.com/onetool/server/internal/logger"
	"github.com/onetool/server/internal/utils"
)

type Config struct {
	Environment     string
	HTTPAddr        string
	JWTSecretKey    string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	RedisAddr       string
	SeedFile        string
	AllowOrigins    []string
}

func LoadConfig(log *logger.Logger) Config {
	environment := utils.GetEnv("APP_ENV", "development", log)
	httpAddr := utils.GetEnv("HTTP_ADDR", ":8080", log)
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTLSeconds := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)
	redisAddr := utils.GetEnv("REDIS_ADDR", "", log)
	seedFile := utils.GetEnv("BLUEPRINT_SEED_FILE", "configs/blueprints.yaml", log)
	origins := utils.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000", log)

	return Config{
		Environment:     environment,
		HTTPAddr:        httpAddr,
		JWTSecretKey:    jwtSecretKey,
		AccessTokenTTL:  time.Duration(accessTokenTTLSeconds) * time.Second,
		RefreshTokenTTL: time.Duration(refreshTokenTTLSeconds) * time.Second,
		RedisAddr:       redisAddr,
		SeedFile:        seedFile,
		AllowOrigins:    strings.Split(origins, ","),
	}
}
