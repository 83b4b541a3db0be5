package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/onetool/server/internal/apierr"
	"github.com/onetool/server/internal/logger"
	"github.com/onetool/server/internal/repos"
	"github.com/onetool/server/internal/requestdata"
	"github.com/onetool/server/internal/types"
	"github.com/onetool/server/internal/utils"
)

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*LoginResponse, error)
	Logout(ctx context.Context, caller *requestdata.RequestData) error
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
}

type authService struct {
	db            *gorm.DB
	log           *logger.Logger
	memberRepo    repos.MemberRepo
	userTokenRepo repos.UserTokenRepo
	jwtSecretKey  string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewAuthService(db *gorm.DB, log *logger.Logger, memberRepo repos.MemberRepo, userTokenRepo repos.UserTokenRepo, jwtSecretKey string, accessTTL, refreshTTL time.Duration) AuthService {
	return &authService{
		db:            db,
		log:           log.With("service", "AuthService"),
		memberRepo:    memberRepo,
		userTokenRepo: userTokenRepo,
		jwtSecretKey:  jwtSecretKey,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (as *authService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	member, err := as.memberRepo.GetByEmail(ctx, nil, email)
	if err != nil {
		if repos.IsNotFound(err) {
			return nil, apierr.Unauthorized(apierr.CodeInvalidCredentials, fmt.Errorf("invalid email or password"))
		}
		return nil, fmt.Errorf("Failed to look up member for login: %w", err)
	}
	if err := utils.CheckPassword(member.Password, password); err != nil {
		return nil, apierr.Unauthorized(apierr.CodeInvalidCredentials, fmt.Errorf("invalid email or password"))
	}
	return as.issueTokens(ctx, member)
}

func (as *authService) Refresh(ctx context.Context, refreshToken string) (*LoginResponse, error) {
	stored, err := as.userTokenRepo.GetByRefreshToken(ctx, nil, refreshToken)
	if err != nil {
		if repos.IsNotFound(err) {
			return nil, apierr.Unauthorized(apierr.CodeInvalidToken, fmt.Errorf("unknown refresh token"))
		}
		return nil, fmt.Errorf("Failed to look up refresh token: %w", err)
	}
	if stored.ExpiresAt.Before(time.Now()) {
		return nil, apierr.Unauthorized(apierr.CodeInvalidToken, fmt.Errorf("refresh token expired"))
	}
	member, err := as.memberRepo.GetByID(ctx, nil, stored.MemberID)
	if err != nil {
		if repos.IsNotFound(err) {
			return nil, apierr.Unauthorized(apierr.CodeInvalidToken, fmt.Errorf("member for token no longer exists"))
		}
		return nil, fmt.Errorf("Failed to resolve member for refresh: %w", err)
	}
	return as.issueTokens(ctx, member)
}

func (as *authService) Logout(ctx context.Context, caller *requestdata.RequestData) error {
	return as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return as.userTokenRepo.DeleteByMemberID(ctx, tx, caller.MemberID)
	})
}

// SetContextFromToken validates an access token and loads the caller identity
// into the context for downstream services.
func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil || !token.Valid {
		return ctx, apierr.Unauthorized(apierr.CodeInvalidToken, fmt.Errorf("invalid access token"))
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx, apierr.Unauthorized(apierr.CodeInvalidToken, fmt.Errorf("malformed token claims"))
	}
	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	memberID, err := uuid.Parse(sub)
	if err != nil || email == "" {
		return ctx, apierr.Unauthorized(apierr.CodeInvalidToken, fmt.Errorf("malformed token claims"))
	}

	rd := &requestdata.RequestData{
		TokenString: tokenString,
		MemberID:    memberID,
		Email:       email,
	}
	return requestdata.WithRequestData(ctx, rd), nil
}

func (as *authService) issueTokens(ctx context.Context, member *types.Member) (*LoginResponse, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   member.ID.String(),
		"email": member.Email,
		"role":  member.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(as.accessTTL).Unix(),
		"jti":   uuid.New().String(),
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(as.jwtSecretKey))
	if err != nil {
		return nil, fmt.Errorf("Failed to sign access token: %w", err)
	}

	refreshToken := uuid.New().String()
	userToken := &types.UserToken{
		MemberID:     member.ID,
		RefreshToken: refreshToken,
		ExpiresAt:    now.Add(as.refreshTTL),
	}
	if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return as.userTokenRepo.Upsert(ctx, tx, userToken)
	}); err != nil {
		return nil, fmt.Errorf("Failed to persist refresh token: %w", err)
	}

	return &LoginResponse{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
