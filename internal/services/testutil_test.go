package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/onetool/server/internal/logger"
	"github.com/onetool/server/internal/repos"
	"github.com/onetool/server/internal/types"
	"github.com/onetool/server/internal/utils"
)

// testDeps bundles the wiring a service test needs to inspect state directly.
type testDeps struct {
	db            *gorm.DB
	log           *logger.Logger
	memberRepo    repos.MemberRepo
	orderRepo     repos.OrderRepo
	blueprintRepo repos.BlueprintRepo
	qnaRepo       repos.QnaBoardRepo
	userTokenRepo repos.UserTokenRepo
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	// In-memory sqlite is per-connection; keep the pool at one so every
	// query sees the same database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access underlying database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&types.Member{},
		&types.UserToken{},
		&types.Blueprint{},
		&types.Order{},
		&types.OrderItem{},
		&types.QnaBoard{},
		&types.QnaReply{},
	); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func testLogger() *logger.Logger {
	return logger.NewNop()
}

func createTestMember(t *testing.T, db *gorm.DB, email, password string) *types.Member {
	t.Helper()

	hashed, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	member := &types.Member{
		Email:    email,
		Password: hashed,
		Name:     "Test Member",
		PhoneNum: "010-0000-0000",
		IsNative: true,
		Role:     "ROLE_USER",
	}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("failed to create test member: %v", err)
	}
	return member
}

func createTestBlueprint(t *testing.T, db *gorm.DB, name string, standardPrice, salePrice int64) *types.Blueprint {
	t.Helper()

	bp := &types.Blueprint{
		Name:          name,
		Creator:       "studio kim",
		Program:       "AutoCAD",
		Extension:     "dwg",
		DownloadLink:  "https://files.onetool.example/" + uuid.NewString(),
		StandardPrice: standardPrice,
		SalePrice:     salePrice,
	}
	if err := db.Create(bp).Error; err != nil {
		t.Fatalf("failed to create test blueprint: %v", err)
	}
	return bp
}

func createTestQnaBoard(t *testing.T, db *gorm.DB, author *types.Member, title string, createdAt time.Time) *types.QnaBoard {
	t.Helper()

	board := &types.QnaBoard{
		MemberID:  author.ID,
		Title:     title,
		Content:   "content of " + title,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if err := db.Create(board).Error; err != nil {
		t.Fatalf("failed to create test qna post: %v", err)
	}
	return board
}
