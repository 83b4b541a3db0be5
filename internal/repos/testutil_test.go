package repos

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/onetool/server/internal/logger"
	"github.com/onetool/server/internal/types"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
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

func seedMember(t *testing.T, db *gorm.DB, email string) *types.Member {
	t.Helper()
	member := &types.Member{
		Email:    email,
		Password: "hashed",
		Name:     "Seed Member",
		PhoneNum: "010-1111-2222",
		IsNative: true,
		Role:     "ROLE_USER",
	}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("failed to seed member: %v", err)
	}
	return member
}
