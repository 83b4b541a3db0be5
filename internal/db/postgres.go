package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/onetool/server/internal/logger"
	"github.com/onetool/server/internal/types"
	"github.com/onetool/server/internal/utils"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
	postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
	postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
	postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	postgresName := utils.GetEnv("POSTGRES_NAME", "onetool", log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	serviceLog.Info("Connecting to Postgres...")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		serviceLog.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("Failed to connect to Postgres: %w", err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		serviceLog.Error("Failed to enable uuid-ossp extension", "error", err)
		return nil, fmt.Errorf("Failed to enable uuid-ossp extension: %w", err)
	}

	return &PostgresService{db: db, log: serviceLog}, nil
}

// foreignKey describes one store-level constraint added after AutoMigrate.
// Migration runs with tag-derived constraints disabled, so these statements
// are the only thing materializing the FKs.
type foreignKey struct {
	Name      string
	Table     string
	Column    string
	RefTable  string
	RefColumn string
	OnDelete  string
}

func foreignKeys() []foreignKey {
	return []foreignKey{
		{Name: "fk_user_token_member_id", Table: "user_token", Column: "member_id", RefTable: "member", RefColumn: "id", OnDelete: "CASCADE"},
		{Name: "fk_orders_member_id", Table: "orders", Column: "member_id", RefTable: "member", RefColumn: "id", OnDelete: "CASCADE"},
		{Name: "fk_order_item_order_id", Table: "order_item", Column: "order_id", RefTable: "orders", RefColumn: "id", OnDelete: "CASCADE"},
		{Name: "fk_order_item_blueprint_id", Table: "order_item", Column: "blueprint_id", RefTable: "blueprint", RefColumn: "id", OnDelete: "RESTRICT"},
		{Name: "fk_qna_board_member_id", Table: "qna_board", Column: "member_id", RefTable: "member", RefColumn: "id", OnDelete: "CASCADE"},
		{Name: "fk_qna_reply_qna_board_id", Table: "qna_reply", Column: "qna_board_id", RefTable: "qna_board", RefColumn: "id", OnDelete: "CASCADE"},
		{Name: "fk_qna_reply_member_id", Table: "qna_reply", Column: "member_id", RefTable: "member", RefColumn: "id", OnDelete: "CASCADE"},
	}
}

// DropDDL makes the add idempotent across restarts.
func (fk foreignKey) DropDDL() string {
	return fmt.Sprintf(`ALTER TABLE %q DROP CONSTRAINT IF EXISTS %q`, fk.Table, fk.Name)
}

func (fk foreignKey) AddDDL() string {
	return fmt.Sprintf(
		`ALTER TABLE %q
ADD CONSTRAINT %q
FOREIGN KEY (%q)
REFERENCES %q(%q)
ON DELETE %s`,
		fk.Table, fk.Name, fk.Column, fk.RefTable, fk.RefColumn, fk.OnDelete,
	)
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	err := s.db.AutoMigrate(
		&types.Member{},
		&types.UserToken{},
		&types.Blueprint{},
		&types.Order{},
		&types.OrderItem{},
		&types.QnaBoard{},
		&types.QnaReply{},
	)
	if err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}
	s.log.Info("Configuring foreign key relationships for postgres tables...")
	for _, fk := range foreignKeys() {
		if err := s.db.Exec(fk.DropDDL()).Error; err != nil {
			return fmt.Errorf("Failed to reset %s: %w", fk.Name, err)
		}
		if err := s.db.Exec(fk.AddDDL()).Error; err != nil {
			return fmt.Errorf("Failed to add %s: %w", fk.Name, err)
		}
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
