package main

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	database "github.com/sales-tracker/backend/internal/infra/db"
	"github.com/sales-tracker/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestSeedDemoData(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	summary, err := seedDemoData(ctx, db, userID, end, 30, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Products != len(seedProducts) {
		t.Errorf("expected %d products, got %d", len(seedProducts), summary.Products)
	}
	if summary.Expenses == 0 {
		t.Error("expected expenses to be seeded")
	}

	var sales int64
	if err := db.Model(&model.SaleModel{}).Where("user_id = ?", userID).Count(&sales).Error; err != nil {
		t.Fatalf("failed to count sales: %v", err)
	}
	if int(sales) != summary.Sales {
		t.Errorf("expected %d stored sales, got %d", summary.Sales, sales)
	}

	again, err := seedDemoData(ctx, db, userID, end, 1, rand.New(rand.NewSource(2)))
	if err != nil {
		t.Fatalf("expected a second run to succeed, got %v", err)
	}
	if again.Products != 0 {
		t.Errorf("expected existing products to be skipped, got %d", again.Products)
	}
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	root := newRootCommand()

	for _, name := range []string{"migrate", "seed", "token"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("expected subcommand %q, got %v (%v)", name, cmd, err)
		}
	}
}
