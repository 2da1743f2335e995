package mysql_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/msomdec/signup-api/internal/domain"
	"github.com/msomdec/signup-api/internal/repository/mysql"
)

var _ domain.Database = (*mysql.DB)(nil)

func TestConfig_ForcesParseTimeAndUTC(t *testing.T) {
	cfg, err := mysql.Config("user:pass@tcp(localhost:3306)/signup?parseTime=false&loc=Local")
	if err != nil {
		t.Fatalf("Config: %v", err)
	}
	if !cfg.ParseTime {
		t.Fatal("expected ParseTime to be forced on")
	}
	if cfg.Loc != time.UTC {
		t.Fatalf("expected UTC location, got %v", cfg.Loc)
	}
	if cfg.DBName != "signup" {
		t.Fatalf("expected db name signup, got %q", cfg.DBName)
	}
}

func TestConfig_InvalidDSN(t *testing.T) {
	if _, err := mysql.Config("not a dsn"); err == nil {
		t.Fatal("expected error for invalid dsn")
	}
}

// newTestDB connects to the server named by MYSQL_TEST_DSN and starts
// from empty tables. Tests are skipped when it is unset.
func newTestDB(t *testing.T) *mysql.DB {
	t.Helper()
	dsn := os.Getenv("MYSQL_TEST_DSN")
	if dsn == "" {
		t.Skip("MYSQL_TEST_DSN not set")
	}

	ctx := context.Background()
	db, err := mysql.New(ctx, dsn)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	for _, stmt := range []string{
		"DROP TABLE IF EXISTS accounts",
		"DROP TABLE IF EXISTS errors",
		"DROP TABLE IF EXISTS schema_migrations",
	} {
		if _, err := db.SqlDB.ExecContext(ctx, stmt); err != nil {
			t.Fatalf("%s: %v", stmt, err)
		}
	}

	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return db
}

func TestAccountRepository_AddAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := db.Accounts()
	ctx := context.Background()

	account := &domain.Account{Name: "Any Name", Email: "any_email@mail.com", Password: "hash"}
	if err := repo.Add(ctx, account); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if account.ID == 0 {
		t.Fatal("expected account ID to be set after add")
	}

	found, err := repo.GetByEmail(ctx, "any_email@mail.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if found.ID != account.ID {
		t.Fatalf("expected id %d, got %d", account.ID, found.ID)
	}
}

func TestAccountRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := db.Accounts()
	ctx := context.Background()

	if err := repo.Add(ctx, &domain.Account{Name: "A", Email: "dup@mail.com", Password: "h"}); err != nil {
		t.Fatalf("Add first: %v", err)
	}
	err := repo.Add(ctx, &domain.Account{Name: "B", Email: "dup@mail.com", Password: "h"})
	if !errors.Is(err, domain.ErrEmailInUse) {
		t.Fatalf("expected ErrEmailInUse, got %v", err)
	}
}

func TestAccountRepository_UpdateAccessToken(t *testing.T) {
	db := newTestDB(t)
	repo := db.Accounts()
	ctx := context.Background()

	account := &domain.Account{Name: "T", Email: "t@mail.com", Password: "h"}
	if err := repo.Add(ctx, account); err != nil {
		t.Fatalf("Add: %v", err)
	}

	// Writing the same token twice must not be reported as a missing row.
	for i := 0; i < 2; i++ {
		if err := repo.UpdateAccessToken(ctx, account.ID, "any_token"); err != nil {
			t.Fatalf("UpdateAccessToken #%d: %v", i+1, err)
		}
	}

	if err := repo.UpdateAccessToken(ctx, 99999, "any_token"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLogRepository_LogError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	if err := db.Logs().LogError(ctx, "any_stack"); err != nil {
		t.Fatalf("LogError: %v", err)
	}

	var stack string
	if err := db.SqlDB.QueryRowContext(ctx, "SELECT stack FROM errors").Scan(&stack); err != nil {
		t.Fatalf("query errors: %v", err)
	}
	if stack != "any_stack" {
		t.Fatalf("expected stack %q, got %q", "any_stack", stack)
	}
}
