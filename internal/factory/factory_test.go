package factory_test

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/msomdec/signup-api/internal/controller"
	"github.com/msomdec/signup-api/internal/decorator"
	"github.com/msomdec/signup-api/internal/domain"
	"github.com/msomdec/signup-api/internal/factory"
	"github.com/msomdec/signup-api/internal/repository/sqlite"
)

const testJWTSecret = "test-secret-for-factory-tests-0123456789"

func newDeps(t *testing.T) (factory.Deps, *sqlite.DB) {
	t.Helper()
	db, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return factory.Deps{
		Accounts:   db.Accounts(),
		Logs:       db.Logs(),
		BcryptCost: 4,
		JWTSecret:  testJWTSecret,
	}, db
}

func TestMakeSignUpController_IsDecorated(t *testing.T) {
	deps, _ := newDeps(t)

	if _, ok := factory.MakeSignUpController(deps).(*decorator.LogControllerDecorator); !ok {
		t.Fatal("expected signup controller to be wrapped by LogControllerDecorator")
	}
	if _, ok := factory.MakeLoginController(deps).(*decorator.LogControllerDecorator); !ok {
		t.Fatal("expected login controller to be wrapped by LogControllerDecorator")
	}
}

func TestMakeSignUpController_SignUpThenLogin(t *testing.T) {
	deps, _ := newDeps(t)
	ctx := context.Background()

	signUp := factory.MakeSignUpController(deps)
	resp := signUp.Handle(ctx, &controller.Request{Body: map[string]any{
		"name":                 "n",
		"email":                "a@b.com",
		"password":             "p",
		"passwordConfirmation": "p",
	}})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("signup: expected 200, got %d (%v)", resp.StatusCode, resp.Body)
	}

	login := factory.MakeLoginController(deps)
	resp = login.Handle(ctx, &controller.Request{Body: map[string]any{
		"email":    "a@b.com",
		"password": "p",
	}})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%v)", resp.StatusCode, resp.Body)
	}
	if view := resp.Body.(controller.TokenView); view.AccessToken == "" {
		t.Fatal("expected non-empty access token")
	}
}

// brokenAccounts fails every call so the signup flow yields a server error.
type brokenAccounts struct{}

func (brokenAccounts) Add(context.Context, *domain.Account) error { return context.DeadlineExceeded }
func (brokenAccounts) GetByEmail(context.Context, string) (*domain.Account, error) {
	return nil, context.DeadlineExceeded
}
func (brokenAccounts) UpdateAccessToken(context.Context, int64, string) error {
	return context.DeadlineExceeded
}

func TestMakeSignUpController_PersistsServerErrors(t *testing.T) {
	deps, db := newDeps(t)
	deps.Accounts = brokenAccounts{}
	ctx := context.Background()

	resp := factory.MakeSignUpController(deps).Handle(ctx, &controller.Request{Body: map[string]any{
		"name":                 "n",
		"email":                "a@b.com",
		"password":             "p",
		"passwordConfirmation": "p",
	}})
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}

	var count int
	if err := db.SqlDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM errors").Scan(&count); err != nil {
		t.Fatalf("count errors: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 persisted error, got %d", count)
	}
}

func TestMakeSignUpController_PersistsServerErrorsAfterCancel(t *testing.T) {
	deps, db := newDeps(t)
	deps.Accounts = brokenAccounts{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp := factory.MakeSignUpController(deps).Handle(ctx, &controller.Request{Body: map[string]any{
		"name":                 "n",
		"email":                "a@b.com",
		"password":             "p",
		"passwordConfirmation": "p",
	}})
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}

	var count int
	if err := db.SqlDB.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM errors").Scan(&count); err != nil {
		t.Fatalf("count errors: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 persisted error after cancellation, got %d", count)
	}
}
