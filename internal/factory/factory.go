// Package factory composes controllers from concrete adapters.
package factory

import (
	"time"

	"github.com/msomdec/signup-api/internal/controller"
	"github.com/msomdec/signup-api/internal/crypto"
	"github.com/msomdec/signup-api/internal/decorator"
	"github.com/msomdec/signup-api/internal/domain"
	"github.com/msomdec/signup-api/internal/service"
	"github.com/msomdec/signup-api/internal/validation"
)

// DefaultBcryptCost is used when Deps.BcryptCost is zero.
const DefaultBcryptCost = 12

// DefaultTokenTTL is used when Deps.TokenTTL is zero.
const DefaultTokenTTL = 24 * time.Hour

// Deps holds the infrastructure the controllers are built on.
type Deps struct {
	Accounts   domain.AccountRepository
	Logs       domain.LogErrorRepository
	BcryptCost int
	JWTSecret  string
	TokenTTL   time.Duration
}

// MakeSignUpController returns the signup controller wrapped with error logging.
func MakeSignUpController(deps Deps) controller.Controller {
	c := controller.NewSignUpController(validation.NewEmailValidatorAdapter(), newAccountService(deps))
	return decorator.NewLogControllerDecorator(c, deps.Logs)
}

// MakeLoginController returns the login controller wrapped with error logging.
func MakeLoginController(deps Deps) controller.Controller {
	c := controller.NewLoginController(validation.NewEmailValidatorAdapter(), newAccountService(deps))
	return decorator.NewLogControllerDecorator(c, deps.Logs)
}

func newAccountService(deps Deps) *service.AccountService {
	cost := deps.BcryptCost
	if cost == 0 {
		cost = DefaultBcryptCost
	}
	ttl := deps.TokenTTL
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}

	bcryptAdapter := crypto.NewBcryptAdapter(cost)
	jwtAdapter := crypto.NewJWTAdapter(deps.JWTSecret, ttl)
	return service.NewAccountService(deps.Accounts, bcryptAdapter, bcryptAdapter, jwtAdapter)
}
