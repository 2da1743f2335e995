package controller

import (
	"context"
	"errors"

	"github.com/msomdec/signup-api/internal/domain"
)

// SignUpController validates a signup payload and creates the account.
type SignUpController struct {
	emailValidator domain.EmailValidator
	addAccount     domain.AddAccount
}

// NewSignUpController creates a new SignUpController.
func NewSignUpController(emailValidator domain.EmailValidator, addAccount domain.AddAccount) *SignUpController {
	return &SignUpController{emailValidator: emailValidator, addAccount: addAccount}
}

var signUpFields = []string{"name", "email", "password", "passwordConfirmation"}

// Handle validates the signup payload and creates the account.
func (c *SignUpController) Handle(ctx context.Context, req *Request) *Response {
	params := make(map[string]string, len(signUpFields))
	for _, field := range signUpFields {
		v, ok := stringParam(req, field)
		if !ok {
			return BadRequest(&MissingParamError{Param: field})
		}
		params[field] = v
	}

	if params["password"] != params["passwordConfirmation"] {
		return BadRequest(&InvalidParamError{Param: "passwordConfirmation"})
	}

	if !c.emailValidator.IsValid(params["email"]) {
		return BadRequest(&InvalidParamError{Param: "email"})
	}

	account, err := c.addAccount.AddAccount(ctx, domain.AddAccountParams{
		Name:     params["name"],
		Email:    params["email"],
		Password: params["password"],
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailInUse) {
			return Forbidden(&EmailInUseError{})
		}
		return InternalServerError(err)
	}

	return OK(toAccountView(account))
}
