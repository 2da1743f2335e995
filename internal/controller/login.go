package controller

import (
	"context"
	"errors"

	"github.com/msomdec/signup-api/internal/domain"
)

// LoginController exchanges email and password for an access token.
type LoginController struct {
	emailValidator domain.EmailValidator
	authentication domain.Authentication
}

// NewLoginController creates a new LoginController.
func NewLoginController(emailValidator domain.EmailValidator, authentication domain.Authentication) *LoginController {
	return &LoginController{emailValidator: emailValidator, authentication: authentication}
}

// Handle validates the credentials and returns a fresh access token.
func (c *LoginController) Handle(ctx context.Context, req *Request) *Response {
	email, ok := stringParam(req, "email")
	if !ok {
		return BadRequest(&MissingParamError{Param: "email"})
	}
	password, ok := stringParam(req, "password")
	if !ok {
		return BadRequest(&MissingParamError{Param: "password"})
	}

	if !c.emailValidator.IsValid(email) {
		return BadRequest(&InvalidParamError{Param: "email"})
	}

	token, err := c.authentication.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return Unauthorized()
		}
		return InternalServerError(err)
	}

	return OK(TokenView{AccessToken: token})
}
