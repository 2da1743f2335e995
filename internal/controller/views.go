package controller

import "github.com/msomdec/signup-api/internal/domain"

// AccountView is the public representation of an account.
type AccountView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toAccountView(a *domain.Account) AccountView {
	return AccountView{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
	}
}

// TokenView carries an issued access token.
type TokenView struct {
	AccessToken string `json:"accessToken"`
}
