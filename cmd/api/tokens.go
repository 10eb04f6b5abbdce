package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/rglass4/rematch/internal/data"
	"github.com/rglass4/rematch/internal/validator"
)

func (app *application) LoginUser(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	data.ValidateEmail(v, input.Email)
	data.ValidatePasswordPlaintext(v, input.Password)
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	user, err := app.models.Users.GetByEmail(input.Email)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.invalidCredentialsResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	match, err := user.Password.Matches(input.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}
	if !match {
		app.invalidCredentialsResponse(w, r)
		return
	}

	token, err := app.models.Tokens.New(user.ID, 24*time.Hour, data.ScopeAuthentication)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"authentication_token": token}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// SendMagicLink emails a short-lived one-time login token. The response is
// 202 whether or not the email is registered, so the endpoint cannot be
// used to probe for accounts.
func (app *application) SendMagicLink(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email string `json:"email"`
	}

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	if data.ValidateEmail(v, input.Email); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	user, err := app.models.Users.GetByEmail(input.Email)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			// Fall through to the generic response below.
		default:
			app.serverErrorResponse(w, r, err)
			return
		}
	}

	if user != nil {
		token, err := app.models.Tokens.New(user.ID, 15*time.Minute, data.ScopeMagicLink)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}

		app.backgroundTask(func() {
			mailData := map[string]any{
				"magicLinkToken": token.Plaintext,
			}

			err = app.mailer.Send(user.Email, "token_magic_link.tmpl", mailData)
			if err != nil {
				app.logger.PrintError(err, nil)
			}
		})
	}

	message := "if a matching account exists, a login link is on its way"
	err = app.writeJSON(w, http.StatusAccepted, envelope{"message": message}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// RedeemMagicLink swaps a one-time login token for a normal authentication
// token. Redeeming also activates the account, since the token proves
// ownership of the email address.
func (app *application) RedeemMagicLink(w http.ResponseWriter, r *http.Request) {
	var input struct {
		TokenPlaintext string `json:"token"`
	}

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	if data.ValidateTokenPlaintext(v, input.TokenPlaintext); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	user, err := app.models.Users.GetForToken(data.ScopeMagicLink, input.TokenPlaintext)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			v.AddError("token", "invalid or expired login token")
			app.failedValidationResponse(w, r, v.Errors)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.models.Tokens.DeleteAllForUser(data.ScopeMagicLink, user.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if !user.Activated {
		user.Activated = true
		err = app.models.Users.Update(user)
		if err != nil {
			switch {
			case errors.Is(err, data.ErrRecordNotFound):
				app.editConflictResponse(w, r)
			default:
				app.serverErrorResponse(w, r, err)
			}
			return
		}
	}

	token, err := app.models.Tokens.New(user.ID, 24*time.Hour, data.ScopeAuthentication)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"authentication_token": token}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
