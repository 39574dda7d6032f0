package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dashgrid/dashgrid-api/internal/api/metrics"
	"github.com/dashgrid/dashgrid-api/internal/api/middleware"
	"github.com/dashgrid/dashgrid-api/internal/core/domain"
	"github.com/dashgrid/dashgrid-api/internal/core/ports"
)

const (
	MsgUserExists       = "Registration Error: A user with that e-mail or username already exists."
	MsgLoginNotFound    = "Authentication Error: User not found."
	MsgPasswordMismatch = "Authentication Error: Password does not match!"
	MsgUserNotFound     = "Resource Error: User not found."
	MsgResetSent        = "Forgot password e-mail sent."
	MsgResetExpired     = "Resource Error: Reset token has expired."
	MsgPasswordChanged  = "Password was changed."
)

// AccountHandler serves the /users routes.
type AccountHandler struct {
	service ports.AccountService
	gate    middleware.Verifier
}

// NewAccountHandler wires the account directory. gate verifies the reset
// token on /users/changepassword after the body has been validated.
func NewAccountHandler(service ports.AccountService, gate middleware.Verifier) *AccountHandler {
	return &AccountHandler{service: service, gate: gate}
}

// Register creates a new account.
//
// @Summary      Register a new account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Account details"
// @Success      200   {object}  registerResponse
// @Failure      400   {object}  statusResponse
// @Router       /users/create [post]
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	account, err := h.service.Register(c.Request().Context(), req.Email, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return businessError(c, http.StatusConflict, MsgUserExists)
		}
		return err
	}

	return c.JSON(http.StatusOK, registerResponse{Success: true, ID: account.ID})
}

// Authenticate checks credentials and returns a session token.
//
// @Summary      Authenticate
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      authenticateRequest  true  "Credentials"
// @Success      200   {object}  authenticateResponse
// @Failure      400   {object}  statusResponse
// @Router       /users/authenticate [post]
func (h *AccountHandler) Authenticate(c echo.Context) error {
	var req authenticateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	session, err := h.service.Authenticate(c.Request().Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		metrics.LoginsTotal.WithLabelValues("not_found").Inc()
		return businessError(c, http.StatusUnauthorized, MsgLoginNotFound)
	case errors.Is(err, domain.ErrPasswordMismatch):
		metrics.LoginsTotal.WithLabelValues("mismatch").Inc()
		return businessError(c, http.StatusUnauthorized, MsgPasswordMismatch)
	case err != nil:
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, authenticateResponse{
		User: sessionUser{
			Username: session.Claims.Username,
			ID:       session.Claims.ID,
			Email:    session.Claims.Email,
		},
		Token: session.Token,
	})
}

// ResetPassword mails a reset token to the account address.
//
// @Summary      Request a password reset
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      resetRequest  true  "Username"
// @Success      200   {object}  okResponse
// @Failure      400   {object}  statusResponse
// @Router       /users/resetpassword [post]
func (h *AccountHandler) ResetPassword(c echo.Context) error {
	var req resetRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.service.RequestReset(c.Request().Context(), req.Username); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return businessError(c, http.StatusNotFound, MsgUserNotFound)
		}
		return err
	}

	return c.JSON(http.StatusOK, okResponse{OK: true, Message: MsgResetSent})
}

// ChangePassword sets a new password using the mailed reset token. The body
// is validated before the token is checked.
//
// @Summary      Change password with a reset token
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      changePasswordRequest  true  "New password"
// @Success      200   {object}  okResponse
// @Failure      400   {object}  statusResponse
// @Failure      401   {object}  statusResponse
// @Failure      403   {object}  statusResponse
// @Router       /users/changepassword [post]
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	claims, rej := middleware.Authorize(c.Request(), h.gate)
	if rej != nil {
		return rej
	}

	err := h.service.ChangePassword(c.Request().Context(), claims.Username, req.Password)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return businessError(c, http.StatusNotFound, MsgUserNotFound)
	case errors.Is(err, domain.ErrResetExpired):
		return businessError(c, http.StatusGone, MsgResetExpired)
	case err != nil:
		return err
	}

	return c.JSON(http.StatusOK, okResponse{OK: true, Message: MsgPasswordChanged})
}
