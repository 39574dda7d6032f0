package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dashgrid/dashgrid-api/internal/api/middleware"
	"github.com/dashgrid/dashgrid-api/internal/core/domain"
)

// ctxClaims returns the claims injected by the Auth middleware. An empty
// account id means the token is not a session token (e.g. a reset token)
// and cannot act on owned resources.
func ctxClaims(c echo.Context) (*domain.Claims, error) {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return nil, &middleware.Rejection{Status: http.StatusForbidden, Message: middleware.MsgTokenMissing}
	}
	return claims, nil
}

// ctxOwner returns the verified account id for owner-scoped routes.
func ctxOwner(c echo.Context) (string, error) {
	claims, err := ctxClaims(c)
	if err != nil {
		return "", err
	}
	if claims.ID == "" {
		return "", &middleware.Rejection{Status: http.StatusForbidden, Message: middleware.MsgTokenInvalid}
	}
	return claims.ID, nil
}

// businessError renders a business-rule failure as HTTP 200 with an
// embedded status, which is what clients of this API inspect.
func businessError(c echo.Context, status int, message string) error {
	return c.JSON(http.StatusOK, statusResponse{Status: status, Message: message})
}
