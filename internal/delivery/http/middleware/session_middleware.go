package middleware

import (
	"strings"

	"expo/internal/delivery/http/response"
	domainerrors "expo/internal/domain/errors"
	"expo/internal/usecase"

	"github.com/labstack/echo/v4"
)

const sessionIDKey = "sessionID"

// SessionMiddleware resolves the checkout session token on checkout routes.
type SessionMiddleware struct {
	checkoutUC usecase.CheckoutUsecase
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(checkoutUC usecase.CheckoutUsecase) *SessionMiddleware {
	return &SessionMiddleware{checkoutUC: checkoutUC}
}

// Authenticate requires a Bearer session token and stores its session ID on the context.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, domainerrors.ErrSessionNotFound.ErrorCode(), "Authorization header is missing")
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader || token == "" {
			return response.Unauthorized(c, domainerrors.ErrSessionNotFound.ErrorCode(), "Invalid token format, must be Bearer token")
		}

		sessionID, err := m.checkoutUC.ResolveSession(c.Request().Context(), token)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		c.Set(sessionIDKey, sessionID)

		return next(c)
	}
}

// GetSessionID returns the session resolved by Authenticate.
func GetSessionID(c echo.Context) (string, bool) {
	id, ok := c.Get(sessionIDKey).(string)

	return id, ok && id != ""
}
