package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxSubject extracts the subject claim injected by the Auth middleware. An
// empty subject means the middleware did not run for this route; reject with
// 401 before any service call.
func ctxSubject(c echo.Context) (string, error) {
	sub, _ := c.Get("sub").(string)
	if sub == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return sub, nil
}
