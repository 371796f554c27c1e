package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"aquaria-partner-portal/internal/adapter/middleware"
	"aquaria-partner-portal/internal/domain/apperr"
	"aquaria-partner-portal/internal/domain/auth"
)

var errBadBody = errors.New("invalid body")

// decode binds the JSON body into req and validates it.
func decode(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errBadBody
	}
	return c.Validate(req)
}

// respondErr maps an error to its HTTP status and ErrorResponse.
func respondErr(c echo.Context, err error) error {
	var ve validator.ValidationErrors
	var fe *apperr.ValidationError
	switch {
	case errors.Is(err, errBadBody):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	case errors.As(err, &ve):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(ve)})
	case errors.As(err, &fe):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: []FieldError{{Field: fe.Field, Message: fe.Message}},
		})
	case errors.Is(err, apperr.ErrInvalidConfiguration):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperr.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, apperr.ErrDuplicateCode), errors.Is(err, apperr.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperr.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	case errors.Is(err, apperr.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperr.ErrStoreUnavailable):
		c.Logger().Errorf("store: %v", err)
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "service temporarily unavailable"})
	}
	c.Logger().Errorf("unhandled: %v", err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// principal is set by middleware.Authenticate on every guarded route.
func principal(c echo.Context) auth.Principal {
	p, _ := middleware.PrincipalFrom(c)
	return p
}
