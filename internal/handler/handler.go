package handler

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"brainvault/internal/errors"
	"brainvault/internal/middleware"
)

// MessageResponse is returned by operations without a payload.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// fail maps a service error to its HTTP response. Internal errors are logged
// and replaced by a generic message.
func fail(c echo.Context, logger *zap.Logger, err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	if httpErr.IsInternal() {
		logger.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			zap.Error(err),
		)
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// bindAndValidate decodes the request body into req and runs struct validation.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Message: "invalid request body",
			Code:    "INVALID_REQUEST",
		})
	}
	if err := c.Validate(req); err != nil {
		resp := errors.ErrorResponse{Message: err.Error(), Code: "VALIDATION_ERROR"}
		var verrs validator.ValidationErrors
		if stderrors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				resp.Fields = append(resp.Fields, fe.Field())
				msgs = append(msgs, describe(fe))
			}
			resp.Message = strings.Join(msgs, "; ")
		}
		return echo.NewHTTPError(http.StatusBadRequest, resp)
	}
	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	default:
		return fe.Field() + " is invalid"
	}
}

// currentUser returns the authenticated user id.
func currentUser(c echo.Context) (uuid.UUID, error) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return uuid.Nil, errors.ErrInvalidToken
	}
	id, err := claims.UserUUID()
	if err != nil {
		return uuid.Nil, errors.ErrInvalidToken
	}
	return id, nil
}
