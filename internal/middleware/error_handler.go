package middleware

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"brainvault/internal/errors"
)

// ErrorHandler renders every error as an ErrorResponse, including the ones
// raised by echo itself (unknown route, body limit, rate limit).
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		body := errors.ErrorResponse{Message: "internal server error", Code: "INTERNAL_ERROR"}

		var he *echo.HTTPError
		if stderrors.As(err, &he) {
			status = he.Code
			switch msg := he.Message.(type) {
			case errors.ErrorResponse:
				body = msg
			case string:
				body = errors.ErrorResponse{Message: msg, Code: statusCode(status)}
			default:
				body = errors.ErrorResponse{Message: strings.ToLower(http.StatusText(status)), Code: statusCode(status)}
			}
		} else {
			logger.Error("unhandled error", zap.Error(err), zap.String("path", c.Path()))
		}
		body.Success = false

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			logger.Warn("write error response failed", zap.Error(err))
		}
	}
}

func statusCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "ERROR"
	}
	return strings.ToUpper(strings.NewReplacer(" ", "_", "-", "_", "'", "").Replace(text))
}
