package echoapi

import (
	"net/http"

	"github.com/dgrijalva/jwt-go"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/campushelper/backend/core"
)

// API errors. The messages and status codes are part of the wire contract
// consumed by the frontend; do not reword them.
var (
	errMissingToken    = echo.NewHTTPError(http.StatusUnauthorized, "No token given")
	errInvalidToken    = echo.NewHTTPError(http.StatusForbidden, "Invalid token")
	errUnauthorized    = echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	errForbidden       = echo.NewHTTPError(http.StatusForbidden, "Forbidden")
	errUserExists      = echo.NewHTTPError(http.StatusBadRequest, "User already exists")
	errUserNotFound    = echo.NewHTTPError(http.StatusBadRequest, "User not found")
	errProfileNotFound = echo.NewHTTPError(http.StatusNotFound, "User not found")
	errWrongPassword   = echo.NewHTTPError(http.StatusUnauthorized, "Wrong password")
	errServerError     = echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
)

type errorResponse struct {
	Message interface{} `json:"message"`
}

// newAppHTTPErrorHandler returns a centralized error handler. Handlers return
// errors as-is; translation to an HTTP response happens here and only here.
// An unexpected error also signals the app to shut down if it is of the
// shutdown kind.
func newAppHTTPErrorHandler(logger core.Logger, translator ut.Translator, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		var (
			code = http.StatusInternalServerError
			res  errorResponse
		)

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			// the JWT gate reports a missing header and a rejected token with
			// its own codes; remap them to the API contract
			if origErr == middleware.ErrJWTMissing {
				code = errMissingToken.Code
				res.Message = errMissingToken.Message
				break
			}
			if _, ok := origErr.Internal.(*jwt.ValidationError); ok {
				code = errInvalidToken.Code
				res.Message = errInvalidToken.Message
				break
			}
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			code = origErr.Code
			res.Message = origErr.Message
		case validator.ValidationErrors:
			code = http.StatusBadRequest
			fields := make(map[string]string, len(origErr))
			for _, fErr := range origErr {
				fields[fErr.Field()] = fErr.Translate(translator)
			}
			res.Message = fields
		case *core.ValidationError:
			code = http.StatusBadRequest
			fields := make(map[string]string, len(origErr.Fields))
			for _, fErr := range origErr.Fields {
				fields[fErr.Field] = fErr.Error
			}
			if len(fields) > 0 {
				res.Message = fields
			} else {
				res.Message = origErr.Error()
			}
		default:
			logger.Error("unexpected API error", err)
			res.Message = errServerError.Message
			if core.IsShutdown(errors.Cause(err)) {
				defer signalShutdown()
			}
		}

		var respErr error
		if ctx.Request().Method == http.MethodHead {
			respErr = ctx.NoContent(code)
		} else {
			respErr = ctx.JSON(code, res)
		}
		if respErr != nil {
			logger.Error("sending error response", respErr)
		}
	}
}
