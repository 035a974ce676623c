package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// JSONResponse writes data as the bare response body; the browser client reads fields directly.
func JSONResponse(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, data)
}

// SuccessResponse writes a 200 response.
func SuccessResponse(c echo.Context, data interface{}) error {
	return JSONResponse(c, http.StatusOK, data)
}

// ErrorResponse writes {"error": message}.
func ErrorResponse(c echo.Context, statusCode int, message string) error {
	return JSONResponse(c, statusCode, ErrorBody{Error: message})
}

// BadRequestResponse writes a 400 whose message joins the validation messages.
func BadRequestResponse(c echo.Context, details []ValidationError) error {
	msgs := make([]string, 0, len(details))
	for _, d := range details {
		msgs = append(msgs, d.Message)
	}
	msg := strings.Join(msgs, "; ")
	if msg == "" {
		msg = http.StatusText(http.StatusBadRequest)
	}
	return JSONResponse(c, http.StatusBadRequest, ErrorBody{Error: msg, Details: details})
}

// InternalServerErrorResponse writes a 500 carrying the error's message.
func InternalServerErrorResponse(c echo.Context, err error) error {
	msg := "Unknown error"
	if err != nil {
		msg = err.Error()
	}
	return ErrorResponse(c, http.StatusInternalServerError, msg)
}

// AppErrorResponse writes application error response.
func AppErrorResponse(c echo.Context, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return ErrorResponse(c, appErr.Status, appErr.Message)
	}
	return InternalServerErrorResponse(c, err)
}

// HTTPErrorHandler renders echo's own errors (404, 405, bind failures) with the ErrorBody shape.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code == http.StatusMethodNotAllowed {
			err = MethodNotAllowedError()
		} else {
			msg, ok := he.Message.(string)
			if !ok {
				msg = http.StatusText(he.Code)
			}
			err = NewAppError("ERR_HTTP", "", msg, he.Code)
		}
	}

	if c.Request().Method == http.MethodHead {
		var appErr *AppError
		status := http.StatusInternalServerError
		if errors.As(err, &appErr) {
			status = appErr.Status
		}
		_ = c.NoContent(status)
		return
	}
	_ = AppErrorResponse(c, err)
}
