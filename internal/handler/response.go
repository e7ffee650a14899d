package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "propal/internal/errors"
)

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse wraps a single safe user.
type UserResponse struct {
	User interface{} `json:"user"`
}

// domainError turns a service error into an HTTP error. Storage failures are
// logged here and reach the client only as a generic 500.
func domainError(c echo.Context, log *slog.Logger, op string, err error) *echo.HTTPError {
	httpErr := apperrors.MapErrorToHTTP(err)
	if apperrors.IsServerError(err) {
		log.ErrorContext(c.Request().Context(), op+" failed",
			"error", err,
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
		)
	}
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func badRequest(message string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
		Error: message,
		Code:  "INVALID_REQUEST",
	})
}

// bindAndValidate decodes the body into req and runs its validate tags.
// Missing fields are reported with requiredMsg; other failed rules use the
// message keyed by their validator tag (e.g. "min").
func bindAndValidate(c echo.Context, req interface{}, requiredMsg string, ruleMsgs map[string]string) error {
	if err := c.Bind(req); err != nil {
		return badRequest("invalid request body")
	}

	err := c.Validate(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return badRequest(err.Error())
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return badRequest(requiredMsg)
		}
	}
	for _, fe := range verrs {
		if msg, ok := ruleMsgs[fe.Tag()]; ok {
			return badRequest(msg)
		}
	}
	return badRequest(verrs.Error())
}
