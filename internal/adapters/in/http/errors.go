package http

import (
	"errors"
	"net/http"

	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/domain/model/catalog"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusCodeFor maps application and domain errors onto HTTP status codes.
// Validation failures become 400, missing objects 404, and business rule
// conflicts 409. Anything unrecognized is a 500.
func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, queries.ErrNoData):
		return http.StatusNotFound

	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrCancelledOrderIsImmutable),
		errors.Is(err, order.ErrOrderIsNotEditable),
		errors.Is(err, catalog.ErrInsufficientStock),
		errors.Is(err, errs.ErrObjectIsReferenced):
		return http.StatusConflict

	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, order.ErrDuplicateProduct),
		errors.Is(err, queries.ErrInvalidRange),
		errors.Is(err, queries.ErrPriceRangeIsInvalid):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the uniform error payload for err. Internal errors are
// not echoed back to the client.
func respondError(ctx echo.Context, err error) error {
	code := statusCodeFor(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal server error"
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
