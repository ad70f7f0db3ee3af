package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// JSONResponse writes a bare JSON payload with the given status.
func JSONResponse(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, data)
}

// BadRequestResponse writes a wrapped bad request error.
func BadRequestResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusBadRequest, APIResponse{
		Status:  http.StatusBadRequest,
		Message: http.StatusText(http.StatusBadRequest),
		Data:    data,
	})
}

// InternalServerErrorResponse writes a wrapped internal server error.
func InternalServerErrorResponse(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, APIResponse{
		Status:  http.StatusInternalServerError,
		Message: http.StatusText(http.StatusInternalServerError),
		Data:    "Something went wrong",
	})
}
