package handler

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sumire/taskboard/internal/domain"
)

// paramInt64 parses a numeric path parameter, failing with ErrInvalidInput
// on malformed values.
func paramInt64(c echo.Context, name string) (int64, error) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s", domain.ErrInvalidInput, name)
	}
	return v, nil
}

// queryInt64 parses an optional numeric query parameter. A missing value
// returns nil.
func queryInt64(c echo.Context, name string) (*int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid %s", domain.ErrInvalidInput, name)
	}
	return &v, nil
}

// queryString returns an optional query parameter, nil when absent.
func queryString(c echo.Context, name string) *string {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	return &raw
}
