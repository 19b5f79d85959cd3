package handler

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/labstack/echo/v4"
)

const maxRequestBody = 1 << 20

// decodeJSONBody unmarshals the whole request body into v regardless of the
// Content-Type header. Trailing data after the first JSON value is an error.
func decodeJSONBody(c echo.Context, v interface{}) error {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxRequestBody+1))
	if err != nil {
		return err
	}
	if len(body) > maxRequestBody {
		return fmt.Errorf("request body exceeds %d bytes", maxRequestBody)
	}
	return json.Unmarshal(body, v)
}
