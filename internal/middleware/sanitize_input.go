package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeInput は公開書き込みAPIのJSONボディ内の文字列から
// HTMLタグを落とす。トップレベルの文字列フィールドのみ対象
func SanitizeInput() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Method != http.MethodPost && req.Method != http.MethodPut {
				return next(c)
			}

			buf, err := io.ReadAll(req.Body)
			if err != nil {
				return c.JSON(http.StatusBadRequest, errorJSON("invalid body"))
			}
			if len(buf) == 0 {
				return next(c)
			}

			var body map[string]interface{}
			if err := json.Unmarshal(buf, &body); err != nil {
				return c.JSON(http.StatusBadRequest, errorJSON("invalid body"))
			}

			for k, v := range body {
				if s, ok := v.(string); ok {
					body[k] = strictPolicy.Sanitize(s)
				}
			}

			newBody, err := json.Marshal(body)
			if err != nil {
				return c.JSON(http.StatusBadRequest, errorJSON("invalid body"))
			}
			req.Body = io.NopCloser(bytes.NewReader(newBody))
			req.ContentLength = int64(len(newBody))

			return next(c)
		}
	}
}
