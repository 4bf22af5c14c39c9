package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/labstack/echo/v4"
)

var errMalformedBody = errors.New("malformed request body")

// requestValues はクエリとボディをまとめて1つのmapにする。
// 同じキーはボディの値を優先する。JSONの数値はjson.Numberのまま。
func requestValues(c echo.Context) (map[string]any, error) {
	values := map[string]any{}

	for k, vs := range c.QueryParams() {
		if len(vs) > 0 {
			values[k] = vs[0]
		}
	}

	req := c.Request()
	if req.Body == nil || req.ContentLength == 0 {
		return values, nil
	}

	mediaType, _, _ := mime.ParseMediaType(req.Header.Get(echo.HeaderContentType))
	switch mediaType {
	case echo.MIMEApplicationJSON:
		body, err := decodeJSONObject(req.Body)
		if err != nil {
			return nil, err
		}
		for k, v := range body {
			values[k] = v
		}
	case echo.MIMEApplicationForm, echo.MIMEMultipartForm:
		form, err := c.FormParams()
		if err != nil {
			return nil, errMalformedBody
		}
		for k, vs := range form {
			if len(vs) > 0 {
				values[k] = vs[0]
			}
		}
	}

	return values, nil
}

func decodeJSONObject(r io.Reader) (map[string]any, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errMalformedBody
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		return nil, errMalformedBody
	}
	// 末尾にゴミがある
	if dec.More() {
		return nil, errMalformedBody
	}
	return body, nil
}

// 400
func malformedBody(c echo.Context) error {
	return fail(c, http.StatusBadRequest, MsgMalformedBody)
}
