package utils

import (
	"context"
	"helpmynew-service/internal/pkg/constvars"
	"helpmynew-service/internal/pkg/exceptions"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

// DecodeJSONBody decodes the request body into dst and validates it.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	body, err := readBody(r)
	if err != nil {
		return exceptions.ErrReadBody(err)
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}

	if err := ValidateStruct(dst); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

// RawBodyFromContext returns the body buffered by the BodyBuffer middleware.
func RawBodyFromContext(ctx context.Context) ([]byte, bool) {
	body, ok := ctx.Value(constvars.CONTEXT_RAW_BODY).([]byte)
	return body, ok
}

func readBody(r *http.Request) ([]byte, error) {
	if body, ok := RawBodyFromContext(r.Context()); ok {
		return body, nil
	}
	return io.ReadAll(r.Body)
}
